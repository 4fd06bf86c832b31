package v1

import (
	"net/http"

	"ai-match-connect/internal/delivery/http/response"
	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin")
	{
		users := admin.Group("/users")
		{
			users.GET("", handler.ListUsers)
			users.GET("/:id", handler.GetUser)
			users.PUT("/:id", handler.UpdateUser)
			users.DELETE("/:id", handler.DeleteUser)
		}

		recruiters := admin.Group("/recruiter-profiles")
		{
			recruiters.GET("", handler.ListRecruiterProfiles)
			recruiters.GET("/:id", handler.GetRecruiterProfile)
			recruiters.PUT("/:id", handler.UpdateRecruiterProfile)
			recruiters.DELETE("/:id", handler.DeleteRecruiterProfile)
		}
	}
}

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        skip   query  int  false  "Offset"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	skip, limit := pagination(c)
	users, err := h.adminUC.ListUsers(c.Request.Context(), skip, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users", users)
}

// GetUser godoc
// @Summary      User details
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [get]
// @Security     BearerAuth
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.adminUC.GetUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User", user)
}

// UpdateUser godoc
// @Summary      Update a user
// @Description  Partial update. Admins cannot deactivate, demote, or strip privileges from themselves.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path   int                true  "User ID"
// @Param        body  body   domain.UserUpdate  true  "Partial update JSON"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var update domain.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.adminUC.UpdateUser(c.Request.Context(), id, update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", updated)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	deleted, err := h.adminUC.DeleteUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", deleted)
}

// ListRecruiterProfiles godoc
// @Summary      List recruiter profiles
// @Tags         admin
// @Produce      json
// @Param        skip   query  int  false  "Offset"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/recruiter-profiles [get]
// @Security     BearerAuth
func (h *AdminHandler) ListRecruiterProfiles(c *gin.Context) {
	skip, limit := pagination(c)
	profiles, err := h.adminUC.ListRecruiterProfiles(c.Request.Context(), skip, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter profiles", profiles)
}

// GetRecruiterProfile godoc
// @Summary      Recruiter profile details
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/recruiter-profiles/{id} [get]
// @Security     BearerAuth
func (h *AdminHandler) GetRecruiterProfile(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.adminUC.GetRecruiterProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter profile", profile)
}

// UpdateRecruiterProfile godoc
// @Summary      Update a recruiter profile
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path   int                            true  "Profile ID"
// @Param        body  body   domain.RecruiterProfileUpdate  true  "Partial update JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/recruiter-profiles/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateRecruiterProfile(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var update domain.RecruiterProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.adminUC.UpdateRecruiterProfile(c.Request.Context(), id, update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter profile updated", updated)
}

// DeleteRecruiterProfile godoc
// @Summary      Delete a recruiter profile
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/recruiter-profiles/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteRecruiterProfile(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	deleted, err := h.adminUC.DeleteRecruiterProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter profile deleted", deleted)
}
