package v1

import (
	"net/http"

	"ai-match-connect/internal/delivery/http/response"
	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecruiterHandler struct {
	recruiterUC domain.RecruiterUsecase
}

func NewRecruiterHandler(protected *gin.RouterGroup, recruiterUC domain.RecruiterUsecase) {
	handler := &RecruiterHandler{recruiterUC: recruiterUC}

	profiles := protected.Group("/recruiter-profiles")
	{
		profiles.POST("", handler.CreateProfile)
		profiles.GET("/me", handler.GetMyProfile)
		profiles.PUT("/me", handler.UpdateMyProfile)
		profiles.DELETE("/me", handler.DeleteMyProfile)
	}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/recruiter", handler.Dashboard)
	}
}

type RecruiterProfileRequest struct {
	CompanyName        string `json:"company_name" binding:"required"`
	JobTitle           string `json:"job_title"`
	PhoneNumber        string `json:"phone_number"`
	LinkedinProfileURL string `json:"linkedin_profile_url" binding:"omitempty,url"`
	WebsiteURL         string `json:"website_url" binding:"omitempty,url"`
	Bio                string `json:"bio"`
	Location           string `json:"location"`
	CompanySize        string `json:"company_size"`
	Industry           string `json:"industry"`
}

// CreateProfile godoc
// @Summary      Create my recruiter profile
// @Description  Create the recruiter profile for the authenticated user (one per account)
// @Tags         recruiter-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      RecruiterProfileRequest  true  "Profile JSON"
// @Success      201  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /recruiter-profiles [post]
// @Security     BearerAuth
func (h *RecruiterHandler) CreateProfile(c *gin.Context) {
	var req RecruiterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.RecruiterProfile{
		CompanyName:        req.CompanyName,
		JobTitle:           toPtr(req.JobTitle),
		PhoneNumber:        toPtr(req.PhoneNumber),
		LinkedinProfileURL: toPtr(req.LinkedinProfileURL),
		WebsiteURL:         toPtr(req.WebsiteURL),
		Bio:                toPtr(req.Bio),
		Location:           toPtr(req.Location),
		CompanySize:        toPtr(req.CompanySize),
		Industry:           toPtr(req.Industry),
	}
	created, err := h.recruiterUC.CreateProfile(c.Request.Context(), profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Recruiter profile created", created)
}

// GetMyProfile godoc
// @Summary      My recruiter profile
// @Tags         recruiter-profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruiter-profiles/me [get]
// @Security     BearerAuth
func (h *RecruiterHandler) GetMyProfile(c *gin.Context) {
	profile, err := h.recruiterUC.GetMyProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter profile", profile)
}

// UpdateMyProfile godoc
// @Summary      Update my recruiter profile
// @Tags         recruiter-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RecruiterProfileUpdate  true  "Partial update JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruiter-profiles/me [put]
// @Security     BearerAuth
func (h *RecruiterHandler) UpdateMyProfile(c *gin.Context) {
	var update domain.RecruiterProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.recruiterUC.UpdateMyProfile(c.Request.Context(), update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter profile updated", updated)
}

// DeleteMyProfile godoc
// @Summary      Delete my recruiter profile
// @Tags         recruiter-profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruiter-profiles/me [delete]
// @Security     BearerAuth
func (h *RecruiterHandler) DeleteMyProfile(c *gin.Context) {
	deleted, err := h.recruiterUC.DeleteMyProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter profile deleted", deleted)
}

// Dashboard godoc
// @Summary      Recruiter dashboard
// @Description  Live posting and applicant counts for the authenticated recruiter
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard/recruiter [get]
// @Security     BearerAuth
func (h *RecruiterHandler) Dashboard(c *gin.Context) {
	dash, err := h.recruiterUC.Dashboard(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard", dash)
}
