package v1

import (
	"net/http"

	"ai-match-connect/internal/delivery/http/response"
	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	authGroup := public.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/token", handler.Login)
		authGroup.POST("/token/refresh", handler.Refresh)
	}

	users := protected.Group("/users")
	{
		users.GET("/me", handler.Me)
		users.GET("/me/candidate-data", handler.MyCandidateData)
		users.GET("/me/recruiter-data", handler.MyRecruiterData)
		users.GET("/admin-only", handler.AdminOnly)
	}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role" binding:"required,oneof=candidate recruiter"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a candidate or recruiter account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Registration JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: toPtr(req.FirstName),
		LastName:  toPtr(req.LastName),
		Role:      domain.UserRole(req.Role),
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created", user)
}

// The token endpoint follows the OAuth2 password flow shape: credentials
// arrive as form fields named username and password.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Login godoc
// @Summary      Obtain an access token
// @Description  Exchange email and password for a bearer token pair
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/token [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Authenticated", pair)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh godoc
// @Summary      Refresh an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RefreshRequest  true  "Refresh JSON"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/token/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUC.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed", pair)
}

// Me godoc
// @Summary      Current account
// @Description  Return the authenticated user with profiles attached
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", user)
}

func (h *AuthHandler) currentUser(c *gin.Context) (*domain.User, error) {
	actor := domain.ActorFromContext(c.Request.Context())
	if actor == nil {
		return nil, apperror.Unauthorized("Not authenticated")
	}
	return h.authUC.GetCurrentUser(c.Request.Context(), actor.ID)
}

// MyCandidateData godoc
// @Summary      Current account's candidate profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/me/candidate-data [get]
// @Security     BearerAuth
func (h *AuthHandler) MyCandidateData(c *gin.Context) {
	user, err := h.currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}
	if user.CandidateProfile == nil {
		c.Error(apperror.NotFound("Candidate profile not found"))
		return
	}
	response.Success(c, http.StatusOK, "Candidate data", user.CandidateProfile)
}

// MyRecruiterData godoc
// @Summary      Current account's recruiter profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/me/recruiter-data [get]
// @Security     BearerAuth
func (h *AuthHandler) MyRecruiterData(c *gin.Context) {
	user, err := h.currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}
	if user.RecruiterProfile == nil {
		c.Error(apperror.NotFound("Recruiter profile not found"))
		return
	}
	response.Success(c, http.StatusOK, "Recruiter data", user.RecruiterProfile)
}

// AdminOnly godoc
// @Summary      Superuser check
// @Description  Returns the current user only when it holds superuser privileges
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /users/admin-only [get]
// @Security     BearerAuth
func (h *AuthHandler) AdminOnly(c *gin.Context) {
	actor := domain.ActorFromContext(c.Request.Context())
	if actor == nil {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}
	if !actor.IsSuperuser {
		c.Error(apperror.Forbidden("The user doesn't have enough privileges"))
		return
	}

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), actor.ID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Superuser verified", user)
}
