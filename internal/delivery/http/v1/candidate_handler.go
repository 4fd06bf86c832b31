package v1

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"ai-match-connect/internal/delivery/http/response"
	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"
	"ai-match-connect/pkg/pdfextract"

	"github.com/gin-gonic/gin"
)

// Resume PDFs above this size are rejected before parsing.
const maxResumeBytes = 10 << 20

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	extract     func([]byte) (string, error)
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, extract: pdfextract.Text}

	profiles := protected.Group("/candidate-profiles")
	{
		profiles.POST("", handler.CreateProfile)
		profiles.GET("/me", handler.GetMyProfile)
		profiles.PUT("/me", handler.UpdateMyProfile)
		profiles.DELETE("/me", handler.DeleteMyProfile)

		educations := profiles.Group("/me/educations")
		{
			educations.POST("", handler.AddEducation)
			educations.GET("", handler.ListEducations)
			educations.PUT("/:id", handler.UpdateEducation)
			educations.DELETE("/:id", handler.DeleteEducation)
		}

		experiences := profiles.Group("/me/experiences")
		{
			experiences.POST("", handler.AddExperience)
			experiences.GET("", handler.ListExperiences)
			experiences.PUT("/:id", handler.UpdateExperience)
			experiences.DELETE("/:id", handler.DeleteExperience)
		}

		skills := profiles.Group("/me/skills")
		{
			skills.POST("", handler.AddSkill)
			skills.GET("", handler.ListSkills)
			skills.PUT("/:id", handler.UpdateSkill)
			skills.DELETE("/:id", handler.DeleteSkill)
		}
	}

	resumes := protected.Group("/resumes")
	{
		resumes.POST("/upload", handler.UploadResume)
	}
}

type CandidateProfileRequest struct {
	Bio                string `json:"bio"`
	PhoneNumber        string `json:"phone_number"`
	Location           string `json:"location"`
	LinkedinProfileURL string `json:"linkedin_profile_url" binding:"omitempty,url"`
	PortfolioURL       string `json:"portfolio_url" binding:"omitempty,url"`
	ResumeURL          string `json:"resume_url" binding:"omitempty,url"`
}

// CreateProfile godoc
// @Summary      Create my candidate profile
// @Description  Create the candidate profile for the authenticated user (one per account)
// @Tags         candidate-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      CandidateProfileRequest  true  "Profile JSON"
// @Success      201  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /candidate-profiles [post]
// @Security     BearerAuth
func (h *CandidateHandler) CreateProfile(c *gin.Context) {
	var req CandidateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.CandidateProfile{
		Bio:                toPtr(req.Bio),
		PhoneNumber:        toPtr(req.PhoneNumber),
		Location:           toPtr(req.Location),
		LinkedinProfileURL: toPtr(req.LinkedinProfileURL),
		PortfolioURL:       toPtr(req.PortfolioURL),
		ResumeURL:          toPtr(req.ResumeURL),
	}
	created, err := h.candidateUC.CreateProfile(c.Request.Context(), profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate profile created", created)
}

// GetMyProfile godoc
// @Summary      My candidate profile
// @Tags         candidate-profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate-profiles/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetMyProfile(c *gin.Context) {
	profile, err := h.candidateUC.GetMyProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// UpdateMyProfile godoc
// @Summary      Update my candidate profile
// @Tags         candidate-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CandidateProfileUpdate  true  "Partial update JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate-profiles/me [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateMyProfile(c *gin.Context) {
	var update domain.CandidateProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.candidateUC.UpdateMyProfile(c.Request.Context(), update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile updated", updated)
}

// DeleteMyProfile godoc
// @Summary      Delete my candidate profile
// @Tags         candidate-profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate-profiles/me [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteMyProfile(c *gin.Context) {
	deleted, err := h.candidateUC.DeleteMyProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile deleted", deleted)
}

type EducationRequest struct {
	InstitutionName string `json:"institution_name" binding:"required"`
	Degree          string `json:"degree"`
	FieldOfStudy    string `json:"field_of_study"`
	StartDate       string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate         string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Description     string `json:"description"`
}

// AddEducation godoc
// @Summary      Add an education entry
// @Tags         candidate-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      EducationRequest  true  "Education JSON"
// @Success      201  {object}  response.Response
// @Router       /candidate-profiles/me/educations [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.candidateUC.AddEducation(c.Request.Context(), &domain.Education{
		InstitutionName: req.InstitutionName,
		Degree:          toPtr(req.Degree),
		FieldOfStudy:    toPtr(req.FieldOfStudy),
		StartDate:       req.StartDate,
		EndDate:         toPtr(req.EndDate),
		Description:     toPtr(req.Description),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education added", created)
}

// ListEducations godoc
// @Summary      List my education entries
// @Tags         candidate-profiles
// @Produce      json
// @Param        skip   query  int  false  "Offset"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /candidate-profiles/me/educations [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListEducations(c *gin.Context) {
	skip, limit := pagination(c)
	items, err := h.candidateUC.ListEducations(c.Request.Context(), skip, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Educations", items)
}

// UpdateEducation godoc
// @Summary      Update an education entry
// @Tags         candidate-profiles
// @Accept       json
// @Produce      json
// @Param        id    path   int                     true  "Education ID"
// @Param        body  body   domain.EducationUpdate  true  "Partial update JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate-profiles/me/educations/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateEducation(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var update domain.EducationUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.candidateUC.UpdateEducation(c.Request.Context(), id, update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated", updated)
}

// DeleteEducation godoc
// @Summary      Delete an education entry
// @Tags         candidate-profiles
// @Produce      json
// @Param        id  path  int  true  "Education ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate-profiles/me/educations/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteEducation(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	deleted, err := h.candidateUC.DeleteEducation(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education deleted", deleted)
}

type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Description string `json:"description"`
}

// AddExperience godoc
// @Summary      Add a work experience entry
// @Tags         candidate-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      ExperienceRequest  true  "Experience JSON"
// @Success      201  {object}  response.Response
// @Router       /candidate-profiles/me/experiences [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.candidateUC.AddExperience(c.Request.Context(), &domain.Experience{
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Location:    toPtr(req.Location),
		StartDate:   req.StartDate,
		EndDate:     toPtr(req.EndDate),
		Description: toPtr(req.Description),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience added", created)
}

// ListExperiences godoc
// @Summary      List my work experience
// @Tags         candidate-profiles
// @Produce      json
// @Param        skip   query  int  false  "Offset"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /candidate-profiles/me/experiences [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListExperiences(c *gin.Context) {
	skip, limit := pagination(c)
	items, err := h.candidateUC.ListExperiences(c.Request.Context(), skip, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experiences", items)
}

// UpdateExperience godoc
// @Summary      Update a work experience entry
// @Tags         candidate-profiles
// @Accept       json
// @Produce      json
// @Param        id    path   int                      true  "Experience ID"
// @Param        body  body   domain.ExperienceUpdate  true  "Partial update JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate-profiles/me/experiences/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateExperience(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var update domain.ExperienceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.candidateUC.UpdateExperience(c.Request.Context(), id, update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience updated", updated)
}

// DeleteExperience godoc
// @Summary      Delete a work experience entry
// @Tags         candidate-profiles
// @Produce      json
// @Param        id  path  int  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate-profiles/me/experiences/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteExperience(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	deleted, err := h.candidateUC.DeleteExperience(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience deleted", deleted)
}

type SkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Proficiency string `json:"proficiency"`
}

// AddSkill godoc
// @Summary      Add a skill
// @Tags         candidate-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      SkillRequest  true  "Skill JSON"
// @Success      201  {object}  response.Response
// @Router       /candidate-profiles/me/skills [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.candidateUC.AddSkill(c.Request.Context(), &domain.CandidateSkill{
		Name:        req.Name,
		Proficiency: toPtr(req.Proficiency),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill added", created)
}

// ListSkills godoc
// @Summary      List my skills
// @Tags         candidate-profiles
// @Produce      json
// @Param        skip   query  int  false  "Offset"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /candidate-profiles/me/skills [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListSkills(c *gin.Context) {
	skip, limit := pagination(c)
	items, err := h.candidateUC.ListSkills(c.Request.Context(), skip, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills", items)
}

// UpdateSkill godoc
// @Summary      Update a skill
// @Tags         candidate-profiles
// @Accept       json
// @Produce      json
// @Param        id    path   int                          true  "Skill ID"
// @Param        body  body   domain.CandidateSkillUpdate  true  "Partial update JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate-profiles/me/skills/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateSkill(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var update domain.CandidateSkillUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.candidateUC.UpdateSkill(c.Request.Context(), id, update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated", updated)
}

// DeleteSkill godoc
// @Summary      Delete a skill
// @Tags         candidate-profiles
// @Produce      json
// @Param        id  path  int  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate-profiles/me/skills/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteSkill(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	deleted, err := h.candidateUC.DeleteSkill(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted", deleted)
}

// UploadResume godoc
// @Summary      Upload a resume PDF
// @Description  Extracts the text of the uploaded PDF and stores it on the candidate profile for AI screening
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume PDF"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /resumes/upload [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A file field is required"))
		return
	}
	if fileHeader.Size > maxResumeBytes {
		c.Error(apperror.BadRequest("Resume file exceeds the 10 MB limit"))
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		c.Error(apperror.BadRequest("Only PDF resumes are accepted"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeBytes+1))
	if err != nil {
		c.Error(err)
		return
	}
	// Filename extension alone is not trusted, check the magic bytes too.
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		c.Error(apperror.BadRequest("Only PDF resumes are accepted"))
		return
	}

	text, err := h.extract(data)
	if err != nil {
		c.Error(apperror.BadRequest("Could not extract text from the uploaded PDF"))
		return
	}

	if err := h.candidateUC.SaveResumeText(c.Request.Context(), text); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume processed", gin.H{
		"filename":    fileHeader.Filename,
		"text_length": len(text),
	})
}
