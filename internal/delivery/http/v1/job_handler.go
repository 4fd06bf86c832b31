package v1

import (
	"net/http"

	"ai-match-connect/internal/delivery/http/response"
	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Browsing postings is public; everything else needs a recruiter.
	publicJobs := public.Group("/job-postings")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.Get)
	}

	protectedJobs := protected.Group("/job-postings")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
	}

	// Lives under the recruiter resource so it does not collide with the
	// public /job-postings/:id route.
	protected.GET("/recruiter-profiles/me/job-postings", handler.ListMine)
}

type JobPostingRequest struct {
	Title           string   `json:"title" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	JobType         string   `json:"job_type" binding:"required,oneof=full-time part-time contract freelance internship"`
	ExperienceLevel string   `json:"experience_level" binding:"required,oneof=entry mid senior lead executive"`
	SalaryRange     string   `json:"salary_range"`
	Description     string   `json:"description" binding:"required"`
	Skills          []string `json:"skills_required"`
}

// Create godoc
// @Summary      Create a job posting
// @Description  Publish a new posting owned by the recruiter's profile
// @Tags         job-postings
// @Accept       json
// @Produce      json
// @Param        body  body      JobPostingRequest  true  "Posting JSON"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /job-postings [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.JobPosting{
		Title:           req.Title,
		Location:        req.Location,
		Type:            domain.JobType(req.JobType),
		ExperienceLevel: domain.ExperienceLevel(req.ExperienceLevel),
		SalaryRange:     toPtr(req.SalaryRange),
		Description:     req.Description,
		Skills:          req.Skills,
	}
	created, err := h.jobUC.Create(c.Request.Context(), job)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posting created", created)
}

// Get godoc
// @Summary      Job posting details
// @Tags         job-postings
// @Produce      json
// @Param        id  path  int  true  "Posting ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-postings/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posting", job)
}

// List godoc
// @Summary      List job postings
// @Description  Newest postings first
// @Tags         job-postings
// @Produce      json
// @Param        skip   query  int  false  "Offset"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /job-postings [get]
func (h *JobHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	jobs, err := h.jobUC.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job postings", jobs)
}

// ListMine godoc
// @Summary      List my job postings
// @Tags         job-postings
// @Produce      json
// @Param        skip   query  int  false  "Offset"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /recruiter-profiles/me/job-postings [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	skip, limit := pagination(c)
	jobs, err := h.jobUC.ListMine(c.Request.Context(), skip, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My job postings", jobs)
}

// Update godoc
// @Summary      Update a job posting
// @Description  Owner only. Omitting skills_required leaves the stored list untouched; sending null or [] clears it.
// @Tags         job-postings
// @Accept       json
// @Produce      json
// @Param        id    path   int                      true  "Posting ID"
// @Param        body  body   domain.JobPostingUpdate  true  "Partial update JSON"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-postings/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var update domain.JobPostingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.jobUC.Update(c.Request.Context(), id, update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posting updated", updated)
}

// Delete godoc
// @Summary      Delete a job posting
// @Tags         job-postings
// @Param        id  path  int  true  "Posting ID"
// @Success      204  "No Content"
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-postings/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if _, err := h.jobUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
