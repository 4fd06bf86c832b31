package v1

import (
	"net/http"

	"ai-match-connect/internal/delivery/http/response"
	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apps := protected.Group("/job-applications")
	{
		apps.POST("", handler.Submit)
		apps.GET("/my-applications", handler.ListMine)
		apps.PUT("/:id/status", handler.UpdateStatus)
	}

	// Recruiter review listing hangs off the posting it belongs to.
	protected.GET("/job-postings/:id/applications", handler.ListForPosting)
}

// ApplicationRequest snapshots the applicant's details at submission time.
type ApplicationRequest struct {
	JobPostingID      int64  `json:"job_posting_id" binding:"required"`
	FullName          string `json:"full_name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone"`
	CoverLetter       string `json:"cover_letter" binding:"required"`
	YearsOfExperience string `json:"years_of_experience"`
	ExpectedSalary    string `json:"expected_salary"`
	ResumeURL         string `json:"resume_url" binding:"omitempty,url"`
}

// Submit godoc
// @Summary      Apply to a job posting
// @Description  The application is always attributed to the authenticated candidate's profile; contact and salary details are captured as submitted
// @Tags         job-applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplicationRequest  true  "Application JSON"
// @Success      201  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /job-applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.applicationUC.Submit(c.Request.Context(), &domain.JobApplication{
		JobPostingID:      req.JobPostingID,
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             toPtr(req.Phone),
		CoverLetter:       req.CoverLetter,
		YearsOfExperience: toPtr(req.YearsOfExperience),
		ExpectedSalary:    toPtr(req.ExpectedSalary),
		ResumeURL:         toPtr(req.ResumeURL),
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", created)
}

// ListMine godoc
// @Summary      List my applications
// @Tags         job-applications
// @Produce      json
// @Param        skip   query  int  false  "Offset"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /job-applications/my-applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	skip, limit := pagination(c)
	apps, err := h.applicationUC.ListMine(c.Request.Context(), skip, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My applications", apps)
}

// ListForPosting godoc
// @Summary      List applications for a job posting
// @Description  Owning recruiter only, newest first
// @Tags         job-applications
// @Produce      json
// @Param        id     path   int  true   "Posting ID"
// @Param        skip   query  int  false  "Offset"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-postings/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForPosting(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	skip, limit := pagination(c)
	apps, err := h.applicationUC.ListForPosting(c.Request.Context(), id, skip, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications", apps)
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed interviewing offered rejected withdrawn"`
}

// UpdateStatus godoc
// @Summary      Update an application's status
// @Description  Only the recruiter owning the posting may move an application through the pipeline
// @Tags         job-applications
// @Accept       json
// @Produce      json
// @Param        id    path   int                  true  "Application ID"
// @Param        body  body   StatusUpdateRequest  true  "Status JSON"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-applications/{id}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.applicationUC.UpdateStatus(c.Request.Context(), id, domain.ApplicationStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", updated)
}
