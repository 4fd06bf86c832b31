package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

const (
	ApplicationPending      ApplicationStatus = "pending"
	ApplicationReviewed     ApplicationStatus = "reviewed"
	ApplicationInterviewing ApplicationStatus = "interviewing"
	ApplicationOffered      ApplicationStatus = "offered"
	ApplicationRejected     ApplicationStatus = "rejected"
	ApplicationWithdrawn    ApplicationStatus = "withdrawn"
)

// JobApplication snapshots the applicant's contact and salary details at
// submission time; later profile edits do not rewrite past applications.
type JobApplication struct {
	ID                 int64             `json:"id"`
	JobPostingID       int64             `json:"job_posting_id"`
	CandidateProfileID int64             `json:"candidate_profile_id"`
	Status             ApplicationStatus `json:"status"`
	FullName           string            `json:"full_name"`
	Email              string            `json:"email"`
	Phone              *string           `json:"phone"`
	CoverLetter        string            `json:"cover_letter"`
	YearsOfExperience  *string           `json:"years_of_experience"`
	ExpectedSalary     *string           `json:"expected_salary"`
	ResumeURL          *string           `json:"resume_url"`
	AppliedAt          time.Time         `json:"applied_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type JobApplicationRepository interface {
	// CreateWithCandidate persists the application for the given candidate
	// profile and returns it re-read.
	CreateWithCandidate(ctx context.Context, app *JobApplication, candidateProfileID int64) (*JobApplication, error)
	GetByID(ctx context.Context, id int64) (*JobApplication, error)
	// ListByCandidate returns applications newest first.
	ListByCandidate(ctx context.Context, candidateProfileID int64, skip, limit int) ([]JobApplication, error)
	ListByJobPosting(ctx context.Context, jobPostingID int64, skip, limit int) ([]JobApplication, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) (*JobApplication, error)
	// CountByRecruiter counts applications across all of a recruiter's
	// postings.
	CountByRecruiter(ctx context.Context, recruiterProfileID int64) (int64, error)
}

type ApplicationUsecase interface {
	// Submit attributes the application to the authenticated candidate's
	// profile regardless of what the payload claims.
	Submit(ctx context.Context, app *JobApplication) (*JobApplication, error)
	ListMine(ctx context.Context, skip, limit int) ([]JobApplication, error)
	// ListForPosting is scoped to the posting's owning recruiter.
	ListForPosting(ctx context.Context, jobPostingID int64, skip, limit int) ([]JobApplication, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) (*JobApplication, error)
}
