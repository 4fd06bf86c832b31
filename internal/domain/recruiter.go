package domain

import (
	"context"
	"time"
)

type RecruiterProfile struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	CompanyName        string    `json:"company_name"`
	JobTitle           *string   `json:"job_title"`
	PhoneNumber        *string   `json:"phone_number"`
	LinkedinProfileURL *string   `json:"linkedin_profile_url"`
	WebsiteURL         *string   `json:"website_url"`
	Bio                *string   `json:"bio"`
	Location           *string   `json:"location"`
	CompanySize        *string   `json:"company_size"`
	Industry           *string   `json:"industry"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Eagerly loaded children
	JobPostings []JobPosting `json:"job_postings"`
}

// RecruiterProfileUpdate carries a partial update. CompanyName is required
// on the profile so it can only be replaced; the nullable fields are
// tri-state and an explicit null clears them.
type RecruiterProfileUpdate struct {
	CompanyName        *string          `json:"company_name"`
	JobTitle           Optional[string] `json:"job_title"`
	PhoneNumber        Optional[string] `json:"phone_number"`
	LinkedinProfileURL Optional[string] `json:"linkedin_profile_url"`
	WebsiteURL         Optional[string] `json:"website_url"`
	Bio                Optional[string] `json:"bio"`
	Location           Optional[string] `json:"location"`
	CompanySize        Optional[string] `json:"company_size"`
	Industry           Optional[string] `json:"industry"`
}

// RecruiterDashboard aggregates live counts for the recruiter landing page.
type RecruiterDashboard struct {
	UserName        string `json:"user_name"`
	TotalActiveJobs int64  `json:"total_active_jobs"`
	TotalApplicants int64  `json:"total_applicants"`
}

type RecruiterProfileRepository interface {
	CreateWithOwner(ctx context.Context, profile *RecruiterProfile, userID int64) (*RecruiterProfile, error)
	// GetByUserID returns the profile with job postings eagerly loaded, or
	// nil when the user has none.
	GetByUserID(ctx context.Context, userID int64) (*RecruiterProfile, error)
	GetByID(ctx context.Context, id int64) (*RecruiterProfile, error)
	List(ctx context.Context, skip, limit int) ([]RecruiterProfile, error)
	Update(ctx context.Context, profile *RecruiterProfile) (*RecruiterProfile, error)
	Delete(ctx context.Context, id int64) (*RecruiterProfile, error)
}

type RecruiterUsecase interface {
	CreateProfile(ctx context.Context, profile *RecruiterProfile) (*RecruiterProfile, error)
	GetMyProfile(ctx context.Context) (*RecruiterProfile, error)
	UpdateMyProfile(ctx context.Context, update RecruiterProfileUpdate) (*RecruiterProfile, error)
	DeleteMyProfile(ctx context.Context) (*RecruiterProfile, error)
	Dashboard(ctx context.Context) (*RecruiterDashboard, error)
}
