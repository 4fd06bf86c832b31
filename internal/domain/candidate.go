package domain

import (
	"context"
	"time"
)

type CandidateProfile struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"user_id"`
	Bio                *string `json:"bio"`
	PhoneNumber        *string `json:"phone_number"`
	Location           *string `json:"location"`
	LinkedinProfileURL *string `json:"linkedin_profile_url"`
	PortfolioURL       *string `json:"portfolio_url"`
	ResumeURL          *string `json:"resume_url"`
	// Raw text extracted from the uploaded resume PDF; large, kept out of
	// API responses and only read by the AI matching workflow.
	ResumeText *string   `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Eagerly loaded children
	Experiences []Experience     `json:"experiences"`
	Educations  []Education      `json:"educations"`
	Skills      []CandidateSkill `json:"skills"`
}

// CandidateProfileUpdate carries a partial update. Every field is nullable,
// so each one is tri-state: absent leaves the stored value alone, an
// explicit null clears it, a value replaces it.
type CandidateProfileUpdate struct {
	Bio                Optional[string] `json:"bio"`
	PhoneNumber        Optional[string] `json:"phone_number"`
	Location           Optional[string] `json:"location"`
	LinkedinProfileURL Optional[string] `json:"linkedin_profile_url"`
	PortfolioURL       Optional[string] `json:"portfolio_url"`
	ResumeURL          Optional[string] `json:"resume_url"`
}

// Education and Experience dates are calendar dates formatted YYYY-MM-DD;
// a nil end date means ongoing.
type Education struct {
	ID                 int64     `json:"id"`
	CandidateProfileID int64     `json:"candidate_profile_id"`
	InstitutionName    string    `json:"institution_name" validate:"required"`
	Degree             *string   `json:"degree"`
	FieldOfStudy       *string   `json:"field_of_study"`
	StartDate          string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate            *string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Description        *string   `json:"description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Experience struct {
	ID                 int64     `json:"id"`
	CandidateProfileID int64     `json:"candidate_profile_id"`
	Title              string    `json:"title" validate:"required"`
	CompanyName        string    `json:"company_name" validate:"required"`
	Location           *string   `json:"location"`
	StartDate          string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate            *string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Description        *string   `json:"description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type CandidateSkill struct {
	ID                 int64     `json:"id"`
	CandidateProfileID int64     `json:"candidate_profile_id"`
	Name               string    `json:"name" validate:"required"`
	Proficiency        *string   `json:"proficiency"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// The child update structs keep plain pointers for required columns (absent
// or a value, never null) and Optional for the nullable ones.
type EducationUpdate struct {
	InstitutionName *string          `json:"institution_name"`
	Degree          Optional[string] `json:"degree"`
	FieldOfStudy    Optional[string] `json:"field_of_study"`
	StartDate       *string          `json:"start_date"`
	EndDate         Optional[string] `json:"end_date"`
	Description     Optional[string] `json:"description"`
}

type ExperienceUpdate struct {
	Title       *string          `json:"title"`
	CompanyName *string          `json:"company_name"`
	Location    Optional[string] `json:"location"`
	StartDate   *string          `json:"start_date"`
	EndDate     Optional[string] `json:"end_date"`
	Description Optional[string] `json:"description"`
}

type CandidateSkillUpdate struct {
	Name        *string          `json:"name"`
	Proficiency Optional[string] `json:"proficiency"`
}

type CandidateProfileRepository interface {
	// CreateWithOwner persists the profile for userID and returns it
	// re-read with all children attached.
	CreateWithOwner(ctx context.Context, profile *CandidateProfile, userID int64) (*CandidateProfile, error)
	// GetByUserID returns the profile with children eagerly loaded, or nil
	// when the user has none.
	GetByUserID(ctx context.Context, userID int64) (*CandidateProfile, error)
	GetByID(ctx context.Context, id int64) (*CandidateProfile, error)
	Update(ctx context.Context, profile *CandidateProfile) (*CandidateProfile, error)
	Delete(ctx context.Context, id int64) (*CandidateProfile, error)
	SetResumeText(ctx context.Context, id int64, text string) error
}

type EducationRepository interface {
	GetByID(ctx context.Context, id int64) (*Education, error)
	// ListByProfile orders by start date, most recent first.
	ListByProfile(ctx context.Context, profileID int64, skip, limit int) ([]Education, error)
	Create(ctx context.Context, edu *Education) (*Education, error)
	Update(ctx context.Context, edu *Education) (*Education, error)
	Delete(ctx context.Context, id int64) (*Education, error)
}

type ExperienceRepository interface {
	GetByID(ctx context.Context, id int64) (*Experience, error)
	// ListByProfile orders by start date, most recent first.
	ListByProfile(ctx context.Context, profileID int64, skip, limit int) ([]Experience, error)
	Create(ctx context.Context, exp *Experience) (*Experience, error)
	Update(ctx context.Context, exp *Experience) (*Experience, error)
	Delete(ctx context.Context, id int64) (*Experience, error)
}

type CandidateSkillRepository interface {
	GetByID(ctx context.Context, id int64) (*CandidateSkill, error)
	// ListByProfile orders alphabetically by name.
	ListByProfile(ctx context.Context, profileID int64, skip, limit int) ([]CandidateSkill, error)
	Create(ctx context.Context, skill *CandidateSkill) (*CandidateSkill, error)
	Update(ctx context.Context, skill *CandidateSkill) (*CandidateSkill, error)
	Delete(ctx context.Context, id int64) (*CandidateSkill, error)
}

type CandidateUsecase interface {
	CreateProfile(ctx context.Context, profile *CandidateProfile) (*CandidateProfile, error)
	GetMyProfile(ctx context.Context) (*CandidateProfile, error)
	UpdateMyProfile(ctx context.Context, update CandidateProfileUpdate) (*CandidateProfile, error)
	DeleteMyProfile(ctx context.Context) (*CandidateProfile, error)

	AddEducation(ctx context.Context, edu *Education) (*Education, error)
	ListEducations(ctx context.Context, skip, limit int) ([]Education, error)
	UpdateEducation(ctx context.Context, id int64, update EducationUpdate) (*Education, error)
	DeleteEducation(ctx context.Context, id int64) (*Education, error)

	AddExperience(ctx context.Context, exp *Experience) (*Experience, error)
	ListExperiences(ctx context.Context, skip, limit int) ([]Experience, error)
	UpdateExperience(ctx context.Context, id int64, update ExperienceUpdate) (*Experience, error)
	DeleteExperience(ctx context.Context, id int64) (*Experience, error)

	AddSkill(ctx context.Context, skill *CandidateSkill) (*CandidateSkill, error)
	ListSkills(ctx context.Context, skip, limit int) ([]CandidateSkill, error)
	UpdateSkill(ctx context.Context, id int64, update CandidateSkillUpdate) (*CandidateSkill, error)
	DeleteSkill(ctx context.Context, id int64) (*CandidateSkill, error)

	SaveResumeText(ctx context.Context, text string) error
}
