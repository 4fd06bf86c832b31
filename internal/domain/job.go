package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeFreelance  JobType = "freelance"
	JobTypeInternship JobType = "internship"
)

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceLead      ExperienceLevel = "lead"
	ExperienceExecutive ExperienceLevel = "executive"
)

type JobPosting struct {
	ID                 int64           `json:"id"`
	RecruiterProfileID int64           `json:"recruiter_profile_id"`
	Title              string          `json:"title"`
	Location           string          `json:"location"`
	Type               JobType         `json:"job_type"`
	ExperienceLevel    ExperienceLevel `json:"experience_level"`
	SalaryRange        *string         `json:"salary_range"`
	Description        string          `json:"description"`
	// Stored as a single comma separated column, exposed as a list.
	Skills    []string  `json:"skills_required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobPostingUpdate carries a partial update. The nullable fields distinguish
// "key absent" (leave as is) from "key present but null or empty" (clear).
type JobPostingUpdate struct {
	Title           *string          `json:"title"`
	Location        *string          `json:"location"`
	Type            *JobType         `json:"job_type"`
	ExperienceLevel *ExperienceLevel `json:"experience_level"`
	SalaryRange     Optional[string] `json:"salary_range"`
	Description     *string          `json:"description"`
	Skills          OptionalStrings  `json:"skills_required"`
}

// OptionalStrings is a []string that remembers whether its JSON key was
// present at all. encoding/json only calls UnmarshalJSON for keys that
// appear in the payload, so the zero value means "absent".
type OptionalStrings struct {
	Present bool
	Value   []string
}

func (o *OptionalStrings) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o OptionalStrings) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

// SkillsListToString flattens a skill list into the comma separated storage
// form. Entries are trimmed and empties dropped; duplicates and order are
// preserved.
func SkillsListToString(skills []string) string {
	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, ", ")
}

// SkillsStringToList splits the stored comma separated form back into a
// list, trimming whitespace and dropping empty entries.
func SkillsStringToList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

type JobPostingRepository interface {
	// Create persists the posting and returns it re-read.
	Create(ctx context.Context, job *JobPosting) (*JobPosting, error)
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	// List returns postings newest first.
	List(ctx context.Context, skip, limit int) ([]JobPosting, error)
	ListByRecruiter(ctx context.Context, recruiterProfileID int64, skip, limit int) ([]JobPosting, error)
	Update(ctx context.Context, job *JobPosting) (*JobPosting, error)
	Delete(ctx context.Context, id int64) (*JobPosting, error)
	CountByRecruiter(ctx context.Context, recruiterProfileID int64) (int64, error)
}

type JobUsecase interface {
	Create(ctx context.Context, job *JobPosting) (*JobPosting, error)
	Get(ctx context.Context, id int64) (*JobPosting, error)
	List(ctx context.Context, skip, limit int) ([]JobPosting, error)
	ListMine(ctx context.Context, skip, limit int) ([]JobPosting, error)
	Update(ctx context.Context, id int64, update JobPostingUpdate) (*JobPosting, error)
	Delete(ctx context.Context, id int64) (*JobPosting, error)
}
