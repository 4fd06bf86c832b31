package domain

import (
	"context"
	"encoding/json"
)

// AISearchInput is what API clients send to the matching endpoint.
type AISearchInput struct {
	JobID        int64   `json:"job_id" binding:"required"`
	CandidateIDs []int64 `json:"candidate_ids" binding:"required,min=1"`
}

// MatchResume is one candidate's resume as handed to the matching engine.
// Ids cross the wire as strings.
type MatchResume struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MatchRequest is the payload forwarded to the external matching engine.
type MatchRequest struct {
	JobID              string        `json:"job_id"`
	JobDescriptionText string        `json:"job_description_text"`
	Resumes            []MatchResume `json:"resumes"`
}

// MatcherClient talks to the external AI matching engine. The response body
// is relayed to the API caller untouched.
type MatcherClient interface {
	Screen(ctx context.Context, req MatchRequest) (json.RawMessage, error)
}

type MatchUsecase interface {
	Search(ctx context.Context, in AISearchInput) (json.RawMessage, error)
}
