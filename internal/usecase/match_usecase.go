package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"
	"ai-match-connect/pkg/logger"
	"ai-match-connect/pkg/matchclient"
)

type matchUsecase struct {
	jobRepo       domain.JobPostingRepository
	candidateRepo domain.CandidateProfileRepository
	matcher       domain.MatcherClient
}

func NewMatchUsecase(
	jobRepo domain.JobPostingRepository,
	candidateRepo domain.CandidateProfileRepository,
	matcher domain.MatcherClient,
) domain.MatchUsecase {
	return &matchUsecase{
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		matcher:       matcher,
	}
}

func (u *matchUsecase) Search(ctx context.Context, in domain.AISearchInput) (json.RawMessage, error) {
	if _, _, err := requireRecruiterProfile(ctx); err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job posting not found")
		}
		return nil, err
	}

	// Candidates without extracted resume text are silently dropped; the
	// engine only ranks what it can read.
	resumes := make([]domain.MatchResume, 0, len(in.CandidateIDs))
	for _, id := range in.CandidateIDs {
		profile, err := u.candidateRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Candidate profile " + strconv.FormatInt(id, 10) + " not found")
			}
			return nil, err
		}
		if profile.ResumeText == nil || *profile.ResumeText == "" {
			continue
		}
		resumes = append(resumes, domain.MatchResume{
			ID:   strconv.FormatInt(profile.ID, 10),
			Text: *profile.ResumeText,
		})
	}
	if len(resumes) == 0 {
		return nil, apperror.BadRequest("None of the selected candidates have resume text to screen")
	}

	verdict, err := u.matcher.Screen(ctx, domain.MatchRequest{
		JobID:              strconv.FormatInt(job.ID, 10),
		JobDescriptionText: job.Description,
		Resumes:            resumes,
	})
	if err != nil {
		switch {
		case errors.Is(err, matchclient.ErrUnavailable):
			return nil, apperror.ServiceUnavailable("AI matching engine is unavailable")
		case errors.Is(err, matchclient.ErrBadStatus):
			return nil, apperror.BadGateway("AI matching engine returned an error")
		default:
			return nil, err
		}
	}

	logger.Log.Info("ai screening completed", "job_id", job.ID, "resumes", len(resumes))
	return verdict, nil
}
