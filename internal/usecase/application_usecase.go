package usecase

import (
	"context"
	"errors"

	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"
	"ai-match-connect/pkg/logger"
)

type applicationUsecase struct {
	appRepo domain.JobApplicationRepository
	jobRepo domain.JobPostingRepository
}

func NewApplicationUsecase(appRepo domain.JobApplicationRepository, jobRepo domain.JobPostingRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo: appRepo,
		jobRepo: jobRepo,
	}
}

func (u *applicationUsecase) Submit(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	actor, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := u.jobRepo.GetByID(ctx, app.JobPostingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job posting not found")
		}
		return nil, err
	}

	created, err := u.appRepo.CreateWithCandidate(ctx, app, profileID)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("application submitted",
		"application_id", created.ID, "job_id", app.JobPostingID, "user_id", actor.ID)
	return created, nil
}

func (u *applicationUsecase) ListMine(ctx context.Context, skip, limit int) ([]domain.JobApplication, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}
	return u.appRepo.ListByCandidate(ctx, profileID, skip, limit)
}

// ownedPosting loads a posting and verifies the recruiter may review its
// applications.
func (u *applicationUsecase) ownedPosting(ctx context.Context, jobPostingID int64) (*domain.JobPosting, error) {
	actor, profileID, err := requireRecruiterProfile(ctx)
	if err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, jobPostingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job posting not found")
		}
		return nil, err
	}
	if job.RecruiterProfileID != profileID && !actor.IsSuperuser {
		return nil, apperror.Forbidden("Not authorized to review applications for this job posting")
	}
	return job, nil
}

func (u *applicationUsecase) ListForPosting(ctx context.Context, jobPostingID int64, skip, limit int) ([]domain.JobApplication, error) {
	if _, err := u.ownedPosting(ctx, jobPostingID); err != nil {
		return nil, err
	}
	return u.appRepo.ListByJobPosting(ctx, jobPostingID, skip, limit)
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.JobApplication, error) {
	if _, _, err := requireRecruiterProfile(ctx); err != nil {
		return nil, err
	}

	switch status {
	case domain.ApplicationPending, domain.ApplicationReviewed, domain.ApplicationInterviewing,
		domain.ApplicationOffered, domain.ApplicationRejected, domain.ApplicationWithdrawn:
	default:
		return nil, apperror.BadRequest("Invalid application status")
	}

	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, err
	}
	if _, err := u.ownedPosting(ctx, app.JobPostingID); err != nil {
		return nil, err
	}

	updated, err := u.appRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("application status updated",
		"application_id", id, "status", status)
	return updated, nil
}
