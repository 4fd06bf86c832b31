package usecase

import (
	"context"
	"errors"

	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"
	"ai-match-connect/pkg/logger"
)

type jobUsecase struct {
	jobRepo domain.JobPostingRepository
}

func NewJobUsecase(jobRepo domain.JobPostingRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) Create(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error) {
	_, profileID, err := requireRecruiterProfile(ctx)
	if err != nil {
		return nil, err
	}
	job.RecruiterProfileID = profileID

	created, err := u.jobRepo.Create(ctx, job)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("job posting created", "job_id", created.ID, "recruiter_profile_id", profileID)
	return created, nil
}

func (u *jobUsecase) Get(ctx context.Context, id int64) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job posting not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) List(ctx context.Context, skip, limit int) ([]domain.JobPosting, error) {
	return u.jobRepo.List(ctx, skip, limit)
}

func (u *jobUsecase) ListMine(ctx context.Context, skip, limit int) ([]domain.JobPosting, error) {
	_, profileID, err := requireRecruiterProfile(ctx)
	if err != nil {
		return nil, err
	}
	return u.jobRepo.ListByRecruiter(ctx, profileID, skip, limit)
}

// ownPosting loads a posting and verifies the actor may mutate it. A
// posting owned by another recruiter is forbidden, not hidden; listing is
// public anyway.
func (u *jobUsecase) ownPosting(ctx context.Context, id int64) (*domain.JobPosting, error) {
	actor, profileID, err := requireRecruiterProfile(ctx)
	if err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job posting not found")
		}
		return nil, err
	}
	if job.RecruiterProfileID != profileID && !actor.IsSuperuser {
		return nil, apperror.Forbidden("Not authorized to modify this job posting")
	}
	return job, nil
}

func (u *jobUsecase) Update(ctx context.Context, id int64, update domain.JobPostingUpdate) (*domain.JobPosting, error) {
	job, err := u.ownPosting(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		job.Title = *update.Title
	}
	if update.Location != nil {
		job.Location = *update.Location
	}
	if update.Type != nil {
		job.Type = *update.Type
	}
	if update.ExperienceLevel != nil {
		job.ExperienceLevel = *update.ExperienceLevel
	}
	if update.SalaryRange.Present {
		job.SalaryRange = update.SalaryRange.Value
	}
	if update.Description != nil {
		job.Description = *update.Description
	}
	// An absent skills key leaves the stored list alone; a present key,
	// including null or [], replaces it.
	if update.Skills.Present {
		job.Skills = update.Skills.Value
	}

	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) Delete(ctx context.Context, id int64) (*domain.JobPosting, error) {
	job, err := u.ownPosting(ctx, id)
	if err != nil {
		return nil, err
	}

	deleted, err := u.jobRepo.Delete(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("job posting deleted", "job_id", job.ID)
	return deleted, nil
}
