package usecase

import (
	"context"

	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"
	"ai-match-connect/pkg/logger"
)

type recruiterUsecase struct {
	profileRepo domain.RecruiterProfileRepository
	jobRepo     domain.JobPostingRepository
	appRepo     domain.JobApplicationRepository
	userRepo    domain.UserRepository
}

func NewRecruiterUsecase(
	profileRepo domain.RecruiterProfileRepository,
	jobRepo domain.JobPostingRepository,
	appRepo domain.JobApplicationRepository,
	userRepo domain.UserRepository,
) domain.RecruiterUsecase {
	return &recruiterUsecase{
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
		appRepo:     appRepo,
		userRepo:    userRepo,
	}
}

func (u *recruiterUsecase) CreateProfile(ctx context.Context, profile *domain.RecruiterProfile) (*domain.RecruiterProfile, error) {
	actor, err := activeActor(ctx)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleRecruiter {
		return nil, apperror.Forbidden("Only recruiters can perform this action")
	}

	existing, err := u.profileRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Recruiter profile already exists for this user")
	}

	created, err := u.profileRepo.CreateWithOwner(ctx, profile, actor.ID)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("recruiter profile created", "user_id", actor.ID, "profile_id", created.ID)
	return created, nil
}

func (u *recruiterUsecase) GetMyProfile(ctx context.Context) (*domain.RecruiterProfile, error) {
	_, profileID, err := requireRecruiterProfile(ctx)
	if err != nil {
		return nil, err
	}
	return u.profileRepo.GetByID(ctx, profileID)
}

func (u *recruiterUsecase) UpdateMyProfile(ctx context.Context, update domain.RecruiterProfileUpdate) (*domain.RecruiterProfile, error) {
	_, profileID, err := requireRecruiterProfile(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	applyRecruiterUpdate(profile, update)

	return u.profileRepo.Update(ctx, profile)
}

// applyRecruiterUpdate folds the present fields of a partial update into the
// profile; a present null clears the nullable ones. Shared with the admin
// usecase.
func applyRecruiterUpdate(profile *domain.RecruiterProfile, update domain.RecruiterProfileUpdate) {
	if update.CompanyName != nil {
		profile.CompanyName = *update.CompanyName
	}
	if update.JobTitle.Present {
		profile.JobTitle = update.JobTitle.Value
	}
	if update.PhoneNumber.Present {
		profile.PhoneNumber = update.PhoneNumber.Value
	}
	if update.LinkedinProfileURL.Present {
		profile.LinkedinProfileURL = update.LinkedinProfileURL.Value
	}
	if update.WebsiteURL.Present {
		profile.WebsiteURL = update.WebsiteURL.Value
	}
	if update.Bio.Present {
		profile.Bio = update.Bio.Value
	}
	if update.Location.Present {
		profile.Location = update.Location.Value
	}
	if update.CompanySize.Present {
		profile.CompanySize = update.CompanySize.Value
	}
	if update.Industry.Present {
		profile.Industry = update.Industry.Value
	}
}

func (u *recruiterUsecase) DeleteMyProfile(ctx context.Context) (*domain.RecruiterProfile, error) {
	actor, profileID, err := requireRecruiterProfile(ctx)
	if err != nil {
		return nil, err
	}
	deleted, err := u.profileRepo.Delete(ctx, profileID)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("recruiter profile deleted", "user_id", actor.ID, "profile_id", profileID)
	return deleted, nil
}

func (u *recruiterUsecase) Dashboard(ctx context.Context) (*domain.RecruiterDashboard, error) {
	actor, profileID, err := requireRecruiterProfile(ctx)
	if err != nil {
		return nil, err
	}

	totalJobs, err := u.jobRepo.CountByRecruiter(ctx, profileID)
	if err != nil {
		return nil, err
	}
	totalApplicants, err := u.appRepo.CountByRecruiter(ctx, profileID)
	if err != nil {
		return nil, err
	}

	name := actor.Email
	if user, err := u.userRepo.GetByID(ctx, actor.ID); err == nil && user.FirstName != nil && *user.FirstName != "" {
		name = *user.FirstName
	}

	return &domain.RecruiterDashboard{
		UserName:        name,
		TotalActiveJobs: totalJobs,
		TotalApplicants: totalApplicants,
	}, nil
}
