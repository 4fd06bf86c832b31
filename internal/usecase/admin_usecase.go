package usecase

import (
	"context"
	"errors"

	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"
	"ai-match-connect/pkg/auth"
	"ai-match-connect/pkg/logger"
)

type adminUsecase struct {
	userRepo      domain.UserRepository
	recruiterRepo domain.RecruiterProfileRepository
}

func NewAdminUsecase(userRepo domain.UserRepository, recruiterRepo domain.RecruiterProfileRepository) domain.AdminUsecase {
	return &adminUsecase{
		userRepo:      userRepo,
		recruiterRepo: recruiterRepo,
	}
}

func (u *adminUsecase) ListUsers(ctx context.Context, skip, limit int) ([]domain.User, error) {
	if _, err := requireSuperuser(ctx); err != nil {
		return nil, err
	}
	return u.userRepo.List(ctx, skip, limit)
}

func (u *adminUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if _, err := requireSuperuser(ctx); err != nil {
		return nil, err
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *adminUsecase) UpdateUser(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	actor, err := requireSuperuser(ctx)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	// Admins cannot lock themselves out of the admin surface.
	if id == actor.ID {
		if update.IsActive != nil && !*update.IsActive {
			return nil, apperror.Forbidden("Admins cannot deactivate their own account")
		}
		if update.IsSuperuser != nil && !*update.IsSuperuser {
			return nil, apperror.Forbidden("Admins cannot revoke their own privileges")
		}
	}
	// Nor demote each other; role changes for admins go through the database.
	if user.Role == domain.RoleAdmin && id != actor.ID && update.Role != nil && *update.Role != domain.RoleAdmin {
		return nil, apperror.Forbidden("Cannot change another admin's role")
	}

	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		hashed, err := auth.HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashed
	}
	if update.FirstName.Present {
		user.FirstName = update.FirstName.Value
	}
	if update.LastName.Present {
		user.LastName = update.LastName.Value
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}
	if update.IsSuperuser != nil {
		user.IsSuperuser = *update.IsSuperuser
	}
	if update.Role != nil {
		user.Role = *update.Role
	}

	updated, err := u.userRepo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("user updated by admin", "user_id", id, "admin_id", actor.ID)
	return updated, nil
}

func (u *adminUsecase) DeleteUser(ctx context.Context, id int64) (*domain.User, error) {
	actor, err := requireSuperuser(ctx)
	if err != nil {
		return nil, err
	}
	if id == actor.ID {
		return nil, apperror.Forbidden("Admins cannot delete their own account")
	}

	deleted, err := u.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	logger.Log.Info("user deleted by admin", "user_id", id, "admin_id", actor.ID)
	return deleted, nil
}

func (u *adminUsecase) ListRecruiterProfiles(ctx context.Context, skip, limit int) ([]domain.RecruiterProfile, error) {
	if _, err := requireSuperuser(ctx); err != nil {
		return nil, err
	}
	return u.recruiterRepo.List(ctx, skip, limit)
}

func (u *adminUsecase) GetRecruiterProfile(ctx context.Context, id int64) (*domain.RecruiterProfile, error) {
	if _, err := requireSuperuser(ctx); err != nil {
		return nil, err
	}
	profile, err := u.recruiterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recruiter profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (u *adminUsecase) UpdateRecruiterProfile(ctx context.Context, id int64, update domain.RecruiterProfileUpdate) (*domain.RecruiterProfile, error) {
	if _, err := requireSuperuser(ctx); err != nil {
		return nil, err
	}

	profile, err := u.recruiterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recruiter profile not found")
		}
		return nil, err
	}
	applyRecruiterUpdate(profile, update)

	return u.recruiterRepo.Update(ctx, profile)
}

func (u *adminUsecase) DeleteRecruiterProfile(ctx context.Context, id int64) (*domain.RecruiterProfile, error) {
	actor, err := requireSuperuser(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := u.recruiterRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recruiter profile not found")
		}
		return nil, err
	}
	logger.Log.Info("recruiter profile deleted by admin", "profile_id", id, "admin_id", actor.ID)
	return deleted, nil
}
