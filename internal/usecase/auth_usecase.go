package usecase

import (
	"context"
	"errors"

	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"
	"ai-match-connect/pkg/auth"
	"ai-match-connect/pkg/logger"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenService
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenService) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if in.Role != domain.RoleCandidate && in.Role != domain.RoleRecruiter {
		return nil, apperror.BadRequest("Role must be candidate or recruiter")
	}

	if _, err := u.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, apperror.Conflict("User with this email already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:          in.Email,
		HashedPassword: hashed,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		IsActive:       true,
		Role:           in.Role,
	}

	created, err := u.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("user registered", "user_id", created.ID, "role", created.Role)
	return created, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Incorrect email or password")
		}
		return nil, err
	}
	if !auth.VerifyPassword(password, user.HashedPassword) {
		return nil, apperror.Unauthorized("Incorrect email or password")
	}
	if !user.IsActive {
		return nil, apperror.Forbidden("Inactive user")
	}

	return u.issuePair(user)
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := u.tokens.ParseToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid refresh token")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperror.Forbidden("Inactive user")
	}

	return u.issuePair(user)
}

func (u *authUsecase) issuePair(user *domain.User) (*domain.TokenPair, error) {
	access, err := u.tokens.CreateAccessToken(user.ID, string(user.Role), u.tokens.AccessTTL())
	if err != nil {
		return nil, err
	}
	refresh, err := u.tokens.CreateRefreshToken(user.ID, u.tokens.RefreshTTL())
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{
		AccessToken:  access,
		TokenType:    "bearer",
		RefreshToken: refresh,
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
