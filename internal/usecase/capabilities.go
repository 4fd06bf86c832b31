package usecase

import (
	"context"

	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"
)

// activeActor resolves the authenticated actor for the request and rejects
// inactive accounts. Every usecase entry point that needs an identity goes
// through here.
func activeActor(ctx context.Context) (*domain.Actor, error) {
	actor := domain.ActorFromContext(ctx)
	if actor == nil {
		return nil, apperror.Unauthorized("Not authenticated")
	}
	if !actor.IsActive {
		return nil, apperror.Forbidden("Inactive user")
	}
	return actor, nil
}

func requireSuperuser(ctx context.Context) (*domain.Actor, error) {
	actor, err := activeActor(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsSuperuser {
		return nil, apperror.Forbidden("The user doesn't have enough privileges")
	}
	return actor, nil
}

// requireCandidateProfile returns the actor's candidate profile id. Having
// the candidate role is not enough; the profile must actually exist.
func requireCandidateProfile(ctx context.Context) (*domain.Actor, int64, error) {
	actor, err := activeActor(ctx)
	if err != nil {
		return nil, 0, err
	}
	if actor.Role != domain.RoleCandidate {
		return nil, 0, apperror.Forbidden("Only candidates can perform this action")
	}
	if actor.CandidateProfileID == nil {
		return nil, 0, apperror.NotFound("Candidate profile not found")
	}
	return actor, *actor.CandidateProfileID, nil
}

func requireRecruiterProfile(ctx context.Context) (*domain.Actor, int64, error) {
	actor, err := activeActor(ctx)
	if err != nil {
		return nil, 0, err
	}
	if actor.Role != domain.RoleRecruiter {
		return nil, 0, apperror.Forbidden("Only recruiters can perform this action")
	}
	if actor.RecruiterProfileID == nil {
		return nil, 0, apperror.NotFound("Recruiter profile not found")
	}
	return actor, *actor.RecruiterProfileID, nil
}
