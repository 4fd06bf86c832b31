package usecase

import (
	"context"

	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"
	"ai-match-connect/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	profileRepo domain.CandidateProfileRepository
	eduRepo     domain.EducationRepository
	expRepo     domain.ExperienceRepository
	skillRepo   domain.CandidateSkillRepository
	validate    *validator.Validate
}

func NewCandidateUsecase(
	profileRepo domain.CandidateProfileRepository,
	eduRepo domain.EducationRepository,
	expRepo domain.ExperienceRepository,
	skillRepo domain.CandidateSkillRepository,
	validate *validator.Validate,
) domain.CandidateUsecase {
	return &candidateUsecase{
		profileRepo: profileRepo,
		eduRepo:     eduRepo,
		expRepo:     expRepo,
		skillRepo:   skillRepo,
		validate:    validate,
	}
}

func (u *candidateUsecase) CreateProfile(ctx context.Context, profile *domain.CandidateProfile) (*domain.CandidateProfile, error) {
	actor, err := activeActor(ctx)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleCandidate {
		return nil, apperror.Forbidden("Only candidates can perform this action")
	}

	existing, err := u.profileRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Candidate profile already exists for this user")
	}

	created, err := u.profileRepo.CreateWithOwner(ctx, profile, actor.ID)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("candidate profile created", "user_id", actor.ID, "profile_id", created.ID)
	return created, nil
}

func (u *candidateUsecase) GetMyProfile(ctx context.Context) (*domain.CandidateProfile, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}
	return u.profileRepo.GetByID(ctx, profileID)
}

func (u *candidateUsecase) UpdateMyProfile(ctx context.Context, update domain.CandidateProfileUpdate) (*domain.CandidateProfile, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	// A present key is applied as-is, so an explicit null clears the field.
	if update.Bio.Present {
		profile.Bio = update.Bio.Value
	}
	if update.PhoneNumber.Present {
		profile.PhoneNumber = update.PhoneNumber.Value
	}
	if update.Location.Present {
		profile.Location = update.Location.Value
	}
	if update.LinkedinProfileURL.Present {
		profile.LinkedinProfileURL = update.LinkedinProfileURL.Value
	}
	if update.PortfolioURL.Present {
		profile.PortfolioURL = update.PortfolioURL.Value
	}
	if update.ResumeURL.Present {
		profile.ResumeURL = update.ResumeURL.Value
	}

	return u.profileRepo.Update(ctx, profile)
}

func (u *candidateUsecase) DeleteMyProfile(ctx context.Context) (*domain.CandidateProfile, error) {
	actor, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}
	deleted, err := u.profileRepo.Delete(ctx, profileID)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("candidate profile deleted", "user_id", actor.ID, "profile_id", profileID)
	return deleted, nil
}

// ownEducation loads an education entry and verifies it belongs to the
// actor's profile. Entries owned by other candidates are reported as not
// found rather than forbidden.
func (u *candidateUsecase) ownEducation(ctx context.Context, id, profileID int64) (*domain.Education, error) {
	edu, err := u.eduRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if edu.CandidateProfileID != profileID {
		return nil, domain.ErrNotFound
	}
	return edu, nil
}

func (u *candidateUsecase) AddEducation(ctx context.Context, edu *domain.Education) (*domain.Education, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.validate.Struct(edu); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	edu.CandidateProfileID = profileID
	return u.eduRepo.Create(ctx, edu)
}

func (u *candidateUsecase) ListEducations(ctx context.Context, skip, limit int) ([]domain.Education, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}
	return u.eduRepo.ListByProfile(ctx, profileID, skip, limit)
}

func (u *candidateUsecase) UpdateEducation(ctx context.Context, id int64, update domain.EducationUpdate) (*domain.Education, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}

	edu, err := u.ownEducation(ctx, id, profileID)
	if err != nil {
		return nil, err
	}

	if update.InstitutionName != nil {
		edu.InstitutionName = *update.InstitutionName
	}
	if update.Degree.Present {
		edu.Degree = update.Degree.Value
	}
	if update.FieldOfStudy.Present {
		edu.FieldOfStudy = update.FieldOfStudy.Value
	}
	if update.StartDate != nil {
		edu.StartDate = *update.StartDate
	}
	if update.EndDate.Present {
		edu.EndDate = update.EndDate.Value
	}
	if update.Description.Present {
		edu.Description = update.Description.Value
	}
	if err := u.validate.Struct(edu); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	return u.eduRepo.Update(ctx, edu)
}

func (u *candidateUsecase) DeleteEducation(ctx context.Context, id int64) (*domain.Education, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := u.ownEducation(ctx, id, profileID); err != nil {
		return nil, err
	}
	return u.eduRepo.Delete(ctx, id)
}

func (u *candidateUsecase) ownExperience(ctx context.Context, id, profileID int64) (*domain.Experience, error) {
	exp, err := u.expRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exp.CandidateProfileID != profileID {
		return nil, domain.ErrNotFound
	}
	return exp, nil
}

func (u *candidateUsecase) AddExperience(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.validate.Struct(exp); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	exp.CandidateProfileID = profileID
	return u.expRepo.Create(ctx, exp)
}

func (u *candidateUsecase) ListExperiences(ctx context.Context, skip, limit int) ([]domain.Experience, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}
	return u.expRepo.ListByProfile(ctx, profileID, skip, limit)
}

func (u *candidateUsecase) UpdateExperience(ctx context.Context, id int64, update domain.ExperienceUpdate) (*domain.Experience, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}

	exp, err := u.ownExperience(ctx, id, profileID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		exp.Title = *update.Title
	}
	if update.CompanyName != nil {
		exp.CompanyName = *update.CompanyName
	}
	if update.Location.Present {
		exp.Location = update.Location.Value
	}
	if update.StartDate != nil {
		exp.StartDate = *update.StartDate
	}
	if update.EndDate.Present {
		exp.EndDate = update.EndDate.Value
	}
	if update.Description.Present {
		exp.Description = update.Description.Value
	}
	if err := u.validate.Struct(exp); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	return u.expRepo.Update(ctx, exp)
}

func (u *candidateUsecase) DeleteExperience(ctx context.Context, id int64) (*domain.Experience, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := u.ownExperience(ctx, id, profileID); err != nil {
		return nil, err
	}
	return u.expRepo.Delete(ctx, id)
}

func (u *candidateUsecase) ownSkill(ctx context.Context, id, profileID int64) (*domain.CandidateSkill, error) {
	skill, err := u.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill.CandidateProfileID != profileID {
		return nil, domain.ErrNotFound
	}
	return skill, nil
}

func (u *candidateUsecase) AddSkill(ctx context.Context, skill *domain.CandidateSkill) (*domain.CandidateSkill, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.validate.Struct(skill); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	skill.CandidateProfileID = profileID
	return u.skillRepo.Create(ctx, skill)
}

func (u *candidateUsecase) ListSkills(ctx context.Context, skip, limit int) ([]domain.CandidateSkill, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}
	return u.skillRepo.ListByProfile(ctx, profileID, skip, limit)
}

func (u *candidateUsecase) UpdateSkill(ctx context.Context, id int64, update domain.CandidateSkillUpdate) (*domain.CandidateSkill, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}

	skill, err := u.ownSkill(ctx, id, profileID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		skill.Name = *update.Name
	}
	if update.Proficiency.Present {
		skill.Proficiency = update.Proficiency.Value
	}
	if err := u.validate.Struct(skill); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	return u.skillRepo.Update(ctx, skill)
}

func (u *candidateUsecase) DeleteSkill(ctx context.Context, id int64) (*domain.CandidateSkill, error) {
	_, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := u.ownSkill(ctx, id, profileID); err != nil {
		return nil, err
	}
	return u.skillRepo.Delete(ctx, id)
}

func (u *candidateUsecase) SaveResumeText(ctx context.Context, text string) error {
	actor, profileID, err := requireCandidateProfile(ctx)
	if err != nil {
		return err
	}
	if err := u.profileRepo.SetResumeText(ctx, profileID, text); err != nil {
		return err
	}
	logger.Log.Info("resume text stored", "user_id", actor.ID, "profile_id", profileID, "chars", len(text))
	return nil
}
