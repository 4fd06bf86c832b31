package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"ai-match-connect/internal/domain"
	"ai-match-connect/internal/usecase"
	"ai-match-connect/pkg/apperror"
	"ai-match-connect/pkg/matchclient"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories

type MockCandidateProfileRepo struct {
	mock.Mock
}

func (m *MockCandidateProfileRepo) CreateWithOwner(ctx context.Context, profile *domain.CandidateProfile, userID int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, profile, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateProfileRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateProfileRepo) Update(ctx context.Context, profile *domain.CandidateProfile) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateProfileRepo) Delete(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateProfileRepo) SetResumeText(ctx context.Context, id int64, text string) error {
	return m.Called(ctx, id, text).Error(0)
}

type MockJobPostingRepo struct {
	mock.Mock
}

func (m *MockJobPostingRepo) Create(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobPostingRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobPostingRepo) List(ctx context.Context, skip, limit int) ([]domain.JobPosting, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobPostingRepo) ListByRecruiter(ctx context.Context, recruiterProfileID int64, skip, limit int) ([]domain.JobPosting, error) {
	args := m.Called(ctx, recruiterProfileID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobPostingRepo) Update(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobPostingRepo) Delete(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobPostingRepo) CountByRecruiter(ctx context.Context, recruiterProfileID int64) (int64, error) {
	args := m.Called(ctx, recruiterProfileID)
	return args.Get(0).(int64), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) CreateWithCandidate(ctx context.Context, app *domain.JobApplication, candidateProfileID int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, app, candidateProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) ListByCandidate(ctx context.Context, candidateProfileID int64, skip, limit int) ([]domain.JobApplication, error) {
	args := m.Called(ctx, candidateProfileID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) ListByJobPosting(ctx context.Context, jobPostingID int64, skip, limit int) ([]domain.JobApplication, error) {
	args := m.Called(ctx, jobPostingID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.JobApplication, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) CountByRecruiter(ctx context.Context, recruiterProfileID int64) (int64, error) {
	args := m.Called(ctx, recruiterProfileID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Delete(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockMatcher struct {
	mock.Mock
}

func (m *MockMatcher) Screen(ctx context.Context, req domain.MatchRequest) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// Test helpers

func ctxWithActor(actor *domain.Actor) context.Context {
	return context.WithValue(context.Background(), domain.KeyActor, actor)
}

func ptr[T any](v T) *T { return &v }

func candidateActor(id, profileID int64) *domain.Actor {
	return &domain.Actor{
		ID:                 id,
		Email:              "cand@example.com",
		Role:               domain.RoleCandidate,
		IsActive:           true,
		CandidateProfileID: &profileID,
	}
}

func recruiterActor(id, profileID int64) *domain.Actor {
	return &domain.Actor{
		ID:                 id,
		Email:              "rec@example.com",
		Role:               domain.RoleRecruiter,
		IsActive:           true,
		RecruiterProfileID: &profileID,
	}
}

func adminActor(id int64) *domain.Actor {
	return &domain.Actor{
		ID:          id,
		Email:       "admin@example.com",
		Role:        domain.RoleAdmin,
		IsActive:    true,
		IsSuperuser: true,
	}
}

func assertCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestCandidateProfileCreation(t *testing.T) {
	t.Run("Should reject a second profile for the same user", func(t *testing.T) {
		repo := new(MockCandidateProfileRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, nil, validator.New())

		repo.On("GetByUserID", mock.Anything, int64(1)).Return(&domain.CandidateProfile{ID: 5, UserID: 1}, nil)

		ctx := ctxWithActor(candidateActor(1, 5))
		_, err := uc.CreateProfile(ctx, &domain.CandidateProfile{})
		assertCode(t, err, 409)
		repo.AssertNotCalled(t, "CreateWithOwner", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject recruiters", func(t *testing.T) {
		repo := new(MockCandidateProfileRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, nil, validator.New())

		ctx := ctxWithActor(recruiterActor(2, 9))
		_, err := uc.CreateProfile(ctx, &domain.CandidateProfile{})
		assertCode(t, err, 403)
	})

	t.Run("Should fail safe without authentication", func(t *testing.T) {
		repo := new(MockCandidateProfileRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, nil, validator.New())

		_, err := uc.CreateProfile(context.Background(), &domain.CandidateProfile{})
		assertCode(t, err, 401)
	})
}

func TestEducationValidation(t *testing.T) {
	uc := usecase.NewCandidateUsecase(nil, nil, nil, nil, validator.New())
	ctx := ctxWithActor(candidateActor(1, 5))

	_, err := uc.AddEducation(ctx, &domain.Education{
		InstitutionName: "MIT",
		StartDate:       "not-a-date",
	})
	assertCode(t, err, 400)
}

func TestJobPostingOwnership(t *testing.T) {
	job := &domain.JobPosting{ID: 10, RecruiterProfileID: 7, Title: "Go Engineer", Skills: []string{"Go"}}

	t.Run("Should forbid mutating another recruiter's posting", func(t *testing.T) {
		repo := new(MockJobPostingRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("GetByID", mock.Anything, int64(10)).Return(job, nil)

		ctx := ctxWithActor(recruiterActor(2, 99))
		_, err := uc.Update(ctx, 10, domain.JobPostingUpdate{Title: ptr("Hijacked")})
		assertCode(t, err, 403)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should report missing postings as not found", func(t *testing.T) {
		repo := new(MockJobPostingRepo)
		uc := usecase.NewJobUsecase(repo)

		repo.On("GetByID", mock.Anything, int64(10)).Return(nil, domain.ErrNotFound)

		ctx := ctxWithActor(recruiterActor(2, 99))
		_, err := uc.Delete(ctx, 10)
		assertCode(t, err, 404)
	})

	t.Run("Owner update leaves skills alone when the key is absent", func(t *testing.T) {
		repo := new(MockJobPostingRepo)
		uc := usecase.NewJobUsecase(repo)

		owned := *job
		repo.On("GetByID", mock.Anything, int64(10)).Return(&owned, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(j *domain.JobPosting) bool {
			return j.Title == "Staff Go Engineer" && len(j.Skills) == 1 && j.Skills[0] == "Go"
		})).Return(&owned, nil)

		ctx := ctxWithActor(recruiterActor(2, 7))
		_, err := uc.Update(ctx, 10, domain.JobPostingUpdate{Title: ptr("Staff Go Engineer")})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Present null skills key clears the list", func(t *testing.T) {
		repo := new(MockJobPostingRepo)
		uc := usecase.NewJobUsecase(repo)

		owned := *job
		repo.On("GetByID", mock.Anything, int64(10)).Return(&owned, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(j *domain.JobPosting) bool {
			return len(j.Skills) == 0
		})).Return(&owned, nil)

		ctx := ctxWithActor(recruiterActor(2, 7))
		_, err := uc.Update(ctx, 10, domain.JobPostingUpdate{Skills: domain.OptionalStrings{Present: true}})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestApplicationSubmission(t *testing.T) {
	t.Run("Should stamp the candidate profile and keep the applicant snapshot", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostingRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.JobPosting{ID: 3}, nil)
		appRepo.On("CreateWithCandidate", mock.Anything, mock.MatchedBy(func(a *domain.JobApplication) bool {
			return a.FullName == "Dina Putri" &&
				a.Email == "dina@example.com" &&
				a.CoverLetter == "I build Go services." &&
				a.ExpectedSalary != nil && *a.ExpectedSalary == "90k" &&
				a.YearsOfExperience != nil && *a.YearsOfExperience == "6"
		}), int64(5)).
			Return(&domain.JobApplication{ID: 1, JobPostingID: 3, CandidateProfileID: 5}, nil)

		ctx := ctxWithActor(candidateActor(1, 5))
		created, err := uc.Submit(ctx, &domain.JobApplication{
			JobPostingID:      3,
			FullName:          "Dina Putri",
			Email:             "dina@example.com",
			CoverLetter:       "I build Go services.",
			YearsOfExperience: ptr("6"),
			ExpectedSalary:    ptr("90k"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), created.CandidateProfileID)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should report a missing job as not found", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostingRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(3)).Return(nil, domain.ErrNotFound)

		ctx := ctxWithActor(candidateActor(1, 5))
		_, err := uc.Submit(ctx, &domain.JobApplication{JobPostingID: 3, FullName: "A", Email: "a@x.com", CoverLetter: "hi"})
		assertCode(t, err, 404)
	})
}

func TestApplicationReview(t *testing.T) {
	job := &domain.JobPosting{ID: 3, RecruiterProfileID: 7}

	t.Run("Foreign recruiters cannot list a posting's applications", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostingRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(3)).Return(job, nil)

		ctx := ctxWithActor(recruiterActor(2, 99))
		_, err := uc.ListForPosting(ctx, 3, 0, 100)
		assertCode(t, err, 403)
		appRepo.AssertNotCalled(t, "ListByJobPosting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Owner lists applications newest first", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostingRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(3)).Return(job, nil)
		appRepo.On("ListByJobPosting", mock.Anything, int64(3), 0, 100).
			Return([]domain.JobApplication{{ID: 11, JobPostingID: 3}}, nil)

		ctx := ctxWithActor(recruiterActor(2, 7))
		apps, err := uc.ListForPosting(ctx, 3, 0, 100)
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("Owner moves an application through the pipeline", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostingRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		appRepo.On("GetByID", mock.Anything, int64(11)).
			Return(&domain.JobApplication{ID: 11, JobPostingID: 3}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(3)).Return(job, nil)
		appRepo.On("UpdateStatus", mock.Anything, int64(11), domain.ApplicationReviewed).
			Return(&domain.JobApplication{ID: 11, JobPostingID: 3, Status: domain.ApplicationReviewed}, nil)

		ctx := ctxWithActor(recruiterActor(2, 7))
		updated, err := uc.UpdateStatus(ctx, 11, domain.ApplicationReviewed)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationReviewed, updated.Status)
	})

	t.Run("Cannot move an application on another recruiter's posting", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostingRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		appRepo.On("GetByID", mock.Anything, int64(11)).
			Return(&domain.JobApplication{ID: 11, JobPostingID: 3}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(3)).Return(job, nil)

		ctx := ctxWithActor(recruiterActor(2, 99))
		_, err := uc.UpdateStatus(ctx, 11, domain.ApplicationReviewed)
		assertCode(t, err, 403)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing application is not found", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostingRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		appRepo.On("GetByID", mock.Anything, int64(11)).Return(nil, domain.ErrNotFound)

		ctx := ctxWithActor(recruiterActor(2, 7))
		_, err := uc.UpdateStatus(ctx, 11, domain.ApplicationReviewed)
		assertCode(t, err, 404)
	})

	t.Run("Unknown status values are rejected", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostingRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo)

		ctx := ctxWithActor(recruiterActor(2, 7))
		_, err := uc.UpdateStatus(ctx, 11, domain.ApplicationStatus("ghosted"))
		assertCode(t, err, 400)
		appRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestProfileFieldClearing(t *testing.T) {
	t.Run("Explicit null clears a candidate profile field", func(t *testing.T) {
		repo := new(MockCandidateProfileRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, nil, validator.New())

		current := &domain.CandidateProfile{ID: 5, UserID: 1, Bio: ptr("old bio"), PhoneNumber: ptr("555")}
		repo.On("GetByID", mock.Anything, int64(5)).Return(current, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.CandidateProfile) bool {
			return p.Bio == nil &&
				p.PhoneNumber != nil && *p.PhoneNumber == "555" &&
				p.Location != nil && *p.Location == "Bandung"
		})).Return(current, nil)

		ctx := ctxWithActor(candidateActor(1, 5))
		_, err := uc.UpdateMyProfile(ctx, domain.CandidateProfileUpdate{
			Bio:      domain.Null[string](),
			Location: domain.Set("Bandung"),
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Explicit null clears a user's first name", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(userRepo, nil)

		userRepo.On("GetByID", mock.Anything, int64(2)).
			Return(&domain.User{ID: 2, Role: domain.RoleCandidate, IsActive: true, FirstName: ptr("Old")}, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.FirstName == nil
		})).Return(&domain.User{ID: 2}, nil)

		ctx := ctxWithActor(adminActor(1))
		_, err := uc.UpdateUser(ctx, 2, domain.UserUpdate{FirstName: domain.Null[string]()})
		require.NoError(t, err)
		userRepo.AssertExpectations(t)
	})
}

func TestAdminSelfProtection(t *testing.T) {
	admin := adminActor(1)

	t.Run("Cannot deactivate own account", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(userRepo, nil)

		userRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.User{ID: 1, Role: domain.RoleAdmin, IsActive: true, IsSuperuser: true}, nil)

		ctx := ctxWithActor(admin)
		_, err := uc.UpdateUser(ctx, 1, domain.UserUpdate{IsActive: ptr(false)})
		assertCode(t, err, 403)
	})

	t.Run("Cannot revoke own superuser flag", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(userRepo, nil)

		userRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.User{ID: 1, Role: domain.RoleAdmin, IsActive: true, IsSuperuser: true}, nil)

		ctx := ctxWithActor(admin)
		_, err := uc.UpdateUser(ctx, 1, domain.UserUpdate{IsSuperuser: ptr(false)})
		assertCode(t, err, 403)
	})

	t.Run("Cannot delete own account", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(userRepo, nil)

		ctx := ctxWithActor(admin)
		_, err := uc.DeleteUser(ctx, 1)
		assertCode(t, err, 403)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Cannot demote another admin", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(userRepo, nil)

		userRepo.On("GetByID", mock.Anything, int64(2)).
			Return(&domain.User{ID: 2, Role: domain.RoleAdmin, IsActive: true, IsSuperuser: true}, nil)

		ctx := ctxWithActor(admin)
		role := domain.RoleCandidate
		_, err := uc.UpdateUser(ctx, 2, domain.UserUpdate{Role: &role})
		assertCode(t, err, 403)
	})

	t.Run("Non-admins are rejected outright", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(userRepo, nil)

		ctx := ctxWithActor(recruiterActor(3, 8))
		_, err := uc.ListUsers(ctx, 0, 100)
		assertCode(t, err, 403)
	})
}

func TestAIScreening(t *testing.T) {
	job := &domain.JobPosting{ID: 7, RecruiterProfileID: 4, Description: "Build Go services"}

	t.Run("Skips candidates without resume text and forwards the rest", func(t *testing.T) {
		jobRepo := new(MockJobPostingRepo)
		candRepo := new(MockCandidateProfileRepo)
		matcher := new(MockMatcher)
		uc := usecase.NewMatchUsecase(jobRepo, candRepo, matcher)

		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(job, nil)
		candRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.CandidateProfile{ID: 1, ResumeText: ptr("golang resume")}, nil)
		candRepo.On("GetByID", mock.Anything, int64(2)).
			Return(&domain.CandidateProfile{ID: 2}, nil)

		matcher.On("Screen", mock.Anything, mock.MatchedBy(func(req domain.MatchRequest) bool {
			return req.JobID == "7" && len(req.Resumes) == 1 && req.Resumes[0].ID == "1"
		})).Return(json.RawMessage(`{"ranked":[]}`), nil)

		ctx := ctxWithActor(recruiterActor(2, 4))
		out, err := uc.Search(ctx, domain.AISearchInput{JobID: 7, CandidateIDs: []int64{1, 2}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"ranked":[]}`, string(out))
	})

	t.Run("Rejects a batch with no screenable resumes", func(t *testing.T) {
		jobRepo := new(MockJobPostingRepo)
		candRepo := new(MockCandidateProfileRepo)
		matcher := new(MockMatcher)
		uc := usecase.NewMatchUsecase(jobRepo, candRepo, matcher)

		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(job, nil)
		candRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.CandidateProfile{ID: 2}, nil)

		ctx := ctxWithActor(recruiterActor(2, 4))
		_, err := uc.Search(ctx, domain.AISearchInput{JobID: 7, CandidateIDs: []int64{2}})
		assertCode(t, err, 400)
		matcher.AssertNotCalled(t, "Screen", mock.Anything, mock.Anything)
	})

	t.Run("Maps engine outages to 503", func(t *testing.T) {
		jobRepo := new(MockJobPostingRepo)
		candRepo := new(MockCandidateProfileRepo)
		matcher := new(MockMatcher)
		uc := usecase.NewMatchUsecase(jobRepo, candRepo, matcher)

		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(job, nil)
		candRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.CandidateProfile{ID: 1, ResumeText: ptr("text")}, nil)
		matcher.On("Screen", mock.Anything, mock.Anything).Return(nil, matchclient.ErrUnavailable)

		ctx := ctxWithActor(recruiterActor(2, 4))
		_, err := uc.Search(ctx, domain.AISearchInput{JobID: 7, CandidateIDs: []int64{1}})
		assertCode(t, err, 503)
	})

	t.Run("Maps engine errors to 502", func(t *testing.T) {
		jobRepo := new(MockJobPostingRepo)
		candRepo := new(MockCandidateProfileRepo)
		matcher := new(MockMatcher)
		uc := usecase.NewMatchUsecase(jobRepo, candRepo, matcher)

		jobRepo.On("GetByID", mock.Anything, int64(7)).Return(job, nil)
		candRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.CandidateProfile{ID: 1, ResumeText: ptr("text")}, nil)
		matcher.On("Screen", mock.Anything, mock.Anything).Return(nil, matchclient.ErrBadStatus)

		ctx := ctxWithActor(recruiterActor(2, 4))
		_, err := uc.Search(ctx, domain.AISearchInput{JobID: 7, CandidateIDs: []int64{1}})
		assertCode(t, err, 502)
	})
}

func TestAuthRegistration(t *testing.T) {
	t.Run("Should refuse duplicate emails", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, nil)

		userRepo.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "taken@example.com",
			Password: "pw",
			Role:     domain.RoleCandidate,
		})
		assertCode(t, err, 409)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should refuse the admin role at registration", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, nil)

		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Email:    "new@example.com",
			Password: "pw",
			Role:     domain.RoleAdmin,
		})
		assertCode(t, err, 400)
	})
}
