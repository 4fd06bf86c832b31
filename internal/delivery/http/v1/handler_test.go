package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"ai-match-connect/internal/delivery/http/middleware"
	v1 "ai-match-connect/internal/delivery/http/v1"
	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"
	"ai-match-connect/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// The mocks embed the domain interface so only the methods a scenario
// actually routes through need an implementation.

type mockAuthUC struct {
	domain.AuthUsecase
	mock.Mock
}

func (m *mockAuthUC) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockAuthUC) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

type mockCandidateUC struct {
	domain.CandidateUsecase
	mock.Mock
}

func (m *mockCandidateUC) CreateProfile(ctx context.Context, profile *domain.CandidateProfile) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *mockCandidateUC) GetMyProfile(ctx context.Context) (*domain.CandidateProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

type mockUserRepoHTTP struct {
	domain.UserRepository
	mock.Mock
}

func (m *mockUserRepoHTTP) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type testServer struct {
	engine   *gin.Engine
	authUC   *mockAuthUC
	candUC   *mockCandidateUC
	userRepo *mockUserRepoHTTP
	tokens   *auth.TokenService
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)

	s := &testServer{
		authUC:   new(mockAuthUC),
		candUC:   new(mockCandidateUC),
		userRepo: new(mockUserRepoHTTP),
		tokens:   auth.NewTokenService("handler-test-secret", 30, 60),
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.ErrorHandler())

	public := engine.Group("/v1")
	protected := public.Group("")
	protected.Use(middleware.AuthMiddleware(s.tokens, s.userRepo))

	v1.NewAuthHandler(public, protected, s.authUC)
	v1.NewCandidateHandler(protected, s.candUC)

	s.engine = engine
	return s
}

func (s *testServer) do(method, path string, body []byte, contentType, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	s := newTestServer()

	userID := int64(7)
	profileID := int64(3)
	user := &domain.User{
		ID:       userID,
		Email:    "dina@example.com",
		IsActive: true,
		Role:     domain.RoleCandidate,
	}

	// 1. Register
	s.authUC.On("Register", mock.Anything, mock.MatchedBy(func(in domain.RegisterInput) bool {
		return in.Email == "dina@example.com" && in.Role == domain.RoleCandidate
	})).Return(user, nil).Once()

	body, _ := json.Marshal(gin.H{
		"email":    "dina@example.com",
		"password": "supersecret",
		"role":     "candidate",
	})
	rec := s.do(http.MethodPost, "/v1/auth/register", body, "application/json", "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)

	// 2. Login with OAuth2-style form fields
	accessToken, err := s.tokens.CreateAccessToken(userID, string(domain.RoleCandidate), s.tokens.AccessTTL())
	require.NoError(t, err)
	s.authUC.On("Login", mock.Anything, "dina@example.com", "supersecret").
		Return(&domain.TokenPair{AccessToken: accessToken, TokenType: "bearer"}, nil).Once()

	form := url.Values{}
	form.Set("username", "dina@example.com")
	form.Set("password", "supersecret")
	rec = s.do(http.MethodPost, "/v1/auth/token", []byte(form.Encode()), "application/x-www-form-urlencoded", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var pair domain.TokenPair
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &pair))
	require.NotEmpty(t, pair.AccessToken)

	// 3. Fetch the profile with the issued token
	hydrated := *user
	hydrated.CandidateProfile = &domain.CandidateProfile{ID: profileID, UserID: userID}
	s.userRepo.On("GetByID", mock.Anything, userID).Return(&hydrated, nil)
	s.candUC.On("GetMyProfile", mock.Anything).
		Return(&domain.CandidateProfile{ID: profileID, UserID: userID}, nil).Once()

	rec = s.do(http.MethodGet, "/v1/candidate-profiles/me", nil, "", pair.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile domain.CandidateProfile
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &profile))
	assert.Equal(t, profileID, profile.ID)

	s.authUC.AssertExpectations(t)
	s.candUC.AssertExpectations(t)
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodGet, "/v1/candidate-profiles/me", nil, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/v1/candidate-profiles/me", nil, "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestRegisterRejectsInvalidPayload(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(gin.H{
		"email":    "not-an-email",
		"password": "short",
		"role":     "admin",
	})
	rec := s.do(http.MethodPost, "/v1/auth/register", body, "application/json", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	s.authUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestCreateProfileConflictMapsTo409(t *testing.T) {
	s := newTestServer()

	userID := int64(9)
	token, err := s.tokens.CreateAccessToken(userID, string(domain.RoleCandidate), s.tokens.AccessTTL())
	require.NoError(t, err)

	s.userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{
		ID:       userID,
		Email:    "dup@example.com",
		IsActive: true,
		Role:     domain.RoleCandidate,
	}, nil)
	s.candUC.On("CreateProfile", mock.Anything, mock.Anything).
		Return(nil, apperror.Conflict("Candidate profile already exists for this user")).Once()

	body, _ := json.Marshal(gin.H{"bio": "second attempt"})
	rec := s.do(http.MethodPost, "/v1/candidate-profiles", body, "application/json", token)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "already exists"))
}
