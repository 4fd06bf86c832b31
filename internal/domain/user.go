package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")

	// ErrReadBack means a write committed but the mandatory hydrating
	// re-read failed. Always fatal, never retried.
	ErrReadBack = errors.New("read-back after write failed")
)

type UserRole string

const (
	RoleCandidate UserRole = "candidate"
	RoleRecruiter UserRole = "recruiter"
	RoleAdmin     UserRole = "admin"
)

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	FirstName      *string   `json:"first_name"`
	LastName       *string   `json:"last_name"`
	IsActive       bool      `json:"is_active"`
	IsSuperuser    bool      `json:"is_superuser"`
	Role           UserRole  `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Eagerly loaded relationships
	CandidateProfile *CandidateProfile `json:"candidate_profile,omitempty"`
	RecruiterProfile *RecruiterProfile `json:"recruiter_profile,omitempty"`
}

// UserUpdate carries a partial update. Absent fields are left untouched;
// the nullable name fields use Optional so an explicit null clears them.
type UserUpdate struct {
	Email       *string          `json:"email"`
	Password    *string          `json:"password"`
	FirstName   Optional[string] `json:"first_name"`
	LastName    Optional[string] `json:"last_name"`
	IsActive    *bool            `json:"is_active"`
	IsSuperuser *bool            `json:"is_superuser"`
	Role        *UserRole        `json:"role"`
}

// Actor is the user resolved from a verified bearer token for the current
// request, plus the profile ids needed for ownership checks.
type Actor struct {
	ID                 int64
	Email              string
	Role               UserRole
	IsActive           bool
	IsSuperuser        bool
	CandidateProfileID *int64
	RecruiterProfileID *int64
}

// ActorFromContext returns the resolved actor, or nil when the request never
// passed authentication. Callers must treat nil as unauthenticated.
func ActorFromContext(ctx context.Context) *Actor {
	actor, _ := ctx.Value(KeyActor).(*Actor)
	return actor
}

type UserRepository interface {
	// Create persists the user and returns it re-read with the full
	// relationship graph attached.
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, skip, limit int) ([]User, error)
	Update(ctx context.Context, user *User) (*User, error)
	// Delete removes the user (cascading its profiles) and returns the
	// pre-delete snapshot, or ErrNotFound when the id does not exist.
	Delete(ctx context.Context, id int64) (*User, error)
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
	Role      UserRole
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}

type AdminUsecase interface {
	ListUsers(ctx context.Context, skip, limit int) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, id int64, update UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id int64) (*User, error)
	ListRecruiterProfiles(ctx context.Context, skip, limit int) ([]RecruiterProfile, error)
	GetRecruiterProfile(ctx context.Context, id int64) (*RecruiterProfile, error)
	UpdateRecruiterProfile(ctx context.Context, id int64, update RecruiterProfileUpdate) (*RecruiterProfile, error)
	DeleteRecruiterProfile(ctx context.Context, id int64) (*RecruiterProfile, error)
}
