package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dateLayout = "2006-01-02"

func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}

func fmtDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

const candidateProfileColumns = `id, user_id, bio, phone_number, location, linkedin_profile_url, portfolio_url, resume_url, resume_text, created_at, updated_at`

type candidateProfileRepo struct {
	db *pgxpool.Pool
}

func NewCandidateProfileRepository(db *pgxpool.Pool) domain.CandidateProfileRepository {
	return &candidateProfileRepo{db: db}
}

func scanCandidateProfile(row pgx.Row) (*domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Bio, &p.PhoneNumber, &p.Location, &p.LinkedinProfileURL,
		&p.PortfolioURL, &p.ResumeURL, &p.ResumeText, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// loadCandidateProfileByUserID fetches the profile with all children, or nil
// when the user has none. Shared with the user repository's hydration.
func loadCandidateProfileByUserID(ctx context.Context, db *pgxpool.Pool, userID int64) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateProfileColumns + ` FROM candidate_profiles WHERE user_id = $1`
	p, err := scanCandidateProfile(db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := loadCandidateChildren(ctx, db, p); err != nil {
		return nil, err
	}
	return p, nil
}

func loadCandidateChildren(ctx context.Context, db *pgxpool.Pool, p *domain.CandidateProfile) error {
	var err error
	if p.Experiences, err = fetchExperiences(ctx, db, p.ID, 0, -1); err != nil {
		return err
	}
	if p.Educations, err = fetchEducations(ctx, db, p.ID, 0, -1); err != nil {
		return err
	}
	if p.Skills, err = fetchCandidateSkills(ctx, db, p.ID, 0, -1); err != nil {
		return err
	}
	return nil
}

func (r *candidateProfileRepo) CreateWithOwner(ctx context.Context, profile *domain.CandidateProfile, userID int64) (*domain.CandidateProfile, error) {
	query := `INSERT INTO candidate_profiles (user_id, bio, phone_number, location, linkedin_profile_url, portfolio_url, resume_url, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW()) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		userID, profile.Bio, profile.PhoneNumber, profile.Location,
		profile.LinkedinProfileURL, profile.PortfolioURL, profile.ResumeURL,
	).Scan(&profile.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.Conflict("Candidate profile already exists for this user")
		}
		return nil, err
	}

	created, err := r.GetByID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return created, nil
}

func (r *candidateProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	return loadCandidateProfileByUserID(ctx, r.db, userID)
}

func (r *candidateProfileRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateProfileColumns + ` FROM candidate_profiles WHERE id = $1`
	p, err := scanCandidateProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := loadCandidateChildren(ctx, r.db, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *candidateProfileRepo) Update(ctx context.Context, profile *domain.CandidateProfile) (*domain.CandidateProfile, error) {
	query := `UPDATE candidate_profiles SET
		bio = $2,
		phone_number = $3,
		location = $4,
		linkedin_profile_url = $5,
		portfolio_url = $6,
		resume_url = $7,
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.ID, profile.Bio, profile.PhoneNumber, profile.Location,
		profile.LinkedinProfileURL, profile.PortfolioURL, profile.ResumeURL,
	)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	updated, err := r.GetByID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return updated, nil
}

func (r *candidateProfileRepo) Delete(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	snapshot, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(ctx, `DELETE FROM candidate_profiles WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return snapshot, nil
}

func (r *candidateProfileRepo) SetResumeText(ctx context.Context, id int64, text string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles SET resume_text = $2, updated_at = NOW() WHERE id = $1`, id, text)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
