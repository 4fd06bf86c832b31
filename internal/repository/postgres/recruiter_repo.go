package postgres

import (
	"context"
	"errors"
	"fmt"

	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recruiterProfileColumns = `id, user_id, company_name, job_title, phone_number, linkedin_profile_url, website_url, bio, location, company_size, industry, created_at, updated_at`

type recruiterProfileRepo struct {
	db *pgxpool.Pool
}

func NewRecruiterProfileRepository(db *pgxpool.Pool) domain.RecruiterProfileRepository {
	return &recruiterProfileRepo{db: db}
}

func scanRecruiterProfile(row pgx.Row) (*domain.RecruiterProfile, error) {
	var p domain.RecruiterProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.JobTitle, &p.PhoneNumber,
		&p.LinkedinProfileURL, &p.WebsiteURL, &p.Bio, &p.Location,
		&p.CompanySize, &p.Industry, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// loadRecruiterProfileByUserID fetches the profile with its job postings, or
// nil when the user has none. Shared with the user repository's hydration.
func loadRecruiterProfileByUserID(ctx context.Context, db *pgxpool.Pool, userID int64) (*domain.RecruiterProfile, error) {
	query := `SELECT ` + recruiterProfileColumns + ` FROM recruiter_profiles WHERE user_id = $1`
	p, err := scanRecruiterProfile(db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if p.JobPostings, err = fetchJobPostingsByRecruiter(ctx, db, p.ID, 0, -1); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *recruiterProfileRepo) CreateWithOwner(ctx context.Context, profile *domain.RecruiterProfile, userID int64) (*domain.RecruiterProfile, error) {
	query := `INSERT INTO recruiter_profiles (user_id, company_name, job_title, phone_number, linkedin_profile_url, website_url, bio, location, company_size, industry, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		userID, profile.CompanyName, profile.JobTitle, profile.PhoneNumber,
		profile.LinkedinProfileURL, profile.WebsiteURL, profile.Bio, profile.Location,
		profile.CompanySize, profile.Industry,
	).Scan(&profile.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.Conflict("Recruiter profile already exists for this user")
		}
		return nil, err
	}

	created, err := r.GetByID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return created, nil
}

func (r *recruiterProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.RecruiterProfile, error) {
	return loadRecruiterProfileByUserID(ctx, r.db, userID)
}

func (r *recruiterProfileRepo) GetByID(ctx context.Context, id int64) (*domain.RecruiterProfile, error) {
	query := `SELECT ` + recruiterProfileColumns + ` FROM recruiter_profiles WHERE id = $1`
	p, err := scanRecruiterProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if p.JobPostings, err = fetchJobPostingsByRecruiter(ctx, r.db, p.ID, 0, -1); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *recruiterProfileRepo) List(ctx context.Context, skip, limit int) ([]domain.RecruiterProfile, error) {
	query := `SELECT ` + recruiterProfileColumns + ` FROM recruiter_profiles ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.RecruiterProfile{}
	for rows.Next() {
		p, err := scanRecruiterProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range profiles {
		if profiles[i].JobPostings, err = fetchJobPostingsByRecruiter(ctx, r.db, profiles[i].ID, 0, -1); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

func (r *recruiterProfileRepo) Update(ctx context.Context, profile *domain.RecruiterProfile) (*domain.RecruiterProfile, error) {
	query := `UPDATE recruiter_profiles SET
		company_name = $2,
		job_title = $3,
		phone_number = $4,
		linkedin_profile_url = $5,
		website_url = $6,
		bio = $7,
		location = $8,
		company_size = $9,
		industry = $10,
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.ID, profile.CompanyName, profile.JobTitle, profile.PhoneNumber,
		profile.LinkedinProfileURL, profile.WebsiteURL, profile.Bio, profile.Location,
		profile.CompanySize, profile.Industry,
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

func (r *recruiterProfileRepo) Delete(ctx context.Context, id int64) (*domain.RecruiterProfile, error) {
	snapshot, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(ctx, `DELETE FROM recruiter_profiles WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return snapshot, nil
}
