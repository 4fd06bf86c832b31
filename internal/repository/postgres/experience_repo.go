package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-match-connect/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const experienceColumns = `id, candidate_profile_id, title, company_name, location, start_date, end_date, description, created_at, updated_at`

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	var e domain.Experience
	var start time.Time
	var end *time.Time
	err := row.Scan(
		&e.ID, &e.CandidateProfileID, &e.Title, &e.CompanyName, &e.Location,
		&start, &end, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.StartDate = fmtDate(start)
	e.EndDate = fmtDatePtr(end)
	return &e, nil
}

// fetchExperiences lists a profile's work experience most recent first.
// A negative limit means no bound.
func fetchExperiences(ctx context.Context, db *pgxpool.Pool, profileID int64, skip, limit int) ([]domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE candidate_profile_id = $1 ORDER BY start_date DESC`
	args := []any{profileID}
	if limit >= 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, skip)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

func (r *experienceRepo) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`
	e, err := scanExperience(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *experienceRepo) ListByProfile(ctx context.Context, profileID int64, skip, limit int) ([]domain.Experience, error) {
	return fetchExperiences(ctx, r.db, profileID, skip, limit)
}

func (r *experienceRepo) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	query := `INSERT INTO experiences (candidate_profile_id, title, company_name, location, start_date, end_date, description, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW()) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		exp.CandidateProfileID, exp.Title, exp.CompanyName, exp.Location,
		exp.StartDate, exp.EndDate, exp.Description,
	).Scan(&exp.ID)
	if err != nil {
		return nil, err
	}

	created, err := r.GetByID(ctx, exp.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return created, nil
}

func (r *experienceRepo) Update(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	query := `UPDATE experiences SET
		title = $2,
		company_name = $3,
		location = $4,
		start_date = $5,
		end_date = $6,
		description = $7,
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		exp.ID, exp.Title, exp.CompanyName, exp.Location,
		exp.StartDate, exp.EndDate, exp.Description,
	)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	updated, err := r.GetByID(ctx, exp.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return updated, nil
}

func (r *experienceRepo) Delete(ctx context.Context, id int64) (*domain.Experience, error) {
	snapshot, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return snapshot, nil
}
