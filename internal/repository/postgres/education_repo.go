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

const educationColumns = `id, candidate_profile_id, institution_name, degree, field_of_study, start_date, end_date, description, created_at, updated_at`

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

func scanEducation(row pgx.Row) (*domain.Education, error) {
	var e domain.Education
	var start time.Time
	var end *time.Time
	err := row.Scan(
		&e.ID, &e.CandidateProfileID, &e.InstitutionName, &e.Degree, &e.FieldOfStudy,
		&start, &end, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.StartDate = fmtDate(start)
	e.EndDate = fmtDatePtr(end)
	return &e, nil
}

// fetchEducations lists a profile's education entries most recent first.
// A negative limit means no bound.
func fetchEducations(ctx context.Context, db *pgxpool.Pool, profileID int64, skip, limit int) ([]domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE candidate_profile_id = $1 ORDER BY start_date DESC`
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

	items := []domain.Education{}
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

func (r *educationRepo) GetByID(ctx context.Context, id int64) (*domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE id = $1`
	e, err := scanEducation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *educationRepo) ListByProfile(ctx context.Context, profileID int64, skip, limit int) ([]domain.Education, error) {
	return fetchEducations(ctx, r.db, profileID, skip, limit)
}

func (r *educationRepo) Create(ctx context.Context, edu *domain.Education) (*domain.Education, error) {
	query := `INSERT INTO educations (candidate_profile_id, institution_name, degree, field_of_study, start_date, end_date, description, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW()) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		edu.CandidateProfileID, edu.InstitutionName, edu.Degree, edu.FieldOfStudy,
		edu.StartDate, edu.EndDate, edu.Description,
	).Scan(&edu.ID)
	if err != nil {
		return nil, err
	}

	created, err := r.GetByID(ctx, edu.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return created, nil
}

func (r *educationRepo) Update(ctx context.Context, edu *domain.Education) (*domain.Education, error) {
	query := `UPDATE educations SET
		institution_name = $2,
		degree = $3,
		field_of_study = $4,
		start_date = $5,
		end_date = $6,
		description = $7,
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		edu.ID, edu.InstitutionName, edu.Degree, edu.FieldOfStudy,
		edu.StartDate, edu.EndDate, edu.Description,
	)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	updated, err := r.GetByID(ctx, edu.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return updated, nil
}

func (r *educationRepo) Delete(ctx context.Context, id int64) (*domain.Education, error) {
	snapshot, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return snapshot, nil
}
