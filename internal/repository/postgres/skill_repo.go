package postgres

import (
	"context"
	"errors"
	"fmt"

	"ai-match-connect/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const skillColumns = `id, candidate_profile_id, name, proficiency, created_at, updated_at`

type skillRepo struct {
	db *pgxpool.Pool
}

func NewCandidateSkillRepository(db *pgxpool.Pool) domain.CandidateSkillRepository {
	return &skillRepo{db: db}
}

func scanSkill(row pgx.Row) (*domain.CandidateSkill, error) {
	var s domain.CandidateSkill
	err := row.Scan(
		&s.ID, &s.CandidateProfileID, &s.Name, &s.Proficiency, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// fetchCandidateSkills lists a profile's skills alphabetically.
// A negative limit means no bound.
func fetchCandidateSkills(ctx context.Context, db *pgxpool.Pool, profileID int64, skip, limit int) ([]domain.CandidateSkill, error) {
	query := `SELECT ` + skillColumns + ` FROM candidate_skills WHERE candidate_profile_id = $1 ORDER BY name`
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

	items := []domain.CandidateSkill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}

func (r *skillRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateSkill, error) {
	query := `SELECT ` + skillColumns + ` FROM candidate_skills WHERE id = $1`
	s, err := scanSkill(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *skillRepo) ListByProfile(ctx context.Context, profileID int64, skip, limit int) ([]domain.CandidateSkill, error) {
	return fetchCandidateSkills(ctx, r.db, profileID, skip, limit)
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.CandidateSkill) (*domain.CandidateSkill, error) {
	query := `INSERT INTO candidate_skills (candidate_profile_id, name, proficiency, created_at, updated_at)
              VALUES ($1, $2, $3, NOW(), NOW()) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		skill.CandidateProfileID, skill.Name, skill.Proficiency,
	).Scan(&skill.ID)
	if err != nil {
		return nil, err
	}

	created, err := r.GetByID(ctx, skill.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return created, nil
}

func (r *skillRepo) Update(ctx context.Context, skill *domain.CandidateSkill) (*domain.CandidateSkill, error) {
	query := `UPDATE candidate_skills SET
		name = $2,
		proficiency = $3,
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query, skill.ID, skill.Name, skill.Proficiency)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	updated, err := r.GetByID(ctx, skill.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return updated, nil
}

func (r *skillRepo) Delete(ctx context.Context, id int64) (*domain.CandidateSkill, error) {
	snapshot, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(ctx, `DELETE FROM candidate_skills WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return snapshot, nil
}
