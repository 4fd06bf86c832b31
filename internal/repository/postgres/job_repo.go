package postgres

import (
	"context"
	"errors"
	"fmt"

	"ai-match-connect/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobPostingColumns = `id, recruiter_profile_id, title, location, job_type, experience_level, salary_range, description, skills_required, created_at, updated_at`

type jobPostingRepo struct {
	db *pgxpool.Pool
}

func NewJobPostingRepository(db *pgxpool.Pool) domain.JobPostingRepository {
	return &jobPostingRepo{db: db}
}

// Skills live in one comma separated text column. The scan and the insert
// translate between that form and the list the domain exposes.
func scanJobPosting(row pgx.Row) (*domain.JobPosting, error) {
	var j domain.JobPosting
	var skills *string
	err := row.Scan(
		&j.ID, &j.RecruiterProfileID, &j.Title, &j.Location, &j.Type,
		&j.ExperienceLevel, &j.SalaryRange, &j.Description, &skills,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if skills != nil {
		j.Skills = domain.SkillsStringToList(*skills)
	} else {
		j.Skills = []string{}
	}
	return &j, nil
}

// skillsColumn maps the domain list to the stored form; an empty list
// stores NULL.
func skillsColumn(skills []string) *string {
	s := domain.SkillsListToString(skills)
	if s == "" {
		return nil
	}
	return &s
}

func fetchJobPostingsByRecruiter(ctx context.Context, db *pgxpool.Pool, recruiterProfileID int64, skip, limit int) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobPostingColumns + ` FROM job_postings WHERE recruiter_profile_id = $1 ORDER BY created_at DESC`
	args := []any{recruiterProfileID}
	if limit >= 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, skip)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobPosting{}
	for rows.Next() {
		j, err := scanJobPosting(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (r *jobPostingRepo) Create(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error) {
	query := `INSERT INTO job_postings (recruiter_profile_id, title, location, job_type, experience_level, salary_range, description, skills_required, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		job.RecruiterProfileID, job.Title, job.Location, job.Type, job.ExperienceLevel,
		job.SalaryRange, job.Description, skillsColumn(job.Skills),
	).Scan(&job.ID)
	if err != nil {
		return nil, err
	}

	created, err := r.GetByID(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return created, nil
}

func (r *jobPostingRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	query := `SELECT ` + jobPostingColumns + ` FROM job_postings WHERE id = $1`
	j, err := scanJobPosting(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return j, nil
}

func (r *jobPostingRepo) List(ctx context.Context, skip, limit int) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobPostingColumns + ` FROM job_postings ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobPosting{}
	for rows.Next() {
		j, err := scanJobPosting(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (r *jobPostingRepo) ListByRecruiter(ctx context.Context, recruiterProfileID int64, skip, limit int) ([]domain.JobPosting, error) {
	return fetchJobPostingsByRecruiter(ctx, r.db, recruiterProfileID, skip, limit)
}

func (r *jobPostingRepo) Update(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error) {
	query := `UPDATE job_postings SET
		title = $2,
		location = $3,
		job_type = $4,
		experience_level = $5,
		salary_range = $6,
		description = $7,
		skills_required = $8,
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Location, job.Type, job.ExperienceLevel,
		job.SalaryRange, job.Description, skillsColumn(job.Skills),
	)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	updated, err := r.GetByID(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return updated, nil
}

func (r *jobPostingRepo) Delete(ctx context.Context, id int64) (*domain.JobPosting, error) {
	snapshot, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return snapshot, nil
}

func (r *jobPostingRepo) CountByRecruiter(ctx context.Context, recruiterProfileID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_postings WHERE recruiter_profile_id = $1`, recruiterProfileID).Scan(&total)
	return total, err
}
