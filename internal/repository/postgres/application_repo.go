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

const applicationColumns = `id, job_posting_id, candidate_profile_id, status, full_name, email, phone,
	cover_letter, years_of_experience, expected_salary, resume_url, applied_at, updated_at`

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewJobApplicationRepository(db *pgxpool.Pool) domain.JobApplicationRepository {
	return &applicationRepo{db: db}
}

func scanApplication(row pgx.Row) (*domain.JobApplication, error) {
	var a domain.JobApplication
	err := row.Scan(
		&a.ID, &a.JobPostingID, &a.CandidateProfileID, &a.Status, &a.FullName, &a.Email, &a.Phone,
		&a.CoverLetter, &a.YearsOfExperience, &a.ExpectedSalary, &a.ResumeURL,
		&a.AppliedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) CreateWithCandidate(ctx context.Context, app *domain.JobApplication, candidateProfileID int64) (*domain.JobApplication, error) {
	query := `INSERT INTO job_applications (job_posting_id, candidate_profile_id, status, full_name, email, phone,
                  cover_letter, years_of_experience, expected_salary, resume_url, applied_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		app.JobPostingID, candidateProfileID, domain.ApplicationPending,
		app.FullName, app.Email, app.Phone, app.CoverLetter,
		app.YearsOfExperience, app.ExpectedSalary, app.ResumeURL,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.Conflict("Application already submitted for this job")
		}
		return nil, err
	}

	created, err := r.GetByID(ctx, app.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return created, nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE id = $1`
	a, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *applicationRepo) ListByCandidate(ctx context.Context, candidateProfileID int64, skip, limit int) ([]domain.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications
	          WHERE candidate_profile_id = $1 ORDER BY applied_at DESC LIMIT $2 OFFSET $3`
	return r.fetch(ctx, query, candidateProfileID, limit, skip)
}

func (r *applicationRepo) ListByJobPosting(ctx context.Context, jobPostingID int64, skip, limit int) ([]domain.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications
	          WHERE job_posting_id = $1 ORDER BY applied_at DESC LIMIT $2 OFFSET $3`
	return r.fetch(ctx, query, jobPostingID, limit, skip)
}

func (r *applicationRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.JobApplication, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.JobApplication{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.JobApplication, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE job_applications SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	updated, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return updated, nil
}

func (r *applicationRepo) CountByRecruiter(ctx context.Context, recruiterProfileID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM job_applications a
	          JOIN job_postings j ON a.job_posting_id = j.id
	          WHERE j.recruiter_profile_id = $1`
	var total int64
	err := r.db.QueryRow(ctx, query, recruiterProfileID).Scan(&total)
	return total, err
}
