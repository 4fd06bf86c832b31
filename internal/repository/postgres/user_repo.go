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

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const userColumns = `id, email, hashed_password, first_name, last_name, is_active, is_superuser, role, created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.HashedPassword, &user.FirstName, &user.LastName,
		&user.IsActive, &user.IsSuperuser, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// hydrate attaches whichever profile the user owns, with that profile's own
// children already loaded.
func (r *userRepo) hydrate(ctx context.Context, user *domain.User) error {
	cp, err := loadCandidateProfileByUserID(ctx, r.db, user.ID)
	if err != nil {
		return err
	}
	user.CandidateProfile = cp

	rp, err := loadRecruiterProfileByUserID(ctx, r.db, user.ID)
	if err != nil {
		return err
	}
	user.RecruiterProfile = rp
	return nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (email, hashed_password, first_name, last_name, is_active, is_superuser, role, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW()) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		user.Email, user.HashedPassword, user.FirstName, user.LastName,
		user.IsActive, user.IsSuperuser, user.Role,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.Conflict("User with this email already exists")
		}
		return nil, err
	}

	created, err := r.GetByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return created, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.hydrate(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.hydrate(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range users {
		if err := r.hydrate(ctx, &users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `UPDATE users SET
		email = $2,
		hashed_password = $3,
		first_name = $4,
		last_name = $5,
		is_active = $6,
		is_superuser = $7,
		role = $8,
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.HashedPassword, user.FirstName, user.LastName,
		user.IsActive, user.IsSuperuser, user.Role,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.Conflict("User with this email already exists")
		}
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	updated, err := r.GetByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBack, err)
	}
	return updated, nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) (*domain.User, error) {
	snapshot, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return snapshot, nil
}
