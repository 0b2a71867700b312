package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"log-platform/usersvc/internal/directory"
	"log-platform/usersvc/internal/user/domain"
)

// filterColumns is the whitelist of columns lookups may filter on.
var filterColumns = map[string]bool{
	"user_id":   true,
	"user_name": true,
	"email":     true,
}

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a user repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectUser = `
SELECT user_id, user_name, full_name, email, disabled, double_hashed_password
FROM users
`

// GetUser returns the single user matching the filter set. It returns
// directory.ErrNotFound for zero matches and directory.ErrAmbiguous when more
// than one row matches (an integrity fault; email and user_id are unique).
func (r *PostgresRepository) GetUser(ctx context.Context, f directory.Filters) (*domain.User, error) {
	clause, args, err := directory.WhereClause(f, filterColumns)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, selectUser+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	defer rows.Close()

	var out *domain.User
	for rows.Next() {
		if out != nil {
			return nil, directory.ErrAmbiguous
		}
		var u domain.User
		if err := rows.Scan(&u.ID, &u.UserName, &u.FullName, &u.Email, &u.Disabled, &u.DoubleHashedPassword); err != nil {
			return nil, fmt.Errorf("get user: %w", err)
		}
		out = &u
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if out == nil {
		return nil, directory.ErrNotFound
	}
	return out, nil
}

const upsertUser = `
INSERT INTO users (user_id, user_name, full_name, email, disabled, double_hashed_password)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE SET
    user_name = EXCLUDED.user_name,
    full_name = EXCLUDED.full_name,
    email = EXCLUDED.email,
    disabled = EXCLUDED.disabled,
    double_hashed_password = EXCLUDED.double_hashed_password
`

// Upsert inserts the user or updates the existing row with the same user_id.
func (r *PostgresRepository) Upsert(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx, upsertUser,
		u.ID, u.UserName, u.FullName, u.Email, u.Disabled, u.DoubleHashedPassword)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// Delete removes the user row. Deleting an absent user is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
