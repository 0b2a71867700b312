package repository

import (
	"context"
	"database/sql"
	"fmt"

	"log-platform/usersvc/internal/directory"
	"log-platform/usersvc/internal/session/domain"
)

var filterColumns = map[string]bool{
	"session_id": true,
	"user_id":    true,
}

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a session repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectSession = `
SELECT session_id, user_id, latest_refresh_exp, device_context
FROM sessions
`

// GetSession returns the single session matching the filter set. It returns
// directory.ErrNotFound for zero matches and directory.ErrAmbiguous when more
// than one row matches.
func (r *PostgresRepository) GetSession(ctx context.Context, f directory.Filters) (*domain.Session, error) {
	clause, args, err := directory.WhereClause(f, filterColumns)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, selectSession+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	defer rows.Close()

	var out *domain.Session
	for rows.Next() {
		if out != nil {
			return nil, directory.ErrAmbiguous
		}
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.LatestRefreshExp, &s.DeviceContext); err != nil {
			return nil, fmt.Errorf("get session: %w", err)
		}
		out = &s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if out == nil {
		return nil, directory.ErrNotFound
	}
	return out, nil
}

const upsertSession = `
INSERT INTO sessions (session_id, user_id, latest_refresh_exp, device_context)
VALUES ($1, $2, $3, $4)
ON CONFLICT (session_id) DO UPDATE SET
    latest_refresh_exp = EXCLUDED.latest_refresh_exp,
    device_context = EXCLUDED.device_context
`

// Upsert inserts the session or updates the watermark and device context of
// the existing row. Session id and user id are never rewritten on conflict.
func (r *PostgresRepository) Upsert(ctx context.Context, s *domain.Session) error {
	_, err := r.db.ExecContext(ctx, upsertSession,
		s.ID, s.UserID, s.LatestRefreshExp, s.DeviceContext)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// Delete removes the session row. Deleting an absent session is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteByUser removes every session owned by the user.
func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete sessions by user: %w", err)
	}
	return nil
}

const consumeRefresh = `
UPDATE sessions
SET latest_refresh_exp = $2
WHERE session_id = $1 AND latest_refresh_exp < $2
`

// ConsumeRefresh advances the watermark with a compare-and-set. The WHERE
// guard makes two concurrent consumers of the same token serialize on the
// row: at most one update matches, so at most one caller sees true.
func (r *PostgresRepository) ConsumeRefresh(ctx context.Context, sessionID string, exp int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, consumeRefresh, sessionID, exp)
	if err != nil {
		return false, fmt.Errorf("consume refresh: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("consume refresh: %w", err)
	}
	return n == 1, nil
}
