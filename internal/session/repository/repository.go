package repository

import (
	"context"

	"log-platform/usersvc/internal/directory"
	"log-platform/usersvc/internal/session/domain"
)

// Repository defines persistence for sessions. GetSession takes a conjunctive
// equality filter set; exactly one row must match or the lookup fails with
// directory.ErrNotFound / directory.ErrAmbiguous.
type Repository interface {
	GetSession(ctx context.Context, f directory.Filters) (*domain.Session, error)
	Upsert(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, sessionID string) error
	DeleteByUser(ctx context.Context, userID string) error
	// ConsumeRefresh atomically advances the session's latest_refresh_exp
	// watermark to exp, but only while the stored watermark is strictly below
	// exp. It reports whether the watermark advanced; false means the token
	// with this expiry was already consumed (or the session no longer exists).
	ConsumeRefresh(ctx context.Context, sessionID string, exp int64) (bool, error)
}
