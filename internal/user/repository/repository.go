package repository

import (
	"context"
	"errors"

	"log-platform/usersvc/internal/directory"
	"log-platform/usersvc/internal/user/domain"
)

// ErrDuplicateEmail is returned by Upsert when the email column's unique
// constraint rejects the write.
var ErrDuplicateEmail = errors.New("email already in use")

// Repository defines persistence for user accounts. Lookups take conjunctive
// equality filter sets; exactly one row must match or the lookup fails with
// directory.ErrNotFound / directory.ErrAmbiguous.
type Repository interface {
	GetUser(ctx context.Context, f directory.Filters) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, userID string) error
}
