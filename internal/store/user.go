package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/questline/internal/domain"
)

// UserStore defines the interface for user snapshot persistence. The
// engine is single-profile: the store holds at most one canonical user
// document and the service layer serializes transitions against it.
type UserStore interface {
	// Load retrieves the stored user snapshot.
	// Returns ErrUserNotFound when no profile has been created yet.
	Load(ctx context.Context) (*domain.User, error)

	// Save persists a user snapshot, replacing the stored one. The
	// snapshot must be valid according to domain validation rules.
	Save(ctx context.Context, user *domain.User) error

	// WithTx returns a UserStore bound to the given transaction so a
	// load-compute-save transition commits atomically. The transaction
	// is created and managed by the caller, typically via
	// RunInTransaction.
	WithTx(tx *sql.Tx) UserStore
}
