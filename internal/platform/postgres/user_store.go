package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/questline/internal/domain"
	"github.com/phrazzld/questline/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Load implements store.UserStore.Load
// It retrieves the single stored user snapshot from its JSONB document.
// Returns store.ErrUserNotFound when no profile row exists yet.
func (s *PostgresUserStore) Load(ctx context.Context) (*domain.User, error) {
	var snapshot []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM user_profiles ORDER BY created_at LIMIT 1`,
	).Scan(&snapshot)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("failed to load user snapshot",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(snapshot, &user); err != nil {
		s.logger.Error("failed to decode user snapshot",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	return &user, nil
}

// Save implements store.UserStore.Save
// It validates the snapshot and upserts the JSONB document keyed by the
// profile ID, replacing the previous snapshot.
func (s *PostgresUserStore) Save(ctx context.Context, user *domain.User) error {
	if user == nil {
		return store.ErrInvalidEntity
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	snapshot, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO user_profiles (id, snapshot, created_at, updated_at)
		 VALUES ($1, $2, $3, $3)
		 ON CONFLICT (id) DO UPDATE
		 SET snapshot = EXCLUDED.snapshot, updated_at = EXCLUDED.updated_at`,
		user.ID, snapshot, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: profile already exists", store.ErrUpdateFailed)
		}
		s.logger.Error("failed to save user snapshot",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Debug("saved user snapshot",
		slog.String("user_id", user.ID.String()))
	return nil
}

// WithTx implements store.UserStore.WithTx
// It returns a UserStore bound to the given transaction.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}
