package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tynanfleet/fleetcheck/internal/checklist/domain"
	"github.com/tynanfleet/fleetcheck/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep the two tables' concerns separate and
// make the service layer testable against the interface alone.
type Store interface {
	Users() Users
	Entries() Entries

	// ApplyMigrations brings the base schema up to date using the embedded
	// migration files. Runs at startup before traffic is accepted.
	ApplyMigrations() error

	// EnsureEntryColumns applies the additive column guard: every expected
	// checklist column that is missing is added with a safe default. A
	// failure to add one column is logged and skipped, never fatal, so the
	// service prefers booting with a partially migrated schema over not
	// booting at all.
	EnsureEntryColumns(ctx context.Context, log *slog.Logger)

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repositories and adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id idx.ID) (domain.User, error)

	// GetUserByUsername looks a user up by case-normalized username.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

type Entries interface {
	// CreateEntry persists one immutable checklist entry and returns its
	// assigned integer id.
	CreateEntry(ctx context.Context, e domain.Entry) (int64, error)

	// ListRecent returns up to limit entries in reverse-chronological order,
	// ties broken by insertion order.
	ListRecent(ctx context.Context, limit int) ([]domain.Entry, error)
}
