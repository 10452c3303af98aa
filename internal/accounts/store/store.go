package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, memory)
// implement this. Sub-repositories are reached through methods so a Tx can
// hand out repos bound to itself and nested transactions stay impossible.
type Store interface {
	Accounts() Accounts
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Inside fn only
	// the repos of tx may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing database is still reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
// Rollback after Commit is a no-op.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetAccountByID returns ErrNotFound for unknown or malformed ids.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail looks up by normalized email.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// GetAccountByResetTokenHash finds the account holding an outstanding reset token.
	GetAccountByResetTokenHash(ctx context.Context, hash string) (domain.Account, error)

	// CreateAccount inserts a new account (id is provided by the caller via ULID).
	// Returns ErrAlreadyExists when the email or reset token is taken.
	CreateAccount(ctx context.Context, a domain.Account) error

	// UpdateAccount saves email, password hash, role and reset token of an
	// existing account and bumps updated_at. ErrNotFound when the id is
	// unknown, ErrAlreadyExists on a uniqueness collision.
	UpdateAccount(ctx context.Context, a domain.Account) error

	DeleteAccount(ctx context.Context, id string) error

	// ListAccounts returns all accounts ordered by creation.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// IsEmpty returns true if there are no accounts.
	IsEmpty(ctx context.Context) (bool, error)
}

type Invites interface {
	GetInviteByID(ctx context.Context, id string) (domain.Invite, error)
	GetInviteByEmail(ctx context.Context, email string) (domain.Invite, error)
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	// CreateInvite writes a new invite. At most one invite may exist per
	// email: a second insert returns ErrAlreadyExists.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	DeleteInvite(ctx context.Context, id string) error

	// ListInvites returns all outstanding invites ordered by creation.
	ListInvites(ctx context.Context) ([]domain.Invite, error)
}
