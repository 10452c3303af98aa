package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

const (
	MsgBootstrapDisabled     = "Bootstrap endpoint is not enabled"
	MsgBootstrapUnauthorized = "Invalid bootstrap token"
	MsgBootstrapAlready      = "System has already been bootstrapped"
)

// BootstrapService creates the first admin account. Without it no admin
// could ever exist, since accounts are otherwise only created from invites.
type BootstrapService struct {
	Store store.Store
	Token string // Pre-configured bootstrap token, empty disables bootstrap
}

func (s *BootstrapService) Enabled() bool { return s.Token != "" }

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Accounts().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap creates an admin account when token matches and no account exists yet.
func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token string,
	email string,
	password string,
) (AccountSummary, error) {
	l := slogx.FromContext(ctx)

	// 1. Check the feature is on and the caller holds the token
	if !s.Enabled() {
		return AccountSummary{}, fail(KindNotFound, MsgBootstrapDisabled)
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		l.Warn("unauthorized bootstrap attempt")
		return AccountSummary{}, fail(KindUnauthorized, MsgBootstrapUnauthorized)
	}

	// 2. Validate input
	errs := ValidateEmail("email", email)
	errs = append(errs, ValidatePassword("password", password)...)
	if len(errs) > 0 {
		return AccountSummary{}, invalid(errs)
	}

	// 3. Hash password
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return AccountSummary{}, dependency(MsgInternal, err)
	}

	now := time.Now().UTC()
	admin := domain.Account{
		ID:           idx.NewAt(now).String(),
		Email:        domain.NormalizeEmail(email),
		PasswordHash: passwordHash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 4. Create the admin only while the account table is empty
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Accounts().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return fail(KindConflict, MsgBootstrapAlready)
		}
		return tx.Accounts().CreateAccount(ctx, admin)
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			l.Warn("attempted bootstrap on already-bootstrapped system")
			return AccountSummary{}, err
		}
		return AccountSummary{}, storeFailure(l, "failed to create admin account", err)
	}

	l.Info("successfully bootstrapped system", slog.String("admin_account_id", admin.ID))
	return summarizeAccount(admin), nil
}
