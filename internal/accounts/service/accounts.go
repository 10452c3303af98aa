package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// AccountService holds the admin operations on existing accounts.
type AccountService struct {
	Store store.Store
}

// ChangeRole sets the role of account id to "user" or "admin".
func (s *AccountService) ChangeRole(ctx context.Context, id, role string) error {
	log := slogx.FromContext(ctx)

	newRole, errs := ValidateRole("role", role)
	if errs != nil {
		return invalid(errs)
	}

	id, ok := parseID(id)
	if !ok {
		return fail(KindNotFound, MsgUserNotFound)
	}

	account, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return fail(KindNotFound, MsgUserNotFound)
		}
		return storeFailure(log, "failed to look up account", err)
	}

	previous := account.Role
	account.Role = newRole
	if err := s.Store.Accounts().UpdateAccount(ctx, account); err != nil {
		if isNotFound(err) {
			return fail(KindNotFound, MsgUserNotFound)
		}
		return storeFailure(log, "failed to save role", err)
	}

	log.Info("role changed",
		slog.String("account_id", account.ID),
		slog.String("from", previous.String()),
		slog.String("to", newRole.String()),
	)
	return nil
}

// ListAccounts returns every account, oldest first.
func (s *AccountService) ListAccounts(ctx context.Context) ([]AccountSummary, error) {
	accounts, err := s.Store.Accounts().ListAccounts(ctx)
	if err != nil {
		return nil, storeFailure(slogx.FromContext(ctx), "failed to list accounts", err)
	}

	out := make([]AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, summarizeAccount(a))
	}
	return out, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	id, ok := parseID(id)
	if !ok {
		return fail(KindNotFound, MsgUserIsNotFound)
	}

	if err := s.Store.Accounts().DeleteAccount(ctx, id); err != nil {
		if isNotFound(err) {
			return fail(KindNotFound, MsgUserIsNotFound)
		}
		return storeFailure(log, "failed to delete account", err)
	}

	log.Info("account deleted", slog.String("account_id", id))
	return nil
}
