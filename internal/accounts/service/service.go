// Package service implements the invitation and credential workflows. Every
// operation returns either its result or a *Error whose Kind tells the
// caller what went wrong.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/metrics"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/idx"
)

// InviteSummary is the admin projection of an Invite. The token never leaves the store.
type InviteSummary struct {
	ID    string
	Email string
}

// AccountSummary is the admin projection of an Account, without secrets.
type AccountSummary struct {
	ID    string
	Email string
	Role  domain.Role
}

func summarizeAccount(a domain.Account) AccountSummary {
	return AccountSummary{ID: a.ID, Email: a.Email, Role: a.Role}
}

func recorder(r metrics.Recorder) metrics.Recorder {
	if r == nil {
		return metrics.Nop{}
	}
	return r
}

// storeFailure logs err and wraps it as a dependency failure, passing
// through errors that are already classified.
func storeFailure(log *slog.Logger, msg string, err error) error {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.Warn(msg, slog.Any("error", err))
	} else {
		log.Error(msg, slog.Any("error", err))
	}
	return dependency(MsgInternal, err)
}

func isNotFound(err error) bool { return errors.Is(err, store.ErrNotFound) }

// parseID normalizes a record id from a path. Anything that is not a ULID
// cannot exist in the store.
func parseID(raw string) (string, bool) {
	id, err := idx.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
