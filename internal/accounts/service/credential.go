package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/metrics"
	"github.com/aussiebroadwan/accounts/internal/accounts/notify"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

type CredentialService struct {
	Store    store.Store
	Tokens   jwtx.Issuer
	Guard    *Guard
	Notifier notify.Notifier
	Links    notify.Links
	Metrics  metrics.Recorder
}

// Unknown emails are checked against this hash so both login failures cost
// one bcrypt comparison.
var (
	dummyHashOnce sync.Once
	dummyHash     string
)

func equalizeTiming(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = cryptox.HashPassword("timing-equalizer-0")
	})
	_ = cryptox.VerifyPassword(password, dummyHash)
}

// Login returns a bearer token for valid credentials. Unknown email and
// wrong password produce the same failure.
func (s *CredentialService) Login(ctx context.Context, email, password string) (string, error) {
	log := slogx.FromContext(ctx)
	rec := recorder(s.Metrics)

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil && !isNotFound(err) {
		return "", storeFailure(log, "failed to look up account", err)
	}

	if isNotFound(err) {
		equalizeTiming(password)
		rec.Login(metrics.OutcomeFailure)
		log.Warn("login failed")
		return "", fail(KindIncorrectCredentials, MsgIncorrectCredentials)
	}

	if !cryptox.VerifyPassword(password, account.PasswordHash) {
		rec.Login(metrics.OutcomeFailure)
		log.Warn("login failed", slog.String("account_id", account.ID))
		return "", fail(KindIncorrectCredentials, MsgIncorrectCredentials)
	}

	token, err := s.Tokens.Issue(account.Email, account.Role.String())
	if err != nil {
		log.Error("failed to issue token", slog.Any("error", err))
		return "", dependency(MsgInternal, err)
	}

	rec.Login(metrics.OutcomeSuccess)
	log.Info("login succeeded", slog.String("account_id", account.ID))
	return token, nil
}

// ForgotPassword stores a fresh reset token on the account and mails the
// reset link. A delivery failure is reported but the stored token is kept.
func (s *CredentialService) ForgotPassword(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	if errs := ValidateEmail("email", email); errs != nil {
		return invalid(errs)
	}
	email = domain.NormalizeEmail(email)

	// 2. Resolve the account
	account, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			log.Warn("password reset requested for unknown email")
			return fail(KindNotFound, MsgEmailNotFound)
		}
		return storeFailure(log, "failed to look up account", err)
	}

	// 3. Generate and persist the reset token fingerprint
	token, err := cryptox.GenerateToken(cryptox.TokenSize160)
	if err != nil {
		log.Error("failed to generate reset token", slog.Any("error", err))
		return dependency(MsgResetFailed, err)
	}

	account.ResetTokenHash = cryptox.FingerprintToken(token)
	if err := s.Store.Accounts().UpdateAccount(ctx, account); err != nil {
		log.Error("failed to store reset token",
			slog.String("account_id", account.ID),
			slog.Any("error", err),
		)
		return dependency(MsgResetFailed, err)
	}
	recorder(s.Metrics).PasswordResetRequested()

	// 4. Send the link; the token stays stored even if this fails
	if err := s.Notifier.Notify(ctx, s.Links.ResetMessage(account.Email, token)); err != nil {
		recorder(s.Metrics).NotificationFailed(metrics.KindReset)
		log.Error("failed to send reset link",
			slog.String("account_id", account.ID),
			slog.Any("error", err),
		)
		return dependency(MsgResetFailed, err)
	}

	log.Info("password reset requested", slog.String("account_id", account.ID))
	return nil
}

// CheckResetToken reports whether an account holds token as its reset token.
func (s *CredentialService) CheckResetToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	_, err := s.Store.Accounts().GetAccountByResetTokenHash(ctx, cryptox.FingerprintToken(token))
	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		return false, storeFailure(slogx.FromContext(ctx), "failed to look up reset token", err)
	}
}

// ResetPassword replaces the password of the account holding token and
// clears the token so it cannot be used twice.
func (s *CredentialService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	if errs := ValidatePassword("password", newPassword); errs != nil {
		return invalid(errs)
	}

	// 2. Resolve the account by token
	fingerprint := cryptox.FingerprintToken(token)
	account, err := s.Store.Accounts().GetAccountByResetTokenHash(ctx, fingerprint)
	if err != nil {
		if isNotFound(err) {
			log.Warn("password reset attempted with unknown token")
			return fail(KindInvalidToken, MsgTokenInvalid)
		}
		return storeFailure(log, "failed to look up reset token", err)
	}

	// 3. Hash the new password
	passwordHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return dependency(MsgInternal, err)
	}

	// 4. Re-check the token inside the transaction so it is spent once
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Accounts().GetAccountByResetTokenHash(ctx, fingerprint)
		if err != nil {
			if isNotFound(err) {
				return fail(KindInvalidToken, MsgTokenInvalid)
			}
			return err
		}
		if current.ID != account.ID {
			return fail(KindInvalidToken, MsgTokenInvalid)
		}

		current.PasswordHash = passwordHash
		current.ResetTokenHash = ""
		return tx.Accounts().UpdateAccount(ctx, current)
	})
	if err != nil {
		return storeFailure(log, "failed to reset password", err)
	}

	recorder(s.Metrics).PasswordReset()
	log.Info("password reset", slog.String("account_id", account.ID))
	return nil
}

// ChangePassword replaces the caller's password after checking the old one.
func (s *CredentialService) ChangePassword(ctx context.Context, bearer, oldPassword, newPassword string) error {
	claims, err := s.Guard.RequireAuthenticated(bearer)
	if err != nil {
		return err
	}
	return s.ChangePasswordAs(ctx, claims, oldPassword, newPassword)
}

// ChangePasswordAs is ChangePassword for a caller whose bearer token has
// already been verified.
func (s *CredentialService) ChangePasswordAs(ctx context.Context, claims jwtx.Claims, oldPassword, newPassword string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	if errs := ValidatePassword("new_password", newPassword); errs != nil {
		return invalid(errs)
	}

	// 2. Resolve the caller and check the current password
	account, err := s.Store.Accounts().GetAccountByEmail(ctx, claims.Email)
	if err != nil {
		if isNotFound(err) {
			log.Warn("password change for a token whose account is gone")
			return fail(KindNotFound, MsgUserNotFound)
		}
		return storeFailure(log, "failed to look up account", err)
	}

	if !cryptox.VerifyPassword(oldPassword, account.PasswordHash) {
		log.Warn("password change with incorrect current password",
			slog.String("account_id", account.ID),
		)
		return fail(KindIncorrectCredentials, MsgIncorrectPassword)
	}

	// 3. Save the new hash
	passwordHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return dependency(MsgInternal, err)
	}

	account.PasswordHash = passwordHash
	if err := s.Store.Accounts().UpdateAccount(ctx, account); err != nil {
		return storeFailure(log, "failed to save password", err)
	}

	log.Info("password changed", slog.String("account_id", account.ID))
	return nil
}

// ChangeEmail moves the caller's account to newEmail after checking the
// password. There is no availability pre-check: a taken address is only
// caught by the store's unique index and surfaces as a dependency failure.
func (s *CredentialService) ChangeEmail(ctx context.Context, bearer, password, newEmail string) error {
	claims, err := s.Guard.RequireAuthenticated(bearer)
	if err != nil {
		return err
	}
	return s.ChangeEmailAs(ctx, claims, password, newEmail)
}

// ChangeEmailAs is ChangeEmail for an already verified caller.
func (s *CredentialService) ChangeEmailAs(ctx context.Context, claims jwtx.Claims, password, newEmail string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	if errs := ValidateEmail("email", newEmail); errs != nil {
		return invalid(errs)
	}

	// 2. Resolve the caller and check the password
	account, err := s.Store.Accounts().GetAccountByEmail(ctx, claims.Email)
	if err != nil {
		if isNotFound(err) {
			return fail(KindNotFound, MsgUserNotFound)
		}
		return storeFailure(log, "failed to look up account", err)
	}

	if !cryptox.VerifyPassword(password, account.PasswordHash) {
		log.Warn("email change with incorrect password", slog.String("account_id", account.ID))
		return fail(KindIncorrectCredentials, MsgIncorrectPassword)
	}

	// 3. Overwrite
	account.Email = domain.NormalizeEmail(newEmail)
	if err := s.Store.Accounts().UpdateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("email change collided with another account",
				slog.String("account_id", account.ID),
			)
			return dependency(MsgChangeEmailFailed, err)
		}
		return storeFailure(log, "failed to save email", err)
	}

	log.Info("email changed", slog.String("account_id", account.ID))
	return nil
}
