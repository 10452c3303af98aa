package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/metrics"
	"github.com/aussiebroadwan/accounts/internal/accounts/notify"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

type InviteService struct {
	Store    store.Store
	Notifier notify.Notifier
	Links    notify.Links
	Metrics  metrics.Recorder
}

// CreateInvite invites email to register. The registration link is sent
// first and the invite stored only once delivery succeeded.
func (s *InviteService) CreateInvite(ctx context.Context, email string) (InviteSummary, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	if errs := ValidateEmail("email", email); errs != nil {
		return InviteSummary{}, invalid(errs)
	}
	email = domain.NormalizeEmail(email)

	// 2. One outstanding invite per email
	_, err := s.Store.Invites().GetInviteByEmail(ctx, email)
	if err == nil {
		log.Warn("invite requested for already invited email")
		return InviteSummary{}, fail(KindConflict, MsgInviteExists)
	}
	if !isNotFound(err) {
		return InviteSummary{}, storeFailure(log, "failed to look up invite", err)
	}

	// 3. No invites for registered accounts
	_, err = s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err == nil {
		log.Warn("invite requested for registered email")
		return InviteSummary{}, fail(KindConflict, MsgAccountExists)
	}
	if !isNotFound(err) {
		return InviteSummary{}, storeFailure(log, "failed to look up account", err)
	}

	// 4. Generate the single-use token; only its fingerprint is stored
	token, err := cryptox.GenerateToken(cryptox.TokenSize160)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return InviteSummary{}, dependency(MsgInternal, err)
	}

	now := time.Now().UTC()
	invite := domain.Invite{
		ID:        idx.NewAt(now).String(),
		Email:     email,
		TokenHash: cryptox.FingerprintToken(token),
		CreatedAt: now,
	}

	// 5. Send the registration link. The store is not held during delivery;
	// a failed send leaves nothing behind.
	if err := s.Notifier.Notify(ctx, s.Links.InviteMessage(email, token)); err != nil {
		recorder(s.Metrics).NotificationFailed(metrics.KindInvite)
		log.Error("failed to send invite", slog.Any("error", err))
		return InviteSummary{}, dependency(MsgInviteDeliveryFailed, err)
	}

	// 6. Persist; the unique email index settles concurrent invites
	if err := s.Store.Invites().CreateInvite(ctx, invite); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("concurrent invite for the same email lost the race")
			return InviteSummary{}, fail(KindConflict, MsgInviteExists)
		}
		return InviteSummary{}, storeFailure(log, "failed to create invite", err)
	}

	recorder(s.Metrics).InviteCreated()
	log.Info("invite created", slog.String("invite_id", invite.ID))

	return InviteSummary{ID: invite.ID, Email: invite.Email}, nil
}

// CheckToken reports whether an outstanding invite carries token.
func (s *InviteService) CheckToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	_, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		return false, storeFailure(slogx.FromContext(ctx), "failed to look up invite token", err)
	}
}

// ConsumeInviteAndRegister creates a user account for the invite's email
// and deletes the invite. Both happen in one transaction.
func (s *InviteService) ConsumeInviteAndRegister(
	ctx context.Context,
	token string,
	password string,
) (AccountSummary, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	if errs := ValidatePassword("password", password); errs != nil {
		return AccountSummary{}, invalid(errs)
	}

	// 2. Fingerprint the invite token and look it up
	invite, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if isNotFound(err) {
			log.Warn("registration attempted with unknown invite token")
			return AccountSummary{}, fail(KindInvalidToken, MsgTokenInvalid)
		}
		return AccountSummary{}, storeFailure(log, "failed to fetch invite", err)
	}

	// 3. Hash outside the transaction, bcrypt is slow on purpose
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return AccountSummary{}, dependency(MsgInternal, err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		ID:           idx.NewAt(now).String(),
		Email:        invite.Email,
		PasswordHash: passwordHash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 4. Create the account and consume the invite atomically
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				log.Warn("registration for an email that already has an account",
					slog.String("invite_id", invite.ID),
				)
				return fail(KindConflict, MsgAccountExists)
			}
			return storeFailure(log, "failed to create account", err)
		}

		if err := tx.Invites().DeleteInvite(ctx, invite.ID); err != nil {
			if isNotFound(err) {
				log.Warn("invite consumed concurrently", slog.String("invite_id", invite.ID))
				return fail(KindInvalidToken, MsgTokenInvalid)
			}
			return storeFailure(log, "failed to delete invite", err)
		}
		return nil
	})
	if err != nil {
		return AccountSummary{}, storeFailure(log, "failed to commit registration", err)
	}

	recorder(s.Metrics).AccountRegistered()
	log.Info("account registered via invite",
		slog.String("account_id", account.ID),
		slog.String("invite_id", invite.ID),
	)

	return summarizeAccount(account), nil
}

// ListInvites returns every outstanding invite, oldest first.
func (s *InviteService) ListInvites(ctx context.Context) ([]InviteSummary, error) {
	invites, err := s.Store.Invites().ListInvites(ctx)
	if err != nil {
		return nil, storeFailure(slogx.FromContext(ctx), "failed to list invites", err)
	}

	out := make([]InviteSummary, 0, len(invites))
	for _, inv := range invites {
		out = append(out, InviteSummary{ID: inv.ID, Email: inv.Email})
	}
	return out, nil
}

func (s *InviteService) DeleteInvite(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	id, ok := parseID(id)
	if !ok {
		return fail(KindNotFound, MsgInviteNotFound)
	}

	if err := s.Store.Invites().DeleteInvite(ctx, id); err != nil {
		if isNotFound(err) {
			return fail(KindNotFound, MsgInviteNotFound)
		}
		return storeFailure(log, "failed to delete invite", err)
	}

	log.Info("invite deleted", slog.String("invite_id", id))
	return nil
}
