package memory

import (
	"context"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
)

type invitesRepo struct {
	v view
}

func (r *invitesRepo) find(ctx context.Context, match func(domain.Invite) bool) (domain.Invite, error) {
	var found domain.Invite
	err := r.v.do(ctx, func(d *data) error {
		for _, inv := range d.invites {
			if match(inv) {
				found = inv
				return nil
			}
		}
		return store.ErrNotFound
	})
	return found, err
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, id string) (domain.Invite, error) {
	return r.find(ctx, func(inv domain.Invite) bool { return inv.ID == id })
}

func (r *invitesRepo) GetInviteByEmail(ctx context.Context, email string) (domain.Invite, error) {
	return r.find(ctx, func(inv domain.Invite) bool { return inv.Email == email })
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	return r.find(ctx, func(inv domain.Invite) bool { return inv.TokenHash == hash })
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	return r.v.do(ctx, func(d *data) error {
		if _, ok := d.invites[inv.ID]; ok {
			return store.ErrAlreadyExists
		}
		for _, other := range d.invites {
			if other.Email == inv.Email || other.TokenHash == inv.TokenHash {
				return store.ErrAlreadyExists
			}
		}

		inv.CreatedAt = stamp(inv.CreatedAt)
		d.invites[inv.ID] = inv
		return nil
	})
}

func (r *invitesRepo) DeleteInvite(ctx context.Context, id string) error {
	return r.v.do(ctx, func(d *data) error {
		if _, ok := d.invites[id]; !ok {
			return store.ErrNotFound
		}
		delete(d.invites, id)
		return nil
	})
}

func (r *invitesRepo) ListInvites(ctx context.Context) ([]domain.Invite, error) {
	var out []domain.Invite
	err := r.v.do(ctx, func(d *data) error {
		out = sortedValues(d.invites,
			func(inv domain.Invite) time.Time { return inv.CreatedAt },
			func(inv domain.Invite) string { return inv.ID },
		)
		return nil
	})
	return out, err
}
