package memory

import (
	"context"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
)

type accountsRepo struct {
	v view
}

func (r *accountsRepo) find(ctx context.Context, match func(domain.Account) bool) (domain.Account, error) {
	var found domain.Account
	err := r.v.do(ctx, func(d *data) error {
		for _, a := range d.accounts {
			if match(a) {
				found = a
				return nil
			}
		}
		return store.ErrNotFound
	})
	return found, err
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	var found domain.Account
	err := r.v.do(ctx, func(d *data) error {
		a, ok := d.accounts[id]
		if !ok {
			return store.ErrNotFound
		}
		found = a
		return nil
	})
	return found, err
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.find(ctx, func(a domain.Account) bool { return a.Email == email })
}

func (r *accountsRepo) GetAccountByResetTokenHash(ctx context.Context, hash string) (domain.Account, error) {
	if hash == "" {
		return domain.Account{}, store.ErrNotFound
	}
	return r.find(ctx, func(a domain.Account) bool { return a.ResetTokenHash == hash })
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	return r.v.do(ctx, func(d *data) error {
		if _, ok := d.accounts[a.ID]; ok {
			return store.ErrAlreadyExists
		}
		if collides(d, a) {
			return store.ErrAlreadyExists
		}

		a.CreatedAt = stamp(a.CreatedAt)
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = a.CreatedAt
		} else {
			a.UpdatedAt = stamp(a.UpdatedAt)
		}
		d.accounts[a.ID] = a
		return nil
	})
}

func (r *accountsRepo) UpdateAccount(ctx context.Context, a domain.Account) error {
	return r.v.do(ctx, func(d *data) error {
		cur, ok := d.accounts[a.ID]
		if !ok {
			return store.ErrNotFound
		}
		if collides(d, a) {
			return store.ErrAlreadyExists
		}

		cur.Email = a.Email
		cur.PasswordHash = a.PasswordHash
		cur.Role = a.Role
		cur.ResetTokenHash = a.ResetTokenHash
		cur.UpdatedAt = stamp(time.Now())
		d.accounts[a.ID] = cur
		return nil
	})
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, id string) error {
	return r.v.do(ctx, func(d *data) error {
		if _, ok := d.accounts[id]; !ok {
			return store.ErrNotFound
		}
		delete(d.accounts, id)
		return nil
	})
}

func (r *accountsRepo) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var out []domain.Account
	err := r.v.do(ctx, func(d *data) error {
		out = sortedValues(d.accounts,
			func(a domain.Account) time.Time { return a.CreatedAt },
			func(a domain.Account) string { return a.ID },
		)
		return nil
	})
	return out, err
}

func (r *accountsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var empty bool
	err := r.v.do(ctx, func(d *data) error {
		empty = len(d.accounts) == 0
		return nil
	})
	return empty, err
}

// collides reports whether a's unique fields clash with another account.
func collides(d *data, a domain.Account) bool {
	for id, other := range d.accounts {
		if id == a.ID {
			continue
		}
		if other.Email == a.Email {
			return true
		}
		if a.ResetTokenHash != "" && other.ResetTokenHash == a.ResetTokenHash {
			return true
		}
	}
	return false
}
