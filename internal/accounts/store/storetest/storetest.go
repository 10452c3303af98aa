// Package storetest holds the behavioural contract every store driver must
// satisfy. Driver packages call Run from their own tests.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, migrated, empty store.
type Factory func(t *testing.T) store.Store

func Run(t *testing.T, newStore Factory) {
	t.Run("Accounts", func(t *testing.T) { testAccounts(t, newStore) })
	t.Run("Invites", func(t *testing.T) { testInvites(t, newStore) })
	t.Run("Transactions", func(t *testing.T) { testTransactions(t, newStore) })
	t.Run("ConcurrentInvites", func(t *testing.T) { testConcurrentInvites(t, newStore) })
}

func newAccount(email string) domain.Account {
	return domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "$2a$12$placeholderplaceholderplaceholderplaceholderplace",
		Role:         domain.RoleUser,
	}
}

func newInvite(email, tokenHash string) domain.Invite {
	return domain.Invite{
		ID:        idx.New().String(),
		Email:     email,
		TokenHash: tokenHash,
	}
}

func testAccounts(t *testing.T, newStore Factory) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		s := newStore(t)
		empty, err := s.Accounts().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)

		a := newAccount("ada@example.com")
		require.NoError(t, s.Accounts().CreateAccount(ctx, a))

		byID, err := s.Accounts().GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, a.Email, byID.Email)
		require.Equal(t, a.PasswordHash, byID.PasswordHash)
		require.Equal(t, domain.RoleUser, byID.Role)
		require.False(t, byID.HasResetToken())
		require.False(t, byID.CreatedAt.IsZero())

		byEmail, err := s.Accounts().GetAccountByEmail(ctx, a.Email)
		require.NoError(t, err)
		require.Equal(t, a.ID, byEmail.ID)

		empty, err = s.Accounts().IsEmpty(ctx)
		require.NoError(t, err)
		require.False(t, empty)
	})

	t.Run("missing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Accounts().GetAccountByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Accounts().GetAccountByID(ctx, "not-an-id")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Accounts().GetAccountByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Accounts().GetAccountByResetTokenHash(ctx, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("email is unique", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Accounts().CreateAccount(ctx, newAccount("ada@example.com")))

		err := s.Accounts().CreateAccount(ctx, newAccount("ada@example.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("update", func(t *testing.T) {
		s := newStore(t)
		a := newAccount("ada@example.com")
		require.NoError(t, s.Accounts().CreateAccount(ctx, a))

		a.Email = "lovelace@example.com"
		a.PasswordHash = "new-hash"
		a.Role = domain.RoleAdmin
		a.ResetTokenHash = "reset-fp"
		require.NoError(t, s.Accounts().UpdateAccount(ctx, a))

		got, err := s.Accounts().GetAccountByResetTokenHash(ctx, "reset-fp")
		require.NoError(t, err)
		require.Equal(t, a.ID, got.ID)
		require.Equal(t, "lovelace@example.com", got.Email)
		require.Equal(t, "new-hash", got.PasswordHash)
		require.Equal(t, domain.RoleAdmin, got.Role)

		_, err = s.Accounts().GetAccountByEmail(ctx, "ada@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)

		// Clearing the reset token makes it unreachable.
		got.ResetTokenHash = ""
		require.NoError(t, s.Accounts().UpdateAccount(ctx, got))
		_, err = s.Accounts().GetAccountByResetTokenHash(ctx, "reset-fp")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update unknown", func(t *testing.T) {
		s := newStore(t)
		err := s.Accounts().UpdateAccount(ctx, newAccount("ghost@example.com"))
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update collisions", func(t *testing.T) {
		s := newStore(t)
		a := newAccount("a@example.com")
		b := newAccount("b@example.com")
		b.ResetTokenHash = "taken"
		require.NoError(t, s.Accounts().CreateAccount(ctx, a))
		require.NoError(t, s.Accounts().CreateAccount(ctx, b))

		moved := a
		moved.Email = b.Email
		require.ErrorIs(t, s.Accounts().UpdateAccount(ctx, moved), store.ErrAlreadyExists)

		reset := a
		reset.ResetTokenHash = "taken"
		require.ErrorIs(t, s.Accounts().UpdateAccount(ctx, reset), store.ErrAlreadyExists)

		// Accounts without a reset token never collide with each other.
		b.ResetTokenHash = ""
		require.NoError(t, s.Accounts().UpdateAccount(ctx, b))
		require.NoError(t, s.Accounts().UpdateAccount(ctx, a))
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		a := newAccount("ada@example.com")
		require.NoError(t, s.Accounts().CreateAccount(ctx, a))

		require.NoError(t, s.Accounts().DeleteAccount(ctx, a.ID))
		_, err := s.Accounts().GetAccountByID(ctx, a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, s.Accounts().DeleteAccount(ctx, a.ID), store.ErrNotFound)
	})

	t.Run("list in creation order", func(t *testing.T) {
		s := newStore(t)
		list, err := s.Accounts().ListAccounts(ctx)
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)

		base := time.Now().Add(-time.Hour)
		var want []string
		for i, email := range []string{"c@example.com", "a@example.com", "b@example.com"} {
			a := newAccount(email)
			a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			require.NoError(t, s.Accounts().CreateAccount(ctx, a))
			want = append(want, email)
		}

		list, err = s.Accounts().ListAccounts(ctx)
		require.NoError(t, err)
		var got []string
		for _, a := range list {
			got = append(got, a.Email)
		}
		require.Equal(t, want, got)
	})
}

func testInvites(t *testing.T, newStore Factory) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		s := newStore(t)
		inv := newInvite("ada@example.com", "fp-1")
		require.NoError(t, s.Invites().CreateInvite(ctx, inv))

		for _, get := range []func() (domain.Invite, error){
			func() (domain.Invite, error) { return s.Invites().GetInviteByID(ctx, inv.ID) },
			func() (domain.Invite, error) { return s.Invites().GetInviteByEmail(ctx, inv.Email) },
			func() (domain.Invite, error) { return s.Invites().GetInviteByTokenHash(ctx, inv.TokenHash) },
		} {
			got, err := get()
			require.NoError(t, err)
			require.Equal(t, inv.ID, got.ID)
			require.Equal(t, inv.Email, got.Email)
			require.Equal(t, inv.TokenHash, got.TokenHash)
		}

		_, err := s.Invites().GetInviteByTokenHash(ctx, "fp-unknown")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("one invite per email", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Invites().CreateInvite(ctx, newInvite("ada@example.com", "fp-1")))

		err := s.Invites().CreateInvite(ctx, newInvite("ada@example.com", "fp-2"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("token is unique", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Invites().CreateInvite(ctx, newInvite("a@example.com", "fp-1")))

		err := s.Invites().CreateInvite(ctx, newInvite("b@example.com", "fp-1"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		inv := newInvite("ada@example.com", "fp-1")
		require.NoError(t, s.Invites().CreateInvite(ctx, inv))

		require.NoError(t, s.Invites().DeleteInvite(ctx, inv.ID))
		_, err := s.Invites().GetInviteByTokenHash(ctx, "fp-1")
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, s.Invites().DeleteInvite(ctx, inv.ID), store.ErrNotFound)

		// The email is free again.
		require.NoError(t, s.Invites().CreateInvite(ctx, newInvite("ada@example.com", "fp-2")))
	})

	t.Run("list", func(t *testing.T) {
		s := newStore(t)
		list, err := s.Invites().ListInvites(ctx)
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)

		base := time.Now().Add(-time.Hour)
		first := newInvite("first@example.com", "fp-1")
		first.CreatedAt = base
		second := newInvite("second@example.com", "fp-2")
		second.CreatedAt = base.Add(time.Minute)
		require.NoError(t, s.Invites().CreateInvite(ctx, second))
		require.NoError(t, s.Invites().CreateInvite(ctx, first))

		list, err = s.Invites().ListInvites(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, first.ID, list[0].ID)
		require.Equal(t, second.ID, list[1].ID)
	})
}

func testTransactions(t *testing.T, newStore Factory) {
	ctx := context.Background()
	errBoom := errors.New("boom")

	t.Run("commit is visible", func(t *testing.T) {
		s := newStore(t)
		a := newAccount("ada@example.com")

		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.Accounts().CreateAccount(ctx, a)
		})
		require.NoError(t, err)

		_, err = s.Accounts().GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
	})

	t.Run("error rolls back", func(t *testing.T) {
		s := newStore(t)
		inv := newInvite("ada@example.com", "fp-1")
		require.NoError(t, s.Invites().CreateInvite(ctx, inv))
		a := newAccount("ada@example.com")

		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Accounts().CreateAccount(ctx, a); err != nil {
				return err
			}
			if err := tx.Invites().DeleteInvite(ctx, inv.ID); err != nil {
				return err
			}
			return errBoom
		})
		require.ErrorIs(t, err, errBoom)

		_, err = s.Accounts().GetAccountByID(ctx, a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Invites().GetInviteByID(ctx, inv.ID)
		require.NoError(t, err)
	})

	t.Run("explicit rollback", func(t *testing.T) {
		s := newStore(t)
		tx, err := s.Tx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Invites().CreateInvite(ctx, newInvite("ada@example.com", "fp-1")))
		require.NoError(t, tx.Rollback())
		require.NoError(t, tx.Rollback(), "second rollback is a no-op")

		list, err := s.Invites().ListInvites(ctx)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("rollback after commit", func(t *testing.T) {
		s := newStore(t)
		tx, err := s.Tx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Invites().CreateInvite(ctx, newInvite("ada@example.com", "fp-1")))
		require.NoError(t, tx.Commit())
		require.NoError(t, tx.Rollback())

		list, err := s.Invites().ListInvites(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("nested transactions are refused", func(t *testing.T) {
		s := newStore(t)
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Tx(ctx)
			return err
		})
		require.Error(t, err)
	})
}

// Concurrent invites for one email: the unique index lets exactly one win.
func testConcurrentInvites(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)

	const n = 8
	var (
		wg   sync.WaitGroup
		errs = make([]error, n)
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.WithTx(ctx, func(tx store.Tx) error {
				return tx.Invites().CreateInvite(ctx, newInvite("race@example.com", idx.New().String()))
			})
		}()
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, store.ErrAlreadyExists):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, won)
	require.Equal(t, n-1, lost)
}
