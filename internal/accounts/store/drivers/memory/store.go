// Package memory is a process-local store driver. It keeps the same
// uniqueness and transaction guarantees as the sqlite driver and backs unit
// tests and the "memory" DATABASE_DRIVER setting.
package memory

import (
	"cmp"
	"context"
	"errors"
	"maps"
	"slices"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
)

var (
	ErrTxDone = errors.New("memory: transaction has already been committed or rolled back")
	ErrClosed = errors.New("memory: store is closed")
)

type data struct {
	accounts map[string]domain.Account
	invites  map[string]domain.Invite
}

func newData() *data {
	return &data{
		accounts: make(map[string]domain.Account),
		invites:  make(map[string]domain.Invite),
	}
}

func (d *data) clone() *data {
	return &data{
		accounts: maps.Clone(d.accounts),
		invites:  maps.Clone(d.invites),
	}
}

// view runs fn against a consistent snapshot of the data.
type view interface {
	do(ctx context.Context, fn func(d *data) error) error
}

// Store serializes every operation through a single-slot semaphore. A
// transaction holds the slot from Tx until Commit/Rollback and works on a
// copy that Commit swaps in.
type Store struct {
	sem    chan struct{}
	data   *data
	closed bool
}

func NewStore() *Store {
	return &Store{
		sem:  make(chan struct{}, 1),
		data: newData(),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() { <-s.sem }

func (s *Store) do(ctx context.Context, fn func(d *data) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	if s.closed {
		return ErrClosed
	}
	return fn(s.data)
}

func (s *Store) Accounts() store.Accounts { return &accountsRepo{v: s} }
func (s *Store) Invites() store.Invites   { return &invitesRepo{v: s} }

func (s *Store) ApplyMigrations() error { return nil } // schemaless

func (s *Store) Ping(ctx context.Context) error {
	return s.do(ctx, func(*data) error { return nil })
}

func (s *Store) Close() error {
	s.sem <- struct{}{}
	defer s.release()
	s.closed = true
	return nil
}

// Tx blocks until no other operation or transaction is in flight.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	if s.closed {
		s.release()
		return nil, ErrClosed
	}
	return &txStore{parent: s, data: s.data.clone()}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

type txStore struct {
	parent *Store
	data   *data
	done   bool
}

func (t *txStore) do(ctx context.Context, fn func(d *data) error) error {
	if t.done {
		return ErrTxDone
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(t.data)
}

func (t *txStore) Commit() error {
	if t.done {
		return ErrTxDone
	}
	t.done = true
	t.parent.data = t.data
	t.parent.release()
	return nil
}

func (t *txStore) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	t.parent.release()
	return nil
}

func (t *txStore) Accounts() store.Accounts { return &accountsRepo{v: t} }
func (t *txStore) Invites() store.Invites   { return &invitesRepo{v: t} }

func (t *txStore) ApplyMigrations() error         { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }
func (t *txStore) Close() error                   { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, ErrTxDone // nested tx not supported
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return ErrTxDone
}

// stamp mirrors the sqlite driver's millisecond UTC timestamps.
func stamp(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Truncate(time.Millisecond)
}

func sortedValues[T any](m map[string]T, created func(T) time.Time, id func(T) string) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b T) int {
		if c := created(a).Compare(created(b)); c != 0 {
			return c
		}
		return cmp.Compare(id(a), id(b))
	})
	return out
}
