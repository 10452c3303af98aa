package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/memory"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s := memory.NewStore()
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestTxHonoursContext(t *testing.T) {
	s := memory.NewStore()
	tx, err := s.Tx(context.Background())
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = s.Accounts().ListAccounts(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClosed(t *testing.T) {
	s := memory.NewStore()
	require.NoError(t, s.Close())
	require.ErrorIs(t, s.Ping(context.Background()), memory.ErrClosed)

	_, err := s.Tx(context.Background())
	require.ErrorIs(t, err, memory.ErrClosed)
}
