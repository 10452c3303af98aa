package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
)

const bootstrapToken = "let-me-in-please"

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	svc := &service.BootstrapService{Store: e.store, Token: bootstrapToken}

	done, err := svc.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.False(t, done)

	admin, err := svc.Bootstrap(ctx, bootstrapToken, "Root@Example.com", "root12")
	require.NoError(t, err)
	require.Equal(t, "root@example.com", admin.Email)
	require.Equal(t, domain.RoleAdmin, admin.Role)

	done, err = svc.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.True(t, done)

	_, err = e.guard.RequireAdmin(e.login(t, "root@example.com", "root12"))
	require.NoError(t, err)

	// A second bootstrap is refused, whoever asks.
	_, err = svc.Bootstrap(ctx, bootstrapToken, "other@example.com", "other1")
	svcErr := requireKind(t, err, service.KindConflict)
	require.Equal(t, service.MsgBootstrapAlready, svcErr.Message)
}

func TestBootstrap_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		e := newEnv(t)
		svc := &service.BootstrapService{Store: e.store}
		require.False(t, svc.Enabled())

		_, err := svc.Bootstrap(ctx, "", "root@example.com", "root12")
		requireKind(t, err, service.KindNotFound)
	})

	t.Run("wrong token", func(t *testing.T) {
		e := newEnv(t)
		svc := &service.BootstrapService{Store: e.store, Token: bootstrapToken}

		for _, token := range []string{"", "let-me-in", bootstrapToken + "!"} {
			_, err := svc.Bootstrap(ctx, token, "root@example.com", "root12")
			requireKind(t, err, service.KindUnauthorized)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		e := newEnv(t)
		svc := &service.BootstrapService{Store: e.store, Token: bootstrapToken}

		_, err := svc.Bootstrap(ctx, bootstrapToken, "root", "short")
		svcErr := requireKind(t, err, service.KindValidation)
		require.Len(t, svcErr.Fields, 3)
		require.Equal(t, "email", svcErr.Fields[0].Field)
	})

	t.Run("accounts already exist", func(t *testing.T) {
		e := newEnv(t)
		e.seedAccount(t, "ada@example.com", "abc123", domain.RoleUser)
		svc := &service.BootstrapService{Store: e.store, Token: bootstrapToken}

		_, err := svc.Bootstrap(ctx, bootstrapToken, "root@example.com", "root12")
		requireKind(t, err, service.KindConflict)
	})
}
