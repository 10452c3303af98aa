package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/notify"
	"github.com/aussiebroadwan/accounts/internal/accounts/notify/notifytest"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

type env struct {
	store  store.Store
	outbox *notifytest.Outbox
	tokens *jwtx.HS256

	invites     *service.InviteService
	credentials *service.CredentialService
	accounts    *service.AccountService
	guard       *service.Guard
}

var testLinks = notify.Links{AppName: "Bartab", BaseURL: "https://app.example.com"}

func newEnv(t *testing.T) *env {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens, err := jwtx.NewHS256(jwtx.HS256Options{
		Secret: []byte("test-secret-test-secret-test-secret"),
		Issuer: "accounts",
	})
	require.NoError(t, err)

	outbox := &notifytest.Outbox{}
	guard := &service.Guard{Verifier: tokens}

	return &env{
		store:  st,
		outbox: outbox,
		tokens: tokens,
		guard:  guard,
		invites: &service.InviteService{
			Store:    st,
			Notifier: outbox,
			Links:    testLinks,
		},
		credentials: &service.CredentialService{
			Store:    st,
			Tokens:   tokens,
			Guard:    guard,
			Notifier: outbox,
			Links:    testLinks,
		},
		accounts: &service.AccountService{Store: st},
	}
}

// register invites email and consumes the invite with password.
func (e *env) register(t *testing.T, email, password string) service.AccountSummary {
	t.Helper()
	ctx := context.Background()

	_, err := e.invites.CreateInvite(ctx, email)
	require.NoError(t, err)

	account, err := e.invites.ConsumeInviteAndRegister(ctx, e.outbox.LastToken(), password)
	require.NoError(t, err)
	return account
}

// seedAccount inserts an account directly, skipping the invite flow.
func (e *env) seedAccount(t *testing.T, email, password string, role domain.Role) domain.Account {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	a := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, e.store.Accounts().CreateAccount(context.Background(), a))
	return a
}

func (e *env) login(t *testing.T, email, password string) string {
	t.Helper()
	token, err := e.credentials.Login(context.Background(), email, password)
	require.NoError(t, err)
	return token
}

func requireKind(t *testing.T, err error, kind service.Kind) *service.Error {
	t.Helper()
	require.Error(t, err)

	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, kind, svcErr.Kind, "got %v", err)
	return svcErr
}
