package accounts_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
)

// TestBootstrapSuccess verifies bootstrap creates a working admin account.
func TestBootstrapSuccess(t *testing.T) {
	svc := setupAccountsContainer(t)
	admin := svc.bootstrapAdmin(t)

	accounts, err := admin.ListAccounts(t.Context())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	require.Equal(t, adminEmail, accounts[0].Email)
	require.Equal(t, "admin", accounts[0].Role)
}

// TestBootstrapIdempotency verifies that bootstrap can only be called once.
func TestBootstrapIdempotency(t *testing.T) {
	svc := setupAccountsContainer(t)
	svc.bootstrapAdmin(t)

	_, err := svc.client.Bootstrap(t.Context(), bootstrapToken, accountsdk.BootstrapRequest{
		Email:    "another@example.com",
		Password: "Another123!",
	})
	requireStatus(t, err, http.StatusConflict)
}

// TestBootstrapWrongToken verifies the bootstrap token is enforced.
func TestBootstrapWrongToken(t *testing.T) {
	svc := setupAccountsContainer(t)

	_, err := svc.client.Bootstrap(t.Context(), "not-the-token", accountsdk.BootstrapRequest{
		Email:    adminEmail,
		Password: adminPassword,
	})
	requireStatus(t, err, http.StatusUnauthorized)
}
