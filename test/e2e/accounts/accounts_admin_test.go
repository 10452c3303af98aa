package accounts_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
)

// TestAdminEndpointsRequireAdmin verifies the guard on admin routes.
func TestAdminEndpointsRequireAdmin(t *testing.T) {
	svc := setupAccountsContainer(t)
	admin := svc.bootstrapAdmin(t)
	ctx := t.Context()

	_, err := svc.client.ListAccounts(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = svc.client.WithToken("garbage").ListInvites(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	svc.inviteAndSignup(t, admin, "plain@example.com", "Plain123!")
	token, err := svc.client.Login(ctx, "plain@example.com", "Plain123!")
	require.NoError(t, err)

	_, err = svc.client.WithToken(token).ListAccounts(ctx)
	requireStatus(t, err, http.StatusForbidden)
}

// TestPromoteAndDelete covers role changes and account removal.
func TestPromoteAndDelete(t *testing.T) {
	svc := setupAccountsContainer(t)
	admin := svc.bootstrapAdmin(t)
	ctx := t.Context()

	svc.inviteAndSignup(t, admin, "rising@example.com", "Rising123!")

	accounts, err := admin.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	var rising accountsdk.Account
	for _, a := range accounts {
		if a.Email == "rising@example.com" {
			rising = a
		}
	}
	require.Equal(t, "user", rising.Role)

	requireStatus(t, admin.ChangeRole(ctx, rising.ID, "superuser"), http.StatusBadRequest)
	require.NoError(t, admin.ChangeRole(ctx, rising.ID, "admin"))

	// A fresh login carries the new role
	token, err := svc.client.Login(ctx, "rising@example.com", "Rising123!")
	require.NoError(t, err)
	_, err = svc.client.WithToken(token).ListInvites(ctx)
	require.NoError(t, err)

	require.NoError(t, admin.DeleteAccount(ctx, rising.ID))
	requireStatus(t, admin.DeleteAccount(ctx, rising.ID), http.StatusNotFound)

	_, err = svc.client.Login(ctx, "rising@example.com", "Rising123!")
	requireStatus(t, err, http.StatusBadRequest)
}
