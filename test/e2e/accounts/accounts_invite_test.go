package accounts_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInviteSignupLogin tests the complete registration flow:
// 1. Bootstrap and login as admin
// 2. Invite an email address
// 3. Check the delivered token and sign up with it
// 4. Login as the new user
func TestInviteSignupLogin(t *testing.T) {
	svc := setupAccountsContainer(t)
	admin := svc.bootstrapAdmin(t)
	ctx := t.Context()

	require.NoError(t, admin.CreateInvite(ctx, "newbie@example.com"))

	invites, err := admin.ListInvites(ctx)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	require.Equal(t, "newbie@example.com", invites[0].Email)

	token := svc.lastToken(t, "newbie@example.com", "Registration")
	require.Len(t, token, 40)

	ok, err := svc.client.CheckInviteToken(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, svc.client.Signup(ctx, token, "Newbie123!"))

	// The invite is consumed
	ok, err = svc.client.CheckInviteToken(ctx, token)
	require.NoError(t, err)
	require.False(t, ok)

	invites, err = admin.ListInvites(ctx)
	require.NoError(t, err)
	require.Empty(t, invites)

	userToken, err := svc.client.Login(ctx, "newbie@example.com", "Newbie123!")
	require.NoError(t, err)
	require.NotEmpty(t, userToken)
}

// TestInviteRejections covers duplicate invites and invites for existing accounts.
func TestInviteRejections(t *testing.T) {
	svc := setupAccountsContainer(t)
	admin := svc.bootstrapAdmin(t)
	ctx := t.Context()

	require.NoError(t, admin.CreateInvite(ctx, "dupe@example.com"))
	requireStatus(t, admin.CreateInvite(ctx, "dupe@example.com"), http.StatusBadRequest)

	requireStatus(t, admin.CreateInvite(ctx, adminEmail), http.StatusBadRequest)

	apiErr := requireStatus(t, admin.CreateInvite(ctx, "not-an-email"), http.StatusPaymentRequired)
	require.NotEmpty(t, apiErr.Fields)
}

// TestInviteDelete verifies a revoked invite can no longer be redeemed.
func TestInviteDelete(t *testing.T) {
	svc := setupAccountsContainer(t)
	admin := svc.bootstrapAdmin(t)
	ctx := t.Context()

	require.NoError(t, admin.CreateInvite(ctx, "revoked@example.com"))
	token := svc.lastToken(t, "revoked@example.com", "Registration")

	invites, err := admin.ListInvites(ctx)
	require.NoError(t, err)
	require.Len(t, invites, 1)

	require.NoError(t, admin.DeleteInvite(ctx, invites[0].ID))
	requireStatus(t, admin.DeleteInvite(ctx, invites[0].ID), http.StatusNotFound)

	requireStatus(t, svc.client.Signup(ctx, token, "Revoked123!"), http.StatusBadRequest)
}
