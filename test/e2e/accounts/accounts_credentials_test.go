package accounts_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoginFailures verifies wrong passwords and unknown emails look the same.
func TestLoginFailures(t *testing.T) {
	svc := setupAccountsContainer(t)
	svc.bootstrapAdmin(t)
	ctx := t.Context()

	_, err := svc.client.Login(ctx, adminEmail, "Wrong123!")
	wrong := requireStatus(t, err, http.StatusBadRequest)

	_, err = svc.client.Login(ctx, "ghost@example.com", adminPassword)
	unknown := requireStatus(t, err, http.StatusBadRequest)

	require.Equal(t, wrong.Message, unknown.Message)
}

// TestForgotAndResetPassword walks the reset flow end to end.
func TestForgotAndResetPassword(t *testing.T) {
	svc := setupAccountsContainer(t)
	admin := svc.bootstrapAdmin(t)
	ctx := t.Context()

	svc.inviteAndSignup(t, admin, "forgetful@example.com", "Forgetful1!")

	requireStatus(t, svc.client.ForgotPassword(ctx, "ghost@example.com"), http.StatusBadRequest)

	require.NoError(t, svc.client.ForgotPassword(ctx, "forgetful@example.com"))
	token := svc.lastToken(t, "forgetful@example.com", "Reset password")

	ok, err := svc.client.CheckResetToken(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, svc.client.ResetPassword(ctx, token, "Remember2!"))

	// The token is single use
	ok, err = svc.client.CheckResetToken(ctx, token)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = svc.client.Login(ctx, "forgetful@example.com", "Forgetful1!")
	requireStatus(t, err, http.StatusBadRequest)

	_, err = svc.client.Login(ctx, "forgetful@example.com", "Remember2!")
	require.NoError(t, err)
}

// TestChangePasswordAndEmail covers the authenticated self-service endpoints.
func TestChangePasswordAndEmail(t *testing.T) {
	svc := setupAccountsContainer(t)
	admin := svc.bootstrapAdmin(t)
	ctx := t.Context()

	svc.inviteAndSignup(t, admin, "mover@example.com", "Mover123!")
	token, err := svc.client.Login(ctx, "mover@example.com", "Mover123!")
	require.NoError(t, err)
	user := svc.client.WithToken(token)

	requireStatus(t, user.ChangePassword(ctx, "Wrong123!", "Moved456!"), http.StatusUnauthorized)
	requireStatus(t, user.ChangePassword(ctx, "Mover123!", "weak"), http.StatusBadRequest)
	require.NoError(t, user.ChangePassword(ctx, "Mover123!", "Moved456!"))

	require.NoError(t, user.ChangeEmail(ctx, "moved@example.com", "Moved456!"))

	_, err = svc.client.Login(ctx, "moved@example.com", "Moved456!")
	require.NoError(t, err)
	_, err = svc.client.Login(ctx, "mover@example.com", "Moved456!")
	requireStatus(t, err, http.StatusBadRequest)
}
