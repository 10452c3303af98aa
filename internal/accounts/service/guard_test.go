package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

func TestGuard(t *testing.T) {
	e := newEnv(t)

	userToken, err := e.tokens.Issue("ada@example.com", "user")
	require.NoError(t, err)
	adminToken, err := e.tokens.Issue("root@example.com", "admin")
	require.NoError(t, err)

	expired, err := e.tokens.Sign(jwtx.NewClaims("ada@example.com", "user", "accounts",
		time.Minute, time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	other, err := jwtx.NewHS256(jwtx.HS256Options{Secret: []byte("someone-else-entirely"), Issuer: "accounts"})
	require.NoError(t, err)
	forged, err := other.Issue("root@example.com", "admin")
	require.NoError(t, err)

	tests := []struct {
		name    string
		bearer  string
		admin   bool
		kind    service.Kind
		message string
	}{
		{name: "user passes authenticated", bearer: userToken},
		{name: "admin passes admin", bearer: adminToken, admin: true},
		{name: "missing", bearer: "", kind: service.KindUnauthorized, message: "Access token is undefined"},
		{name: "missing on admin", bearer: "", admin: true, kind: service.KindUnauthorized, message: "Access token is undefined"},
		{name: "garbage", bearer: "not-a-jwt", kind: service.KindUnauthorized, message: "jwt malformed"},
		{name: "expired", bearer: expired, kind: service.KindUnauthorized, message: "jwt expired"},
		{name: "wrong secret", bearer: forged, admin: true, kind: service.KindUnauthorized, message: "invalid signature"},
		{name: "user on admin", bearer: userToken, admin: true, kind: service.KindForbidden, message: "Not enough access rights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := e.guard.RequireAuthenticated
			if tt.admin {
				check = e.guard.RequireAdmin
			}

			claims, err := check(tt.bearer)
			if tt.kind == 0 {
				require.NoError(t, err)
				require.NotEmpty(t, claims.Email)
				return
			}

			svcErr := requireKind(t, err, tt.kind)
			require.Equal(t, tt.message, svcErr.Message)
		})
	}
}
