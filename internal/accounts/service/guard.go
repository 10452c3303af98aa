package service

import (
	"errors"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

// Guard holds the two authorization predicates the routing layer runs
// before protected operations. It keeps no state between calls.
type Guard struct {
	Verifier jwtx.Verifier
}

// RequireAuthenticated verifies bearer and returns its claims.
func (g *Guard) RequireAuthenticated(bearer string) (jwtx.Claims, error) {
	if bearer == "" {
		return jwtx.Claims{}, fail(KindUnauthorized, MsgAccessTokenUndefined)
	}

	claims, err := g.Verifier.Verify(bearer)
	if err != nil {
		return jwtx.Claims{}, &Error{Kind: KindUnauthorized, Message: verifyMessage(err), Err: err}
	}
	return claims, nil
}

// RequireAdmin is RequireAuthenticated plus role == admin.
func (g *Guard) RequireAdmin(bearer string) (jwtx.Claims, error) {
	claims, err := g.RequireAuthenticated(bearer)
	if err != nil {
		return jwtx.Claims{}, err
	}
	if domain.Role(claims.Role) != domain.RoleAdmin {
		return jwtx.Claims{}, fail(KindForbidden, MsgNotEnoughRights)
	}
	return claims, nil
}

func verifyMessage(err error) string {
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return "jwt expired"
	case errors.Is(err, jwtx.ErrNotYetValid):
		return "jwt not active"
	case errors.Is(err, jwtx.ErrMalformed):
		return "jwt malformed"
	case errors.Is(err, jwtx.ErrInvalidSig), errors.Is(err, jwtx.ErrAlgMismatch):
		return "invalid signature"
	case errors.Is(err, jwtx.ErrIssuer):
		return "jwt issuer invalid"
	default:
		return "invalid token"
	}
}
