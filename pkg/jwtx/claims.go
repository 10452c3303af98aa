package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of a bearer token issued at login (five days).
const DefaultTokenTTL = 432000 * time.Second

// Claims are the bearer-token claims. Email and Role carry the identity the
// routing layer authorizes on; everything else is registered JWT metadata.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated account at the time of login
	Email string `json:"email"`

	// Role of the account, "user" or "admin"
	Role string `json:"role"`
}

// NewClaims builds minimally-correct claims for an account.
func NewClaims(email, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email: email,
		Role:  role,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used before nbf.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrExpired // every token we issue carries exp
	}
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}

// ValidateIdentity ensures the identity claims are usable.
func (c *Claims) ValidateIdentity() error {
	if c.Email == "" || c.Role == "" {
		return ErrInvalidClaim
	}
	return nil
}
