package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret NewHS256 accepts.
const MinSecretLength = 16

// HS256Options configures an HS256 issuer/verifier.
type HS256Options struct {
	// Secret is the server-held HMAC key. Required.
	Secret []byte

	// Issuer is stamped into "iss" and enforced on verify. Empty disables both.
	Issuer string

	// TTL of issued tokens. Zero means DefaultTokenTTL.
	TTL time.Duration

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// HS256 signs and verifies tokens with a shared secret. It satisfies both
// Issuer and Verifier; the signing key never leaves the process.
type HS256 struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewHS256 validates opts and returns a ready HS256.
func NewHS256(opts HS256Options) (*HS256, error) {
	if len(opts.Secret) < MinSecretLength {
		return nil, fmt.Errorf("jwtx: secret must be at least %d bytes", MinSecretLength)
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	secret := make([]byte, len(opts.Secret))
	copy(secret, opts.Secret)

	return &HS256{
		secret: secret,
		issuer: opts.Issuer,
		ttl:    ttl,
		now:    now,
	}, nil
}

func (h *HS256) Alg() string        { return jwt.SigningMethodHS256.Alg() }
func (h *HS256) TTL() time.Duration { return h.ttl }

// Issue creates a signed token carrying email and role.
func (h *HS256) Issue(email, role string) (string, error) {
	return h.Sign(NewClaims(email, role, h.issuer, h.ttl, h.now().UTC()))
}

// Sign turns claims into a compact JWS string.
func (h *HS256) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// Verify checks signature, algorithm, expiry and issuer. Every failure wraps
// ErrInvalid plus the specific cause.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(h.now),
		jwt.WithExpirationRequired(),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return h.secret, nil
	})
	if err != nil {
		return Claims{}, invalid(mapParseError(err))
	}
	if !token.Valid {
		return Claims{}, invalid(ErrInvalidSig)
	}

	// Now check all the claim requirements
	if err := claims.ValidateExpiry(h.now()); err != nil {
		return Claims{}, invalid(err)
	}
	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, invalid(err)
	}
	if err := claims.ValidateIdentity(); err != nil {
		return Claims{}, invalid(err)
	}

	return claims, nil
}

func invalid(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalid, cause)
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, ErrAlgMismatch):
		return ErrAlgMismatch
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return ErrInvalidClaim
	default:
		return err
	}
}
