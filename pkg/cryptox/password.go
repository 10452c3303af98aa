package cryptox

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor applied to every stored password.
// It is fixed so every hash in the store carries the same cost.
const PasswordCost = 12

// MaxPasswordBytes is the longest input bcrypt will accept. Anything past it
// would otherwise be silently truncated.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by HashPassword for input over MaxPasswordBytes.
var ErrPasswordTooLong = errors.New("cryptox: password exceeds 72 bytes")

// HashPassword returns a salted bcrypt hash ("$2a$12$...") of password.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A malformed or empty hash simply does not match.
func VerifyPassword(password, encodedHash string) bool {
	if encodedHash == "" || !utf8.ValidString(encodedHash) {
		return false
	}
	// bcrypt compares the derived key with subtle.ConstantTimeCompare
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
