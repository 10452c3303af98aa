package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"max length password", strings.Repeat("a", MaxPasswordBytes)},
		{"unicode password", "пароль🔒密码1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEqual(t, tt.password, hash)
			require.True(t, strings.HasPrefix(hash, "$2a$12$"), "hash should be bcrypt cost 12, got %q", hash)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			require.Equal(t, PasswordCost, cost)

			require.True(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	hash1, err := HashPassword("samepassword1")
	require.NoError(t, err)
	hash2, err := HashPassword("samepassword1")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
	require.True(t, VerifyPassword("samepassword1", hash1))
	require.True(t, VerifyPassword("samepassword1", hash2))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes+1))
	require.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password1")
	require.NoError(t, err)

	for _, wrong := range []string{"wrong-password1", "", "Correct-password1", "correct-password1 "} {
		require.False(t, VerifyPassword(wrong, hash), "password %q should not verify", wrong)
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"plaintext", "abc123"},
		{"truncated bcrypt", "$2a$12$short"},
		{"argon2 phc string", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"invalid utf8", string([]byte{0xff, 0xfe, 0xfd})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				require.False(t, VerifyPassword("abc123", tt.hash))
			})
		})
	}
}
