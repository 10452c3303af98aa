package domain

import (
	"strings"
	"time"
)

type Account struct {
	ID             string
	Email          string
	PasswordHash   string // bcrypt encoded
	Role           Role
	ResetTokenHash string // fingerprint of the outstanding reset token, empty when none
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasResetToken reports whether a password reset is outstanding.
func (a Account) HasResetToken() bool { return a.ResetTokenHash != "" }

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
