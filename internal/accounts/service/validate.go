package service

import (
	"net/mail"
	"strings"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
)

const MinPasswordLength = 6

const (
	msgPasswordTooShort = "Must be at least 6 chars long"
	msgPasswordTooLong  = "Must be at most 72 bytes long"
	msgPasswordNoDigit  = "Must contain a number"
	msgPasswordNoLetter = "Must contain a character"
	msgEmailInvalid     = "Email is invalid"
	msgRoleUnavailable  = "Role is not available"
)

// ValidatePassword reports every rule password breaks.
func ValidatePassword(field, password string) []FieldError {
	var errs []FieldError
	add := func(msg string) { errs = append(errs, FieldError{Field: field, Message: msg}) }

	if len([]rune(password)) < MinPasswordLength {
		add(msgPasswordTooShort)
	}
	if len(password) > cryptox.MaxPasswordBytes {
		add(msgPasswordTooLong)
	}
	if !strings.ContainsFunc(password, isASCIIDigit) {
		add(msgPasswordNoDigit)
	}
	if !strings.ContainsFunc(password, isASCIILetter) {
		add(msgPasswordNoLetter)
	}
	return errs
}

func isASCIIDigit(r rune) bool { return '0' <= r && r <= '9' }

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// ValidateEmail accepts a bare address with a dotted domain.
func ValidateEmail(field, email string) []FieldError {
	if !IsEmail(email) {
		return []FieldError{{Field: field, Message: msgEmailInvalid}}
	}
	return nil
}

func IsEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > 254 {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return false
	}

	at := strings.LastIndexByte(email, '@')
	local, host := email[:at], email[at+1:]
	if local == "" || len(local) > 64 {
		return false
	}
	dot := strings.LastIndexByte(host, '.')
	return dot > 0 && dot < len(host)-1 && !strings.Contains(host, "..")
}

// ValidateRole parses role, reporting a field error for anything but user/admin.
func ValidateRole(field, role string) (domain.Role, []FieldError) {
	r, err := domain.ParseRole(role)
	if err != nil {
		return "", []FieldError{{Field: field, Message: msgRoleUnavailable}}
	}
	return r, nil
}
