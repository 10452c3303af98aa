package service

import "strings"

// Kind classifies a workflow failure. The HTTP layer maps kinds to status codes.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindInvalidToken
	KindIncorrectCredentials
	KindUnauthorized
	KindForbidden
	KindDependency
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_failed"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindInvalidToken:
		return "invalid_token"
	case KindIncorrectCredentials:
		return "incorrect_credentials"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindDependency:
		return "dependency_failure"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. A *Error matches the sentinel of its Kind.
var (
	ErrValidation           = &Error{Kind: KindValidation}
	ErrConflict             = &Error{Kind: KindConflict}
	ErrNotFound             = &Error{Kind: KindNotFound}
	ErrInvalidToken         = &Error{Kind: KindInvalidToken}
	ErrIncorrectCredentials = &Error{Kind: KindIncorrectCredentials}
	ErrUnauthorized         = &Error{Kind: KindUnauthorized}
	ErrForbidden            = &Error{Kind: KindForbidden}
	ErrDependency           = &Error{Kind: KindDependency}
)

// User-facing messages.
const (
	MsgValidationFailed     = "Validation failed"
	MsgInviteExists         = "User with this email is already invited"
	MsgAccountExists        = "User with this email already exist"
	MsgInviteNotFound       = "Invite is not found"
	MsgTokenInvalid         = "Token is invalid"
	MsgIncorrectCredentials = "Incorrect username or password"
	MsgIncorrectPassword    = "Incorrect password"
	MsgUserNotFound         = "User not found"
	MsgUserIsNotFound       = "User is not found"
	MsgEmailNotFound        = "User with this email not found"
	MsgResetFailed          = "Error while reset password"
	MsgInviteDeliveryFailed = "Error while sending invitation"
	MsgChangeEmailFailed    = "Error while changing email"
	MsgAccessTokenUndefined = "Access token is undefined"
	MsgNotEnoughRights      = "Not enough access rights"
	MsgInternal             = "Internal error"
)

// FieldError is one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the failure every workflow operation returns.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func fail(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func dependency(msg string, err error) *Error {
	return &Error{Kind: KindDependency, Message: msg, Err: err}
}

func invalid(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: MsgValidationFailed, Fields: fields}
}
