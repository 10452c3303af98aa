package accountsdk

// ============================================================================
// Common Response Types
// ============================================================================

// Response is the envelope every endpoint answers with.
type Response struct {
	// Success is false on every failure
	Success bool `json:"success"`

	// Message describes the failure
	Message string `json:"message,omitempty"`
}

// FieldError is a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned with 400 when request fields are
// invalid.
type ValidationErrorResponse struct {
	Success  bool         `json:"success"`
	Messages []FieldError `json:"messages"`
}

// InviteValidationResponse is the validation failure of POST /invites,
// answered with status 402.
type InviteValidationResponse struct {
	Errors []FieldError `json:"errors"`
}

// ============================================================================
// Request Types
// ============================================================================

// EmailRequest is the body of invite creation and forgot-password.
type EmailRequest struct {
	Email string `json:"email"`
}

// PasswordRequest is the body of signup and reset-password.
type PasswordRequest struct {
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest carries the current password alongside the new one.
type ChangePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

// ChangeEmailRequest carries the new email and the current password.
type ChangeEmailRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangeRoleRequest struct {
	// Role is "user" or "admin"
	Role string `json:"role"`
}

// BootstrapRequest creates the first admin account.
type BootstrapRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ============================================================================
// Response Types
// ============================================================================

type LoginResponse struct {
	Success bool `json:"success"`

	// Token is the bearer token for the Authorization header
	Token string `json:"token"`
}

// Invite is the admin view of an outstanding invite. The token is never
// returned.
type Invite struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type InviteListResponse struct {
	Success bool     `json:"success"`
	Results int      `json:"results"`
	Data    []Invite `json:"data"`
}

// Account is the admin view of an account, without credentials.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AccountListResponse struct {
	Success bool      `json:"success"`
	Results int       `json:"results"`
	Data    []Account `json:"data"`
}

// BootstrapResponse describes the admin account bootstrap created.
type BootstrapResponse struct {
	Success bool    `json:"success"`
	Account Account `json:"account"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
