package accountsdk

import (
	"context"
	"net/http"
)

// Signup registers the invited email with password, consuming the invite.
func (c *Client) Signup(ctx context.Context, inviteToken, password string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, apiPath("users", "signup", inviteToken),
		PasswordRequest{Password: password}, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}

// Login returns a bearer token for the account.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, apiPath("users", "login"),
		LoginRequest{Email: email, Password: password}, nil)
	if err != nil {
		return "", err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// ForgotPassword mails a reset link to email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, apiPath("users", "forgot-password"),
		EmailRequest{Email: email}, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}

// CheckResetToken reports whether token is a pending password reset.
func (c *Client) CheckResetToken(ctx context.Context, token string) (bool, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, apiPath("users", "check-token", token), nil, nil)
	if err != nil {
		return false, err
	}
	return checkToken(resp)
}

// ResetPassword sets a new password using the token from the reset link.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, apiPath("users", "reset-password", token),
		PasswordRequest{Password: password}, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}

// ChangePassword replaces the caller's password. Requires a token.
func (c *Client) ChangePassword(ctx context.Context, password, newPassword string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, APIPrefix+"/users/change-password/",
		ChangePasswordRequest{Password: password, NewPassword: newPassword}, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}

// ChangeEmail moves the caller's account to email. Requires a token.
func (c *Client) ChangeEmail(ctx context.Context, email, password string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, apiPath("users", "change-email"),
		ChangeEmailRequest{Email: email, Password: password}, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}

// ChangeRole sets the role of account id. Requires an admin token.
func (c *Client) ChangeRole(ctx context.Context, id, role string) error {
	resp, err := c.doRequest(ctx, http.MethodPut, apiPath("users", "change-role", id),
		ChangeRoleRequest{Role: role}, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}

// ListAccounts returns every account. Requires an admin token.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, apiPath("users"), nil, nil)
	if err != nil {
		return nil, err
	}

	var out AccountListResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// DeleteAccount removes account id. Requires an admin token.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, apiPath("users", id), nil, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}
