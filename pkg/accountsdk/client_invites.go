package accountsdk

import (
	"context"
	"net/http"
)

// CreateInvite invites email to register. Requires an admin token.
func (c *Client) CreateInvite(ctx context.Context, email string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, apiPath("invites"), EmailRequest{Email: email}, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}

// CheckInviteToken reports whether token belongs to an outstanding invite.
func (c *Client) CheckInviteToken(ctx context.Context, token string) (bool, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, apiPath("invites", "check-token", token), nil, nil)
	if err != nil {
		return false, err
	}
	return checkToken(resp)
}

// ListInvites returns every outstanding invite. Requires an admin token.
func (c *Client) ListInvites(ctx context.Context) ([]Invite, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, apiPath("invites"), nil, nil)
	if err != nil {
		return nil, err
	}

	var out InviteListResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// DeleteInvite withdraws invite id. Requires an admin token.
func (c *Client) DeleteInvite(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, apiPath("invites", id), nil, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}
