/*
Package accountsdk provides a client for the accounts service HTTP API.

# Overview

The Client covers every endpoint. Public operations (login, signup with an
invite token, password reset) need no credentials; protected operations use
the bearer token set with WithToken:

	client := accountsdk.NewClient("https://accounts.example.com")

	token, err := client.Login(ctx, "ada@example.com", "abc123")
	if err != nil {
		return err
	}

	admin := client.WithToken(token)
	invites, err := admin.ListInvites(ctx)

# Token checks

CheckInviteToken and CheckResetToken report validity as a bool. The server
answers an unknown token with 400, which is not an error here.

# Errors

Every non-2xx answer is returned as *APIError carrying the status code, the
server's message and any per-field validation failures:

	err := client.Signup(ctx, inviteToken, "abc")
	var apiErr *accountsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
		for _, f := range apiErr.Fields {
			fmt.Println(f.Field, f.Message)
		}
	}

The request and response types in this package are also the wire types the
service encodes, so client and server cannot drift apart.
*/
package accountsdk
