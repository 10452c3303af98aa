package accountsdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/users/login", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, LoginRequest{Email: "ada@example.com", Password: "abc123"}, req)

		writeJSON(w, http.StatusOK, LoginResponse{Success: true, Token: "jwt"})
	})

	token, err := c.Login(context.Background(), "ada@example.com", "abc123")
	require.NoError(t, err)
	require.Equal(t, "jwt", token)
}

func TestWithToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, AccountListResponse{
			Success: true,
			Results: 1,
			Data:    []Account{{ID: "01", Email: "ada@example.com", Role: "admin"}},
		})
	})

	authed := c.WithToken("jwt")
	require.Empty(t, c.Token, "WithToken must not mutate the receiver")

	accounts, err := authed.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Account{{ID: "01", Email: "ada@example.com", Role: "admin"}}, accounts)
}

func TestCheckInviteToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/invites/check-token/good":
			writeJSON(w, http.StatusOK, Response{Success: true})
		case "/api/v1/invites/check-token/bad":
			writeJSON(w, http.StatusBadRequest, Response{Message: "Token is invalid"})
		default:
			writeJSON(w, http.StatusInternalServerError, Response{Message: "boom"})
		}
	})
	ctx := context.Background()

	ok, err := c.CheckInviteToken(ctx, "good")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.CheckInviteToken(ctx, "bad")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = c.CheckInviteToken(ctx, "other")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Equal(t, "boom", apiErr.Message)
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		message string
		fields  int
	}{
		{
			name:    "message envelope",
			status:  http.StatusNotFound,
			body:    Response{Message: "User is not found"},
			message: "User is not found",
		},
		{
			name:    "validation messages",
			status:  http.StatusBadRequest,
			body:    ValidationErrorResponse{Messages: []FieldError{{Field: "password", Message: "Must contain a number"}}},
			message: "Must contain a number",
			fields:  1,
		},
		{
			name:   "invite validation errors",
			status: http.StatusPaymentRequired,
			body: InviteValidationResponse{Errors: []FieldError{
				{Field: "email", Message: "Email is invalid"},
				{Field: "email", Message: "Email is invalid"},
			}},
			message: "Email is invalid",
			fields:  2,
		},
		{
			name:    "not json",
			status:  http.StatusBadGateway,
			body:    "<html>",
			message: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if s, ok := tt.body.(string); ok {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(s))
					return
				}
				writeJSON(w, tt.status, tt.body)
			})

			err := c.CreateInvite(context.Background(), "ada@example.com")

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, tt.status, apiErr.StatusCode)
			require.Equal(t, tt.message, apiErr.Message)
			require.Len(t, apiErr.Fields, tt.fields)
		})
	}
}

func TestPathsAreEscaped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/users/a%2Fb", r.URL.EscapedPath())
		writeJSON(w, http.StatusCreated, Response{Success: true})
	})

	require.NoError(t, c.DeleteAccount(context.Background(), "a/b"))
}

func TestBootstrapSendsHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/bootstrap", r.URL.Path)
		require.Equal(t, "secret", r.Header.Get(BootstrapTokenHeader))
		writeJSON(w, http.StatusCreated, BootstrapResponse{
			Success: true,
			Account: Account{ID: "01", Email: "root@example.com", Role: "admin"},
		})
	})

	out, err := c.Bootstrap(context.Background(), "secret", BootstrapRequest{Email: "root@example.com", Password: "root12"})
	require.NoError(t, err)
	require.Equal(t, "admin", out.Account.Role)
}
