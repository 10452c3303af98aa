package accountsdk

import (
	"net/http"
	"strings"
	"time"
)

// APIPrefix is the path prefix of every account endpoint.
const APIPrefix = "/api/v1"

// Client talks to the accounts service. The zero Token makes unauthenticated
// requests; use WithToken for protected endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is sent as "Authorization: Bearer <token>" when set
	Token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of c that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}
