package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/hooshpro/hoosh-client-go/internal/constants"
	"github.com/hooshpro/hoosh-client-go/internal/http"
	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
)

// AuthClient implements hoosh.AuthClient.
type AuthClient struct {
	httpClient *http.Client
}

// NewAuthClient creates a new auth client.
func NewAuthClient(httpClient *http.Client) *AuthClient {
	return &AuthClient{httpClient: httpClient}
}

// loginRequest is the login wire payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the login response body; the credentials themselves arrive
// as Set-Cookie headers.
type loginResponse struct {
	User *hoosh.User `json:"user"`
}

// Login implements hoosh.AuthClient.Login. The backend answers with the
// session and CSRF cookies; both are extracted and installed on the transport
// so subsequent admin calls are authenticated.
func (c *AuthClient) Login(ctx context.Context, email, password string) (*hoosh.Session, error) {
	resp, err := c.httpClient.Post(ctx, "/api/auth/login", &loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	session := &hoosh.Session{}

	cookies := (&nethttp.Response{Header: resp.Headers}).Cookies()
	for _, cookie := range cookies {
		switch cookie.Name {
		case constants.SessionCookieName:
			session.Token = cookie.Value
		case constants.CSRFCookieName:
			session.CSRFToken = cookie.Value
		}
	}

	if session.Token == "" {
		return nil, hoosh.ErrNoSessionEstablished
	}

	var body loginResponse
	if err := json.Unmarshal(resp.Body, &body); err == nil {
		session.User = body.User
	}

	c.httpClient.SetSessionCredentials(session.Token, session.CSRFToken)

	return session, nil
}

// Logout implements hoosh.AuthClient.Logout. The transport's credentials are
// dropped as well, so later admin calls fail with 401 instead of sending a
// dead session cookie.
func (c *AuthClient) Logout(ctx context.Context) error {
	_, err := c.httpClient.Post(ctx, "/api/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	c.httpClient.ClearSessionCredentials()

	return nil
}

// Me implements hoosh.AuthClient.Me.
func (c *AuthClient) Me(ctx context.Context) (*hoosh.User, error) {
	resp, err := c.httpClient.Get(ctx, "/api/auth/me", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	var user hoosh.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}
