// Package hooshclient provides the main entry point for creating Hoosh Pro
// CMS API clients.
package hooshclient

import (
	"fmt"

	"github.com/hooshpro/hoosh-client-go/internal/client"
	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
)

// New creates a new CMS API client from a full config.
func New(config *hoosh.Config) (hoosh.Client, error) {
	if config == nil {
		return nil, hoosh.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, hoosh.ErrEndpointRequired
	}

	cmsClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cmsClient, nil
}

// NewWithSession creates a client authenticated with an existing session and
// CSRF cookie pair, the admin-UI mode.
func NewWithSession(endpoint, sessionToken, csrfToken string) (hoosh.Client, error) {
	return New(&hoosh.Config{
		Endpoint:     endpoint,
		SessionToken: sessionToken,
		CSRFToken:    csrfToken,
	})
}

// NewWithToken creates a client authenticated with a static bearer token, for
// scripts and service integrations.
func NewWithToken(endpoint, accessToken string) (hoosh.Client, error) {
	return New(&hoosh.Config{
		Endpoint:    endpoint,
		AccessToken: accessToken,
	})
}

// NewPublic creates an unauthenticated client; only the Public surface and
// Auth().Login are usable until a session is established.
func NewPublic(endpoint string) (hoosh.Client, error) {
	return New(&hoosh.Config{Endpoint: endpoint})
}
