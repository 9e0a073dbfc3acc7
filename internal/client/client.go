// Package client implements the hoosh.Client interface over the shared HTTP
// transport.
package client

import (
	"strings"

	"github.com/hooshpro/hoosh-client-go/internal/http"
	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
)

// Client implements the hoosh.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     hoosh.Logger

	// Resource clients
	pages      hoosh.PagesClient
	components hoosh.ComponentsClient
	media      hoosh.MediaClient
	templates  hoosh.TemplatesClient
	flows      hoosh.FlowsClient
	public     hoosh.PublicClient
	auth       hoosh.AuthClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *hoosh.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.AccessToken != "" {
		httpOpts = append(httpOpts, http.WithAccessToken(config.AccessToken))
	} else if config.SessionToken != "" {
		httpOpts = append(httpOpts, http.WithSessionCredentials(config.SessionToken, config.CSRFToken))
	}

	if config.OnSessionExpired != nil {
		httpOpts = append(httpOpts, http.WithSessionExpiredFunc(config.OnSessionExpired))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New creates a new CMS API client.
func New(config *hoosh.Config) (*Client, error) {
	if config == nil {
		return nil, hoosh.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, hoosh.ErrEndpointRequired
	}

	endpoint := normalizeEndpoint(config.Endpoint)
	httpClient := http.NewClient(endpoint, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    endpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// normalizeEndpoint trims a trailing slash and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// initializeResourceClients creates all resource clients.
func (c *Client) initializeResourceClients() {
	c.pages = NewPagesClient(c.httpClient)
	c.components = NewComponentsClient(c.httpClient)
	c.media = NewMediaClient(c.httpClient)
	c.templates = NewTemplatesClient(c.httpClient)
	c.flows = NewFlowsClient(c.httpClient)
	c.public = NewPublicClient(c.httpClient)
	c.auth = NewAuthClient(c.httpClient)
}

// Pages returns the pages resource client.
func (c *Client) Pages() hoosh.PagesClient {
	return c.pages
}

// Components returns the components resource client.
func (c *Client) Components() hoosh.ComponentsClient {
	return c.components
}

// Media returns the media resource client.
func (c *Client) Media() hoosh.MediaClient {
	return c.media
}

// Templates returns the templates resource client.
func (c *Client) Templates() hoosh.TemplatesClient {
	return c.templates
}

// Flows returns the flows resource client.
func (c *Client) Flows() hoosh.FlowsClient {
	return c.flows
}

// Public returns the public (unauthenticated) client.
func (c *Client) Public() hoosh.PublicClient {
	return c.public
}

// Auth returns the session client.
func (c *Client) Auth() hoosh.AuthClient {
	return c.auth
}
