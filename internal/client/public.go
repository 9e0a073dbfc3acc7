package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/hooshpro/hoosh-client-go/internal/http"
	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
)

// PublicClient implements hoosh.PublicClient. These endpoints need no
// session; a configured session is simply ignored by the backend.
type PublicClient struct {
	httpClient *http.Client
}

// NewPublicClient creates a new public content client.
func NewPublicClient(httpClient *http.Client) *PublicClient {
	return &PublicClient{httpClient: httpClient}
}

// GetPage implements hoosh.PublicClient.GetPage.
func (c *PublicClient) GetPage(ctx context.Context, slug string) (*hoosh.PublicPage, error) {
	path := "/api/public-content/page/" + url.PathEscape(slug)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting public page: %w", err)
	}

	var page hoosh.PublicPage
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing public page response: %w", err)
	}

	return &page, nil
}

// GetOptions implements hoosh.PublicClient.GetOptions.
func (c *PublicClient) GetOptions(ctx context.Context) (hoosh.JSONMap, error) {
	resp, err := c.httpClient.Get(ctx, "/api/public/options", nil)
	if err != nil {
		return nil, fmt.Errorf("getting site options: %w", err)
	}

	var options hoosh.JSONMap
	if err := json.Unmarshal(resp.Body, &options); err != nil {
		return nil, fmt.Errorf("parsing site options response: %w", err)
	}

	return options, nil
}

// GetActiveTheme implements hoosh.PublicClient.GetActiveTheme.
func (c *PublicClient) GetActiveTheme(ctx context.Context) (*hoosh.Theme, error) {
	resp, err := c.httpClient.Get(ctx, "/api/public/themes/active", nil)
	if err != nil {
		return nil, fmt.Errorf("getting active theme: %w", err)
	}

	var theme hoosh.Theme
	if err := json.Unmarshal(resp.Body, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme response: %w", err)
	}

	return &theme, nil
}

// TriggerFlow implements hoosh.PublicClient.TriggerFlow.
func (c *PublicClient) TriggerFlow(ctx context.Context, slug string, request *hoosh.FlowTriggerRequest) (hoosh.FlowTriggerResult, error) {
	path := "/api/public/flows/" + url.PathEscape(slug) + "/trigger"

	if request == nil {
		request = &hoosh.FlowTriggerRequest{}
	}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("triggering flow: %w", err)
	}

	var result hoosh.FlowTriggerResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing flow trigger result: %w", err)
	}

	return result, nil
}
