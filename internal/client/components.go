package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/hooshpro/hoosh-client-go/internal/http"
	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
)

// ComponentsClient implements hoosh.ComponentsClient.
type ComponentsClient struct {
	httpClient *http.Client
}

// NewComponentsClient creates a new components client.
func NewComponentsClient(httpClient *http.Client) *ComponentsClient {
	return &ComponentsClient{httpClient: httpClient}
}

// List implements hoosh.ComponentsClient.List.
func (c *ComponentsClient) List(ctx context.Context, params *hoosh.ComponentListParams) (*hoosh.ComponentList, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	} else {
		query = (&hoosh.ComponentListParams{}).ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/api/admin/components", query)
	if err != nil {
		return nil, fmt.Errorf("listing components: %w", err)
	}

	var result hoosh.ComponentList
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing components list response: %w", err)
	}

	return &result, nil
}

// Get implements hoosh.ComponentsClient.Get.
func (c *ComponentsClient) Get(ctx context.Context, id int64) (*hoosh.Component, error) {
	path := fmt.Sprintf("/api/admin/components/%d", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting component: %w", err)
	}

	var component hoosh.Component
	if err := json.Unmarshal(resp.Body, &component); err != nil {
		return nil, fmt.Errorf("parsing component response: %w", err)
	}

	return &component, nil
}

// Create implements hoosh.ComponentsClient.Create.
func (c *ComponentsClient) Create(ctx context.Context, request *hoosh.ComponentCreateRequest) (*hoosh.Component, error) {
	resp, err := c.httpClient.Post(ctx, "/api/admin/components", request)
	if err != nil {
		return nil, fmt.Errorf("creating component: %w", err)
	}

	var component hoosh.Component
	if err := json.Unmarshal(resp.Body, &component); err != nil {
		return nil, fmt.Errorf("parsing component response: %w", err)
	}

	return &component, nil
}

// Update implements hoosh.ComponentsClient.Update.
func (c *ComponentsClient) Update(ctx context.Context, id int64, request *hoosh.ComponentUpdateRequest) (*hoosh.Component, error) {
	path := fmt.Sprintf("/api/admin/components/%d", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating component: %w", err)
	}

	var component hoosh.Component
	if err := json.Unmarshal(resp.Body, &component); err != nil {
		return nil, fmt.Errorf("parsing component response: %w", err)
	}

	return &component, nil
}

// Delete implements hoosh.ComponentsClient.Delete.
func (c *ComponentsClient) Delete(ctx context.Context, id int64) (*hoosh.DeleteResult, error) {
	path := fmt.Sprintf("/api/admin/components/%d", id)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting component: %w", err)
	}

	var result hoosh.DeleteResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return &result, nil
}
