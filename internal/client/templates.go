package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/hooshpro/hoosh-client-go/internal/http"
	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
)

// TemplatesClient implements hoosh.TemplatesClient.
type TemplatesClient struct {
	httpClient *http.Client
}

// NewTemplatesClient creates a new templates client.
func NewTemplatesClient(httpClient *http.Client) *TemplatesClient {
	return &TemplatesClient{httpClient: httpClient}
}

// List implements hoosh.TemplatesClient.List.
func (c *TemplatesClient) List(ctx context.Context, params *hoosh.TemplateListParams) (*hoosh.TemplateList, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	} else {
		query = (&hoosh.TemplateListParams{}).ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/api/admin/templates", query)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	var result hoosh.TemplateList
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing templates list response: %w", err)
	}

	return &result, nil
}

// Get implements hoosh.TemplatesClient.Get.
func (c *TemplatesClient) Get(ctx context.Context, id int64) (*hoosh.PageTemplate, error) {
	path := fmt.Sprintf("/api/admin/templates/%d", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	var template hoosh.PageTemplate
	if err := json.Unmarshal(resp.Body, &template); err != nil {
		return nil, fmt.Errorf("parsing template response: %w", err)
	}

	return &template, nil
}

// Create implements hoosh.TemplatesClient.Create.
func (c *TemplatesClient) Create(ctx context.Context, request *hoosh.TemplateCreateRequest) (*hoosh.PageTemplate, error) {
	resp, err := c.httpClient.Post(ctx, "/api/admin/templates", request)
	if err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}

	var template hoosh.PageTemplate
	if err := json.Unmarshal(resp.Body, &template); err != nil {
		return nil, fmt.Errorf("parsing template response: %w", err)
	}

	return &template, nil
}

// Update implements hoosh.TemplatesClient.Update.
func (c *TemplatesClient) Update(ctx context.Context, id int64, request *hoosh.TemplateUpdateRequest) (*hoosh.PageTemplate, error) {
	path := fmt.Sprintf("/api/admin/templates/%d", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating template: %w", err)
	}

	var template hoosh.PageTemplate
	if err := json.Unmarshal(resp.Body, &template); err != nil {
		return nil, fmt.Errorf("parsing template response: %w", err)
	}

	return &template, nil
}

// Delete implements hoosh.TemplatesClient.Delete.
func (c *TemplatesClient) Delete(ctx context.Context, id int64) (*hoosh.DeleteResult, error) {
	path := fmt.Sprintf("/api/admin/templates/%d", id)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting template: %w", err)
	}

	var result hoosh.DeleteResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return &result, nil
}
