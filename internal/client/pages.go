package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/hooshpro/hoosh-client-go/internal/http"
	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
)

// PagesClient implements hoosh.PagesClient.
type PagesClient struct {
	httpClient *http.Client
}

// NewPagesClient creates a new pages client.
func NewPagesClient(httpClient *http.Client) *PagesClient {
	return &PagesClient{httpClient: httpClient}
}

// List implements hoosh.PagesClient.List.
func (c *PagesClient) List(ctx context.Context, params *hoosh.PageListParams) (*hoosh.PageList, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	} else {
		query = (&hoosh.PageListParams{}).ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/api/admin/pages", query)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}

	var result hoosh.PageList
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing pages list response: %w", err)
	}

	return &result, nil
}

// Get implements hoosh.PagesClient.Get.
func (c *PagesClient) Get(ctx context.Context, id int64) (*hoosh.Page, error) {
	path := fmt.Sprintf("/api/admin/pages/%d", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting page: %w", err)
	}

	var page hoosh.Page
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing page response: %w", err)
	}

	return &page, nil
}

// Create implements hoosh.PagesClient.Create.
func (c *PagesClient) Create(ctx context.Context, request *hoosh.PageCreateRequest) (*hoosh.Page, error) {
	resp, err := c.httpClient.Post(ctx, "/api/admin/pages", request)
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	var page hoosh.Page
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing page response: %w", err)
	}

	return &page, nil
}

// Update implements hoosh.PagesClient.Update.
func (c *PagesClient) Update(ctx context.Context, id int64, request *hoosh.PageUpdateRequest) (*hoosh.Page, error) {
	path := fmt.Sprintf("/api/admin/pages/%d", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating page: %w", err)
	}

	var page hoosh.Page
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing page response: %w", err)
	}

	return &page, nil
}

// Delete implements hoosh.PagesClient.Delete.
func (c *PagesClient) Delete(ctx context.Context, id int64) (*hoosh.DeleteResult, error) {
	path := fmt.Sprintf("/api/admin/pages/%d", id)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting page: %w", err)
	}

	var result hoosh.DeleteResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return &result, nil
}
