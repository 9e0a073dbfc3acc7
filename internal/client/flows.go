package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hooshpro/hoosh-client-go/internal/constants"
	"github.com/hooshpro/hoosh-client-go/internal/http"
	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
)

// FlowsClient implements hoosh.FlowsClient.
type FlowsClient struct {
	httpClient *http.Client
}

// NewFlowsClient creates a new flows client.
func NewFlowsClient(httpClient *http.Client) *FlowsClient {
	return &FlowsClient{httpClient: httpClient}
}

// List implements hoosh.FlowsClient.List.
func (c *FlowsClient) List(ctx context.Context, params *hoosh.FlowListParams) (*hoosh.FlowList, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	} else {
		query = (&hoosh.FlowListParams{}).ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/api/admin/flows", query)
	if err != nil {
		return nil, fmt.Errorf("listing flows: %w", err)
	}

	var result hoosh.FlowList
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing flows list response: %w", err)
	}

	return &result, nil
}

// Get implements hoosh.FlowsClient.Get.
func (c *FlowsClient) Get(ctx context.Context, id int64) (*hoosh.Flow, error) {
	path := fmt.Sprintf("/api/admin/flows/%d", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting flow: %w", err)
	}

	var flow hoosh.Flow
	if err := json.Unmarshal(resp.Body, &flow); err != nil {
		return nil, fmt.Errorf("parsing flow response: %w", err)
	}

	return &flow, nil
}

// Create implements hoosh.FlowsClient.Create.
func (c *FlowsClient) Create(ctx context.Context, request *hoosh.FlowCreateRequest) (*hoosh.Flow, error) {
	resp, err := c.httpClient.Post(ctx, "/api/admin/flows", request)
	if err != nil {
		return nil, fmt.Errorf("creating flow: %w", err)
	}

	var flow hoosh.Flow
	if err := json.Unmarshal(resp.Body, &flow); err != nil {
		return nil, fmt.Errorf("parsing flow response: %w", err)
	}

	return &flow, nil
}

// Update implements hoosh.FlowsClient.Update.
func (c *FlowsClient) Update(ctx context.Context, id int64, request *hoosh.FlowUpdateRequest) (*hoosh.Flow, error) {
	path := fmt.Sprintf("/api/admin/flows/%d", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating flow: %w", err)
	}

	var flow hoosh.Flow
	if err := json.Unmarshal(resp.Body, &flow); err != nil {
		return nil, fmt.Errorf("parsing flow response: %w", err)
	}

	return &flow, nil
}

// Delete implements hoosh.FlowsClient.Delete.
func (c *FlowsClient) Delete(ctx context.Context, id int64) (*hoosh.DeleteResult, error) {
	path := fmt.Sprintf("/api/admin/flows/%d", id)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting flow: %w", err)
	}

	var result hoosh.DeleteResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return &result, nil
}

// RunTest implements hoosh.FlowsClient.RunTest. The run is synchronous and
// does not touch the flow's status; the result shape is backend-defined and
// passed through untouched.
func (c *FlowsClient) RunTest(ctx context.Context, id int64, request *hoosh.FlowTriggerRequest) (hoosh.FlowTriggerResult, error) {
	path := fmt.Sprintf("/api/admin/flows/%d/run-test", id)

	if request == nil {
		request = &hoosh.FlowTriggerRequest{}
	}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("running flow test: %w", err)
	}

	var result hoosh.FlowTriggerResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing flow run result: %w", err)
	}

	return result, nil
}

// ListRuns implements hoosh.FlowsClient.ListRuns.
func (c *FlowsClient) ListRuns(ctx context.Context, id int64, limit, offset int) (*hoosh.FlowRunList, error) {
	if limit <= 0 {
		limit = constants.RunsPageSize
	}

	if offset < 0 {
		offset = 0
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	path := fmt.Sprintf("/api/admin/flows/%d/runs", id)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing flow runs: %w", err)
	}

	var result hoosh.FlowRunList
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing flow runs response: %w", err)
	}

	return &result, nil
}
