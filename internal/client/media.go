package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hooshpro/hoosh-client-go/internal/http"
	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
)

// MediaClient implements hoosh.MediaClient.
type MediaClient struct {
	httpClient *http.Client
}

// NewMediaClient creates a new media client.
func NewMediaClient(httpClient *http.Client) *MediaClient {
	return &MediaClient{httpClient: httpClient}
}

// List implements hoosh.MediaClient.List.
func (c *MediaClient) List(ctx context.Context, params *hoosh.MediaListParams) (*hoosh.MediaList, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	} else {
		query = (&hoosh.MediaListParams{}).ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/api/admin/media", query)
	if err != nil {
		return nil, fmt.Errorf("listing media: %w", err)
	}

	var result hoosh.MediaList
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing media list response: %w", err)
	}

	return &result, nil
}

// Get implements hoosh.MediaClient.Get.
func (c *MediaClient) Get(ctx context.Context, id int64) (*hoosh.MediaAsset, error) {
	path := fmt.Sprintf("/api/admin/media/%d", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting media asset: %w", err)
	}

	var asset hoosh.MediaAsset
	if err := json.Unmarshal(resp.Body, &asset); err != nil {
		return nil, fmt.Errorf("parsing media asset response: %w", err)
	}

	return &asset, nil
}

// Upload implements hoosh.MediaClient.Upload. The file goes up as
// multipart/form-data: the body under "file", the target folder as a plain
// "folder_id" field. Folder id 0 is a real target (the root folder) and is
// sent explicitly; a nil FolderID omits the field.
func (c *MediaClient) Upload(ctx context.Context, request *hoosh.MediaUploadRequest) (*hoosh.MediaAsset, error) {
	if request == nil || request.Content == nil {
		return nil, hoosh.ErrUploadFileRequired
	}

	fields := map[string]string{}
	if request.FolderID != nil {
		fields["folder_id"] = strconv.FormatInt(*request.FolderID, 10)
	}

	resp, err := c.httpClient.PostMultipart(ctx, "/api/admin/media/upload", fields, "file", request.FileName, request.Content)
	if err != nil {
		return nil, fmt.Errorf("uploading media: %w", err)
	}

	var asset hoosh.MediaAsset
	if err := json.Unmarshal(resp.Body, &asset); err != nil {
		return nil, fmt.Errorf("parsing media asset response: %w", err)
	}

	return &asset, nil
}

// Move implements hoosh.MediaClient.Move.
func (c *MediaClient) Move(ctx context.Context, id int64, request *hoosh.MediaMoveRequest) (*hoosh.MediaAsset, error) {
	path := fmt.Sprintf("/api/admin/media/%d", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("moving media asset: %w", err)
	}

	var asset hoosh.MediaAsset
	if err := json.Unmarshal(resp.Body, &asset); err != nil {
		return nil, fmt.Errorf("parsing media asset response: %w", err)
	}

	return &asset, nil
}

// Delete implements hoosh.MediaClient.Delete.
func (c *MediaClient) Delete(ctx context.Context, id int64) (*hoosh.DeleteResult, error) {
	path := fmt.Sprintf("/api/admin/media/%d", id)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting media asset: %w", err)
	}

	var result hoosh.DeleteResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return &result, nil
}

// ListFolders implements hoosh.MediaClient.ListFolders.
func (c *MediaClient) ListFolders(ctx context.Context) (*hoosh.MediaFolderList, error) {
	resp, err := c.httpClient.Get(ctx, "/api/admin/media/folders", nil)
	if err != nil {
		return nil, fmt.Errorf("listing media folders: %w", err)
	}

	var result hoosh.MediaFolderList
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing media folders response: %w", err)
	}

	return &result, nil
}

// CreateFolder implements hoosh.MediaClient.CreateFolder.
func (c *MediaClient) CreateFolder(ctx context.Context, request *hoosh.MediaFolderCreateRequest) (*hoosh.MediaFolder, error) {
	resp, err := c.httpClient.Post(ctx, "/api/admin/media/folders", request)
	if err != nil {
		return nil, fmt.Errorf("creating media folder: %w", err)
	}

	var folder hoosh.MediaFolder
	if err := json.Unmarshal(resp.Body, &folder); err != nil {
		return nil, fmt.Errorf("parsing media folder response: %w", err)
	}

	return &folder, nil
}

// UpdateFolder implements hoosh.MediaClient.UpdateFolder.
func (c *MediaClient) UpdateFolder(ctx context.Context, id int64, request *hoosh.MediaFolderUpdateRequest) (*hoosh.MediaFolder, error) {
	path := fmt.Sprintf("/api/admin/media/folders/%d", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating media folder: %w", err)
	}

	var folder hoosh.MediaFolder
	if err := json.Unmarshal(resp.Body, &folder); err != nil {
		return nil, fmt.Errorf("parsing media folder response: %w", err)
	}

	return &folder, nil
}

// DeleteFolder implements hoosh.MediaClient.DeleteFolder.
func (c *MediaClient) DeleteFolder(ctx context.Context, id int64) (*hoosh.DeleteResult, error) {
	path := fmt.Sprintf("/api/admin/media/folders/%d", id)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting media folder: %w", err)
	}

	var result hoosh.DeleteResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return &result, nil
}
