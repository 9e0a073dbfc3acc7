package hoosh

import (
	"context"
	"io"
	"time"
)

// MediaAsset is an uploaded file.
type MediaAsset struct {
	ID           int64     `json:"id"                  yaml:"id"`
	URL          string    `json:"url"                 yaml:"url"`
	OriginalName string    `json:"original_name"       yaml:"original_name"`
	ContentType  string    `json:"content_type"        yaml:"content_type"`
	SizeBytes    int64     `json:"size_bytes"          yaml:"size_bytes"`
	FolderID     *int64    `json:"folder_id,omitempty" yaml:"folder_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"          yaml:"created_at"`
}

// MediaFolder organizes media assets. Folders form a tree via ParentID; root
// folders have a nil parent. The client never validates acyclicity — the
// tree shape is backend-enforced.
type MediaFolder struct {
	ID        int64     `json:"id"                  yaml:"id"`
	Name      string    `json:"name"                yaml:"name"`
	ParentID  *int64    `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"          yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at"          yaml:"updated_at"`
}

// MediaUploadRequest uploads a file. The file and target folder are encoded
// as multipart form data rather than JSON.
type MediaUploadRequest struct {
	// FileName is the original file name sent in the multipart part.
	FileName string
	// Content is the file body.
	Content io.Reader
	// FolderID is the target folder; nil uploads to the root.
	FolderID *int64
}

// MediaMoveRequest moves an asset between folders; a nil FolderID moves it
// to the root.
type MediaMoveRequest struct {
	FolderID *int64 `json:"folder_id"`
}

// MediaFolderCreateRequest creates a folder.
type MediaFolderCreateRequest struct {
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// MediaFolderUpdateRequest renames or re-parents a folder; omitted fields
// are left untouched by the backend.
type MediaFolderUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	ParentID *int64  `json:"parent_id,omitempty"`
}

// MediaClient provides access to media assets and folders.
type MediaClient interface {
	List(ctx context.Context, params *MediaListParams) (*MediaList, error)
	Get(ctx context.Context, id int64) (*MediaAsset, error)
	Upload(ctx context.Context, request *MediaUploadRequest) (*MediaAsset, error)
	Move(ctx context.Context, id int64, request *MediaMoveRequest) (*MediaAsset, error)
	Delete(ctx context.Context, id int64) (*DeleteResult, error)

	ListFolders(ctx context.Context) (*MediaFolderList, error)
	CreateFolder(ctx context.Context, request *MediaFolderCreateRequest) (*MediaFolder, error)
	UpdateFolder(ctx context.Context, id int64, request *MediaFolderUpdateRequest) (*MediaFolder, error)
	DeleteFolder(ctx context.Context, id int64) (*DeleteResult, error)
}
