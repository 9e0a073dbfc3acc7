package hoosh

import (
	"context"
	"time"
)

// Page statuses.
const (
	PageStatusDraft     = "draft"
	PageStatusPublished = "published"
)

// Page is a CMS page. IDs are assigned by the backend and immutable; slug
// uniqueness is backend-enforced and surfaces as a 409 on conflict.
type Page struct {
	ID             int64      `json:"id"                        yaml:"id"`
	Slug           string     `json:"slug"                      yaml:"slug"`
	Title          string     `json:"title"                     yaml:"title"`
	Status         string     `json:"status"                    yaml:"status"`
	SEOTitle       *string    `json:"seo_title,omitempty"       yaml:"seo_title,omitempty"`
	SEODescription *string    `json:"seo_description,omitempty" yaml:"seo_description,omitempty"`
	Blocks         JSONMap    `json:"blocks,omitempty"          yaml:"blocks,omitempty"`
	PublishedAt    *time.Time `json:"published_at,omitempty"    yaml:"published_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"                yaml:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"                yaml:"updated_at"`
}

// PageCreateRequest creates a page.
type PageCreateRequest struct {
	Slug           string  `json:"slug"`
	Title          string  `json:"title"`
	Status         string  `json:"status,omitempty"`
	SEOTitle       *string `json:"seo_title,omitempty"`
	SEODescription *string `json:"seo_description,omitempty"`
	Blocks         JSONMap `json:"blocks,omitempty"`
}

// PageUpdateRequest updates a page. All fields are optional; omitted fields
// are left untouched by the backend.
type PageUpdateRequest struct {
	Slug           *string `json:"slug,omitempty"`
	Title          *string `json:"title,omitempty"`
	Status         *string `json:"status,omitempty"`
	SEOTitle       *string `json:"seo_title,omitempty"`
	SEODescription *string `json:"seo_description,omitempty"`
	Blocks         JSONMap `json:"blocks,omitempty"`
}

// PagesClient provides access to admin page operations.
type PagesClient interface {
	List(ctx context.Context, params *PageListParams) (*PageList, error)
	Get(ctx context.Context, id int64) (*Page, error)
	Create(ctx context.Context, request *PageCreateRequest) (*Page, error)
	Update(ctx context.Context, id int64, request *PageUpdateRequest) (*Page, error)
	Delete(ctx context.Context, id int64) (*DeleteResult, error)
}
