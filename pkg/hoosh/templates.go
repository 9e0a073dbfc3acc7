package hoosh

import (
	"context"
	"time"
)

// PageTemplate is a reusable page layout.
type PageTemplate struct {
	ID          int64     `json:"id"                    yaml:"id"`
	Slug        string    `json:"slug"                  yaml:"slug"`
	Title       string    `json:"title"                 yaml:"title"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty"`
	Menu        JSONMap   `json:"menu,omitempty"        yaml:"menu,omitempty"`
	CreatedAt   time.Time `json:"created_at"            yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"            yaml:"updated_at"`
}

// TemplateCreateRequest creates a template.
type TemplateCreateRequest struct {
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Menu        JSONMap `json:"menu,omitempty"`
}

// TemplateUpdateRequest updates a template; omitted fields are left
// untouched by the backend.
type TemplateUpdateRequest struct {
	Slug        *string `json:"slug,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Menu        JSONMap `json:"menu,omitempty"`
}

// TemplatesClient provides access to admin template operations.
type TemplatesClient interface {
	List(ctx context.Context, params *TemplateListParams) (*TemplateList, error)
	Get(ctx context.Context, id int64) (*PageTemplate, error)
	Create(ctx context.Context, request *TemplateCreateRequest) (*PageTemplate, error)
	Update(ctx context.Context, id int64, request *TemplateUpdateRequest) (*PageTemplate, error)
	Delete(ctx context.Context, id int64) (*DeleteResult, error)
}
