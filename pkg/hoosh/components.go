package hoosh

import (
	"context"
	"time"
)

// Component is a reusable content component. Data is a backend-defined
// payload preserved verbatim.
type Component struct {
	ID          int64     `json:"id"                    yaml:"id"`
	Slug        string    `json:"slug"                  yaml:"slug"`
	Title       string    `json:"title"                 yaml:"title"`
	Type        string    `json:"type"                  yaml:"type"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty"`
	Data        JSONMap   `json:"data,omitempty"        yaml:"data,omitempty"`
	CreatedAt   time.Time `json:"created_at"            yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"            yaml:"updated_at"`
}

// ComponentCreateRequest creates a component.
type ComponentCreateRequest struct {
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
	Data        JSONMap `json:"data,omitempty"`
}

// ComponentUpdateRequest updates a component; omitted fields are left
// untouched by the backend.
type ComponentUpdateRequest struct {
	Slug        *string `json:"slug,omitempty"`
	Title       *string `json:"title,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	Data        JSONMap `json:"data,omitempty"`
}

// ComponentsClient provides access to admin component operations.
type ComponentsClient interface {
	List(ctx context.Context, params *ComponentListParams) (*ComponentList, error)
	Get(ctx context.Context, id int64) (*Component, error)
	Create(ctx context.Context, request *ComponentCreateRequest) (*Component, error)
	Update(ctx context.Context, id int64, request *ComponentUpdateRequest) (*Component, error)
	Delete(ctx context.Context, id int64) (*DeleteResult, error)
}
