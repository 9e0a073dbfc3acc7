package hoosh

import "context"

// PublicPage is the published rendition of a page, keyed by slug.
type PublicPage struct {
	Slug string  `json:"slug" yaml:"slug"`
	Data JSONMap `json:"data" yaml:"data"`
}

// Theme is the active site theme. Settings is backend-defined.
type Theme struct {
	ID       int64   `json:"id"                 yaml:"id"`
	Slug     string  `json:"slug"               yaml:"slug"`
	Title    string  `json:"title"              yaml:"title"`
	Settings JSONMap `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// PublicClient provides the unauthenticated public surface. These endpoints
// carry no session or CSRF assumptions beyond the transport's defaults.
type PublicClient interface {
	// GetPage fetches a published page by slug.
	GetPage(ctx context.Context, slug string) (*PublicPage, error)

	// GetOptions fetches the public site options map.
	GetOptions(ctx context.Context) (JSONMap, error)

	// GetActiveTheme fetches the currently active theme.
	GetActiveTheme(ctx context.Context) (*Theme, error)

	// TriggerFlow fires a flow by slug. External callers do not know
	// internal ids, so the public endpoint is keyed by slug.
	TriggerFlow(ctx context.Context, slug string, request *FlowTriggerRequest) (FlowTriggerResult, error)
}
