package hoosh

// JSONMap is an opaque JSON object. Backend-defined payloads (page blocks,
// component data, flow node config) are modeled as JSONMap rather than
// guessed concrete shapes so unknown fields survive a round-trip.
type JSONMap map[string]interface{}

// ListResponse is the paginated envelope shared by every list endpoint.
type ListResponse[T any] struct {
	Items  []T `json:"items"  yaml:"items"`
	Total  int `json:"total"  yaml:"total"`
	Limit  int `json:"limit"  yaml:"limit"`
	Offset int `json:"offset" yaml:"offset"`
}

// DeleteResult is the backend's acknowledgement for delete operations.
type DeleteResult struct {
	OK bool `json:"ok" yaml:"ok"`
}

// PageList is a paginated list of Page records.
type PageList = ListResponse[Page]

// ComponentList is a paginated list of Component records.
type ComponentList = ListResponse[Component]

// MediaList is a paginated list of MediaAsset records.
type MediaList = ListResponse[MediaAsset]

// MediaFolderList is a paginated list of MediaFolder records.
type MediaFolderList = ListResponse[MediaFolder]

// TemplateList is a paginated list of PageTemplate records.
type TemplateList = ListResponse[PageTemplate]

// FlowList is a paginated list of Flow records.
type FlowList = ListResponse[Flow]

// FlowRunList is a paginated list of FlowRun records.
type FlowRunList = ListResponse[FlowRun]
