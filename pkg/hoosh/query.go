package hoosh

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/hooshpro/hoosh-client-go/internal/constants"
)

// SortDirection is the sort order for list queries.
type SortDirection string

const (
	// SortAsc sorts ascending.
	SortAsc SortDirection = "asc"

	// SortDesc sorts descending.
	SortDesc SortDirection = "desc"
)

// FilterAll is the UI sentinel meaning "no filter". Matched
// case-insensitively, so "All" and "ALL" are also dropped.
const FilterAll = "all"

// ListParams are the pagination, search, and sort parameters shared by every
// list endpoint. Serialization is deterministic: two semantically equal
// params values produce byte-identical query strings (url.Values.Encode
// sorts keys), so the result is safe to use as a cache key.
type ListParams struct {
	// Limit is the page size; non-positive values fall back to the
	// resource's default, values above the backend maximum clamp to it.
	Limit int
	// Offset is the number of records to skip; negative values clamp to 0.
	Offset int
	// Search is free-text search; it is trimmed and omitted when blank.
	Search string
	// Sort names the sort field. Resources that declare a default sort
	// fill it in when Sort is empty; others omit the key entirely.
	Sort string
	// Dir is the sort direction accompanying Sort.
	Dir SortDirection
}

// baseValues serializes the shared parameters. defaultSort/defaultDir, when
// non-empty, are filled in for resources whose contract always carries a
// sort pair; resources without a declared default omit the keys.
func (p ListParams) baseValues(defaultLimit int, defaultSort string, defaultDir SortDirection) url.Values {
	values := url.Values{}

	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}

	offset := p.Offset
	if offset < 0 {
		offset = 0
	}

	values.Set("limit", strconv.Itoa(limit))
	values.Set("offset", strconv.Itoa(offset))

	if search := strings.TrimSpace(p.Search); search != "" {
		values.Set("q", search)
	}

	sortField := strings.TrimSpace(p.Sort)
	sortDir := p.Dir

	if sortField == "" {
		sortField = defaultSort
		if sortDir == "" {
			sortDir = defaultDir
		}
	}

	if sortField != "" {
		values.Set("sort", sortField)
	}

	if sortDir != "" {
		values.Set("dir", string(sortDir))
	}

	return values
}

// setFilter appends a resource filter unless it is blank or the "all"
// sentinel.
func setFilter(values url.Values, key, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, FilterAll) {
		return
	}

	values.Set(key, trimmed)
}

// PageListParams filters the admin pages list.
type PageListParams struct {
	ListParams

	// Status filters by page status ("draft"/"published"); the "all"
	// sentinel and blank values are omitted.
	Status string
}

// ToValues serializes the parameters to a canonical query.
func (p *PageListParams) ToValues() url.Values {
	if p == nil {
		p = &PageListParams{}
	}

	values := p.baseValues(constants.DefaultPageSize, "", "")
	setFilter(values, "status", p.Status)

	return values
}

// ComponentListParams filters the admin components list.
type ComponentListParams struct {
	ListParams

	// Type filters by component type; "all"/blank are omitted.
	Type string
}

// ToValues serializes the parameters to a canonical query.
func (p *ComponentListParams) ToValues() url.Values {
	if p == nil {
		p = &ComponentListParams{}
	}

	values := p.baseValues(constants.DefaultPageSize, "", "")
	setFilter(values, "type", p.Type)

	return values
}

// MediaListParams filters the admin media list.
type MediaListParams struct {
	ListParams

	// FolderID restricts results to one folder; nil means all folders.
	FolderID *int64
}

// ToValues serializes the parameters to a canonical query.
func (p *MediaListParams) ToValues() url.Values {
	if p == nil {
		p = &MediaListParams{}
	}

	values := p.baseValues(constants.MediaPageSize, "", "")
	if p.FolderID != nil {
		values.Set("folder_id", strconv.FormatInt(*p.FolderID, 10))
	}

	return values
}

// TemplateListParams filters the admin templates list.
type TemplateListParams struct {
	ListParams
}

// ToValues serializes the parameters to a canonical query.
func (p *TemplateListParams) ToValues() url.Values {
	if p == nil {
		p = &TemplateListParams{}
	}

	return p.baseValues(constants.DefaultPageSize, "", "")
}

// FlowListParams filters the admin flows list. Unlike the other resources,
// the flows contract always carries a sort pair: when Sort is unset the
// query defaults to sort=updated_at&dir=desc.
type FlowListParams struct {
	ListParams

	// Status filters by flow status ("draft"/"active"/"disabled");
	// "all"/blank are omitted.
	Status string
}

// ToValues serializes the parameters to a canonical query.
func (p *FlowListParams) ToValues() url.Values {
	if p == nil {
		p = &FlowListParams{}
	}

	values := p.baseValues(constants.DefaultPageSize, "updated_at", SortDesc)
	setFilter(values, "status", p.Status)

	return values
}

// BuildListURL joins a base path with a canonical query string. Pure
// function, no I/O.
func BuildListURL(basePath string, values url.Values) string {
	if len(values) == 0 {
		return basePath
	}

	return basePath + "?" + values.Encode()
}
