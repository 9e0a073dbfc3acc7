package hoosh_test

import (
	"testing"

	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
	"github.com/stretchr/testify/assert"
)

func TestPageListParamsToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *hoosh.PageListParams
		expected string
	}{
		{
			name:     "nil params use defaults",
			params:   nil,
			expected: "limit=50&offset=0",
		},
		{
			name:     "zero value uses defaults",
			params:   &hoosh.PageListParams{},
			expected: "limit=50&offset=0",
		},
		{
			name: "explicit pagination",
			params: &hoosh.PageListParams{
				ListParams: hoosh.ListParams{Limit: 10, Offset: 30},
			},
			expected: "limit=10&offset=30",
		},
		{
			name: "negative offset clamps to zero",
			params: &hoosh.PageListParams{
				ListParams: hoosh.ListParams{Limit: 10, Offset: -5},
			},
			expected: "limit=10&offset=0",
		},
		{
			name: "oversized limit clamps to backend maximum",
			params: &hoosh.PageListParams{
				ListParams: hoosh.ListParams{Limit: 500},
			},
			expected: "limit=200&offset=0",
		},
		{
			name: "search is trimmed",
			params: &hoosh.PageListParams{
				ListParams: hoosh.ListParams{Search: "  hello  "},
			},
			expected: "limit=50&offset=0&q=hello",
		},
		{
			name: "blank search omitted",
			params: &hoosh.PageListParams{
				ListParams: hoosh.ListParams{Search: "   "},
			},
			expected: "limit=50&offset=0",
		},
		{
			name:     "status filter",
			params:   &hoosh.PageListParams{Status: "draft"},
			expected: "limit=50&offset=0&status=draft",
		},
		{
			name:     "all sentinel omitted",
			params:   &hoosh.PageListParams{Status: "all"},
			expected: "limit=50&offset=0",
		},
		{
			name:     "all sentinel is case-insensitive",
			params:   &hoosh.PageListParams{Status: "All"},
			expected: "limit=50&offset=0",
		},
		{
			name: "explicit sort pair",
			params: &hoosh.PageListParams{
				ListParams: hoosh.ListParams{Sort: "title", Dir: hoosh.SortAsc},
			},
			expected: "dir=asc&limit=50&offset=0&sort=title",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.params.ToValues().Encode())
		})
	}
}

func TestFlowListParamsDefaultSort(t *testing.T) {
	t.Parallel()

	// Flows always carry a sort pair; unset sort falls back to
	// updated_at descending.
	params := &hoosh.FlowListParams{
		ListParams: hoosh.ListParams{Limit: 20},
		Status:     "All",
	}

	assert.Equal(t, "dir=desc&limit=20&offset=0&sort=updated_at", params.ToValues().Encode())
}

func TestFlowListParamsExplicitSortWins(t *testing.T) {
	t.Parallel()

	params := &hoosh.FlowListParams{
		ListParams: hoosh.ListParams{Sort: "title", Dir: hoosh.SortAsc},
		Status:     "active",
	}

	assert.Equal(t, "dir=asc&limit=50&offset=0&sort=title&status=active", params.ToValues().Encode())
}

func TestMediaListParamsFolderFilter(t *testing.T) {
	t.Parallel()

	t.Run("nil folder means all folders", func(t *testing.T) {
		t.Parallel()

		params := &hoosh.MediaListParams{}
		assert.Equal(t, "limit=40&offset=0", params.ToValues().Encode())
	})

	t.Run("root folder id zero is serialized", func(t *testing.T) {
		t.Parallel()

		folderID := int64(0)
		params := &hoosh.MediaListParams{FolderID: &folderID}
		assert.Equal(t, "folder_id=0&limit=40&offset=0", params.ToValues().Encode())
	})

	t.Run("specific folder", func(t *testing.T) {
		t.Parallel()

		folderID := int64(7)
		params := &hoosh.MediaListParams{
			ListParams: hoosh.ListParams{Limit: 40, Offset: 80},
			FolderID:   &folderID,
		}
		assert.Equal(t, "folder_id=7&limit=40&offset=80", params.ToValues().Encode())
	})
}

func TestComponentListParamsTypeFilter(t *testing.T) {
	t.Parallel()

	params := &hoosh.ComponentListParams{
		ListParams: hoosh.ListParams{Search: "hero"},
		Type:       "section",
	}

	assert.Equal(t, "limit=50&offset=0&q=hero&type=section", params.ToValues().Encode())
}

func TestToValuesIsDeterministic(t *testing.T) {
	t.Parallel()

	// Equal parameters must serialize to byte-identical strings; the
	// encoded query doubles as a cache key.
	build := func() string {
		params := &hoosh.FlowListParams{
			ListParams: hoosh.ListParams{Limit: 20, Offset: 40, Search: "welcome"},
			Status:     "draft",
		}

		return params.ToValues().Encode()
	}

	first := build()
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, build())
	}
}

func TestBuildListURL(t *testing.T) {
	t.Parallel()

	params := &hoosh.TemplateListParams{}
	url := hoosh.BuildListURL("/api/admin/templates", params.ToValues())
	assert.Equal(t, "/api/admin/templates?limit=50&offset=0", url)

	assert.Equal(t, "/api/admin/templates", hoosh.BuildListURL("/api/admin/templates", nil))
}
