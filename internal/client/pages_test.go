package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "/api/admin/pages", request.URL.Path)
		assert.Equal(t, "limit=50&offset=0&status=published", request.URL.RawQuery)

		writeJSON(t, writer, http.StatusOK, map[string]interface{}{
			"items": []map[string]interface{}{
				{"id": 1, "slug": "home", "title": "Home", "status": "published"},
				{"id": 2, "slug": "about", "title": "About", "status": "published"},
			},
			"total":  2,
			"limit":  50,
			"offset": 0,
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	result, err := c.Pages().List(context.Background(), &hoosh.PageListParams{Status: "published"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "home", result.Items[0].Slug)
	assert.Equal(t, int64(2), result.Items[1].ID)
}

func TestPagesListNilParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// Nil params still serialize the default pagination.
		assert.Equal(t, "limit=50&offset=0", request.URL.RawQuery)
		writeJSON(t, writer, http.StatusOK, map[string]interface{}{"items": []interface{}{}, "total": 0, "limit": 50, "offset": 0})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	result, err := c.Pages().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Items)
}

func TestPagesCreate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/api/admin/pages", request.URL.Path)
		assert.Equal(t, "test-csrf", request.Header.Get("X-CSRF-Token"))

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "landing", body["slug"])
		assert.Equal(t, "Landing", body["title"])

		writeJSON(t, writer, http.StatusCreated, map[string]interface{}{
			"id": 3, "slug": "landing", "title": "Landing", "status": "draft",
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	page, err := c.Pages().Create(context.Background(), &hoosh.PageCreateRequest{
		Slug:  "landing",
		Title: "Landing",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.ID)
	assert.Equal(t, hoosh.PageStatusDraft, page.Status)
}

func TestPagesUpdatePartial(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/api/admin/pages/3", request.URL.Path)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))

		// Only the set pointer appears; everything else stays untouched.
		assert.Equal(t, map[string]interface{}{"status": "published"}, body)

		writeJSON(t, writer, http.StatusOK, map[string]interface{}{
			"id": 3, "slug": "landing", "title": "Landing", "status": "published",
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	status := hoosh.PageStatusPublished

	page, err := c.Pages().Update(context.Background(), 3, &hoosh.PageUpdateRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "published", page.Status)
}

func TestPagesDelete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		assert.Equal(t, "/api/admin/pages/3", request.URL.Path)
		writeJSON(t, writer, http.StatusOK, map[string]bool{"ok": true})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	result, err := c.Pages().Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestPagesGetNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(t, writer, http.StatusNotFound, map[string]string{"detail": "Page not found"})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Pages().Get(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, hoosh.IsNotFound(err))
	assert.Contains(t, err.Error(), "Page not found")
}

func TestPagesCreateSlugConflict(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(t, writer, http.StatusConflict, map[string]string{
			"message":    "Slug already exists",
			"error_code": "slug_conflict",
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Pages().Create(context.Background(), &hoosh.PageCreateRequest{Slug: "home", Title: "Home"})
	require.Error(t, err)
	assert.True(t, hoosh.IsConflict(err))
}
