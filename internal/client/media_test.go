package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/admin/media", request.URL.Path)
		assert.Equal(t, "folder_id=7&limit=40&offset=0", request.URL.RawQuery)

		writeJSON(t, writer, http.StatusOK, map[string]interface{}{
			"items": []map[string]interface{}{
				{"id": 1, "url": "/media/logo.png", "original_name": "logo.png", "folder_id": 7},
			},
			"total":  1,
			"limit":  40,
			"offset": 0,
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	folderID := int64(7)

	result, err := c.Media().List(context.Background(), &hoosh.MediaListParams{FolderID: &folderID})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	require.NotNil(t, result.Items[0].FolderID)
	assert.Equal(t, int64(7), *result.Items[0].FolderID)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestMediaUpload(t *testing.T) {
	t.Parallel()

	t.Run("upload to folder", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/api/admin/media/upload", request.URL.Path)
			assert.Contains(t, request.Header.Get("Content-Type"), "multipart/form-data")

			require.NoError(t, request.ParseMultipartForm(1<<20))
			assert.Equal(t, "7", request.FormValue("folder_id"))

			file, header, err := request.FormFile("file")
			require.NoError(t, err)

			defer func() {
				_ = file.Close()
			}()

			assert.Equal(t, "logo.png", header.Filename)

			content, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(content))

			writeJSON(t, writer, http.StatusCreated, map[string]interface{}{
				"id": 9, "url": "/media/logo.png", "original_name": "logo.png", "folder_id": 7,
			})
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)

		folderID := int64(7)

		asset, err := c.Media().Upload(context.Background(), &hoosh.MediaUploadRequest{
			FileName: "logo.png",
			Content:  strings.NewReader("png-bytes"),
			FolderID: &folderID,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(9), asset.ID)
	})

	t.Run("upload without folder omits the field", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.NoError(t, request.ParseMultipartForm(1<<20))
			assert.Empty(t, request.Form["folder_id"])

			writeJSON(t, writer, http.StatusCreated, map[string]interface{}{
				"id": 10, "url": "/media/doc.pdf", "original_name": "doc.pdf",
			})
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)

		asset, err := c.Media().Upload(context.Background(), &hoosh.MediaUploadRequest{
			FileName: "doc.pdf",
			Content:  strings.NewReader("pdf-bytes"),
		})
		require.NoError(t, err)
		assert.Nil(t, asset.FolderID)
	})

	t.Run("missing content fails before any request", func(t *testing.T) {
		t.Parallel()

		c := newTestClient(t, "http://127.0.0.1:1")

		_, err := c.Media().Upload(context.Background(), &hoosh.MediaUploadRequest{FileName: "x"})
		require.ErrorIs(t, err, hoosh.ErrUploadFileRequired)
	})

	t.Run("oversized upload surfaces 413", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusRequestEntityTooLarge)
			_, _ = writer.Write([]byte("Request Entity Too Large"))
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)

		_, err := c.Media().Upload(context.Background(), &hoosh.MediaUploadRequest{
			FileName: "huge.bin",
			Content:  strings.NewReader("..."),
		})
		require.Error(t, err)

		apiErr := &hoosh.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 413, apiErr.Status)
	})
}

func TestMediaMove(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/api/admin/media/9", request.URL.Path)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))

		// Moving to the root sends an explicit null folder_id.
		folderID, present := body["folder_id"]
		assert.True(t, present)
		assert.Nil(t, folderID)

		writeJSON(t, writer, http.StatusOK, map[string]interface{}{
			"id": 9, "url": "/media/logo.png", "original_name": "logo.png",
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	asset, err := c.Media().Move(context.Background(), 9, &hoosh.MediaMoveRequest{FolderID: nil})
	require.NoError(t, err)
	assert.Nil(t, asset.FolderID)
}

func TestMediaFolders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch {
		case request.Method == "GET" && request.URL.Path == "/api/admin/media/folders":
			writeJSON(t, writer, http.StatusOK, map[string]interface{}{
				"items":  []map[string]interface{}{{"id": 1, "name": "Logos"}},
				"total":  1,
				"limit":  50,
				"offset": 0,
			})
		case request.Method == "POST" && request.URL.Path == "/api/admin/media/folders":
			var body map[string]interface{}

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "Icons", body["name"])
			writeJSON(t, writer, http.StatusCreated, map[string]interface{}{"id": 2, "name": "Icons"})
		case request.Method == "PUT" && request.URL.Path == "/api/admin/media/folders/2":
			writeJSON(t, writer, http.StatusOK, map[string]interface{}{"id": 2, "name": "SVG Icons"})
		case request.Method == "DELETE" && request.URL.Path == "/api/admin/media/folders/2":
			writeJSON(t, writer, http.StatusOK, map[string]bool{"ok": true})
		default:
			t.Errorf("unexpected request %s %s", request.Method, request.URL.Path)
		}
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	ctx := context.Background()

	folders, err := c.Media().ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders.Items, 1)
	assert.Equal(t, "Logos", folders.Items[0].Name)

	created, err := c.Media().CreateFolder(ctx, &hoosh.MediaFolderCreateRequest{Name: "Icons"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	name := "SVG Icons"

	updated, err := c.Media().UpdateFolder(ctx, 2, &hoosh.MediaFolderUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "SVG Icons", updated.Name)

	result, err := c.Media().DeleteFolder(ctx, 2)
	require.NoError(t, err)
	assert.True(t, result.OK)
}
