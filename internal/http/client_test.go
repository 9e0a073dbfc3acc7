package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	hooshhttp "github.com/hooshpro/hoosh-client-go/internal/http"
	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) append(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.append("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.append("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.append("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.append("error", msg, fields) }

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/admin/pages/1", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]interface{}{"id": 1, "slug": "home"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL)

		resp, err := client.Do(context.Background(), &hooshhttp.Request{
			Method: "GET",
			Path:   "/api/admin/pages/1",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]interface{}

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "home", result["slug"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/admin/pages", request.URL.Path)
			assert.Equal(t, "limit=50&offset=0", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL)

		resp, err := client.Do(context.Background(), &hooshhttp.Request{
			Method: "GET",
			Path:   "/api/admin/pages",
			Query:  url.Values{"limit": []string{"50"}, "offset": []string{"0"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("session cookies attached", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			session, err := request.Cookie("hooshpro_session")
			require.NoError(t, err)
			assert.Equal(t, "session-value", session.Value)

			csrf, err := request.Cookie("csrftoken")
			require.NoError(t, err)
			assert.Equal(t, "csrf-value", csrf.Value)

			// GET is safe; no CSRF header expected.
			assert.Empty(t, request.Header.Get("X-CSRF-Token"))

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL,
			hooshhttp.WithSessionCredentials("session-value", "csrf-value"))

		resp, err := client.Get(context.Background(), "/api/auth/me", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("bearer token wins over cookies", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "Bearer static-token", request.Header.Get("Authorization"))
			assert.Empty(t, request.Cookies())
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL,
			hooshhttp.WithSessionCredentials("session-value", "csrf-value"),
			hooshhttp.WithAccessToken("static-token"))

		_, err := client.Get(context.Background(), "/api/admin/pages", nil)
		require.NoError(t, err)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL)

		resp, err := client.Do(context.Background(), &hooshhttp.Request{
			Method:  "GET",
			Path:    "/api/admin/pages",
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := hooshhttp.NewClient(server.URL, hooshhttp.WithLogger(logger), hooshhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/api/admin/pages", nil)
		require.NoError(t, err)

		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_CSRFHeader(t *testing.T) {
	t.Parallel()

	t.Run("injected on unsafe methods", func(t *testing.T) {
		t.Parallel()

		var (
			mu   sync.Mutex
			seen = map[string]string{}
		)

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			mu.Lock()
			seen[request.Method] = request.Header.Get("X-CSRF-Token")
			mu.Unlock()
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL,
			hooshhttp.WithSessionCredentials("session-value", "csrf-value"))

		ctx := context.Background()
		_, _ = client.Get(ctx, "/api/admin/pages", nil)
		_, _ = client.Post(ctx, "/api/admin/pages", map[string]string{"slug": "x"})
		_, _ = client.Put(ctx, "/api/admin/pages/1", map[string]string{"title": "x"})
		_, _ = client.Patch(ctx, "/api/admin/pages/1", map[string]string{"title": "x"})
		_, _ = client.Delete(ctx, "/api/admin/pages/1")

		assert.Empty(t, seen["GET"])
		assert.Equal(t, "csrf-value", seen["POST"])
		assert.Equal(t, "csrf-value", seen["PUT"])
		assert.Equal(t, "csrf-value", seen["PATCH"])
		assert.Equal(t, "csrf-value", seen["DELETE"])
	})

	t.Run("caller-set header is not overridden", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "caller-token", request.Header.Get("X-CSRF-Token"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL,
			hooshhttp.WithSessionCredentials("session-value", "csrf-value"))

		_, err := client.Do(context.Background(), &hooshhttp.Request{
			Method:  "POST",
			Path:    "/api/admin/pages",
			Body:    map[string]string{"slug": "x"},
			Headers: map[string]string{"X-CSRF-Token": "caller-token"},
		})
		require.NoError(t, err)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_ErrorResponses(t *testing.T) {
	t.Parallel()

	t.Run("structured error body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusConflict)
			_, _ = writer.Write([]byte(`{"message":"Slug already exists","error_code":"slug_conflict","trace_id":"t-1"}`))
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL)

		resp, err := client.Post(context.Background(), "/api/admin/pages", map[string]string{"slug": "home"})
		require.Error(t, err)
		assert.Equal(t, 409, resp.StatusCode)

		apiErr := &hoosh.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 409, apiErr.Status)
		assert.Equal(t, "Slug already exists", apiErr.Message)
		assert.Equal(t, "slug_conflict", apiErr.ErrorCode)
		assert.Equal(t, "t-1", apiErr.TraceID)
	})

	t.Run("non-JSON error body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusRequestEntityTooLarge)
			_, _ = writer.Write([]byte("Request Entity Too Large"))
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL)

		_, err := client.Post(context.Background(), "/api/admin/media/upload", nil)
		require.Error(t, err)

		apiErr := &hoosh.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 413, apiErr.Status)
		assert.Equal(t, "Request Entity Too Large", apiErr.Message)
	})

	t.Run("empty error body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/api/admin/pages", nil)
		require.Error(t, err)

		apiErr := &hoosh.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Request failed (502)", apiErr.Message)
	})

	t.Run("5xx keeps its status and body", func(t *testing.T) {
		t.Parallel()

		// 5xx responses are retryable to the retry layer; the final
		// response must still normalize with its real status, not
		// degrade into a network failure.
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusServiceUnavailable)
			_, _ = writer.Write([]byte(`{"message":"Maintenance window","error_code":"maintenance","trace_id":"t-2"}`))
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/api/admin/pages", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 503, resp.StatusCode)

		apiErr := &hoosh.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 503, apiErr.Status)
		assert.Equal(t, hoosh.ErrorKindServer, apiErr.Kind())
		assert.Equal(t, "Maintenance window", apiErr.Message)
		assert.Equal(t, "maintenance", apiErr.ErrorCode)
		assert.Equal(t, "t-2", apiErr.TraceID)
	})

	t.Run("429 keeps its status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusTooManyRequests)
			_, _ = writer.Write([]byte(`{"detail":"Too many requests"}`))
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL)

		_, err := client.Post(context.Background(), "/api/public/flows/welcome/trigger", nil)
		require.Error(t, err)

		apiErr := &hoosh.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 429, apiErr.Status)
		assert.Equal(t, hoosh.ErrorKindClient, apiErr.Kind())
		assert.Equal(t, "Too many requests", apiErr.Message)
	})

	t.Run("network failure", func(t *testing.T) {
		t.Parallel()

		client := hooshhttp.NewClient("http://127.0.0.1:1")

		_, err := client.Get(context.Background(), "/api/admin/pages", nil)
		require.Error(t, err)

		apiErr := &hoosh.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 0, apiErr.Status)
		assert.Equal(t, hoosh.ErrorKindNetwork, apiErr.Kind())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_SessionExpiry(t *testing.T) {
	t.Parallel()

	t.Run("notifies once with return target", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"detail":"Session expired"}`))
		}))
		defer server.Close()

		var (
			mu    sync.Mutex
			calls []string
		)

		client := hooshhttp.NewClient(server.URL,
			hooshhttp.WithSessionCredentials("stale", "stale-csrf"),
			hooshhttp.WithSessionExpiredFunc(func(next string) {
				mu.Lock()
				calls = append(calls, next)
				mu.Unlock()
			}))

		query := url.Values{"limit": []string{"50"}, "offset": []string{"0"}}

		_, err := client.Get(context.Background(), "/api/admin/pages", query)
		require.Error(t, err)
		assert.True(t, hoosh.IsUnauthorized(err))

		require.Len(t, calls, 1)
		assert.Equal(t, "/admin/login?next="+url.QueryEscape("/api/admin/pages?limit=50&offset=0"), calls[0])
	})

	t.Run("concurrent 401s coalesce to one notification", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		var notifications int32

		var notifyMu sync.Mutex

		client := hooshhttp.NewClient(server.URL,
			hooshhttp.WithSessionExpiredFunc(func(next string) {
				notifyMu.Lock()
				notifications++
				notifyMu.Unlock()
			}))

		var wg sync.WaitGroup

		for i := 0; i < 10; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, err := client.Get(context.Background(), "/api/admin/pages", nil)
				assert.Error(t, err)
			}()
		}

		wg.Wait()

		assert.Equal(t, int32(1), notifications)
	})

	t.Run("new session re-arms the notifier", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		var notifications int

		client := hooshhttp.NewClient(server.URL,
			hooshhttp.WithSessionExpiredFunc(func(next string) {
				notifications++
			}))

		_, _ = client.Get(context.Background(), "/api/admin/pages", nil)
		_, _ = client.Get(context.Background(), "/api/admin/pages", nil)
		assert.Equal(t, 1, notifications)

		client.SetSessionCredentials("fresh", "fresh-csrf")

		_, _ = client.Get(context.Background(), "/api/admin/pages", nil)
		assert.Equal(t, 2, notifications)
	})

	t.Run("401 without notifier still returns the error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/api/admin/pages", nil)
		require.Error(t, err)
		assert.True(t, hoosh.IsUnauthorized(err))
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*hooshhttp.Client, context.Context) (*hooshhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *hooshhttp.Client, ctx context.Context) (*hooshhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *hooshhttp.Client, ctx context.Context) (*hooshhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *hooshhttp.Client, ctx context.Context) (*hooshhttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *hooshhttp.Client, ctx context.Context) (*hooshhttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *hooshhttp.Client, ctx context.Context) (*hooshhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := hooshhttp.NewClient(server.URL)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_PostMultipart(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.NoError(t, request.ParseMultipartForm(1<<20))

		// folder_id=0 (root folder) must survive as an explicit field.
		assert.Equal(t, "0", request.FormValue("folder_id"))

		file, header, err := request.FormFile("file")
		require.NoError(t, err)

		defer func() {
			_ = file.Close()
		}()

		assert.Equal(t, "logo.png", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(content))

		// Unsafe method: CSRF header applies to multipart too.
		assert.Equal(t, "csrf-value", request.Header.Get("X-CSRF-Token"))

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"id":1,"url":"/media/logo.png","original_name":"logo.png"}`))
	}))
	defer server.Close()

	client := hooshhttp.NewClient(server.URL,
		hooshhttp.WithSessionCredentials("session-value", "csrf-value"))

	resp, err := client.PostMultipart(context.Background(), "/api/admin/media/upload",
		map[string]string{"folder_id": "0"}, "file", "logo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "injected", request.Header.Get("X-Injected"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	chain := hoosh.NewInterceptorChain()
	chain.AddRequestInterceptor(hoosh.HeaderInterceptor(map[string]string{"X-Injected": "injected"}))

	var observedStatus int

	chain.AddResponseInterceptor(func(ctx context.Context, req *hoosh.Request, resp *hoosh.Response) error {
		observedStatus = resp.StatusCode

		return nil
	})

	client := hooshhttp.NewClient(server.URL, hooshhttp.WithInterceptors(chain))

	resp, err := client.Get(context.Background(), "/api/admin/pages", nil)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 200, observedStatus)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryOptIn(t *testing.T) {
	t.Parallel()

	t.Run("default is a single attempt", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("opt-in retries on 5xx", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL,
			hooshhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("exhausted retries surface the final status", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"message":"Still broken","trace_id":"t-3"}`))
		}))
		defer server.Close()

		client := hooshhttp.NewClient(server.URL,
			hooshhttp.WithRetryConfig(2, 10*time.Millisecond, 50*time.Millisecond))

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 3, attempts)

		apiErr := &hoosh.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 500, apiErr.Status)
		assert.Equal(t, "Still broken", apiErr.Message)
		assert.Equal(t, "t-3", apiErr.TraceID)
	})
}

func TestClient_InterceptorBodyMutation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, err := io.ReadAll(request.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"slug":"home","title":"Home"}`, string(body))

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	chain := hoosh.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *hoosh.Request) error {
		req.Body = []byte(`{"slug":"home","title":"Home"}`)

		return nil
	})

	client := hooshhttp.NewClient(server.URL, hooshhttp.WithInterceptors(chain))

	resp, err := client.Post(context.Background(), "/api/admin/pages", map[string]string{"slug": "home"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestClient_CacheInterceptors(t *testing.T) {
	t.Parallel()

	hits := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits++

		if request.Method == http.MethodGet {
			_, _ = writer.Write([]byte(`{"id":7,"slug":"home"}`))

			return
		}

		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{"id":7,"slug":"home","title":"Home"}`))
	}))
	defer server.Close()

	manager := hoosh.NewCacheManager(hoosh.NewMemoryCache(10), nil)
	requestInterceptor, responseInterceptor := hoosh.CacheInterceptor(manager, hoosh.DefaultCachingPolicy())

	chain := hoosh.NewInterceptorChain()
	chain.AddRequestInterceptor(requestInterceptor)
	chain.AddResponseInterceptor(responseInterceptor)
	chain.AddResponseInterceptor(hoosh.CacheInvalidationInterceptor(manager))

	client := hooshhttp.NewClient(server.URL, hooshhttp.WithInterceptors(chain))

	first, err := client.Get(context.Background(), "/api/admin/pages/7", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	// Second read is served out of the cache without touching the server.
	second, err := client.Get(context.Background(), "/api/admin/pages/7", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
	assert.Equal(t, 200, second.StatusCode)
	assert.Equal(t, first.Body, second.Body)

	// A successful mutation invalidates the entry.
	_, err = client.Put(context.Background(), "/api/admin/pages/7", map[string]string{"title": "Home"})
	require.NoError(t, err)
	assert.Equal(t, 2, hits)

	_, err = client.Get(context.Background(), "/api/admin/pages/7", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, hits)
}
