package hoosh

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/hooshpro/hoosh-client-go/internal/constants"
)

// CachedResponseMetadataKey is the Request.Metadata key under which the cache
// request interceptor deposits a hit as a *Response. The transport returns it
// to the caller without touching the network.
const CachedResponseMetadataKey = "cached_response"

// CachingPolicy controls what the cache interceptor stores.
type CachingPolicy struct {
	// TTL bounds entry lifetime; zero falls back to the manager default.
	TTL time.Duration
	// MaxBodyBytes skips caching of larger bodies; zero means unbounded.
	MaxBodyBytes int
}

// DefaultCachingPolicy returns the standard policy.
func DefaultCachingPolicy() CachingPolicy {
	return CachingPolicy{TTL: constants.DefaultCacheTTL}
}

// CacheInterceptor returns the interceptor pair bridging a CacheManager into
// the request path. The request interceptor serves GET hits out of the cache
// (via CachedResponseMetadataKey); the response interceptor stores successful
// GET bodies. Request paths arrive with their canonical query attached, so
// semantically equal list parameters share one entry.
func CacheInterceptor(manager *CacheManager, policy CachingPolicy) (RequestInterceptor, ResponseInterceptor) {
	requestInterceptor := func(ctx context.Context, req *Request) error {
		if req.Method != http.MethodGet {
			return nil
		}

		key := manager.GetCacheKey(req.Method, req.Path, nil)

		data, err := manager.Get(ctx, key)
		if err != nil {
			// Miss or expired: fall through to the network.
			return nil
		}

		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[CachedResponseMetadataKey] = &Response{
			StatusCode: http.StatusOK,
			Body:       data,
		}

		return nil
	}

	responseInterceptor := func(ctx context.Context, req *Request, resp *Response) error {
		if req.Method != http.MethodGet || resp.Error != nil || resp.StatusCode != http.StatusOK {
			return nil
		}

		if policy.MaxBodyBytes > 0 && len(resp.Body) > policy.MaxBodyBytes {
			return nil
		}

		key := manager.GetCacheKey(req.Method, req.Path, nil)
		etag := ""

		if resp.Headers != nil {
			etag = resp.Headers.Get("ETag")
		}

		return manager.SetWithETag(ctx, key, resp.Body, etag, policy.TTL)
	}

	return requestInterceptor, responseInterceptor
}

// ConditionalRequestInterceptor attaches If-None-Match to GET requests when a
// cached entry with an ETag exists, letting the backend answer 304.
func ConditionalRequestInterceptor(manager *CacheManager) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Method != http.MethodGet {
			return nil
		}

		key := manager.GetCacheKey(req.Method, req.Path, nil)

		etag := manager.GetETag(ctx, key)
		if etag == "" {
			return nil
		}

		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		req.Headers.Set("If-None-Match", etag)

		return nil
	}
}

// CacheInvalidationInterceptor drops cached GET entries after a successful
// mutation: the mutated resource itself plus its parent collection. Failed
// mutations leave the cache untouched.
func CacheInvalidationInterceptor(manager *CacheManager) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		switch req.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			return nil
		}

		if resp.Error != nil || resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil
		}

		path := req.Path
		if idx := strings.Index(path, "?"); idx >= 0 {
			path = path[:idx]
		}

		_ = manager.Invalidate(ctx, manager.GetCacheKey(http.MethodGet, path, nil))

		if idx := strings.LastIndex(path, "/"); idx > 0 {
			_ = manager.Invalidate(ctx, manager.GetCacheKey(http.MethodGet, path[:idx], nil))
		}

		return nil
	}
}
