package hoosh

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/hooshpro/hoosh-client-go/internal/constants"
)

// Cache errors.
var (
	ErrCacheKeyNotFound   = errors.New("key not found")
	ErrCacheEntryExpired  = errors.New("entry expired")
	ErrCacheDisabled      = errors.New("cache disabled")
	ErrKeyNotFoundInChain = errors.New("key not found in any cache")
)

// CacheEntry is one cached response body.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
	ETag      string    `json:"etag,omitempty"`
}

// Cache stores response bodies keyed by canonical request strings.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// MemoryCache is an in-process Cache with a size bound. Eviction is
// oldest-expiry-first once the bound is hit.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	maxSize int
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = constants.DefaultCacheSize
	}

	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// Get retrieves an entry, failing if absent or expired.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrCacheKeyNotFound
	}

	if time.Now().After(entry.ExpiresAt) {
		_ = c.Delete(ctx, key)

		return nil, ErrCacheEntryExpired
	}

	return entry, nil
}

// Set stores an entry, evicting the entry closest to expiry when full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		var (
			oldestKey    string
			oldestExpiry time.Time
		)

		for k, e := range c.entries {
			if oldestKey == "" || e.ExpiresAt.Before(oldestExpiry) {
				oldestKey = k
				oldestExpiry = e.ExpiresAt
			}
		}

		delete(c.entries, oldestKey)
	}

	c.entries[key] = entry

	return nil
}

// Delete removes an entry.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)

	return nil
}

// Has reports whether a live entry exists for key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]

	return ok && time.Now().Before(entry.ExpiresAt)
}

// CacheManager wraps a Cache with key derivation and TTL handling.
type CacheManager struct {
	cache  Cache
	logger Logger
	ttl    time.Duration
}

// NewCacheManager creates a manager over the given backend. logger may be
// nil.
func NewCacheManager(cache Cache, logger Logger) *CacheManager {
	return &CacheManager{
		cache:  cache,
		logger: logger,
		ttl:    constants.DefaultCacheTTL,
	}
}

// GetCacheKey derives the canonical cache key for a request. Because list
// queries serialize deterministically (url.Values.Encode sorts keys), equal
// semantic parameters always map to the same key.
func (m *CacheManager) GetCacheKey(method, path string, query url.Values) string {
	key := method + " " + path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}

	return key
}

// Get retrieves cached data for key.
func (m *CacheManager) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := m.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	return entry.Data, nil
}

// Set stores data under key for the given TTL (or the default when ttl is
// zero).
func (m *CacheManager) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return m.SetWithETag(ctx, key, data, "", ttl)
}

// SetWithETag stores data with an ETag for conditional requests.
func (m *CacheManager) SetWithETag(ctx context.Context, key string, data []byte, etag string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.ttl
	}

	entry := &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
		ETag:      etag,
	}

	err := m.cache.Set(ctx, key, entry)
	if err != nil && m.logger != nil {
		m.logger.Warn("cache set failed", map[string]interface{}{"key": key, "error": err.Error()})
	}

	return err
}

// GetETag returns the stored ETag for key, or "".
func (m *CacheManager) GetETag(ctx context.Context, key string) string {
	entry, err := m.cache.Get(ctx, key)
	if err != nil {
		return ""
	}

	return entry.ETag
}

// Invalidate removes the cached entry for key.
func (m *CacheManager) Invalidate(ctx context.Context, key string) error {
	return m.cache.Delete(ctx, key)
}
