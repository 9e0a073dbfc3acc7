package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout is used for multipart media uploads.
	UploadHTTPTimeout = 120 * time.Second
)

// Retry limits. The API contract is one attempt per call; retries are
// strictly opt-in via Config.RetryMax.
const (
	// DefaultRetryMax disables retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum backoff when retries are enabled.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff when retries are enabled.
	DefaultRetryWaitMax = 10 * time.Second
)

// DefaultUserAgent identifies this client on the wire.
const DefaultUserAgent = "hoosh-client-go/1.0"

// Session and CSRF wire names, fixed by the backend.
const (
	// SessionCookieName identifies an authenticated admin session.
	SessionCookieName = "hooshpro_session"

	// CSRFCookieName is the double-submit CSRF cookie.
	CSRFCookieName = "csrftoken"

	// CSRFHeaderName echoes the CSRF cookie value on unsafe requests.
	CSRFHeaderName = "X-CSRF-Token"

	// LoginPath is the admin login address used as the session-expiry
	// redirect target, with ?next=<original path> appended.
	LoginPath = "/admin/login"
)

// List defaults matching the backend's defaults per resource.
const (
	// DefaultPageSize is the default list limit for most resources.
	DefaultPageSize = 50

	// MediaPageSize is the default list limit for media assets.
	MediaPageSize = 40

	// RunsPageSize is the default list limit for flow run records.
	RunsPageSize = 20

	// MaxPageSize is the largest limit the backend accepts.
	MaxPageSize = 200
)

// Cache defaults.
const (
	// DefaultCacheSize is the default maximum number of cached entries.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default lifetime of a cached response.
	DefaultCacheTTL = 5 * time.Minute
)

// CLI output.
const (
	// JSONIndentSize is the indent used by YAML/JSON encoders.
	JSONIndentSize = 2

	// TimestampFormat is the table display format for timestamps.
	TimestampFormat = "2006-01-02 15:04:05"
)
