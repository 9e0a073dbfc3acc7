package hoosh

import (
	"context"
	"time"
)

// ResourceClients provides access to all admin resource clients.
type ResourceClients interface {
	Pages() PagesClient
	Components() ComponentsClient
	Media() MediaClient
	Templates() TemplatesClient
	Flows() FlowsClient
}

// Client is the full CMS API surface.
type Client interface {
	ResourceClients

	Public() PublicClient
	Auth() AuthClient
}

// AuthClient consumes the session endpoints. Token minting and validation
// are backend concerns; the client only establishes, inspects, and drops
// sessions.
type AuthClient interface {
	// Login exchanges credentials for a session + CSRF cookie pair and
	// installs them on the underlying transport.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Logout invalidates the current session.
	Logout(ctx context.Context) error

	// Me returns the authenticated user.
	Me(ctx context.Context) (*User, error)
}

// User is the authenticated admin account.
type User struct {
	ID    int64  `json:"id"    yaml:"id"`
	Email string `json:"email" yaml:"email"`
}

// Session holds the credentials established by Login. Both values are
// opaque; the client forwards them and reacts to their rejection.
type Session struct {
	// Token is the session cookie value.
	Token string
	// CSRFToken is the double-submit CSRF cookie value, echoed in the
	// X-CSRF-Token header on unsafe requests.
	CSRFToken string
	// User is the account the session belongs to, when the backend
	// returned it.
	User *User
}

// SessionExpiredFunc is notified when the backend rejects the session (401).
// The transport guarantees at most one notification per client, regardless
// of concurrent in-flight requests; next is the login address carrying the
// original path as a return target. In a browser-like runtime the
// implementation navigates; tests and server-side callers supply a no-op or
// logging implementation.
type SessionExpiredFunc func(next string)

// Logger is the structured logging interface consumed by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config configures a CMS API client.
//
// # Authentication
//
// Provide either a SessionToken/CSRFToken pair (cookie session, the admin UI
// mode) or an AccessToken (static bearer, for scripts). With neither set,
// only the public surface is usable until Auth().Login establishes a
// session.
//
// # Retries
//
// The API contract is a single attempt per call; RetryMax defaults to 0 and
// retry policy is the caller's to opt into.
type Config struct {
	// Endpoint is the base URL of the CMS API. The constructor normalizes
	// it by trimming a trailing slash and defaulting the scheme to https.
	Endpoint string

	// SessionToken is the value of the session cookie.
	SessionToken string
	// CSRFToken is the value of the CSRF cookie, echoed as a header on
	// unsafe requests (double-submit defense).
	CSRFToken string
	// AccessToken, if set, is sent as a Bearer token instead of cookies.
	AccessToken string

	// OnSessionExpired is invoked (at most once) when a request fails
	// with 401. Nil means no side effect; the structured 401 error is
	// returned to the caller either way.
	OnSessionExpired SessionExpiredFunc

	// HTTPTimeout bounds each request when no context deadline is set.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of retries for transient failures.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose request/response logging when Logger is set.
	Debug bool
	// Logger is an optional structured logger.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Interceptors is an optional chain run around every request: logging,
	// extra headers, client-side rate limiting, response caching.
	Interceptors *InterceptorChain
}
