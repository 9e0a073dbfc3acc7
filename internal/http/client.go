// Package http implements the shared HTTP transport for the Hoosh Pro CMS
// API: JSON encoding, cookie-session and bearer authentication, CSRF
// double-submit headers, error normalization, and session-expiry signaling.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/hooshpro/hoosh-client-go/internal/constants"
	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
)

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP client for the CMS API. It is safe for concurrent use;
// credentials are guarded so a login on one goroutine is visible to requests
// on others.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client

	mu           sync.RWMutex
	sessionToken string
	csrfToken    string
	accessToken  string

	sessionExpired  hoosh.SessionExpiredFunc
	sessionNotified atomic.Bool

	interceptors *hoosh.InterceptorChain
	logger       hoosh.Logger
	debug        bool
	userAgent    string
	timeout      time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets a structured logger.
func WithLogger(logger hoosh.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the retry engine. The API contract is a single
// attempt per call, so the default is no retries; callers opt in explicitly.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout bounds each request when no context deadline is set.
// Multipart uploads keep their own longer bound.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithSessionCredentials sets the session and CSRF cookie values.
func WithSessionCredentials(sessionToken, csrfToken string) Option {
	return func(c *Client) {
		c.sessionToken = sessionToken
		c.csrfToken = csrfToken
	}
}

// WithAccessToken sets a static bearer token instead of cookie credentials.
func WithAccessToken(token string) Option {
	return func(c *Client) {
		c.accessToken = token
	}
}

// WithSessionExpiredFunc sets the 401 notifier.
func WithSessionExpiredFunc(fn hoosh.SessionExpiredFunc) Option {
	return func(c *Client) {
		c.sessionExpired = fn
	}
}

// WithInterceptors sets the interceptor chain run around every request.
func WithInterceptors(chain *hoosh.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new API client for the given base URL.
func NewClient(baseURL string, options ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	// Hand back the final 5xx/429 response once retries are exhausted; it is
	// normalized through ParseAPIError, not reported as a transport failure.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
		timeout:    constants.DefaultHTTPTimeout,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// SetSessionCredentials installs new session and CSRF cookie values, e.g.
// after a login. It also re-arms the session-expiry notifier.
func (c *Client) SetSessionCredentials(sessionToken, csrfToken string) {
	c.mu.Lock()
	c.sessionToken = sessionToken
	c.csrfToken = csrfToken
	c.mu.Unlock()

	c.sessionNotified.Store(false)
}

// ClearSessionCredentials drops the session, e.g. after a logout.
func (c *Client) ClearSessionCredentials() {
	c.mu.Lock()
	c.sessionToken = ""
	c.csrfToken = ""
	c.mu.Unlock()
}

// isUnsafeMethod reports whether a method mutates state and therefore needs
// the CSRF double-submit header.
func isUnsafeMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// Do executes an API request.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var (
		bodyBytes   []byte
		contentType string
		err         error
	)

	if req.Body != nil {
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		contentType = "application/json"
	}

	return c.do(ctx, req, bodyBytes, contentType, c.timeout)
}

// do is the shared request path for JSON and multipart bodies. timeout bounds
// the request only when the caller's context carries no deadline of its own.
func (c *Client) do(ctx context.Context, req *Request, bodyBytes []byte, contentType string, timeout time.Duration) (*Response, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	if c.interceptors != nil {
		interceptReq := &hoosh.Request{
			Method:  req.Method,
			Path:    interceptPath(req),
			Headers: headersFromMap(req.Headers),
			Body:    bodyBytes,
		}

		if err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq); err != nil {
			return nil, err
		}

		req.Headers = headersToMap(interceptReq.Headers)
		bodyBytes = interceptReq.Body

		// A cache interceptor hit short-circuits the network entirely.
		if cached, ok := interceptReq.Metadata[hoosh.CachedResponseMetadataKey].(*hoosh.Response); ok {
			return &Response{StatusCode: cached.StatusCode, Headers: cached.Headers, Body: cached.Body}, nil
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	c.applyCredentials(httpReq, req.Method)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		netErr := hoosh.NewNetworkError(err)
		c.runResponseInterceptors(ctx, req, nil, netErr)

		return nil, netErr
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode >= 400 {
		apiErr := hoosh.ParseAPIError(resp.StatusCode, respBody)

		if resp.StatusCode == http.StatusUnauthorized {
			c.notifySessionExpired(req)
		}

		c.runResponseInterceptors(ctx, req, resp, apiErr)

		return resp, apiErr
	}

	c.runResponseInterceptors(ctx, req, resp, nil)

	return resp, nil
}

// applyCredentials attaches authentication to an outgoing request. Bearer
// tokens win over cookie sessions when both are configured. The CSRF header
// is set on unsafe methods only, and never overrides a caller-set value.
func (c *Client) applyCredentials(httpReq *retryablehttp.Request, method string) {
	c.mu.RLock()
	sessionToken := c.sessionToken
	csrfToken := c.csrfToken
	accessToken := c.accessToken
	c.mu.RUnlock()

	if accessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+accessToken)

		return
	}

	if sessionToken != "" {
		httpReq.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: sessionToken})
	}

	if csrfToken != "" {
		httpReq.AddCookie(&http.Cookie{Name: constants.CSRFCookieName, Value: csrfToken})

		if isUnsafeMethod(method) && httpReq.Header.Get(constants.CSRFHeaderName) == "" {
			httpReq.Header.Set(constants.CSRFHeaderName, csrfToken)
		}
	}
}

// notifySessionExpired invokes the session-expiry callback at most once per
// session, no matter how many in-flight requests hit a 401 concurrently.
// The next address carries the failed request's path as a return target.
func (c *Client) notifySessionExpired(req *Request) {
	if c.sessionExpired == nil {
		return
	}

	if !c.sessionNotified.CompareAndSwap(false, true) {
		return
	}

	target := req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	c.sessionExpired(constants.LoginPath + "?next=" + url.QueryEscape(target))
}

// runResponseInterceptors feeds the outcome to the chain. Interceptor errors
// at this stage are logged, not surfaced; the API outcome already happened.
func (c *Client) runResponseInterceptors(ctx context.Context, req *Request, resp *Response, apiErr error) {
	if c.interceptors == nil {
		return
	}

	interceptResp := &hoosh.Response{Error: apiErr}
	if resp != nil {
		interceptResp.StatusCode = resp.StatusCode
		interceptResp.Headers = resp.Headers
		interceptResp.Body = resp.Body
	}

	interceptReq := &hoosh.Request{
		Method:  req.Method,
		Path:    interceptPath(req),
		Headers: headersFromMap(req.Headers),
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{"error": err.Error()})
	}
}

// interceptPath is the canonical path+query string handed to interceptors.
// The encoded query is deterministic, so cache interceptors can key on it.
func interceptPath(req *Request) string {
	if len(req.Query) > 0 {
		return req.Path + "?" + req.Query.Encode()
	}

	return req.Path
}

func headersFromMap(headers map[string]string) http.Header {
	result := make(http.Header, len(headers))
	for key, value := range headers {
		result.Set(key, value)
	}

	return result
}

func headersToMap(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key := range headers {
		result[key] = headers.Get(key)
	}

	return result
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// PostMultipart performs a multipart/form-data POST, streaming file into the
// form under fileField alongside the plain fields. Used for media uploads.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader) (*Response, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("writing form field %q: %w", key, err)
		}
	}

	part, err := writer.CreateFormFile(fileField, fileName)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copying file content: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req := &Request{Method: http.MethodPost, Path: path}

	// Large files need more room than the default request bound.
	return c.do(ctx, req, buf.Bytes(), writer.FormDataContentType(), constants.UploadHTTPTimeout)
}
