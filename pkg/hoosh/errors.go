package hoosh

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies an APIError for callers that branch on failure class
// rather than exact status codes.
type ErrorKind string

const (
	// ErrorKindNetwork means no response was received at all.
	ErrorKindNetwork ErrorKind = "network"

	// ErrorKindUnauthorized means the session was rejected (401).
	ErrorKindUnauthorized ErrorKind = "unauthorized"

	// ErrorKindClient covers 4xx other than 401 (validation, conflict, ...).
	ErrorKindClient ErrorKind = "client"

	// ErrorKindServer covers 5xx responses.
	ErrorKindServer ErrorKind = "server"
)

// APIError represents a failed request to the CMS API. It is constructed at
// the transport boundary from any non-2xx response or from a network failure
// and returned to the caller immediately; it is never persisted.
type APIError struct {
	// Status is the HTTP status code, or 0 for a network failure.
	Status int `json:"status"`
	// Message is human-readable and never empty.
	Message string `json:"message"`
	// ErrorCode is an optional machine-readable code from the backend.
	ErrorCode string `json:"error_code,omitempty"`
	// TraceID correlates this error with server-side logs.
	TraceID string `json:"trace_id,omitempty"`
	// Details carries an optional structured payload (e.g. field errors).
	Details map[string]interface{} `json:"details,omitempty"`
	// RawBody is the unparsed response body, kept for diagnosis.
	RawBody string `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.DisplayMessage()
}

// Kind classifies the error by status.
func (e *APIError) Kind() ErrorKind {
	switch {
	case e.Status == 0:
		return ErrorKindNetwork
	case e.Status == 401:
		return ErrorKindUnauthorized
	case e.Status >= 400 && e.Status < 500:
		return ErrorKindClient
	default:
		return ErrorKindServer
	}
}

// DisplayMessage formats the error for presentation: the human message with
// machine-readable tags appended when present, never blocking on them.
func (e *APIError) DisplayMessage() string {
	var b strings.Builder

	b.WriteString(e.Message)

	if e.ErrorCode != "" {
		fmt.Fprintf(&b, " [%s]", e.ErrorCode)
	}

	if e.TraceID != "" {
		fmt.Fprintf(&b, " (trace: %s)", e.TraceID)
	}

	return b.String()
}

// errorBody is the wire shape of backend error responses. FastAPI-style
// handlers set "detail"; structured handlers set "message" plus the
// machine-readable fields.
type errorBody struct {
	ErrorCode string                 `json:"error_code"`
	Message   string                 `json:"message"`
	Detail    json.RawMessage        `json:"detail"`
	TraceID   string                 `json:"trace_id"`
	Details   map[string]interface{} `json:"details"`
}

// ParseAPIError builds an APIError from a non-2xx response. The body is
// parsed as JSON if possible; otherwise, or when no message field is set, the
// message falls back to the raw body or a generic status string so that
// Message is never empty.
func ParseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status:  status,
		RawBody: string(body),
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Message = parsed.Message
		apiErr.ErrorCode = parsed.ErrorCode
		apiErr.TraceID = parsed.TraceID
		apiErr.Details = parsed.Details

		if apiErr.Message == "" && len(parsed.Detail) > 0 {
			var detailStr string
			if err := json.Unmarshal(parsed.Detail, &detailStr); err == nil {
				apiErr.Message = detailStr
			} else {
				// Structured detail (e.g. validation errors): keep it
				// available and fall through to the generic message.
				if apiErr.Details == nil {
					apiErr.Details = map[string]interface{}{}
				}

				var detailVal interface{}
				if err := json.Unmarshal(parsed.Detail, &detailVal); err == nil {
					apiErr.Details["detail"] = detailVal
				}
			}
		}
	}

	if apiErr.Message == "" {
		trimmed := strings.TrimSpace(string(body))
		if trimmed != "" && !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
			apiErr.Message = trimmed
		} else {
			apiErr.Message = fmt.Sprintf("Request failed (%d)", status)
		}
	}

	return apiErr
}

// NewNetworkError wraps a transport-level failure (no response received) as
// an APIError with Status 0 so callers can distinguish it from a 5xx.
func NewNetworkError(err error) *APIError {
	return &APIError{
		Status:  0,
		Message: fmt.Sprintf("Request failed: %v", err),
	}
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Status == 401
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Status == 404
}

// IsConflict reports whether err is an APIError with status 409, the
// backend's answer to slug collisions. Slug uniqueness is backend-enforced;
// the client surfaces conflicts instead of pre-validating.
func IsConflict(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Status == 409
}

// IsNetworkFailure reports whether err is an APIError caused by a transport
// failure rather than an HTTP response.
func IsNetworkFailure(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Kind() == ErrorKindNetwork
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrEndpointRequired     = errors.New("API endpoint is required")
	ErrNoSessionEstablished = errors.New("no session established")
	ErrUploadFileRequired   = errors.New("upload file content is required")
)
