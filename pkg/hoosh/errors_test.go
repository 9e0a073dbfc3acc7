package hoosh_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		status          int
		body            string
		expectedMessage string
		expectedCode    string
		expectedTraceID string
	}{
		{
			name:            "structured error body",
			status:          409,
			body:            `{"message":"Slug already exists","error_code":"slug_conflict","trace_id":"abc-123"}`,
			expectedMessage: "Slug already exists",
			expectedCode:    "slug_conflict",
			expectedTraceID: "abc-123",
		},
		{
			name:            "detail string fallback",
			status:          404,
			body:            `{"detail":"Page not found"}`,
			expectedMessage: "Page not found",
		},
		{
			name:            "plain text body",
			status:          413,
			body:            "Request Entity Too Large",
			expectedMessage: "Request Entity Too Large",
		},
		{
			name:            "empty body falls back to status message",
			status:          502,
			body:            "",
			expectedMessage: "Request failed (502)",
		},
		{
			name:            "unparseable JSON falls back to status message",
			status:          500,
			body:            `{"unexpected":`,
			expectedMessage: "Request failed (500)",
		},
		{
			name:            "JSON without message fields falls back",
			status:          500,
			body:            `{"something":"else"}`,
			expectedMessage: "Request failed (500)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			apiErr := hoosh.ParseAPIError(tt.status, []byte(tt.body))
			require.NotNil(t, apiErr)

			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.expectedMessage, apiErr.Message)
			assert.Equal(t, tt.expectedCode, apiErr.ErrorCode)
			assert.Equal(t, tt.expectedTraceID, apiErr.TraceID)
			assert.Equal(t, tt.body, apiErr.RawBody)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestParseAPIErrorStructuredDetail(t *testing.T) {
	t.Parallel()

	body := `{"detail":[{"loc":["body","slug"],"msg":"field required"}]}`
	apiErr := hoosh.ParseAPIError(422, []byte(body))

	// Structured detail is kept, but the display message stays generic.
	assert.Equal(t, "Request failed (422)", apiErr.Message)
	require.Contains(t, apiErr.Details, "detail")
}

func TestAPIErrorKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   int
		expected hoosh.ErrorKind
	}{
		{0, hoosh.ErrorKindNetwork},
		{401, hoosh.ErrorKindUnauthorized},
		{400, hoosh.ErrorKindClient},
		{404, hoosh.ErrorKindClient},
		{409, hoosh.ErrorKindClient},
		{500, hoosh.ErrorKindServer},
		{503, hoosh.ErrorKindServer},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			t.Parallel()

			apiErr := &hoosh.APIError{Status: tt.status, Message: "x"}
			assert.Equal(t, tt.expected, apiErr.Kind())
		})
	}
}

func TestAPIErrorDisplayMessage(t *testing.T) {
	t.Parallel()

	apiErr := &hoosh.APIError{
		Status:    409,
		Message:   "Slug already exists",
		ErrorCode: "slug_conflict",
		TraceID:   "abc-123",
	}

	assert.Equal(t, "Slug already exists [slug_conflict] (trace: abc-123)", apiErr.DisplayMessage())
	assert.Equal(t, apiErr.DisplayMessage(), apiErr.Error())

	bare := &hoosh.APIError{Status: 500, Message: "boom"}
	assert.Equal(t, "boom", bare.DisplayMessage())
}

func TestNewNetworkError(t *testing.T) {
	t.Parallel()

	apiErr := hoosh.NewNetworkError(errors.New("connection refused"))

	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, hoosh.ErrorKindNetwork, apiErr.Kind())
	assert.Contains(t, apiErr.Message, "connection refused")
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	wrap := func(status int) error {
		return fmt.Errorf("listing pages: %w", &hoosh.APIError{Status: status, Message: "x"})
	}

	assert.True(t, hoosh.IsUnauthorized(wrap(401)))
	assert.False(t, hoosh.IsUnauthorized(wrap(403)))

	assert.True(t, hoosh.IsNotFound(wrap(404)))
	assert.False(t, hoosh.IsNotFound(wrap(400)))

	assert.True(t, hoosh.IsConflict(wrap(409)))
	assert.False(t, hoosh.IsConflict(wrap(404)))

	assert.True(t, hoosh.IsNetworkFailure(wrap(0)))
	assert.False(t, hoosh.IsNetworkFailure(wrap(500)))

	assert.False(t, hoosh.IsUnauthorized(errors.New("plain error")))
}
