package gscdomain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorResponse_IsTokenExpired(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected bool
	}{
		{
			name:     "401 code",
			body:     `{"error":{"code":401,"message":"Invalid Credentials"}}`,
			expected: true,
		},
		{
			name:     "unauthenticated status",
			body:     `{"error":{"code":403,"status":"UNAUTHENTICATED"}}`,
			expected: true,
		},
		{
			name:     "authError reason",
			body:     `{"error":{"code":400,"errors":[{"domain":"global","reason":"authError"}]}}`,
			expected: true,
		},
		{
			name:     "quota error is not a token problem",
			body:     `{"error":{"code":429,"status":"RESOURCE_EXHAUSTED","errors":[{"reason":"rateLimitExceeded"}]}}`,
			expected: false,
		},
		{
			name:     "plain bad request",
			body:     `{"error":{"code":400,"message":"startDate must not be after endDate"}}`,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ErrorResponse
			assert.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
			assert.Equal(t, tt.expected, resp.IsTokenExpired())
		})
	}
}
