// Package planner contains AI study-planner use cases.
package planner

import (
	"context"
	"errors"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectRetry  bool
	}{
		{
			name:         "context deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: ErrCodeAITimeout,
			expectRetry:  true,
		},
		{
			name:         "context canceled",
			err:          context.Canceled,
			expectedCode: ErrCodeAITimeout,
			expectRetry:  true,
		},
		{
			name:         "rate limit error",
			err:          errors.New("rate limit exceeded"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "quota error",
			err:          errors.New("quota exceeded"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "429 status code error",
			err:          errors.New("HTTP 429: too many requests"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "401 unauthorized",
			err:          errors.New("401 unauthorized"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		{
			name:         "invalid api key",
			err:          errors.New("invalid api key"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		{
			name:         "connection refused",
			err:          errors.New("connection refused"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "503 status code error",
			err:          errors.New("HTTP 503: service unavailable"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "parse error",
			err:          errors.New("failed to parse response"),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		{
			name:         "json error",
			err:          errors.New("invalid json"),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		{
			name:         "unknown error",
			err:          errors.New("something unexpected happened"),
			expectedCode: ErrCodeAIUnknownError,
			expectRetry:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyError(tt.err)

			if result.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, result.Code)
			}

			if result.Retryable != tt.expectRetry {
				t.Errorf("expected retryable %v, got %v", tt.expectRetry, result.Retryable)
			}

			if result.Message != errorMessages[tt.expectedCode] {
				t.Errorf("expected message %q, got %q", errorMessages[tt.expectedCode], result.Message)
			}

			if result.Timestamp.IsZero() {
				t.Error("expected non-zero timestamp")
			}
		})
	}
}

func TestClassifyError_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
	}{
		{
			name:         "uppercase rate limit",
			err:          errors.New("RATE LIMIT exceeded"),
			expectedCode: ErrCodeAIRateLimited,
		},
		{
			name:         "mixed case network",
			err:          errors.New("Network Error"),
			expectedCode: ErrCodeAIServiceUnavailable,
		},
		{
			name:         "uppercase json",
			err:          errors.New("Invalid JSON format"),
			expectedCode: ErrCodeAIParseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyError(tt.err)

			if result.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, result.Code)
			}
		})
	}
}

func TestErrorMessages_AllCodesHaveMessages(t *testing.T) {
	codes := []string{
		ErrCodeAIServiceUnavailable,
		ErrCodeAIRateLimited,
		ErrCodeAIAuthError,
		ErrCodeAITimeout,
		ErrCodeAIParseError,
		ErrCodeAIUnknownError,
	}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			message, exists := errorMessages[code]
			if !exists {
				t.Errorf("missing message for code %s", code)
			}
			if message == "" {
				t.Errorf("empty message for code %s", code)
			}
		})
	}
}
