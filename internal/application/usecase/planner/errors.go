// Package planner contains AI study-planner use cases.
package planner

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Error code constants for AI generation errors.
const (
	ErrCodeAIServiceUnavailable = "AI_SERVICE_UNAVAILABLE"
	ErrCodeAIRateLimited        = "AI_RATE_LIMITED"
	ErrCodeAIAuthError          = "AI_AUTH_ERROR"
	ErrCodeAITimeout            = "AI_TIMEOUT"
	ErrCodeAIParseError         = "AI_PARSE_ERROR"
	ErrCodeAIUnknownError       = "AI_UNKNOWN_ERROR"
)

// errorMessages contains user-facing messages for each error code.
var errorMessages = map[string]string{
	ErrCodeAIServiceUnavailable: "The study planner service is temporarily unavailable. Please try again later.",
	ErrCodeAIRateLimited:        "Too many plan requests. Wait a few minutes and try again.",
	ErrCodeAIAuthError:          "The study planner service is misconfigured. Please contact support.",
	ErrCodeAITimeout:            "Plan generation took longer than expected. Try again with fewer subjects.",
	ErrCodeAIParseError:         "Could not read the planner's response. Please try again.",
	ErrCodeAIUnknownError:       "An unexpected error occurred while generating the plan. Please try again.",
}

// GenerationError represents an error that occurred during plan generation.
type GenerationError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

// classifyError converts a Go error to a GenerationError with appropriate
// error code, user-facing message, and retryable flag.
func classifyError(err error) *GenerationError {
	now := time.Now()
	errStr := strings.ToLower(err.Error())

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &GenerationError{
			Code:      ErrCodeAITimeout,
			Message:   errorMessages[ErrCodeAITimeout],
			Retryable: true,
			Timestamp: now,
		}
	}

	if strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted") {
		return &GenerationError{
			Code:      ErrCodeAIRateLimited,
			Message:   errorMessages[ErrCodeAIRateLimited],
			Retryable: true,
			Timestamp: now,
		}
	}

	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "invalid api key") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "authentication") {
		return &GenerationError{
			Code:      ErrCodeAIAuthError,
			Message:   errorMessages[ErrCodeAIAuthError],
			Retryable: false,
			Timestamp: now,
		}
	}

	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "dial") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "unavailable") || strings.Contains(errStr, "503") {
		return &GenerationError{
			Code:      ErrCodeAIServiceUnavailable,
			Message:   errorMessages[ErrCodeAIServiceUnavailable],
			Retryable: true,
			Timestamp: now,
		}
	}

	if strings.Contains(errStr, "parse") || strings.Contains(errStr, "json") ||
		strings.Contains(errStr, "unmarshal") || strings.Contains(errStr, "decode") {
		return &GenerationError{
			Code:      ErrCodeAIParseError,
			Message:   errorMessages[ErrCodeAIParseError],
			Retryable: true,
			Timestamp: now,
		}
	}

	return &GenerationError{
		Code:      ErrCodeAIUnknownError,
		Message:   errorMessages[ErrCodeAIUnknownError],
		Retryable: true,
		Timestamp: now,
	}
}
