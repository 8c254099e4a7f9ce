// Package error defines domain-specific errors for the StudySync application.
package error

import "errors"

// AI planner domain errors.
var (
	// ErrPlanNotFound is returned when a study plan is not found in the system.
	ErrPlanNotFound = errors.New("study plan not found")

	// ErrPlannerUnavailable is returned when the AI service is not configured.
	ErrPlannerUnavailable = errors.New("AI study planner is not available")

	// ErrNoSubjects is returned when plan generation is requested with no subjects.
	ErrNoSubjects = errors.New("at least one subject is required")
)

// PlannerErrorCode defines error codes for AI planner errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlannerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNoSubjects PlannerErrorCode = "PLN-010001"

	// Service errors (02XXXX)
	ErrCodePlanNotFound       PlannerErrorCode = "PLN-020001"
	ErrCodePlannerUnavailable PlannerErrorCode = "PLN-020002"
)

// PlannerError represents an AI planner error with code and message.
type PlannerError struct {
	Code    PlannerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlannerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlannerError) Unwrap() error {
	return e.Err
}

// NewPlannerError creates a new PlannerError with the given code and message.
func NewPlannerError(code PlannerErrorCode, message string, err error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
