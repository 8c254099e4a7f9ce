// Package error defines domain-specific errors for the StudySync application.
package error

import "errors"

// Attendance/calendar domain errors.
var (
	// ErrInvalidMonth is returned when a month value is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when a year value is not positive.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidDateFormat is returned when a date cannot be parsed as YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidDateRange is returned when a range's end precedes its start.
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

// AttendanceErrorCode defines error codes for attendance/calendar errors.
// Format: ATT-XXYYYY where XX is category and YYYY is specific error.
type AttendanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth      AttendanceErrorCode = "ATT-010001"
	ErrCodeInvalidYear       AttendanceErrorCode = "ATT-010002"
	ErrCodeInvalidDateFormat AttendanceErrorCode = "ATT-010003"
	ErrCodeInvalidDateRange  AttendanceErrorCode = "ATT-010004"
)

// AttendanceError represents an attendance error with code and message.
type AttendanceError struct {
	Code    AttendanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AttendanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AttendanceError) Unwrap() error {
	return e.Err
}

// NewAttendanceError creates a new AttendanceError with the given code and message.
func NewAttendanceError(code AttendanceErrorCode, message string, err error) *AttendanceError {
	return &AttendanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
