// Package error defines domain-specific errors for the StudySync application.
package error

import "errors"

// Schedule domain errors.
var (
	// ErrSessionNotFound is returned when a class session is not found in the system.
	ErrSessionNotFound = errors.New("class session not found")

	// ErrNotAuthorizedToModifySession is returned when user is not authorized to modify a session.
	ErrNotAuthorizedToModifySession = errors.New("not authorized to modify class session")

	// ErrInvalidWeekday is returned when the day-of-week value is invalid.
	ErrInvalidWeekday = errors.New("invalid day of week")

	// ErrInvalidTimeRange is returned when a session's end time is not after its start time.
	ErrInvalidTimeRange = errors.New("end time must be after start time")

	// ErrInvalidTimeFormat is returned when a time value cannot be parsed as HH:MM.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidAttendanceStatus is returned when the attendance status is not a known value.
	ErrInvalidAttendanceStatus = errors.New("invalid attendance status")

	// ErrEmptySubject is returned when a session subject is empty.
	ErrEmptySubject = errors.New("subject cannot be empty")
)

// ScheduleErrorCode defines error codes for schedule errors.
// Format: SCH-XXYYYY where XX is category and YYYY is specific error.
type ScheduleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidWeekday          ScheduleErrorCode = "SCH-010001"
	ErrCodeInvalidTimeRange        ScheduleErrorCode = "SCH-010002"
	ErrCodeInvalidTimeFormat       ScheduleErrorCode = "SCH-010003"
	ErrCodeInvalidAttendanceStatus ScheduleErrorCode = "SCH-010004"
	ErrCodeEmptySubject            ScheduleErrorCode = "SCH-010005"

	// Lookup/ownership errors (02XXXX)
	ErrCodeSessionNotFound       ScheduleErrorCode = "SCH-020001"
	ErrCodeNotAuthorizedSession  ScheduleErrorCode = "SCH-020002"
)

// ScheduleError represents a schedule error with code and message.
type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ScheduleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ScheduleError) Unwrap() error {
	return e.Err
}

// NewScheduleError creates a new ScheduleError with the given code and message.
func NewScheduleError(code ScheduleErrorCode, message string, err error) *ScheduleError {
	return &ScheduleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
