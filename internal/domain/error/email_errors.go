// Package error defines domain-specific errors for the StudySync application.
package error

import "errors"

// Email error sentinels.
var (
	// ErrPermanentEmailFailure indicates a failure that should not be retried.
	ErrPermanentEmailFailure = errors.New("permanent email failure")

	// ErrTemporaryEmailFailure indicates a failure that can be retried.
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

// EmailErrorCode represents a coded email error.
type EmailErrorCode string

// Email error codes.
const (
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-010001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-010002"
)

// EmailError represents an email delivery error with a stable code.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

// Unwrap returns the wrapped error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
