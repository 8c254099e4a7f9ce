// Package error defines domain-specific errors for the StudySync application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailAlreadyExists is returned when registering with an email already in use.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidToken is returned when a token is malformed, expired, or invalidated.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no token is provided.
	ErrMissingToken = errors.New("missing authentication token")

	// ErrInvalidResetToken is returned when a password reset token is invalid or used.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrTermsNotAccepted is returned when registration omits terms acceptance.
	ErrTermsNotAccepted = errors.New("terms of service must be accepted")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail      AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword      AuthErrorCode = "AUTH-010002"
	ErrCodeTermsNotAccepted  AuthErrorCode = "AUTH-010003"
	ErrCodeEmailExists       AuthErrorCode = "AUTH-010004"
	ErrCodeMissingFields     AuthErrorCode = "AUTH-010005"

	// Credential errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"

	// Token errors (03XXXX)
	ErrCodeMissingToken      AuthErrorCode = "AUTH-030001"
	ErrCodeInvalidToken      AuthErrorCode = "AUTH-030002"
	ErrCodeInvalidResetToken AuthErrorCode = "AUTH-030003"

	// Rate limiting (04XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-040001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
