// Package error defines domain-specific errors for the StudySync application.
package error

import "errors"

// Study group domain errors.
var (
	// ErrGroupNotFound is returned when a study group is not found in the system.
	ErrGroupNotFound = errors.New("study group not found")

	// ErrAlreadyGroupMember is returned when joining a group the user already belongs to.
	ErrAlreadyGroupMember = errors.New("already a member of this group")

	// ErrNotGroupMember is returned when leaving a group the user does not belong to.
	ErrNotGroupMember = errors.New("not a member of this group")

	// ErrOwnerCannotLeave is returned when a group owner tries to leave their own group.
	ErrOwnerCannotLeave = errors.New("group owner cannot leave the group")

	// ErrEmptyGroupName is returned when a group name is empty.
	ErrEmptyGroupName = errors.New("group name cannot be empty")
)

// GroupErrorCode defines error codes for study group errors.
// Format: GRP-XXYYYY where XX is category and YYYY is specific error.
type GroupErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyGroupName GroupErrorCode = "GRP-010001"

	// Membership errors (02XXXX)
	ErrCodeGroupNotFound      GroupErrorCode = "GRP-020001"
	ErrCodeAlreadyGroupMember GroupErrorCode = "GRP-020002"
	ErrCodeNotGroupMember     GroupErrorCode = "GRP-020003"
	ErrCodeOwnerCannotLeave   GroupErrorCode = "GRP-020004"
)

// GroupError represents a study group error with code and message.
type GroupError struct {
	Code    GroupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GroupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GroupError) Unwrap() error {
	return e.Err
}

// NewGroupError creates a new GroupError with the given code and message.
func NewGroupError(code GroupErrorCode, message string, err error) *GroupError {
	return &GroupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
