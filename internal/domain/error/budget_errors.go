// Package error defines domain-specific errors for the StudySync application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not positive.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")

	// ErrEmptyCategory is returned when a transaction or limit category is empty.
	ErrEmptyCategory = errors.New("category cannot be empty")

	// ErrInvalidLimitPeriod is returned when the budget limit period is invalid.
	ErrInvalidLimitPeriod = errors.New("invalid limit period")

	// ErrInvalidLimitAmount is returned when the budget limit amount is not positive.
	ErrInvalidLimitAmount = errors.New("limit amount must be positive")

	// ErrLimitNotFound is returned when a budget limit is not found in the system.
	ErrLimitNotFound = errors.New("budget limit not found")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidTransactionAmount BudgetErrorCode = "BGT-010002"
	ErrCodeEmptyCategory            BudgetErrorCode = "BGT-010003"
	ErrCodeInvalidLimitPeriod       BudgetErrorCode = "BGT-010004"
	ErrCodeInvalidLimitAmount       BudgetErrorCode = "BGT-010005"

	// Lookup/ownership errors (02XXXX)
	ErrCodeTransactionNotFound      BudgetErrorCode = "BGT-020001"
	ErrCodeNotAuthorizedTransaction BudgetErrorCode = "BGT-020002"
	ErrCodeLimitNotFound            BudgetErrorCode = "BGT-020003"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
