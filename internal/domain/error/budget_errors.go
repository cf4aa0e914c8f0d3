// Package error defines domain-specific errors for the budget service.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget does not exist or belongs to another user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetLimit is returned when the limit is not a positive amount.
	ErrInvalidBudgetLimit = errors.New("budget limit must be greater than zero")

	// ErrInvalidBudgetPeriod is returned when the period is not daily, weekly or monthly.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidBudgetDateRange is returned when the end date precedes the start date.
	ErrInvalidBudgetDateRange = errors.New("budget end date must not be before start date")

	// ErrBudgetCategoryRequired is returned when the budget has no category.
	ErrBudgetCategoryRequired = errors.New("budget category is required")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Lookup and validation errors (01XXXX)
	ErrCodeBudgetNotFound         BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidBudgetLimit     BudgetErrorCode = "BUD-010002"
	ErrCodeInvalidBudgetPeriod    BudgetErrorCode = "BUD-010003"
	ErrCodeInvalidBudgetDateRange BudgetErrorCode = "BUD-010004"
	ErrCodeMissingBudgetFields    BudgetErrorCode = "BUD-010005"
	ErrCodeInvalidBudgetDate      BudgetErrorCode = "BUD-010006"
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
