// Package error defines domain-specific errors for the budget service.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist or belongs to another user.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the amount is not positive.
	ErrInvalidExpenseAmount = errors.New("expense amount must be greater than zero")

	// ErrInvalidExpenseDate is returned when the date cannot be parsed.
	ErrInvalidExpenseDate = errors.New("invalid expense date")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Lookup and validation errors (01XXXX)
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseDate   ExpenseErrorCode = "EXP-010003"
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidExpenseFilter ExpenseErrorCode = "EXP-010005"
)

// ExpenseError represents a expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
