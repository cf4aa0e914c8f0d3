// Package error defines domain-specific errors for the budget service.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategorySuggestionUnavailable is returned when no suggestion provider is configured.
	ErrCategorySuggestionUnavailable = errors.New("category suggestion is unavailable")

	// ErrCategorySuggestionFailed is returned when the provider fails to answer.
	ErrCategorySuggestionFailed = errors.New("category suggestion failed")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingDescription CategoryErrorCode = "CAT-010001"

	// Suggestion errors (02XXXX)
	ErrCodeSuggestionUnavailable CategoryErrorCode = "CAT-020001"
	ErrCodeSuggestionFailed      CategoryErrorCode = "CAT-020002"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
