// Package error defines domain-specific errors for the budget service.
package error

import "errors"

// Simulation domain errors.
var (
	// ErrSimulationNotFound is returned when a simulation does not exist or belongs to another user.
	ErrSimulationNotFound = errors.New("simulation not found")

	// ErrEmptySimulation is returned when converting a simulation that has no items.
	ErrEmptySimulation = errors.New("simulation has no items")

	// ErrInvalidSimulatedExpense is returned when an item has a non-positive amount or no category.
	ErrInvalidSimulatedExpense = errors.New("invalid simulated expense")
)

// SimulationErrorCode defines error codes for simulation errors.
// Format: SIM-XXYYYY where XX is category and YYYY is specific error.
type SimulationErrorCode string

const (
	// Lookup and validation errors (01XXXX)
	ErrCodeSimulationNotFound      SimulationErrorCode = "SIM-010001"
	ErrCodeEmptySimulation         SimulationErrorCode = "SIM-010002"
	ErrCodeInvalidSimulatedExpense SimulationErrorCode = "SIM-010003"
	ErrCodeMissingSimulationFields SimulationErrorCode = "SIM-010004"
)

// SimulationError represents a simulation error with code and message.
type SimulationError struct {
	Code    SimulationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SimulationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SimulationError) Unwrap() error {
	return e.Err
}

// NewSimulationError creates a new SimulationError with the given code and message.
func NewSimulationError(code SimulationErrorCode, message string, err error) *SimulationError {
	return &SimulationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
