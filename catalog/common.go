package catalog

import (
	"errors"
)

var ErrNilStoreSupplied = errors.New("nil store supplied")

// ValidationError reports caller input rejected by the Manager before it
// reaches the store. It is recoverable: the shell boundary should display
// the message and continue, not terminate.
type ValidationError struct {
	msg string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.msg
}

// ErrYearNotPositive is returned when a record year does not parse as a
// positive integer. It is a ValidationError and can be matched with errors.As.
var ErrYearNotPositive = NewValidationError("year must be a positive integer")
