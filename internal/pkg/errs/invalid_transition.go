package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for order lifecycle violations.
// The order state machine only moves forward; any other move, including a
// repeated delivery of the same order, is reported through this error.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a rejected order status transition.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an error for a rejected transition
// from one status to another.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an error for a rejected
// transition with an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %s)",
			ErrInvalidTransition, sanitize(e.From), sanitize(e.To), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, sanitize(e.From), sanitize(e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
