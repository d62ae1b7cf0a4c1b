package threadkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for thread lifecycle operations.
var (
	// ErrInvalidState indicates an operation was attempted in a lifecycle
	// state that does not permit it, such as starting a thread twice or
	// waiting on a thread that was never started.
	ErrInvalidState = errors.New("invalid thread state")

	// ErrNilRunnable indicates New was called without a work routine.
	ErrNilRunnable = errors.New("runnable is required")

	// ErrClosed indicates the thread was already closed.
	ErrClosed = errors.New("thread is closed")
)

// StateError reports a lifecycle operation rejected because of the thread's
// current state. It wraps ErrInvalidState for errors.Is checks.
//
// A timed-out bounded wait is not a StateError: timeout is an expected
// outcome and WaitTimeout reports it as a plain boolean.
type StateError struct {
	// Op is the operation that was rejected ("start", "wait").
	Op string
	// State is the thread state at the time of the call.
	State State
}

// Error implements the error interface.
func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %v: thread is %s", e.Op, ErrInvalidState, e.State)
}

// Unwrap returns ErrInvalidState for errors.Is/As support.
func (e *StateError) Unwrap() error {
	return ErrInvalidState
}
