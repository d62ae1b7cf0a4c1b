package threadkit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/threadkit/pkg/threadkit"
)

func TestStateError_WrapsInvalidState(t *testing.T) {
	err := &threadkit.StateError{Op: "start", State: threadkit.StateRunning}

	assert.ErrorIs(t, err, threadkit.ErrInvalidState)
	assert.Contains(t, err.Error(), "start")
	assert.Contains(t, err.Error(), "running")
}

func TestStateError_As(t *testing.T) {
	var err error = &threadkit.StateError{Op: "wait", State: threadkit.StateCreated}

	var stateErr *threadkit.StateError
	assert.True(t, errors.As(err, &stateErr))
	assert.Equal(t, threadkit.StateCreated, stateErr.State)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "created", threadkit.StateCreated.String())
	assert.Equal(t, "running", threadkit.StateRunning.String())
	assert.Equal(t, "finished", threadkit.StateFinished.String())
	assert.Equal(t, "unknown", threadkit.State(42).String())
}
