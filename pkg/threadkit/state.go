package threadkit

// State is the lifecycle state of a Thread.
//
// The state machine is Created -> Running -> Finished, with no other
// transitions. There is no cancelled state: the primitive has no way to
// preempt a running work routine.
type State int32

const (
	// StateCreated means the thread exists but Start has not been called.
	StateCreated State = iota

	// StateRunning means the work routine is executing.
	StateRunning

	// StateFinished means the work routine has returned. A thread stays
	// finished forever; the state never regresses.
	StateFinished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
