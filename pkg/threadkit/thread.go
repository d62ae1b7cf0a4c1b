package threadkit

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/threadkit/pkg/threadkit/clock"
	"github.com/randalmurphal/threadkit/pkg/threadkit/journal"
	"github.com/randalmurphal/threadkit/pkg/threadkit/observability"
)

// Runnable is the work routine executed on a spawned thread.
// The thread invokes it without knowing anything about its implementation.
type Runnable interface {
	Run()
}

// RunnableFunc adapts a plain function to the Runnable interface.
type RunnableFunc func()

// Run invokes the function.
func (f RunnableFunc) Run() { f() }

// defaultStackSize mirrors the common OS default for a thread stack
// reservation (8 MiB).
const defaultStackSize = 8 << 20

// DefaultStackSize returns the stack reservation used when a thread has no
// explicit size configured. SetStackSize(0) queries this fresh rather than
// caching it at construction.
//
// The Go runtime sizes thread stacks on demand, so the reservation is an
// accounting figure carried through logs and the journal, not a hard limit.
func DefaultStackSize() int {
	return defaultStackSize
}

// Thread is a handle to one unit of concurrent work backed by its own
// OS thread.
//
// Lifecycle: New registers the thread in its registry, Start spawns a
// pinned OS thread running the work routine, Wait/WaitTimeout observe
// completion, and Close deregisters. The state machine is strictly
// Created -> Running -> Finished; there is no way to preempt or cancel the
// work routine, only to stop waiting for it.
//
// All methods are safe for concurrent use.
type Thread struct {
	id       string
	runnable Runnable

	// state holds the State word; the trampoline's store to StateFinished
	// is the single completion transition observers synchronize on.
	state atomic.Int32

	// spawnID is the runtime identity of the spawned goroutine, recorded by
	// the trampoline before the work routine runs. Zero until Start.
	spawnID atomic.Uint64

	// done closes when the work routine returns, after the state word is
	// already StateFinished.
	done chan struct{}

	registry     *Registry
	clk          clock.Clock
	pollInterval time.Duration
	logger       *slog.Logger
	metrics      observability.MetricsRecorder
	spans        observability.SpanManager
	journal      journal.Store

	mu        sync.Mutex
	stackSize int
	closed    bool
}

// New creates a thread that will run r when started. The thread is
// registered immediately, so registry lookups account for it before Start;
// it has no spawn identity yet, so LookupCurrent never matches it.
//
// Returns ErrNilRunnable when r is nil.
func New(r Runnable, opts ...Option) (*Thread, error) {
	if r == nil {
		return nil, ErrNilRunnable
	}

	cfg := defaultThreadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Thread{
		id:           fmt.Sprintf("thr-%s", uuid.New().String()[:8]),
		runnable:     r,
		done:         make(chan struct{}),
		registry:     cfg.registry,
		clk:          cfg.clk,
		pollInterval: cfg.pollInterval,
		logger:       cfg.logger,
		metrics:      cfg.metrics,
		spans:        cfg.spans,
		journal:      cfg.journal,
		stackSize:    cfg.stackSize,
	}

	t.registry.register(t)
	t.journalEvent("create", journal.EventCreated)
	return t, nil
}

// ID returns the thread's unique identifier.
func (t *Thread) ID() string {
	return t.id
}

// State returns the current lifecycle state.
func (t *Thread) State() State {
	return State(t.state.Load())
}

// IsRunning reports whether the work routine is executing.
func (t *Thread) IsRunning() bool {
	return t.State() == StateRunning
}

// IsFinished reports whether the work routine has returned.
// Once true it stays true for the lifetime of the thread.
func (t *Thread) IsFinished() bool {
	return t.State() == StateFinished
}

// SetStackSize sets the stack reservation in bytes. It is effective only
// before Start; once the thread is running or finished the call is silently
// ignored. A size of zero resets to the platform default, queried fresh.
func (t *Thread) SetStackSize(bytes int) {
	if t.State() != StateCreated {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if bytes > 0 {
		t.stackSize = bytes
	} else {
		t.stackSize = DefaultStackSize()
	}
}

// StackSize returns the configured stack reservation in bytes.
func (t *Thread) StackSize() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stackSize
}

// Start spawns the thread and transitions it to StateRunning. The work
// routine runs on a goroutine pinned to its own OS thread; preemption and
// fairness are the host scheduler's.
//
// Start returns once the spawned thread has recorded its identity, so a
// work routine that immediately calls Current finds its owner. Starting a
// thread that is already running or finished returns a StateError wrapping
// ErrInvalidState; starting a closed thread returns ErrClosed.
func (t *Thread) Start() error {
	// The closed check and the state transition happen under one lock so a
	// concurrent Close cannot slip between them.
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return fmt.Errorf("start: %w", ErrClosed)
	}
	if !t.state.CompareAndSwap(int32(StateCreated), int32(StateRunning)) {
		t.mu.Unlock()
		return &StateError{Op: "start", State: t.State()}
	}
	t.mu.Unlock()

	// Spawn bookkeeping happens before the trampoline runs, so the journal
	// never shows a finish ahead of its start.
	t.metrics.RecordSpawn(context.Background(), t.id)
	observability.LogThreadStart(t.logger, t.id, t.StackSize())
	t.journalEvent("start", journal.EventStarted)

	ready := make(chan struct{})
	go t.trampoline(ready)
	<-ready
	return nil
}

// trampoline is the spawned thread's entry point. It records the spawn
// identity, runs the work routine, and performs the completion transition.
func (t *Thread) trampoline(ready chan<- struct{}) {
	// Pin to a dedicated OS thread for the lifetime of the work routine.
	// The goroutine exits without unlocking, so the runtime retires the
	// thread instead of reusing it.
	runtime.LockOSThread()
	t.spawnID.Store(callerID())
	close(ready)

	ctx, span := t.spans.StartThreadSpan(context.Background(), t.id)
	elapsed := observability.TimedOperation()

	t.runnable.Run()

	// Completion bookkeeping runs before the transition so that a waiter
	// woken by done already sees the journal entry and metrics.
	durationMs := elapsed()
	t.metrics.RecordCompletion(ctx, t.id, time.Duration(durationMs)*time.Millisecond)
	t.spans.EndSpanWithError(span, nil)
	observability.LogThreadComplete(t.logger, t.id, durationMs)
	t.journalEvent("finish", journal.EventFinished)

	// The state word flips to StateFinished before done closes, so an
	// observer woken by the channel always reads the final state. There is
	// no window where the thread is neither running nor finished.
	t.state.Store(int32(StateFinished))
	close(t.done)
}

// Wait blocks until the work routine has returned. It is safe to call from
// any number of observers concurrently, and calls after completion return
// immediately.
//
// Waiting on a thread that was never started returns a StateError wrapping
// ErrInvalidState rather than blocking forever.
func (t *Thread) Wait() error {
	if t.State() == StateCreated {
		return &StateError{Op: "wait", State: StateCreated}
	}

	elapsed := observability.TimedOperation()
	<-t.done
	t.metrics.RecordWait(context.Background(), t.id, true, time.Duration(elapsed())*time.Millisecond)
	return nil
}

// WaitContext blocks until the work routine has returned or ctx is done,
// whichever comes first. A context error means only that the caller stopped
// waiting; the work routine keeps running.
func (t *Thread) WaitContext(ctx context.Context) error {
	if t.State() == StateCreated {
		return &StateError{Op: "wait", State: StateCreated}
	}

	ctx, span := t.spans.StartWaitSpan(ctx, t.id)
	elapsed := observability.TimedOperation()

	select {
	case <-t.done:
		t.metrics.RecordWait(ctx, t.id, true, time.Duration(elapsed())*time.Millisecond)
		t.spans.EndSpanWithError(span, nil)
		return nil
	case <-ctx.Done():
		err := ctx.Err()
		t.metrics.RecordWait(ctx, t.id, false, time.Duration(elapsed())*time.Millisecond)
		t.spans.EndSpanWithError(span, err)
		return err
	}
}

// WaitTimeout polls the running state at the configured interval until the
// thread is no longer running or the timeout elapses, and reports whether
// the thread is no longer running. Timeout is an expected outcome, not an
// error, and it does not affect the work routine: the thread keeps running
// after a false return.
//
// This is a coarse bounded wait: its latency floor is the polling interval
// (1ms unless WithPollInterval changed it), and it can overshoot the
// timeout by up to one interval. Callers must not assume sub-interval
// precision. A thread that was never started is not running, so the call
// returns true immediately.
func (t *Thread) WaitTimeout(timeout time.Duration) bool {
	elapsedOp := observability.TimedOperation()
	start := t.clk.Now()
	budget := timeout.Milliseconds()

	for t.IsRunning() {
		elapsed := t.clk.Elapsed(start)
		if elapsed < 0 {
			// Non-monotonic clock source; treat as no time passed.
			elapsed = 0
		}
		if elapsed >= budget {
			break
		}
		t.clk.Sleep(t.pollInterval)
	}

	completed := !t.IsRunning()
	t.metrics.RecordWait(context.Background(), t.id, completed, time.Duration(elapsedOp())*time.Millisecond)
	if !completed {
		observability.LogWaitTimeout(t.logger, t.id, timeout.Milliseconds())
	}
	return completed
}

// Close removes the thread from its registry. If the work routine is still
// running the thread is detached: it keeps running to completion but is no
// longer reachable through registry lookup. Close never blocks on the work
// routine; callers that need completion must Wait first.
//
// Close is idempotent; second and later calls are no-ops.
func (t *Thread) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	t.registry.unregister(t)

	if t.IsRunning() {
		observability.LogThreadDetached(t.logger, t.id)
		t.journalEvent("close", journal.EventDetached)
	} else {
		t.journalEvent("close", journal.EventClosed)
	}
	return nil
}

// journalEvent writes a lifecycle entry best-effort. Journal failures are
// logged and never surface to the lifecycle operation that triggered them.
func (t *Thread) journalEvent(op string, event journal.Event) {
	if t.journal == nil {
		return
	}
	if err := t.journal.Append(context.Background(), journal.NewEntry(t.id, event)); err != nil {
		observability.LogJournalError(t.logger, t.id, op, err)
	}
}
