/*
Package threadkit provides a minimal OS-thread lifecycle primitive: threads
that register themselves in a process-wide registry, blocking and
timeout-bounded joins, and reverse lookup from any running work routine to
the Thread that spawned it.

# Overview

Each Thread owns one dedicated OS thread (a goroutine pinned with
runtime.LockOSThread) running a caller-supplied work routine. The package is
a lifecycle and bookkeeping layer only: there is no pool, no task queue, no
cancellation, and no scheduling policy beyond what the host OS scheduler
provides.

# Basic Usage

Create a thread with a work routine, start it, and join:

	t, err := threadkit.New(threadkit.RunnableFunc(func() {
	    // work runs on its own OS thread
	}))
	if err != nil {
	    log.Fatal(err)
	}
	defer t.Close()

	if err := t.Start(); err != nil {
	    log.Fatal(err)
	}

	if !t.WaitTimeout(100 * time.Millisecond) {
	    // still running; keep waiting without a bound
	    _ = t.Wait()
	}

# Registry and Current

Every live Thread is tracked in a registry from construction until Close.
Code running inside a work routine can find its owning Thread:

	if self, ok := threadkit.Current(); ok {
	    fmt.Println("running as", self.ID())
	}

Calls from the main goroutine, or from goroutines not spawned through a
Thread, find no match. Tests inject a fresh registry with WithRegistry
instead of sharing the process-wide one.

# Joins

Wait blocks until the work routine returns and is safe for any number of
concurrent observers. WaitTimeout is a polling bounded wait with a 1ms
default granularity; a false return means the deadline passed, never that
the work routine stopped. WaitContext bounds the wait with a context
instead of a timeout.

# Observability

Lifecycle events can be logged through slog, recorded as OpenTelemetry
metrics and spans, and persisted to a SQLite-backed journal. All of it is
opt-in via options; the defaults are silent no-ops.
*/
package threadkit
