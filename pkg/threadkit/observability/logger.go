// Package observability provides structured logging, metrics, and tracing
// for threadkit thread lifecycles.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds thread context to a logger.
// Returns a new logger with the thread_id field attached.
func EnrichLogger(logger *slog.Logger, threadID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("thread_id", threadID))
}

// LogThreadStart logs the start of a thread's work routine.
func LogThreadStart(logger *slog.Logger, threadID string, stackSize int) {
	if logger == nil {
		return
	}
	logger.Debug("thread starting",
		slog.String("thread_id", threadID),
		slog.Int("stack_size", stackSize),
	)
}

// LogThreadComplete logs work routine completion.
func LogThreadComplete(logger *slog.Logger, threadID string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("thread finished",
		slog.String("thread_id", threadID),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogThreadDetached logs a thread closed while its work routine was still
// running.
func LogThreadDetached(logger *slog.Logger, threadID string) {
	if logger == nil {
		return
	}
	logger.Warn("thread detached while running",
		slog.String("thread_id", threadID),
	)
}

// LogWaitTimeout logs a bounded wait that expired before completion.
func LogWaitTimeout(logger *slog.Logger, threadID string, timeoutMs int64) {
	if logger == nil {
		return
	}
	logger.Debug("wait timed out",
		slog.String("thread_id", threadID),
		slog.Int64("timeout_ms", timeoutMs),
	)
}

// LogJournalError logs a journal write failure (non-fatal).
func LogJournalError(logger *slog.Logger, threadID string, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("journal write failed",
		slog.String("thread_id", threadID),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
