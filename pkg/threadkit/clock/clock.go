// Package clock provides the millisecond time source used by threadkit's
// bounded waits: a monotonic timestamp, elapsed-time computation, and a
// blocking sleep.
//
// The default implementation wraps the system clock. MockClock replaces it in
// tests so deadline logic runs without real sleeping.
package clock

import "time"

// Timestamp is a millisecond instant relative to a clock's epoch.
// Callers must tolerate non-strict monotonicity across clock sources and
// treat negative elapsed values as zero in deadline comparisons.
type Timestamp int64

// Clock is the time source for deadline and polling logic.
type Clock interface {
	// Now returns the current timestamp in milliseconds.
	Now() Timestamp

	// Elapsed returns the milliseconds since start. The result may be
	// negative if the underlying source is non-monotonic.
	Elapsed(start Timestamp) int64

	// Sleep blocks the calling goroutine for at least d.
	Sleep(d time.Duration)
}

// SystemClock implements Clock using the host system's monotonic clock.
// Timestamps are milliseconds since the clock was created, so Now is
// monotonic for the lifetime of the instance.
type SystemClock struct {
	epoch time.Time
}

// Compile-time interface check.
var _ Clock = (*SystemClock)(nil)

// System creates a SystemClock anchored at the current time.
func System() *SystemClock {
	return &SystemClock{epoch: time.Now()}
}

// Now returns the milliseconds elapsed since the clock's epoch.
// time.Since reads the runtime's monotonic clock internally.
func (c *SystemClock) Now() Timestamp {
	return Timestamp(time.Since(c.epoch).Milliseconds())
}

// Elapsed returns the milliseconds since start.
func (c *SystemClock) Elapsed(start Timestamp) int64 {
	return int64(c.Now() - start)
}

// Sleep blocks for at least d via the runtime timer, never by spinning.
func (c *SystemClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
