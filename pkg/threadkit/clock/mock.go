package clock

import (
	"sync"
	"time"
)

// MockClock is a Clock with manually controlled time, for testing deadline
// and polling logic without real sleeping.
//
// Sleep advances the mock time by the requested duration instead of
// blocking, so a polling loop driven by a MockClock reaches its deadline
// deterministically.
type MockClock struct {
	mu  sync.Mutex
	now Timestamp
}

// Compile-time interface check.
var _ Clock = (*MockClock)(nil)

// NewMock creates a MockClock starting at zero.
func NewMock() *MockClock {
	return &MockClock{}
}

// Now returns the current mock time.
func (c *MockClock) Now() Timestamp {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Elapsed returns the milliseconds since start.
func (c *MockClock) Elapsed(start Timestamp) int64 {
	return int64(c.Now() - start)
}

// Sleep advances the mock time by d without blocking.
func (c *MockClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	c.Advance(d)
}

// Advance moves the mock time forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += Timestamp(d.Milliseconds())
}

// Set sets the mock time to t.
func (c *MockClock) Set(t Timestamp) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
