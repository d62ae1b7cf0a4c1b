package threadkit

import (
	"log/slog"
	"time"

	"github.com/randalmurphal/threadkit/pkg/threadkit/clock"
	"github.com/randalmurphal/threadkit/pkg/threadkit/config"
	"github.com/randalmurphal/threadkit/pkg/threadkit/journal"
	"github.com/randalmurphal/threadkit/pkg/threadkit/observability"
)

// threadConfig holds construction-time configuration for a Thread.
type threadConfig struct {
	registry     *Registry
	clk          clock.Clock
	stackSize    int
	pollInterval time.Duration
	logger       *slog.Logger
	metrics      observability.MetricsRecorder
	spans        observability.SpanManager
	journal      journal.Store
}

// defaultThreadConfig returns the default thread configuration.
func defaultThreadConfig() threadConfig {
	return threadConfig{
		registry:     defaultRegistry,
		clk:          clock.System(),
		stackSize:    DefaultStackSize(),
		pollInterval: time.Millisecond,
		metrics:      observability.NoopMetrics{},
		spans:        observability.NoopSpanManager{},
	}
}

// Option configures a Thread at construction.
type Option func(*threadConfig)

// WithRegistry registers the thread in reg instead of the process-wide
// default registry. Tests use this to get isolated registries.
func WithRegistry(reg *Registry) Option {
	return func(c *threadConfig) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithClock sets the time source used by bounded waits.
// Default: the system clock.
func WithClock(clk clock.Clock) Option {
	return func(c *threadConfig) {
		if clk != nil {
			c.clk = clk
		}
	}
}

// WithStackSize sets the initial stack reservation in bytes.
// Zero or negative values keep the platform default. The size can still be
// changed with SetStackSize until the thread starts.
func WithStackSize(bytes int) Option {
	return func(c *threadConfig) {
		if bytes > 0 {
			c.stackSize = bytes
		}
	}
}

// WithPollInterval sets the sleep granularity of WaitTimeout.
// Default: 1ms. Shorter intervals lower bounded-wait latency at the cost of
// more wake-ups.
func WithPollInterval(d time.Duration) Option {
	return func(c *threadConfig) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithLogger sets the logger for lifecycle events.
// Default: no logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *threadConfig) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder for lifecycle events.
// Default: no-op.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *threadConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpanManager sets the span manager used to trace the work routine and
// context-bounded joins.
// Default: no-op.
func WithSpanManager(sm observability.SpanManager) Option {
	return func(c *threadConfig) {
		if sm != nil {
			c.spans = sm
		}
	}
}

// WithJournal attaches a lifecycle journal. Entries are written best-effort;
// journal failures are logged and never affect the lifecycle.
// Default: no journal.
func WithJournal(store journal.Store) Option {
	return func(c *threadConfig) {
		c.journal = store
	}
}

// WithDefaults applies loaded configuration defaults (stack size and poll
// interval). Explicit WithStackSize/WithPollInterval options given after
// this one take precedence.
func WithDefaults(d config.Defaults) Option {
	return func(c *threadConfig) {
		if d.StackSize > 0 {
			c.stackSize = d.StackSize
		}
		if d.PollInterval > 0 {
			c.pollInterval = d.PollInterval
		}
	}
}
