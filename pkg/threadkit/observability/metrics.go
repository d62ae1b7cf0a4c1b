package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records thread lifecycle metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordSpawn records a thread start and increments the live-thread gauge.
	RecordSpawn(ctx context.Context, threadID string)

	// RecordCompletion records a work routine returning, with its run
	// duration, and decrements the live-thread gauge.
	RecordCompletion(ctx context.Context, threadID string, duration time.Duration)

	// RecordWait records a join attempt: whether the waiter observed
	// completion and how long it blocked.
	RecordWait(ctx context.Context, threadID string, completed bool, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	spawns      metric.Int64Counter
	runLatency  metric.Float64Histogram
	live        metric.Int64UpDownCounter
	waits       metric.Int64Counter
	waitLatency metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("threadkit")

	spawns, err := meter.Int64Counter("threadkit.thread.spawns",
		metric.WithDescription("Number of threads started"),
	)
	if err != nil {
		return nil, err
	}

	runLatency, err := meter.Float64Histogram("threadkit.thread.run_ms",
		metric.WithDescription("Work routine duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	live, err := meter.Int64UpDownCounter("threadkit.thread.live",
		metric.WithDescription("Number of currently running threads"),
	)
	if err != nil {
		return nil, err
	}

	waits, err := meter.Int64Counter("threadkit.wait.attempts",
		metric.WithDescription("Number of join attempts"),
	)
	if err != nil {
		return nil, err
	}

	waitLatency, err := meter.Float64Histogram("threadkit.wait.latency_ms",
		metric.WithDescription("Join blocking time in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		spawns:      spawns,
		runLatency:  runLatency,
		live:        live,
		waits:       waits,
		waitLatency: waitLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordSpawn records a thread start.
func (m *otelMetrics) RecordSpawn(ctx context.Context, threadID string) {
	attrs := metric.WithAttributes(attribute.String("thread_id", threadID))
	m.spawns.Add(ctx, 1, attrs)
	m.live.Add(ctx, 1)
}

// RecordCompletion records a work routine returning.
func (m *otelMetrics) RecordCompletion(ctx context.Context, threadID string, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("thread_id", threadID))
	m.runLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
	m.live.Add(ctx, -1)
}

// RecordWait records a join attempt.
func (m *otelMetrics) RecordWait(ctx context.Context, threadID string, completed bool, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("thread_id", threadID),
		attribute.Bool("completed", completed),
	)
	m.waits.Add(ctx, 1, attrs)
	m.waitLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
}
