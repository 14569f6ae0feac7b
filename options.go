package circularqueue

import "github.com/timzifer/circular_queue/internal/telemetry"

// Metrics collects operation counters for one or more queues. It is safe to
// share a Metrics value between queues owned by different goroutines.
type Metrics = telemetry.QueueMetrics

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot = telemetry.Snapshot

// DefaultMetrics returns the process-wide Metrics instance.
func DefaultMetrics() *Metrics {
	return telemetry.DefaultQueueMetrics()
}

type options[T any] struct {
	initial []T
	metrics *Metrics
}

// Option configures a Queue created by New.
type Option[T any] func(*options[T])

// WithValues seeds the queue with values in FIFO order.
func WithValues[T any](values ...T) Option[T] {
	return func(opts *options[T]) {
		opts.initial = append(opts.initial[:0], values...)
	}
}

// WithMetrics reports the queue's operations to m. A nil m disables reporting.
func WithMetrics[T any](m *Metrics) Option[T] {
	return func(opts *options[T]) {
		opts.metrics = m
	}
}
