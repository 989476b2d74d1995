package rappor

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordEncode is called after each encode operation with the time taken.
	RecordEncode(duration time.Duration)

	// RecordReseed is called for each deterministic PRR reseed
	// (one-PRR-per-value mode only).
	RecordReseed()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEncode(time.Duration) {}
func (NoopMetricsCollector) RecordReseed()              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EncodeCount      atomic.Int64
	EncodeTotalNanos atomic.Int64
	ReseedCount      atomic.Int64
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(duration time.Duration) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
}

// RecordReseed implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReseed() {
	b.ReseedCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.EncodeCount.Load()
	stats := BasicMetricsStats{
		EncodeCount: count,
		ReseedCount: b.ReseedCount.Load(),
	}
	if count > 0 {
		stats.EncodeAvgNanos = b.EncodeTotalNanos.Load() / count
	}
	return stats
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EncodeCount    int64
	EncodeAvgNanos int64
	ReseedCount    int64
}
