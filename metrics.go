package phonogo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAddLanguage is called after each AddLanguage.
	// glyphs is the number of glyphs submitted, err is nil if successful.
	RecordAddLanguage(glyphs int, duration time.Duration, err error)

	// RecordQuery is called after each query. kind is one of "exact",
	// "superset", "multiple", "features" and "rating".
	RecordQuery(kind string, duration time.Duration, err error)

	// RecordTabulate is called after each tabulation run over count
	// inventories.
	RecordTabulate(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAddLanguage(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordQuery(string, time.Duration, error)    {}
func (NoopMetricsCollector) RecordTabulate(int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddLanguageCount  atomic.Int64
	AddLanguageErrors atomic.Int64
	GlyphCount        atomic.Int64
	QueryCount        atomic.Int64
	QueryErrors       atomic.Int64
	QueryTotalNanos   atomic.Int64
	TabulateCount     atomic.Int64
	TabulateItems     atomic.Int64
	TabulateErrors    atomic.Int64
}

// RecordAddLanguage implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAddLanguage(glyphs int, duration time.Duration, err error) {
	b.AddLanguageCount.Add(1)
	if err != nil {
		b.AddLanguageErrors.Add(1)
		return
	}
	b.GlyphCount.Add(int64(glyphs))
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(kind string, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

// RecordTabulate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTabulate(count int, duration time.Duration, err error) {
	b.TabulateCount.Add(1)
	b.TabulateItems.Add(int64(count))
	if err != nil {
		b.TabulateErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddLanguageCount:  b.AddLanguageCount.Load(),
		AddLanguageErrors: b.AddLanguageErrors.Load(),
		GlyphCount:        b.GlyphCount.Load(),
		QueryCount:        b.QueryCount.Load(),
		QueryErrors:       b.QueryErrors.Load(),
		QueryAvgNanos:     b.getAvgQueryNanos(),
		TabulateCount:     b.TabulateCount.Load(),
		TabulateItems:     b.TabulateItems.Load(),
		TabulateErrors:    b.TabulateErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddLanguageCount  int64
	AddLanguageErrors int64
	GlyphCount        int64
	QueryCount        int64
	QueryErrors       int64
	QueryAvgNanos     int64
	TabulateCount     int64
	TabulateItems     int64
	TabulateErrors    int64
}
