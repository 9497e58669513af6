package phonogo

import (
	"log/slog"

	"github.com/hupe1980/phonogo/phoneme"
)

type options struct {
	parser           phoneme.Parser
	concurrency      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Phonogo.
type Option func(*options)

// WithParser sets the feature parser used for indexing, querying and
// tabulating. If nil is passed, the built-in IPA parser is used.
//
// The parser must be safe for concurrent use.
func WithParser(p phoneme.Parser) Option {
	return func(o *options) {
		o.parser = p
	}
}

// WithConcurrency bounds the number of inventories TabulateAll processes
// at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &phonogo.BasicMetricsCollector{}
//	pg := phonogo.New(phonogo.WithMetricsCollector(metrics))
//	// ... use pg ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, Avg latency: %dns\n", stats.QueryCount, stats.QueryAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
//	logger := phonogo.NewJSONLogger(slog.LevelInfo)
//	pg := phonogo.New(phonogo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
