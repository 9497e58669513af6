package phonogo

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with phonogo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLanguage adds a language field to the logger.
func (l *Logger) WithLanguage(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("language", name),
	}
}

// WithRequestID adds a request id field to the logger.
func (l *Logger) WithRequestID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("request_id", id),
	}
}

// LogAddLanguage logs an index insertion.
func (l *Logger) LogAddLanguage(ctx context.Context, name string, glyphs int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "add language failed",
			"language", name,
			"glyphs", glyphs,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "add language completed",
			"language", name,
			"glyphs", glyphs,
		)
	}
}

// LogLoad logs a corpus load.
func (l *Logger) LogLoad(ctx context.Context, records int, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "corpus load failed",
			"records", records,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "corpus loaded",
			"records", records,
			"took", took,
		)
	}
}

// LogQuery logs a search operation.
func (l *Logger) LogQuery(ctx context.Context, kind string, terms []string, results int, err error) {
	if err != nil {
		l.WarnContext(ctx, "query failed",
			"kind", kind,
			"terms", terms,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "query completed",
			"kind", kind,
			"terms", terms,
			"results", results,
		)
	}
}

// LogTabulate logs the tabulation of one inventory.
func (l *Logger) LogTabulate(ctx context.Context, name string, phonemes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "tabulate failed",
			"language", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "tabulate completed",
			"language", name,
			"phonemes", phonemes,
		)
	}
}

// LogBatchTabulate logs a TabulateAll run.
func (l *Logger) LogBatchTabulate(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch tabulate failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch tabulate completed",
			"count", count,
		)
	}
}
