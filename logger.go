package rappor

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rappor-specific helpers.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithUser adds a user field to the logger.
func (l *Logger) WithUser(userID string) *Logger {
	return &Logger{
		Logger: l.Logger.With("user", userID),
	}
}

// LogEncode logs one encode operation. The report bits themselves are never
// logged; only the cohort and width leave the encoder.
func (l *Logger) LogEncode(cohort, width int) {
	l.Debug("encode completed",
		"cohort", cohort,
		"width", width,
	)
}

// LogParams logs the active parameter set at construction.
func (l *Logger) LogParams(p Params) {
	l.Debug("encoder configured",
		"k", p.NumBloomBits,
		"h", p.NumHashes,
		"m", p.NumCohorts,
		"p", p.ProbP,
		"q", p.ProbQ,
		"f", p.ProbF,
		"one_prr", p.OnePRRPerValue,
	)
}
