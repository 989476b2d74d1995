package rappor

import (
	"log/slog"

	"github.com/clebeer/rappor/randsrc"
)

type options struct {
	source  randsrc.Source
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Encoder construction.
type Option func(*options)

// WithSource supplies the randomness source the encoder draws from.
//
// If nil (or omitted), a fresh system-entropy-seeded source is used.
// A fixed-seed source makes the encoder fully deterministic, which is the
// basis for reproducible test vectors. With Params.OnePRRPerValue set, the
// source must additionally implement randsrc.StatefulSource.
func WithSource(src randsrc.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

// WithMetricsCollector configures a metrics collector for monitoring
// operations.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metrics: NoopMetricsCollector{},
		logger:  NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
