package sqlq

import "log/slog"

// Option is the option for New.
type Option func(*options)

type options struct {
	converters *Converters
	logger     *slog.Logger
	debug      []string
	debugOn    bool
}

// WithConverters sets the converters used to bind table-valued params.
func WithConverters(c *Converters) Option {
	return func(o *options) {
		o.converters = c
	}
}

// WithLogger sets the logger for debug output, slog.Default() if not set.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithDebug enables debug mode, see (*Query).Debug.
func WithDebug(name ...string) Option {
	return func(o *options) {
		o.debugOn = true
		o.debug = name
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
