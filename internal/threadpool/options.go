package threadpool

import (
	"log/slog"

	"gitlab.ozon.dev/safariproxd/rserv/internal/metrics"
)

const defaultName = "default"

type options struct {
	name    string
	logger  *slog.Logger
	metrics metrics.Provider
}

type Option func(*options)

// WithName sets the pool label used in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithMetrics(provider metrics.Provider) Option {
	return func(o *options) {
		if provider != nil {
			o.metrics = provider
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		name:    defaultName,
		logger:  slog.Default(),
		metrics: metrics.NewNoOpProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
