package app

import "github.com/bft-labs/hexport/internal/ports"

// Option configures optional behavior shared by the use cases.
type Option func(*options)

type options struct {
	logger ports.Logger
}

func defaultOptions() options {
	return options{logger: noopLogger{}}
}

// WithLogger sets the logger a use case writes debug output to.
// A nil logger keeps the default no-op logger.
func WithLogger(logger ports.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// noopLogger discards all log messages.
type noopLogger struct{}

func (noopLogger) Debug(msg string, fields ...ports.Field) {}
func (noopLogger) Info(msg string, fields ...ports.Field)  {}
func (noopLogger) Warn(msg string, fields ...ports.Field)  {}
func (noopLogger) Error(msg string, fields ...ports.Field) {}
