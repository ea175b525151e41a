package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures the stdout handler built by New and NewWithSentry.
type Option func(*options)

type options struct {
	out   io.Writer
	level slog.Level
}

// WithOutput redirects log output. Tests use it to capture records.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLevel sets the minimum level written to the output.
func WithLevel(l slog.Level) Option {
	return func(o *options) {
		o.level = l
	}
}

func newOptions(opts ...Option) *options {
	o := &options{out: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) handler() slog.Handler {
	return slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: o.level})
}

// New creates a JSON-formatted logger with optional context extractors.
func New(extractors []ContextExtractor, opts ...Option) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newOptions(opts...).handler(), extractors...))
}
