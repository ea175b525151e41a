package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string
	Environment string
	// MinLevel determines which log levels are sent to Sentry as logs.
	// Errors always create events.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes to stdout and Sentry.
// An empty DSN, or a failed SDK init, falls back to stdout only.
func NewWithSentry(cfg SentryConfig, extractors []ContextExtractor, opts ...Option) *slog.Logger {
	stdoutHandler := newOptions(opts...).handler()

	if cfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(stdoutHandler, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdoutHandler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(stdoutHandler, extractors...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	combined := newMultiHandler(stdoutHandler, sentryHandler)
	return slog.New(NewLogHandlerDecorator(combined, extractors...))
}

// FlushSentry waits for buffered Sentry events until ctx ends.
// It has the shutdown hook signature and is a no-op without a client.
func FlushSentry(ctx context.Context) error {
	if sentry.CurrentHub().Client() == nil {
		return nil
	}
	timeout := 2 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if !sentry.Flush(timeout) {
		return ErrSentryFlush
	}
	return nil
}
