// Package logger builds the service's structured slog loggers.
//
// Output is JSON on stdout. Request-scoped values are injected by
// [ContextExtractor] functions on every log call, so a request ID stored in
// the request context shows up in every entry logged with that context:
//
//	log := logger.New([]logger.ContextExtractor{middlewares.RequestIDExtractor()})
//	log.InfoContext(ctx, "email sent", logger.Email("reply_to", sub.Email))
//	// {"level":"INFO","msg":"email sent","reply_to":"an***@example.com","request_id":"..."}
//
// [NewWithSentry] additionally fans records out to Sentry. Errors become
// Sentry events, warnings and errors are kept as Sentry logs. An empty DSN
// falls back to stdout only. Register [FlushSentry] as a shutdown hook so
// buffered events are not lost on exit.
//
// Submitter addresses are personal data; log them through [Email] or
// [RedactEmail], never raw.
package logger
