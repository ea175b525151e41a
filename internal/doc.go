// Package internal provides the HTTP kernel behind contactrelay.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/contactrelay" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: Orchestrates routing, middleware, health endpoints, and graceful shutdown
//   - Context: Request/response access plus JSON helpers and request-scoped logging
//   - Router: Interface handlers use to declare routes
//   - Handler: Interface implemented by types that declare routes on a router
//   - HandlerFunc: Signature for route handlers that return errors
//   - Middleware: Wraps handlers to add cross-cutting concerns
//   - ErrorHandler: Turns a handler error into a response
//   - HTTPError: Error carrying a status code and a client-safe message
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to anything that
// expects one. A client disconnect cancels it, which in turn cancels an
// in-flight mail send:
//
//	func (h *Handler) send(c contactrelay.Context) error {
//	    if err := h.dispatcher.Dispatch(c, sub, body); err != nil {
//	        return err
//	    }
//	    return c.JSON(http.StatusOK, ok)
//	}
//
// # Application Structure
//
//	app := internal.New(
//	    internal.WithHandlers(contactHandler),
//	    internal.WithMiddleware(requestID, recoverer),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("smtp", smtpCheck)),
//	)
//	if err := app.Run("127.0.0.1:8000", internal.Logger(log)); err != nil {
//	    log.Error("server failed", "error", err)
//	}
//
// # Error Handling
//
// Handlers return errors. When nothing has been written yet the configured
// ErrorHandler renders them; otherwise the error is only logged. Without a
// custom ErrorHandler every error becomes a plain 500.
//
// # Request Bodies
//
// DecodeJSON caps the body at WithMaxBodyBytes (DefaultMaxBodyBytes when unset)
// and rejects trailing data after the first JSON value.
//
// # Graceful Shutdown
//
// Run blocks until SIGINT/SIGTERM (or the WithContext context ends), drains
// in-flight requests within ShutdownTimeout, then runs ShutdownHook functions
// in registration order.
package internal
