// Package middlewares provides the HTTP middleware the relay runs in front of
// its handlers.
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID (or X-Correlation-ID) or generates
// a UUID, and echoes it in the response. Pair it with RequestIDExtractor so
// every log line written with the request context carries request_id:
//
//	log := logger.New([]logger.ContextExtractor{middlewares.RequestIDExtractor()})
//
// # Recover
//
// Recover converts a panic into a *PanicError. The app's ErrorHandler turns it
// into a generic 500 so the panic value never reaches the client.
//
// # CORS
//
// CORS defaults to what a public contact form needs: any origin, method and
// header, with credentials. Because credentials are on, the origin is echoed
// rather than answered with "*". Restrict origins with WithAllowOrigins.
//
// # Access log
//
// AccessLog writes one record per request with method, path, status, size and
// duration. Bodies are never logged.
//
// # Order
//
// RequestID goes first so preflight and error responses carry the ID too.
//
//	contactrelay.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.AccessLog(middlewares.WithAccessLogSkipPaths("/health/live")),
//	    middlewares.CORS(),
//	    middlewares.Recover(),
//	)
package middlewares
