package internal

// Handler declares routes on a router.
//
// Example:
//
//	type ContactHandler struct {
//	    dispatcher *contact.Dispatcher
//	}
//
//	func (h *ContactHandler) Routes(r contactrelay.Router) {
//	    r.POST("/send-email", h.send)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the request to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect the request, short-circuit processing,
// or decorate the response.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
