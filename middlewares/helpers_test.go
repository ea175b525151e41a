package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/dmitrymomot/contactrelay"
)

type routeFunc func(r contactrelay.Router)

func (f routeFunc) Routes(r contactrelay.Router) { f(r) }

// syncBuffer is written from server goroutines and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newApp(mw []contactrelay.Middleware, routes routeFunc, opts ...contactrelay.Option) *contactrelay.App {
	opts = append([]contactrelay.Option{
		contactrelay.WithMiddleware(mw...),
		contactrelay.WithHandlers(routes),
	}, opts...)
	return contactrelay.New(opts...)
}

func do(app http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func jsonLogger(w *syncBuffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
