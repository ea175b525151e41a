package middlewares

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/contactrelay/internal"
)

// AccessLogConfig configures the access log middleware.
type AccessLogConfig struct {
	// SkipPaths are not logged. Health endpoints are the usual candidates.
	SkipPaths []string
}

// AccessLogOption configures AccessLogConfig.
type AccessLogOption func(*AccessLogConfig)

// WithAccessLogSkipPaths excludes exact paths from the access log.
func WithAccessLogSkipPaths(paths ...string) AccessLogOption {
	return func(cfg *AccessLogConfig) {
		cfg.SkipPaths = append(cfg.SkipPaths, paths...)
	}
}

// AccessLog writes one record per request after the response is written.
// 5xx responses log at error level, 4xx at warn, the rest at info.
// The request body is never logged.
func AccessLog(opts ...AccessLogOption) internal.Middleware {
	cfg := &AccessLogConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			r := c.Request()
			if _, ok := skip[r.URL.Path]; ok {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status, size := 0, int64(0)
			if rw, ok := c.Response().(*internal.ResponseWriter); ok {
				status, size = rw.Status(), rw.Size()
			}

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int64("size", size),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
			}
			switch {
			case status >= 500:
				c.LogError("request completed", attrs...)
			case status >= 400:
				c.LogWarn("request completed", attrs...)
			default:
				c.LogInfo("request completed", attrs...)
			}
			return err
		}
	}
}
