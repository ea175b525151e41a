package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/contactrelay/internal"
)

// DefaultCORSMaxAge is the default preflight cache duration.
const DefaultCORSMaxAge = 10 * time.Minute

// Wildcard allows any origin, method or header.
const Wildcard = "*"

// DefaultCORSConfig lets any page embed the contact form.
var DefaultCORSConfig = CORSConfig{
	AllowOrigins:     []string{Wildcard},
	AllowMethods:     []string{Wildcard},
	AllowHeaders:     []string{Wildcard},
	AllowCredentials: true,
	MaxAge:           DefaultCORSMaxAge,
}

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	// AllowOrigins is a static list of allowed origins. "*" allows all.
	AllowOrigins []string

	// AllowOriginFunc overrides AllowOrigins when set.
	AllowOriginFunc func(origin string) bool

	// AllowMethods lists allowed methods. "*" echoes the requested method.
	AllowMethods []string

	// AllowHeaders lists allowed request headers. "*" echoes the requested headers.
	AllowHeaders []string

	ExposeHeaders []string

	// AllowCredentials makes the middleware echo the origin instead of "*",
	// since browsers reject a wildcard origin on credentialed requests.
	AllowCredentials bool

	MaxAge time.Duration
}

// CORSOption configures CORSConfig.
type CORSOption func(*CORSConfig)

// WithAllowOrigins sets the allowed origins.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowOrigins = origins
	}
}

// WithAllowOriginFunc sets a dynamic origin validator.
func WithAllowOriginFunc(fn func(origin string) bool) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowOriginFunc = fn
	}
}

// WithAllowMethods sets the allowed HTTP methods.
func WithAllowMethods(methods ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowMethods = methods
	}
}

// WithAllowHeaders sets the allowed request headers.
func WithAllowHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowHeaders = headers
	}
}

// WithExposeHeaders sets the headers exposed to the client.
func WithExposeHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.ExposeHeaders = headers
	}
}

// WithAllowCredentials toggles credentials support.
func WithAllowCredentials(allow bool) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowCredentials = allow
	}
}

// WithMaxAge sets the preflight cache duration.
func WithMaxAge(duration time.Duration) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.MaxAge = duration
	}
}

// CORS returns middleware that answers preflight requests and adds CORS
// headers to every response for an allowed origin.
func CORS(opts ...CORSOption) internal.Middleware {
	cfg := DefaultCORSConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	anyOrigin := slices.Contains(cfg.AllowOrigins, Wildcard)
	anyMethod := slices.Contains(cfg.AllowMethods, Wildcard)
	anyHeader := slices.Contains(cfg.AllowHeaders, Wildcard)

	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ", ")
	maxAge := strconv.Itoa(int(cfg.MaxAge.Seconds()))

	allowed := func(origin string) bool {
		if cfg.AllowOriginFunc != nil {
			return cfg.AllowOriginFunc(origin)
		}
		return anyOrigin || slices.Contains(cfg.AllowOrigins, origin)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			origin := c.Header("Origin")
			if origin == "" || !allowed(origin) {
				return next(c)
			}

			h := c.Response().Header()
			h.Add("Vary", "Origin")

			if cfg.AllowCredentials || !anyOrigin {
				h.Set("Access-Control-Allow-Origin", origin)
			} else {
				h.Set("Access-Control-Allow-Origin", Wildcard)
			}
			if cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			if exposeHeaders != "" {
				h.Set("Access-Control-Expose-Headers", exposeHeaders)
			}

			reqMethod := c.Header("Access-Control-Request-Method")
			if c.Request().Method != http.MethodOptions || reqMethod == "" {
				return next(c)
			}

			// Preflight.
			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")

			if anyMethod {
				h.Set("Access-Control-Allow-Methods", reqMethod)
			} else {
				h.Set("Access-Control-Allow-Methods", allowMethods)
			}

			if anyHeader {
				if reqHeaders := c.Header("Access-Control-Request-Headers"); reqHeaders != "" {
					h.Set("Access-Control-Allow-Headers", reqHeaders)
				}
			} else if allowHeaders != "" {
				h.Set("Access-Control-Allow-Headers", allowHeaders)
			}

			if cfg.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", maxAge)
			}

			return c.NoContent(http.StatusNoContent)
		}
	}
}
