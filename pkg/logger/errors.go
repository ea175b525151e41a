package logger

import "errors"

// ErrSentryFlush is returned when buffered events could not be delivered in time.
var ErrSentryFlush = errors.New("logger: sentry flush timed out")
