package health

import "errors"

// ErrCheckTimeout replaces a check error caused by the shared check deadline.
var ErrCheckTimeout = errors.New("health: check timeout")
