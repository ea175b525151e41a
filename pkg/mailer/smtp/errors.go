package smtp

import "errors"

var (
	ErrNoHost         = errors.New("smtp: host is required")
	ErrInvalidPort    = errors.New("smtp: invalid port")
	ErrNoFrom         = errors.New("smtp: sender address is required")
	ErrInvalidTLSMode = errors.New("smtp: invalid TLS mode")
	ErrBuildMessage   = errors.New("smtp: failed to build message")
)
