package ses

import "errors"

var (
	ErrNoFrom     = errors.New("ses: sender address is required")
	ErrLoadConfig = errors.New("ses: failed to load AWS config")
)
