package resend

import "errors"

var (
	ErrNoAPIKey   = errors.New("resend: API key is required")
	ErrNoFrom     = errors.New("resend: sender address is required")
	ErrInvalidURL = errors.New("resend: invalid base URL")
)
