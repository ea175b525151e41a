package config

import "errors"

var (
	// ErrInvalidConfig is joined with every problem found while loading.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrReadFile wraps failures reading the .env or YAML file.
	ErrReadFile = errors.New("config: failed to read file")
)
