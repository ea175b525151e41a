package validator

import (
	"errors"
	"strings"
)

// ErrValidation is matched by every ValidationErrors value via errors.Is.
var ErrValidation = errors.New("validation failed")

// Machine-readable failure codes.
const (
	CodeMissing      = "missing"
	CodeInvalidType  = "invalid_type"
	CodeInvalidEmail = "invalid_email"
)

// ValidationError describes one failing field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is an ordered list of field failures.
type ValidationErrors []ValidationError

// Add appends a failure for field.
func (e *ValidationErrors) Add(field, code, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message, Code: code})
}

// Any reports whether at least one failure was recorded.
func (e ValidationErrors) Any() bool {
	return len(e) > 0
}

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidation) match.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// IsValidationError reports whether err carries field failures.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// ExtractValidationErrors returns the field failures carried by err, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
