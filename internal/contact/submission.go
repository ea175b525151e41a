package contact

import (
	"github.com/dmitrymomot/contactrelay/pkg/validator"
)

// Submission is one contact-form entry. It lives for a single request and is
// never stored.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Field failure messages sent back to the client.
const (
	msgRequired     = "Field required"
	msgNotString    = "Input should be a valid string"
	msgInvalidEmail = "value is not a valid email address"
)

// ParseSubmission checks a decoded JSON object field by field. Every failing
// field is reported; on any failure the returned Submission is zero.
// Empty name and message are accepted.
func ParseSubmission(raw map[string]any) (Submission, validator.ValidationErrors) {
	var errs validator.ValidationErrors

	name, _ := stringField(raw, "name", &errs)
	email, ok := stringField(raw, "email", &errs)
	if ok && !validator.IsEmail(email) {
		errs.Add("email", validator.CodeInvalidEmail, msgInvalidEmail)
	}
	message, _ := stringField(raw, "message", &errs)

	if errs.Any() {
		return Submission{}, errs
	}
	return Submission{Name: name, Email: email, Message: message}, nil
}

func stringField(raw map[string]any, field string, errs *validator.ValidationErrors) (string, bool) {
	v, ok := raw[field]
	if !ok {
		errs.Add(field, validator.CodeMissing, msgRequired)
		return "", false
	}
	// null counts as a wrong type, not a missing field.
	s, ok := v.(string)
	if !ok {
		errs.Add(field, validator.CodeInvalidType, msgNotString)
		return "", false
	}
	return s, true
}
