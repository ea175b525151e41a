// Package validator holds the field-level error types returned when an inbound
// payload fails structural checks, plus the few primitive checks the service
// needs.
//
// Errors are collected, not short-circuited, so a client sees every bad field
// at once:
//
//	var errs validator.ValidationErrors
//	if !validator.IsEmail(email) {
//	    errs.Add("email", validator.CodeInvalidEmail, "value is not a valid email address")
//	}
//	if errs.Any() {
//	    return errs
//	}
package validator
