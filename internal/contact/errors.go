package contact

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/contactrelay"
	"github.com/dmitrymomot/contactrelay/pkg/validator"
)

// ErrDeliveryFailed marks a submission the mail transport did not accept.
var ErrDeliveryFailed = errors.New("contact: delivery failed")

// Client-facing error details.
const (
	detailInvalidJSON  = "Invalid JSON body."
	detailTooLarge     = "Request body too large."
	detailSendFailed   = "Failed to send email."
	detailInternal     = "Internal Server Error"
	detailNotFound     = "Not Found"
	detailMethodDenied = "Method Not Allowed"
)

// ErrorResponse is the body of every failure response.
// Detail is a string, or a list of field errors for 422.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// ErrorHandler renders handler errors as {"detail": ...} JSON.
// Transport and internal error text is logged, never sent to the client.
func ErrorHandler(c contactrelay.Context, err error) error {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: verrs})
	}

	if errors.Is(err, ErrDeliveryFailed) {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: detailSendFailed})
	}

	if httpErr := contactrelay.AsHTTPError(err); httpErr != nil {
		if httpErr.Code >= http.StatusInternalServerError {
			c.LogError("request failed", slog.Int("status", httpErr.Code), slog.Any("error", err))
		}
		return c.JSON(httpErr.Code, ErrorResponse{Detail: httpErr.Message})
	}

	c.LogError("unhandled error", slog.Any("error", err))
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: detailInternal})
}

// NotFound answers unknown routes.
func NotFound(contactrelay.Context) error {
	return contactrelay.ErrNotFound(detailNotFound)
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(contactrelay.Context) error {
	return contactrelay.ErrMethodNotAllowed(detailMethodDenied)
}
