package contact

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/contactrelay"
)

// SuccessResponse is returned once the transport accepted the email.
type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Handler serves POST /send-email.
type Handler struct {
	renderer   *Renderer
	dispatcher *Dispatcher
}

// NewHandler creates the contact-form handler.
func NewHandler(renderer *Renderer, dispatcher *Dispatcher) *Handler {
	return &Handler{renderer: renderer, dispatcher: dispatcher}
}

// Routes implements contactrelay.Handler.
func (h *Handler) Routes(r contactrelay.Router) {
	r.POST("/send-email", h.send)
}

func (h *Handler) send(c contactrelay.Context) error {
	var raw map[string]any
	if err := c.DecodeJSON(&raw); err != nil {
		if errors.Is(err, contactrelay.ErrBodyTooLarge) {
			return contactrelay.ErrRequestEntityTooLarge(detailTooLarge, contactrelay.WithError(err))
		}
		return contactrelay.ErrBadRequest(detailInvalidJSON, contactrelay.WithError(err))
	}
	if raw == nil {
		return contactrelay.ErrBadRequest(detailInvalidJSON, contactrelay.WithError(contactrelay.ErrInvalidBody))
	}

	sub, verrs := ParseSubmission(raw)
	if verrs.Any() {
		return verrs
	}

	body, err := h.renderer.Render(sub)
	if err != nil {
		return contactrelay.ErrInternal(detailSendFailed, contactrelay.WithError(err))
	}

	// c is the request context: a client disconnect aborts the send.
	if err := h.dispatcher.Dispatch(c, sub, body); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Status:  "success",
		Message: "Email sent successfully",
	})
}
