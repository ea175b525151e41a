package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/contactrelay/pkg/logger"
	"github.com/dmitrymomot/contactrelay/pkg/mailer"
	"github.com/dmitrymomot/contactrelay/pkg/sanitizer"
)

// DefaultTimeout bounds one delivery attempt when no timeout is configured.
const DefaultTimeout = 10 * time.Second

const subjectPrefix = "New Website Message from "

// Dispatcher delivers rendered submissions to the administrator address.
type Dispatcher struct {
	mailer    *mailer.Mailer
	recipient string
	logger    *slog.Logger
	plainText bool
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*dispatcherConfig)

type dispatcherConfig struct {
	timeout   time.Duration
	logger    *slog.Logger
	plainText bool
}

// WithTimeout bounds every delivery. The request context still applies, so a
// client disconnect cancels the send earlier.
func WithTimeout(d time.Duration) DispatcherOption {
	return func(c *dispatcherConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used to record delivery outcomes.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(c *dispatcherConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPlainText adds a text/plain alternative derived from the HTML body.
func WithPlainText() DispatcherOption {
	return func(c *dispatcherConfig) {
		c.plainText = true
	}
}

// NewDispatcher creates a Dispatcher that sends through sender to recipient.
func NewDispatcher(sender mailer.Sender, recipient string, opts ...DispatcherOption) *Dispatcher {
	cfg := &dispatcherConfig{
		timeout: DefaultTimeout,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Dispatcher{
		mailer:    mailer.New(sender, mailer.WithTimeout(cfg.timeout)),
		recipient: recipient,
		logger:    cfg.logger,
		plainText: cfg.plainText,
	}
}

// Dispatch sends body to the administrator exactly once. On failure the
// cause is logged and an error matching ErrDeliveryFailed is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, sub Submission, body string) error {
	email := &mailer.Email{
		To:      []string{d.recipient},
		Subject: Subject(sub.Name),
		HTML:    body,
		ReplyTo: sub.Email,
		Tags:    mailer.SimpleTags("contact_form"),
	}
	if d.plainText {
		email.Text = sanitizer.PlainText(body)
	}

	start := time.Now()
	if err := d.mailer.Send(ctx, email); err != nil {
		d.logger.ErrorContext(ctx, "contact email delivery failed",
			logger.Email("reply_to", sub.Email),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	d.logger.InfoContext(ctx, "contact email sent",
		logger.Email("reply_to", sub.Email),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Subject returns the notification subject for a submitter name.
// Line breaks are flattened so the name cannot start a new header.
func Subject(name string) string {
	return subjectPrefix + strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(name)
}
