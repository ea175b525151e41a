package mailer

import "context"

// Sender is implemented by every mail transport (SMTP, Resend, SES).
// It delivers one fully-prepared Email and reports the provider's error
// unchanged.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, email *Email) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}
