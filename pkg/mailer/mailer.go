package mailer

import (
	"context"
	"errors"
	"time"
)

// Mailer validates outgoing messages and hands them to a Sender under a
// bounded deadline.
type Mailer struct {
	sender  Sender
	timeout time.Duration
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithTimeout bounds every Send call. Zero disables the extra deadline and
// leaves only the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(m *Mailer) {
		if d >= 0 {
			m.timeout = d
		}
	}
}

// New creates a Mailer on top of sender.
func New(sender Sender, opts ...Option) *Mailer {
	m := &Mailer{sender: sender}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send validates email and delivers it exactly once. Transport failures are
// returned joined with ErrSendFailed.
func (m *Mailer) Send(ctx context.Context, email *Email) error {
	if err := Validate(email); err != nil {
		return err
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// Validate checks the fields every transport needs.
func Validate(email *Email) error {
	if email == nil || len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" {
		return ErrNoContent
	}
	return nil
}
