package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/contactrelay/pkg/mailer"
)

// Sender implements mailer.Sender over SMTP.
// A new connection is opened per message and closed afterwards.
type Sender struct {
	config  Config
	options []mail.Option
	// check omits SMTP AUTH so readiness checks never count as logins.
	check   []mail.Option
}

// New validates cfg and returns a Sender. Nothing is dialed yet.
func New(cfg Config) (*Sender, error) {
	if cfg.TLSMode == "" {
		cfg.TLSMode = TLSModeSSL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Sender{
		config:  cfg,
		options: append(connOptions(cfg), authOptions(cfg)...),
		check:   connOptions(cfg),
	}, nil
}

// connOptions covers port, timeout and TLS policy.
func connOptions(cfg Config) []mail.Option {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
		mail.WithTLSConfig(&tls.Config{
			ServerName:         cfg.Host,
			InsecureSkipVerify: cfg.SkipVerify, //nolint:gosec // opt-in via MAIL_VALIDATE_CERTS=false
			MinVersion:         tls.VersionTLS12,
		}),
	}

	switch cfg.TLSMode {
	case TLSModeSSL:
		opts = append(opts, mail.WithSSL())
	case TLSModeSTARTTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	case TLSModeNone:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	return opts
}

// authOptions selects PLAIN auth; without TLS the unencrypted variant is
// needed or go-mail refuses to send credentials.
func authOptions(cfg Config) []mail.Option {
	if cfg.Username == "" {
		return nil
	}
	auth := mail.SMTPAuthPlain
	if cfg.TLSMode == TLSModeNone {
		auth = mail.SMTPAuthPlainNoEnc
	}
	return []mail.Option{
		mail.WithSMTPAuth(auth),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
}

func (s *Sender) client() (*mail.Client, error) {
	return mail.NewClient(s.config.Host, s.options...)
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := s.buildMessage(email)
	if err != nil {
		return err
	}

	c, err := s.client()
	if err != nil {
		return fmt.Errorf("smtp: create client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp: send via %s:%d: %w", s.config.Host, s.config.Port, err)
	}
	return nil
}

func (s *Sender) buildMessage(email *mailer.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	from := email.From
	if from == "" {
		from = s.config.From
	}
	if err := msg.From(from); err != nil {
		return nil, errors.Join(ErrBuildMessage, fmt.Errorf("from: %w", err))
	}
	if err := msg.To(email.To...); err != nil {
		return nil, errors.Join(ErrBuildMessage, fmt.Errorf("to: %w", err))
	}
	if len(email.CC) > 0 {
		if err := msg.Cc(email.CC...); err != nil {
			return nil, errors.Join(ErrBuildMessage, fmt.Errorf("cc: %w", err))
		}
	}
	if len(email.BCC) > 0 {
		if err := msg.Bcc(email.BCC...); err != nil {
			return nil, errors.Join(ErrBuildMessage, fmt.Errorf("bcc: %w", err))
		}
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return nil, errors.Join(ErrBuildMessage, fmt.Errorf("reply-to: %w", err))
		}
	}

	msg.Subject(email.Subject)
	msg.SetMessageIDWithValue(uuid.NewString() + "@" + domainOf(from))
	msg.SetDate()
	for k, v := range email.Headers {
		msg.SetGenHeader(mail.Header(k), v)
	}

	if email.Text != "" {
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	} else {
		msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	}
	return msg, nil
}

// domainOf returns the host part of an address, "localhost" when absent.
func domainOf(addr string) string {
	addr = strings.TrimSuffix(strings.TrimSpace(addr), ">")
	if i := strings.LastIndex(addr, "@"); i >= 0 && i < len(addr)-1 {
		return addr[i+1:]
	}
	return "localhost"
}
