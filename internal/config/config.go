package config

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/contactrelay/internal/contact"
	"github.com/dmitrymomot/contactrelay/pkg/mailer/smtp"
)

// Transport names accepted by MAIL_TRANSPORT.
const (
	TransportSMTP   = "smtp"
	TransportResend = "resend"
	TransportSES    = "ses"
)

// Config is loaded once at startup and passed by value afterwards.
type Config struct {
	Address          string
	AdminEmail       string
	RenderFormat     contact.Format
	CORSAllowOrigins []string
	ShutdownTimeout  time.Duration
	Mail             MailConfig
	Resend           ResendConfig
	SES              SESConfig
	Sentry           SentryConfig
}

// MailConfig selects and configures the outgoing transport.
type MailConfig struct {
	Transport     string
	Server        string
	Port          int
	Username      string
	Password      string
	From          string
	TLSMode       smtp.TLSMode
	ValidateCerts bool
	Timeout       time.Duration
}

type ResendConfig struct {
	APIKey string
}

type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type SentryConfig struct {
	DSN         string
	Environment string
}

// LogValue keeps secrets out of startup logs.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("address", c.Address),
		slog.String("render_format", string(c.RenderFormat)),
		slog.Any("cors_allow_origins", c.CORSAllowOrigins),
		slog.Duration("shutdown_timeout", c.ShutdownTimeout),
		slog.String("mail_transport", c.Mail.Transport),
		slog.String("mail_server", c.Mail.Server),
		slog.Int("mail_port", c.Mail.Port),
		slog.String("mail_tls_mode", string(c.Mail.TLSMode)),
		slog.Bool("mail_validate_certs", c.Mail.ValidateCerts),
		slog.Duration("mail_timeout", c.Mail.Timeout),
		slog.Bool("sentry_enabled", c.Sentry.DSN != ""),
	)
}
