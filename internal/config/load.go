package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrymomot/contactrelay"
	"github.com/dmitrymomot/contactrelay/internal/contact"
	"github.com/dmitrymomot/contactrelay/pkg/mailer/smtp"
	"github.com/dmitrymomot/contactrelay/pkg/validator"
)

// Environment keys.
const (
	keyAddress          = "ADDRESS"
	keyAdminEmail       = "ADMIN_EMAIL"
	keyRenderFormat     = "RENDER_FORMAT"
	keyCORSAllowOrigins = "CORS_ALLOW_ORIGINS"
	keyShutdownTimeout  = "SHUTDOWN_TIMEOUT"

	keyMailTransport     = "MAIL_TRANSPORT"
	keyMailServer        = "MAIL_SERVER"
	keyMailPort          = "MAIL_PORT"
	keyMailUsername      = "MAIL_USERNAME"
	keyMailPassword      = "MAIL_PASSWORD"
	keyMailFrom          = "MAIL_FROM"
	keyMailTLSMode       = "MAIL_TLS_MODE"
	keyMailValidateCerts = "MAIL_VALIDATE_CERTS"
	keyMailTimeout       = "MAIL_TIMEOUT"

	keyResendAPIKey = "RESEND_API_KEY"

	keySESRegion          = "SES_REGION"
	keySESAccessKeyID     = "SES_ACCESS_KEY_ID"
	keySESSecretAccessKey = "SES_SECRET_ACCESS_KEY"

	keySentryDSN         = "SENTRY_DSN"
	keySentryEnvironment = "SENTRY_ENVIRONMENT"

	keyEnvFile    = "ENV_FILE"
	keyConfigFile = "CONFIG_FILE"
)

var defaults = map[string]string{
	keyAddress:           "127.0.0.1:8000",
	keyRenderFormat:      string(contact.FormatEscaped),
	keyCORSAllowOrigins:  "*",
	keyShutdownTimeout:   "30s",
	keyMailTransport:     TransportSMTP,
	keyMailTLSMode:       string(smtp.TLSModeSSL),
	keyMailValidateCerts: "true",
	keyMailTimeout:       "10s",
	keySESRegion:         "us-east-1",
	keySentryEnvironment: "production",
	keyEnvFile:           ".env",
}

// Option configures Load.
type Option func(*loader)

// WithLookup replaces os.LookupEnv. Tests use it to avoid touching the
// process environment.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(l *loader) {
		if fn != nil {
			l.lookupEnv = fn
		}
	}
}

type loader struct {
	lookupEnv func(string) (string, bool)
	dotenv    map[string]string
	file      map[string]string
}

// Load reads configuration with this precedence: process environment, the
// .env file (ENV_FILE, optional), the YAML file (CONFIG_FILE, optional),
// then defaults. All problems are reported together, joined with
// ErrInvalidConfig.
func Load(opts ...Option) (Config, error) {
	l := &loader{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}

	envFile, envFileSet := l.lookupEnv(keyEnvFile)
	if !envFileSet {
		envFile = defaults[keyEnvFile]
	}
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			l.dotenv = vals
		case errors.Is(err, fs.ErrNotExist) && !envFileSet:
			// the default .env is optional
		default:
			return Config{}, errors.Join(ErrInvalidConfig, fmt.Errorf("%w: %s: %w", ErrReadFile, envFile, err))
		}
	}

	if path := l.get(keyConfigFile); path != "" {
		vals, err := readYAML(path)
		if err != nil {
			return Config{}, errors.Join(ErrInvalidConfig, err)
		}
		l.file = vals
	}

	return l.build()
}

// get returns the first non-empty value across sources.
func (l *loader) get(key string) string {
	if v, ok := l.lookupEnv(key); ok && v != "" {
		return v
	}
	if v := l.dotenv[key]; v != "" {
		return v
	}
	if v := l.file[key]; v != "" {
		return v
	}
	return defaults[key]
}

func (l *loader) build() (Config, error) {
	var errs []error
	problem := func(key, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: "+format, append([]any{key}, args...)...))
	}
	duration := func(key string) time.Duration {
		d, err := time.ParseDuration(l.get(key))
		if err != nil || d <= 0 {
			problem(key, "must be a positive duration, got %q", l.get(key))
		}
		return d
	}

	cfg := Config{
		Address:         l.get(keyAddress),
		AdminEmail:      l.get(keyAdminEmail),
		ShutdownTimeout: duration(keyShutdownTimeout),
		Mail: MailConfig{
			Transport: strings.ToLower(l.get(keyMailTransport)),
			Server:    l.get(keyMailServer),
			Username:  l.get(keyMailUsername),
			Password:  l.get(keyMailPassword),
			From:      l.get(keyMailFrom),
			Timeout:   duration(keyMailTimeout),
		},
		Resend: ResendConfig{APIKey: l.get(keyResendAPIKey)},
		SES: SESConfig{
			Region:          l.get(keySESRegion),
			AccessKeyID:     l.get(keySESAccessKeyID),
			SecretAccessKey: l.get(keySESSecretAccessKey),
		},
		Sentry: SentryConfig{
			DSN:         l.get(keySentryDSN),
			Environment: l.get(keySentryEnvironment),
		},
	}

	// A send outliving the write deadline would leave the client with a cut
	// connection instead of a 200 or 500.
	if cfg.Mail.Timeout >= contactrelay.DefaultWriteTimeout {
		problem(keyMailTimeout, "must be below the %s server write timeout, got %s",
			contactrelay.DefaultWriteTimeout, cfg.Mail.Timeout)
	}

	for _, o := range strings.Split(l.get(keyCORSAllowOrigins), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, o)
		}
	}

	format, err := contact.ParseFormat(l.get(keyRenderFormat))
	if err != nil {
		problem(keyRenderFormat, "%v", err)
	}
	cfg.RenderFormat = format

	mode, err := smtp.ParseTLSMode(strings.ToLower(l.get(keyMailTLSMode)))
	if err != nil {
		problem(keyMailTLSMode, "must be ssl, starttls or none, got %q", l.get(keyMailTLSMode))
	}
	cfg.Mail.TLSMode = mode

	validate, err := strconv.ParseBool(l.get(keyMailValidateCerts))
	if err != nil {
		problem(keyMailValidateCerts, "must be a boolean, got %q", l.get(keyMailValidateCerts))
	}
	cfg.Mail.ValidateCerts = validate

	if cfg.AdminEmail == "" {
		problem(keyAdminEmail, "is required")
	} else if !validator.IsEmail(cfg.AdminEmail) {
		problem(keyAdminEmail, "must be an email address")
	}
	if cfg.Mail.From == "" {
		problem(keyMailFrom, "is required")
	} else if !validator.IsEmail(cfg.Mail.From) {
		problem(keyMailFrom, "must be an email address")
	}

	switch cfg.Mail.Transport {
	case TransportSMTP:
		if cfg.Mail.Server == "" {
			problem(keyMailServer, "is required for the smtp transport")
		}
		if cfg.Mail.Username == "" {
			problem(keyMailUsername, "is required for the smtp transport")
		}
		if cfg.Mail.Password == "" {
			problem(keyMailPassword, "is required for the smtp transport")
		}
		port, err := strconv.Atoi(l.get(keyMailPort))
		if err != nil || port <= 0 || port > 65535 {
			problem(keyMailPort, "must be a port number, got %q", l.get(keyMailPort))
		}
		cfg.Mail.Port = port
	case TransportResend:
		if cfg.Resend.APIKey == "" {
			problem(keyResendAPIKey, "is required for the resend transport")
		}
	case TransportSES:
		if (cfg.SES.AccessKeyID == "") != (cfg.SES.SecretAccessKey == "") {
			problem(keySESAccessKeyID, "and %s must be set together", keySESSecretAccessKey)
		}
	default:
		problem(keyMailTransport, "must be smtp, resend or ses, got %q", cfg.Mail.Transport)
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return cfg, nil
}
