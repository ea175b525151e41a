package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactrelay"
	"github.com/dmitrymomot/contactrelay/internal/config"
	"github.com/dmitrymomot/contactrelay/internal/contact"
	"github.com/dmitrymomot/contactrelay/pkg/mailer/smtp"
)

func lookup(env map[string]string) config.Option {
	return config.WithLookup(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
}

func smtpEnv() map[string]string {
	return map[string]string{
		"ENV_FILE":      "",
		"ADMIN_EMAIL":   "admin@example.com",
		"MAIL_USERNAME": "relay@example.com",
		"MAIL_PASSWORD": "secret",
		"MAIL_FROM":     "relay@example.com",
		"MAIL_PORT":     "465",
		"MAIL_SERVER":   "smtp.example.com",
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(lookup(smtpEnv()))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Address)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.Equal(t, contact.FormatEscaped, cfg.RenderFormat)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)

	assert.Equal(t, config.TransportSMTP, cfg.Mail.Transport)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Server)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.Equal(t, smtp.TLSModeSSL, cfg.Mail.TLSMode)
	assert.True(t, cfg.Mail.ValidateCerts)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, "us-east-1", cfg.SES.Region)
	assert.Empty(t, cfg.Sentry.DSN)
}

func TestLoad_ReportsEveryMissingSMTPKey(t *testing.T) {
	t.Parallel()

	_, err := config.Load(lookup(map[string]string{"ENV_FILE": ""}))
	require.Error(t, err)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	for _, key := range []string{
		"ADMIN_EMAIL", "MAIL_USERNAME", "MAIL_PASSWORD", "MAIL_FROM", "MAIL_PORT", "MAIL_SERVER",
	} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "port not a number", key: "MAIL_PORT", val: "smtp"},
		{name: "port out of range", key: "MAIL_PORT", val: "70000"},
		{name: "tls mode", key: "MAIL_TLS_MODE", val: "always"},
		{name: "render format", key: "RENDER_FORMAT", val: "rtf"},
		{name: "mail timeout", key: "MAIL_TIMEOUT", val: "soon"},
		{name: "mail timeout at write deadline", key: "MAIL_TIMEOUT", val: "30s"},
		{name: "mail timeout past write deadline", key: "MAIL_TIMEOUT", val: "2m"},
		{name: "negative shutdown timeout", key: "SHUTDOWN_TIMEOUT", val: "-1s"},
		{name: "validate certs", key: "MAIL_VALIDATE_CERTS", val: "maybe"},
		{name: "admin email", key: "ADMIN_EMAIL", val: "not-an-email"},
		{name: "from", key: "MAIL_FROM", val: "relay"},
		{name: "transport", key: "MAIL_TRANSPORT", val: "pigeon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := smtpEnv()
			env[tt.key] = tt.val

			_, err := config.Load(lookup(env))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_ResendTransport(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"ENV_FILE":       "",
		"ADMIN_EMAIL":    "admin@example.com",
		"MAIL_FROM":      "relay@example.com",
		"MAIL_TRANSPORT": "Resend",
	}

	_, err := config.Load(lookup(env))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "RESEND_API_KEY")
	assert.NotContains(t, err.Error(), "MAIL_SERVER")

	env["RESEND_API_KEY"] = "re_123"
	cfg, err := config.Load(lookup(env))
	require.NoError(t, err)
	assert.Equal(t, config.TransportResend, cfg.Mail.Transport)
	assert.Equal(t, "re_123", cfg.Resend.APIKey)
}

func TestLoad_SESTransportNeedsBothKeys(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"ENV_FILE":          "",
		"ADMIN_EMAIL":       "admin@example.com",
		"MAIL_FROM":         "relay@example.com",
		"MAIL_TRANSPORT":    "ses",
		"SES_ACCESS_KEY_ID": "AKIA",
	}

	_, err := config.Load(lookup(env))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "SES_SECRET_ACCESS_KEY")

	delete(env, "SES_ACCESS_KEY_ID")
	env["SES_REGION"] = "eu-west-1"
	cfg, err := config.Load(lookup(env))
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.SES.Region)
}

func TestLoad_Precedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "relay.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
address: 0.0.0.0:9000
admin_email: yaml@example.com
render_format: markdown
cors_allow_origins:
  - https://a.example.com
  - https://b.example.com
mail:
  server: yaml.example.com
  port: 587
  username: relay@example.com
  password: from-yaml
  from: relay@example.com
  tls_mode: starttls
  validate_certs: false
`), 0o600))

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(
		"CONFIG_FILE="+yamlPath+"\nMAIL_SERVER=dotenv.example.com\nMAIL_PASSWORD=from-dotenv\n",
	), 0o600))

	cfg, err := config.Load(lookup(map[string]string{
		"ENV_FILE":      envPath,
		"MAIL_PASSWORD": "from-env",
	}))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Mail.Password)
	assert.Equal(t, "dotenv.example.com", cfg.Mail.Server)
	assert.Equal(t, "0.0.0.0:9000", cfg.Address)
	assert.Equal(t, "yaml@example.com", cfg.AdminEmail)
	assert.Equal(t, contact.FormatMarkdown, cfg.RenderFormat)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, smtp.TLSModeSTARTTLS, cfg.Mail.TLSMode)
	assert.False(t, cfg.Mail.ValidateCerts)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
}

func TestLoad_FileErrors(t *testing.T) {
	t.Parallel()

	t.Run("explicit env file missing", func(t *testing.T) {
		t.Parallel()

		env := smtpEnv()
		env["ENV_FILE"] = filepath.Join(t.TempDir(), "missing.env")

		_, err := config.Load(lookup(env))
		require.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.ErrorIs(t, err, config.ErrReadFile)
	})

	t.Run("config file missing", func(t *testing.T) {
		t.Parallel()

		env := smtpEnv()
		env["CONFIG_FILE"] = filepath.Join(t.TempDir(), "missing.yaml")

		_, err := config.Load(lookup(env))
		require.ErrorIs(t, err, config.ErrReadFile)
	})

	t.Run("config file malformed", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("mail: [unterminated"), 0o600))

		env := smtpEnv()
		env["CONFIG_FILE"] = path

		_, err := config.Load(lookup(env))
		require.ErrorIs(t, err, config.ErrReadFile)
	})
}

func TestConfig_LogValueHidesSecrets(t *testing.T) {
	t.Parallel()

	env := smtpEnv()
	env["SENTRY_DSN"] = "https://key@sentry.example.com/1"
	cfg, err := config.Load(lookup(env))
	require.NoError(t, err)

	var buf bytes.Buffer
	slog.New(slog.NewJSONHandler(&buf, nil)).Info("config", slog.Any("config", cfg))

	out := buf.String()
	assert.Contains(t, out, "smtp.example.com")
	assert.Contains(t, out, `"sentry_enabled":true`)
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "key@sentry")
}

func TestLoad_MailTimeoutBelowWriteDeadline(t *testing.T) {
	t.Parallel()

	env := smtpEnv()
	env["MAIL_TIMEOUT"] = "25s"

	cfg, err := config.Load(lookup(env))
	require.NoError(t, err)
	assert.Equal(t, 25*time.Second, cfg.Mail.Timeout)
	assert.Less(t, cfg.Mail.Timeout, contactrelay.DefaultWriteTimeout)
}
