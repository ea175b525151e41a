package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML layout. Every field maps onto one environment key.
type fileConfig struct {
	Address          string   `yaml:"address"`
	AdminEmail       string   `yaml:"admin_email"`
	RenderFormat     string   `yaml:"render_format"`
	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
	ShutdownTimeout  string   `yaml:"shutdown_timeout"`

	Mail struct {
		Transport     string `yaml:"transport"`
		Server        string `yaml:"server"`
		Port          int    `yaml:"port"`
		Username      string `yaml:"username"`
		Password      string `yaml:"password"`
		From          string `yaml:"from"`
		TLSMode       string `yaml:"tls_mode"`
		ValidateCerts *bool  `yaml:"validate_certs"`
		Timeout       string `yaml:"timeout"`
	} `yaml:"mail"`

	Resend struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"resend"`

	SES struct {
		Region          string `yaml:"region"`
		AccessKeyID     string `yaml:"access_key_id"`
		SecretAccessKey string `yaml:"secret_access_key"`
	} `yaml:"ses"`

	Sentry struct {
		DSN         string `yaml:"dsn"`
		Environment string `yaml:"environment"`
	} `yaml:"sentry"`
}

func readYAML(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}
	return fc.values(), nil
}

func (fc fileConfig) values() map[string]string {
	v := make(map[string]string)
	set := func(key, val string) {
		if val != "" {
			v[key] = val
		}
	}

	set(keyAddress, fc.Address)
	set(keyAdminEmail, fc.AdminEmail)
	set(keyRenderFormat, fc.RenderFormat)
	set(keyCORSAllowOrigins, strings.Join(fc.CORSAllowOrigins, ","))
	set(keyShutdownTimeout, fc.ShutdownTimeout)

	set(keyMailTransport, fc.Mail.Transport)
	set(keyMailServer, fc.Mail.Server)
	if fc.Mail.Port != 0 {
		set(keyMailPort, strconv.Itoa(fc.Mail.Port))
	}
	set(keyMailUsername, fc.Mail.Username)
	set(keyMailPassword, fc.Mail.Password)
	set(keyMailFrom, fc.Mail.From)
	set(keyMailTLSMode, fc.Mail.TLSMode)
	if fc.Mail.ValidateCerts != nil {
		set(keyMailValidateCerts, strconv.FormatBool(*fc.Mail.ValidateCerts))
	}
	set(keyMailTimeout, fc.Mail.Timeout)

	set(keyResendAPIKey, fc.Resend.APIKey)

	set(keySESRegion, fc.SES.Region)
	set(keySESAccessKeyID, fc.SES.AccessKeyID)
	set(keySESSecretAccessKey, fc.SES.SecretAccessKey)

	set(keySentryDSN, fc.Sentry.DSN)
	set(keySentryEnvironment, fc.Sentry.Environment)
	return v
}
