package smtp

import (
	"errors"
	"fmt"
	"time"
)

// TLSMode selects how the connection to the SMTP server is secured.
type TLSMode string

const (
	// TLSModeSSL uses implicit TLS from the first byte (usually port 465).
	TLSModeSSL TLSMode = "ssl"
	// TLSModeSTARTTLS upgrades a plain connection and refuses servers that can't.
	TLSModeSTARTTLS TLSMode = "starttls"
	// TLSModeNone sends in clear text. Only for local relays.
	TLSModeNone TLSMode = "none"
)

// ParseTLSMode maps a config value to a TLSMode. Empty means TLSModeSSL.
func ParseTLSMode(s string) (TLSMode, error) {
	switch m := TLSMode(s); m {
	case "":
		return TLSModeSSL, nil
	case TLSModeSSL, TLSModeSTARTTLS, TLSModeNone:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTLSMode, s)
	}
}

// Config holds SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the envelope and header sender, "addr" or "Name <addr>".
	From    string
	TLSMode TLSMode
	// SkipVerify disables certificate validation.
	SkipVerify bool
	// Timeout bounds dialing and each SMTP command.
	Timeout time.Duration
}

const defaultTimeout = 10 * time.Second

func (c Config) validate() error {
	var errs []error
	if c.Host == "" {
		errs = append(errs, ErrNoHost)
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPort, c.Port))
	}
	if c.From == "" {
		errs = append(errs, ErrNoFrom)
	}
	if _, err := ParseTLSMode(string(c.TLSMode)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
