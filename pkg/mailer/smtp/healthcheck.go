package smtp

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Healthcheck returns a readiness check that connects, says EHLO and
// negotiates TLS, then quits. It never authenticates, so frequent checks
// cannot trip a provider's failed-login or rate limits.
func (s *Sender) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		c, err := mail.NewClient(s.config.Host, s.check...)
		if err != nil {
			return fmt.Errorf("smtp: create client: %w", err)
		}
		if err := c.DialWithContext(ctx); err != nil {
			return fmt.Errorf("smtp: dial %s:%d: %w", s.config.Host, s.config.Port, err)
		}
		return c.Close()
	}
}
