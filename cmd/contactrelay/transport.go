package main

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/contactrelay/internal/config"
	"github.com/dmitrymomot/contactrelay/pkg/health"
	"github.com/dmitrymomot/contactrelay/pkg/mailer"
	"github.com/dmitrymomot/contactrelay/pkg/mailer/resend"
	"github.com/dmitrymomot/contactrelay/pkg/mailer/ses"
	"github.com/dmitrymomot/contactrelay/pkg/mailer/smtp"
)

type transport struct {
	sender mailer.Sender
	// check is nil when the transport has no cheap readiness check.
	check health.CheckFunc
}

func newTransport(ctx context.Context, cfg config.Config) (transport, error) {
	switch cfg.Mail.Transport {
	case config.TransportSMTP:
		s, err := smtp.New(smtp.Config{
			Host:       cfg.Mail.Server,
			Port:       cfg.Mail.Port,
			Username:   cfg.Mail.Username,
			Password:   cfg.Mail.Password,
			From:       cfg.Mail.From,
			TLSMode:    cfg.Mail.TLSMode,
			SkipVerify: !cfg.Mail.ValidateCerts,
			Timeout:    cfg.Mail.Timeout,
		})
		if err != nil {
			return transport{}, fmt.Errorf("smtp transport: %w", err)
		}
		return transport{sender: s, check: s.Healthcheck()}, nil

	case config.TransportResend:
		s, err := resend.New(resend.Config{
			APIKey: cfg.Resend.APIKey,
			From:   cfg.Mail.From,
		})
		if err != nil {
			return transport{}, fmt.Errorf("resend transport: %w", err)
		}
		return transport{sender: s}, nil

	case config.TransportSES:
		s, err := ses.New(ctx, ses.Config{
			Region:          cfg.SES.Region,
			AccessKeyID:     cfg.SES.AccessKeyID,
			SecretAccessKey: cfg.SES.SecretAccessKey,
			From:            cfg.Mail.From,
		})
		if err != nil {
			return transport{}, fmt.Errorf("ses transport: %w", err)
		}
		return transport{sender: s, check: s.Healthcheck()}, nil
	}
	return transport{}, fmt.Errorf("unknown mail transport %q", cfg.Mail.Transport)
}
