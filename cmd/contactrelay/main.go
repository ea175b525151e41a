// Command contactrelay serves POST /send-email and relays each valid
// submission to the administrator mailbox.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/contactrelay"
	"github.com/dmitrymomot/contactrelay/internal/config"
	"github.com/dmitrymomot/contactrelay/internal/contact"
	"github.com/dmitrymomot/contactrelay/middlewares"
	"github.com/dmitrymomot/contactrelay/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(
		logger.SentryConfig{DSN: cfg.Sentry.DSN, Environment: cfg.Sentry.Environment},
		[]logger.ContextExtractor{middlewares.RequestIDExtractor()},
	)
	log.Info("configuration loaded", slog.Any("config", cfg))

	transport, err := newTransport(ctx, cfg)
	if err != nil {
		return err
	}

	renderer := contact.NewRenderer(cfg.RenderFormat)
	if renderer.Format() == contact.FormatRaw {
		log.Warn("raw render format interpolates submissions without escaping")
	}

	dispatcher := contact.NewDispatcher(transport.sender, cfg.AdminEmail,
		contact.WithTimeout(cfg.Mail.Timeout),
		contact.WithLogger(log),
		contact.WithPlainText(),
	)

	var healthOpts []contactrelay.HealthOption
	if transport.check != nil {
		healthOpts = append(healthOpts, contactrelay.WithReadinessCheck(cfg.Mail.Transport, transport.check))
	}

	app := contactrelay.New(
		contactrelay.WithLogger(log),
		contactrelay.WithMiddleware(
			middlewares.RequestID(),
			middlewares.AccessLog(middlewares.WithAccessLogSkipPaths("/health/live", "/health/ready")),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSAllowOrigins...)),
			middlewares.Recover(),
		),
		contactrelay.WithHandlers(contact.NewHandler(renderer, dispatcher)),
		contactrelay.WithErrorHandler(contact.ErrorHandler),
		contactrelay.WithNotFoundHandler(contact.NotFound),
		contactrelay.WithMethodNotAllowedHandler(contact.MethodNotAllowed),
		contactrelay.WithHealthChecks(healthOpts...),
	)

	return app.Run(cfg.Address,
		contactrelay.Logger(log),
		contactrelay.WithContext(ctx),
		contactrelay.ShutdownTimeout(cfg.ShutdownTimeout),
		contactrelay.ShutdownHook(logger.FlushSentry),
	)
}
