// Package contactrelay is a small HTTP kernel for the contact-form relay
// service, re-exporting the application, routing and error types from
// internal.
//
// The relay itself lives in internal/contact and is wired in
// cmd/contactrelay: a single POST /send-email endpoint validates a
// submission, renders it into an HTML email and hands it to a mail transport
// addressed to a fixed administrator.
//
//	app := contactrelay.New(
//	    contactrelay.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.CORS(middlewares.WithAllowCredentials()),
//	    ),
//	    contactrelay.WithHandlers(contact.NewHandler(renderer, dispatcher)),
//	    contactrelay.WithErrorHandler(contact.ErrorHandler),
//	    contactrelay.WithHealthChecks(
//	        contactrelay.WithReadinessCheck("smtp", sender.Healthcheck()),
//	    ),
//	)
//	if err := app.Run(cfg.Address, contactrelay.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// Handlers return errors instead of writing failure responses themselves; the
// configured ErrorHandler decides the status code and body.
package contactrelay
