// Package resend implements mailer.Sender on the Resend HTTP API.
//
//	sender, err := resend.New(resend.Config{
//		APIKey: os.Getenv("RESEND_API_KEY"),
//		From:   "Contact Form <relay@example.com>",
//	})
package resend
