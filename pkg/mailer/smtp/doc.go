// Package smtp implements mailer.Sender on top of github.com/wneessen/go-mail.
//
// Three TLS modes are supported: implicit TLS ("ssl", the default), STARTTLS
// ("starttls") and plain text ("none"). PLAIN authentication is used when a
// username is configured.
//
//	sender, err := smtp.New(smtp.Config{
//		Host:     "smtp.example.com",
//		Port:     465,
//		Username: "relay@example.com",
//		Password: os.Getenv("MAIL_PASSWORD"),
//		From:     "relay@example.com",
//	})
//
// Each Send opens its own connection, so a Sender is safe for concurrent use.
package smtp
