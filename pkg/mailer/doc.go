// Package mailer defines the transport-neutral email message and the
// Sender interface implemented by the smtp, resend and ses subpackages.
//
// A Mailer wraps one Sender, validates messages and enforces a per-send
// deadline:
//
//	sender, err := smtp.New(smtp.Config{Host: "smtp.example.com", Port: 465, From: "relay@example.com"})
//	if err != nil {
//		return err
//	}
//	m := mailer.New(sender, mailer.WithTimeout(10*time.Second))
//
//	err = m.Send(ctx, &mailer.Email{
//		To:      []string{"admin@example.com"},
//		Subject: "New Website Message from Ana",
//		HTML:    body,
//		ReplyTo: "ana@example.com",
//	})
//	if errors.Is(err, mailer.ErrSendFailed) {
//		// transport error; the cause is joined in
//	}
//
// Senders never retry. A failed send is reported once to the caller.
package mailer
