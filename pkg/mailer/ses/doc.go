// Package ses implements mailer.Sender on Amazon SES v2.
//
// Static credentials are used when both keys are set; otherwise the
// default AWS credential chain (env, shared config, instance role) applies.
//
//	sender, err := ses.New(ctx, ses.Config{Region: "eu-west-1", From: "relay@example.com"})
package ses
