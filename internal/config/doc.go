// Package config loads the relay's settings from the process environment, an
// optional .env file and an optional YAML file, in that order of precedence.
//
// The five SMTP keys (MAIL_USERNAME, MAIL_PASSWORD, MAIL_FROM, MAIL_PORT,
// MAIL_SERVER) are required when MAIL_TRANSPORT is smtp, the default.
// ADMIN_EMAIL and MAIL_FROM are always required. Load returns every problem
// at once so a misconfigured deployment fails on the first start.
//
// Example YAML (CONFIG_FILE):
//
//	address: 0.0.0.0:8000
//	admin_email: team@example.com
//	mail:
//	  server: smtp.example.com
//	  port: 465
//	  username: relay@example.com
//	  from: relay@example.com
//	  tls_mode: ssl
package config
