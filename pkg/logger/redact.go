package logger

import (
	"log/slog"
	"strings"
)

// RedactEmail masks an email address for safe logging.
// "john.doe@example.com" becomes "jo***@example.com".
// Local parts of two characters or fewer are fully masked.
func RedactEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || domain == "" || strings.Contains(domain, "@") {
		return "***@***"
	}
	if len(local) > 2 {
		return local[:2] + "***@" + domain
	}
	return "***@" + domain
}

// Email returns a redacted email attribute.
func Email(key, email string) slog.Attr {
	return slog.String(key, RedactEmail(email))
}
