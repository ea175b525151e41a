package validator

import (
	"net/mail"
	"strings"
)

// maxEmailLength follows the RFC 5321 path limit.
const maxEmailLength = 254

// IsEmail reports whether s is a bare addr-spec such as "ana@example.com".
// Display names ("Ana <ana@example.com>"), surrounding whitespace, and
// domains without a dot are rejected.
func IsEmail(s string) bool {
	if s == "" || len(s) > maxEmailLength {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || len(local) > 64 {
		return false
	}
	return isHostname(domain)
}

// isHostname checks dot-separated LDH labels with at least two labels.
func isHostname(s string) bool {
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" || len(l) > 63 || l[0] == '-' || l[len(l)-1] == '-' {
			return false
		}
		for _, r := range l {
			if !isLDH(r) {
				return false
			}
		}
	}
	return true
}

func isLDH(r rune) bool {
	return r == '-' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r > 0x7f
}
