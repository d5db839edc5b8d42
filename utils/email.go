package utils

import (
	"strings"
)

// NormalizeEmail lowercases the domain part of an email address while
// preserving the case of the local part. "Test@EXAMPLE.COM" becomes
// "Test@example.com".
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
