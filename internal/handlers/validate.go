package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for contact form fields.
const (
	maxNameLen    = 100
	maxEmailLen   = 200
	maxMessageLen = 5_000
)

// validateContact checks contact form inputs and returns the first
// error found, or "" when the submission is acceptable.
func validateContact(name, email, message string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 100 characters)."
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return "Email is required."
	}
	if utf8.RuneCountInString(email) > maxEmailLen {
		return "Email is too long (max 200 characters)."
	}
	if !looksLikeEmail(email) {
		return "Email doesn't look valid."
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return "Message is too long (max 5,000 characters)."
	}
	return ""
}

// looksLikeEmail is a shape check, not RFC validation. The receiving
// webhook does the real verification when it replies.
func looksLikeEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t\n")
}
