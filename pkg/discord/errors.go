package discord

import (
	"sanakirja/internal/domain"
	"sanakirja/internal/ports/output"
)

// DomainErrorMessage resolves err to a user-facing message in locale.
// Errors without a domain code keep their own message.
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return "❌ " + t.T(locale, "error."+code, nil)
	}
	return "❌ " + err.Error()
}
