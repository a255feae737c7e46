package whatsapp

import (
	"regexp"
	"strings"
)

// MaxMessageLength is the provider's hard cap on a text body.
const MaxMessageLength = 4096

var nonDigits = regexp.MustCompile(`\D`)

// object resolves the reference to the wire shape, enforcing the link XOR id
// rule before anything is sent.
func (m MediaRef) object() (mediaObject, error) {
	if m.Link == "" && m.ID == "" {
		return mediaObject{}, validationErr("media", "either link or media id must be provided")
	}
	if m.Link != "" && m.ID != "" {
		return mediaObject{}, validationErr("media", "link and media id are mutually exclusive")
	}
	if m.ID != "" {
		return mediaObject{ID: m.ID}, nil
	}
	return mediaObject{Link: m.Link}, nil
}

// FormatPhoneNumber strips everything but digits and prefixes the country
// code when missing. WhatsApp expects numbers like 919876543210, no plus.
func FormatPhoneNumber(phone, countryCode string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	code := nonDigits.ReplaceAllString(countryCode, "")
	if code != "" && !strings.HasPrefix(digits, code) {
		digits = code + digits
	}
	return digits
}

// ValidPhoneNumber reports whether the number has a plausible digit count
// (10 to 15 digits, country code included).
func ValidPhoneNumber(phone string) bool {
	digits := nonDigits.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 15
}

// TruncateMessage cuts a text body down to the provider's maximum length,
// ending in an ellipsis when anything was dropped.
func TruncateMessage(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxMessageLength {
		return text
	}
	return string(runes[:MaxMessageLength-3]) + "..."
}
