package sanitizer

import (
	"strings"
)

// NormalizeRegion trims surrounding whitespace and upper-cases country input
// so " us " matches the "US" key of the phone-number metadata.
// Anything else is kept, so malformed codes still reach the parser as such.
func NormalizeRegion(region string) string {
	return strings.ToUpper(strings.TrimSpace(region))
}

// NormalizePhone strips formatting to enable consistent comparison.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// MaskPhone follows PCI compliance pattern of showing last 4 digits for user recognition.
func MaskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
