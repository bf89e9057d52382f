package phone

import (
	"github.com/dmitrymomot/phonerule/pkg/validator"
)

// ErrorKind classifies a failed validation.
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindMissingCountry    ErrorKind = "missing_country"
	KindParseFailure      ErrorKind = "parse_failure"
	KindInvalidNumber     ErrorKind = "invalid_number"
	KindUnexpectedFailure ErrorKind = "unexpected_failure"
)

// Translation keys of the default messages.
const (
	KeyCountryRequired = "validation.phone.country_required"
	KeyParseFailure    = "validation.phone.format"
	KeyInvalidNumber   = "validation.phone.invalid"
	KeyUnexpected      = "validation.phone.unexpected"
)

// TranslationKey returns the message key for the kind, or "" for KindNone.
func (k ErrorKind) TranslationKey() string {
	switch k {
	case KindMissingCountry:
		return KeyCountryRequired
	case KindParseFailure:
		return KeyParseFailure
	case KindInvalidNumber:
		return KeyInvalidNumber
	case KindUnexpectedFailure:
		return KeyUnexpected
	default:
		return ""
	}
}

// DefaultMessage returns the English message used without a translator.
func (k ErrorKind) DefaultMessage() string {
	switch k {
	case KindMissingCountry:
		return "For phone validation country required"
	case KindParseFailure:
		return "Unexpected phone number format"
	case KindInvalidNumber:
		return "Phone number does not seem to be a valid phone number"
	case KindUnexpectedFailure:
		return "Unexpected phone number format or country code"
	default:
		return ""
	}
}

// Outcome is the result of one validation.
type Outcome struct {
	Field   string
	Country string

	Valid bool

	// Value holds the formatted number when Rewritten is true.
	Value     string
	Rewritten bool

	Kind    ErrorKind
	Message string

	// Cause is the service error behind a parse or unexpected failure.
	Cause error
}

// Err returns nil for a valid outcome and a validator.ValidationErrors with a
// single entry otherwise.
func (o Outcome) Err() error {
	if o.Valid {
		return nil
	}
	return validator.ValidationErrors{o.ValidationError()}
}

// ValidationError converts the outcome into the host framework's error value.
func (o Outcome) ValidationError() validator.ValidationError {
	return validator.ValidationError{
		Field:          o.Field,
		Message:        o.Message,
		TranslationKey: o.Kind.TranslationKey(),
		TranslationValues: map[string]any{
			"field":   o.Field,
			"country": o.Country,
		},
	}
}
