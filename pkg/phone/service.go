package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Number is a parsed phone number. Its concrete type belongs to the Service
// that produced it.
type Number any

// Service is the phone-number library the rule delegates to.
// Parse must wrap ErrParse for malformed input or an unknown region; any other
// error is treated as an unexpected failure.
type Service interface {
	Parse(raw, region string) (Number, error)
	IsValid(n Number) bool
	Format(n Number, style Style) (string, error)
}

// LibService implements Service with github.com/nyaruka/phonenumbers,
// the Go port of Google's libphonenumber.
type LibService struct{}

func NewLibService() *LibService {
	return &LibService{}
}

func (LibService) Parse(raw, region string) (Number, error) {
	n, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return n, nil
}

func (LibService) IsValid(n Number) bool {
	pn, ok := n.(*phonenumbers.PhoneNumber)
	return ok && pn != nil && phonenumbers.IsValidNumber(pn)
}

func (LibService) Format(n Number, style Style) (string, error) {
	pn, ok := n.(*phonenumbers.PhoneNumber)
	if !ok || pn == nil {
		return "", fmt.Errorf("%w: %T", ErrUnsupportedNumber, n)
	}

	var f phonenumbers.PhoneNumberFormat
	switch style {
	case StyleE164:
		f = phonenumbers.E164
	case StyleInternational, StyleDefault:
		f = phonenumbers.INTERNATIONAL
	case StyleNational:
		f = phonenumbers.NATIONAL
	case StyleRFC3966:
		f = phonenumbers.RFC3966
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedStyle, style)
	}

	return phonenumbers.Format(pn, f), nil
}
