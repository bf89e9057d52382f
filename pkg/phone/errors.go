package phone

import "errors"

var (
	// ErrParse marks a raw value that the phone-number service could not parse
	// for the requested region. Service implementations wrap it.
	ErrParse = errors.New("phone number parse failed")

	ErrUnsupportedNumber = errors.New("number was not produced by this service")
	ErrUnsupportedStyle  = errors.New("unsupported format style")
	ErrUnknownStyle      = errors.New("unknown format style")
	ErrServicePanic      = errors.New("phone number service panicked")
	ErrUnsupportedValue  = errors.New("unsupported attribute value type")

	ErrNotStructPointer = errors.New("model must be a non-nil pointer to a struct")
	ErrFieldNotFound    = errors.New("model field not found")
	ErrFieldNotSettable = errors.New("model field cannot be set")
	ErrNilRule          = errors.New("phone rule is nil")
	ErrInvalidTag       = errors.New("invalid validation tag name")
)
