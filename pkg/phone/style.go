package phone

import (
	"fmt"
	"strings"
)

// Style selects how a valid number is written back to the model.
//
// StyleNone keeps the raw value. StyleDefault stands for "format with the
// library default" and resolves to StyleInternational. The remaining values
// are concrete rendering styles.
type Style int

const (
	StyleNone Style = iota
	StyleDefault
	StyleE164
	StyleInternational
	StyleNational
	StyleRFC3966
)

var styleNames = map[Style]string{
	StyleNone:          "false",
	StyleDefault:       "true",
	StyleE164:          "e164",
	StyleInternational: "international",
	StyleNational:      "national",
	StyleRFC3966:       "rfc3966",
}

// Concrete resolves the style used for rewriting. The boolean is false when
// the value must be left untouched.
func (s Style) Concrete() (Style, bool) {
	switch s {
	case StyleDefault:
		return StyleInternational, true
	case StyleE164, StyleInternational, StyleNational, StyleRFC3966:
		return s, true
	default:
		return StyleNone, false
	}
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

func (s Style) MarshalText() ([]byte, error) {
	name, ok := styleNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, int(s))
	}
	return []byte(name), nil
}

// UnmarshalText accepts the boolean spellings ("true", "false", "1", "0",
// "yes", "no") as well as "default", "none", "e164", "international",
// "national" and "rfc3966", case-insensitively. Empty input means StyleNone.
func (s *Style) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "false", "0", "no", "off", "none":
		*s = StyleNone
	case "true", "1", "yes", "on", "default":
		*s = StyleDefault
	case "e164", "e.164":
		*s = StyleE164
	case "international":
		*s = StyleInternational
	case "national":
		*s = StyleNational
	case "rfc3966":
		*s = StyleRFC3966
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStyle, string(text))
	}
	return nil
}
