package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the validated attribute name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Country records a region code under the key "country".
// An empty code is logged as an empty Attr.
func Country(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("country", code)
}

// Kind records a failure category under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Locale records the locale under the key "locale".
func Locale(lang string) slog.Attr {
	return slog.String("locale", lang)
}
