package i18n

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/phonerule/pkg/logger"
)

// DefaultLanguage is the language used when none is set.
const DefaultLanguage = "en"

type localeContextKey struct{}

// SetLocale stores the locale in the context.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale from the context, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if ctx == nil {
		return DefaultLanguage
	}
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// LocaleExtractor is a logger.ContextExtractor that logs the locale set with SetLocale.
func LocaleExtractor(ctx context.Context) (slog.Attr, bool) {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return slog.Attr{}, false
	}
	return logger.Locale(locale), true
}
