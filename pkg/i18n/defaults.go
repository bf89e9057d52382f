package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var defaultLocales embed.FS

// DefaultMessages returns a translator preloaded with the built-in validation
// messages for every bundled language (en, de, ru).
func DefaultMessages(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(defaultLocales, "locales"), options...)
}
