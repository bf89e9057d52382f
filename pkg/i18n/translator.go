package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/phonerule/pkg/logger"
	"github.com/dmitrymomot/phonerule/pkg/validator"
)

// Translator resolves translation keys for a language. Translations are
// loaded once through a TranslationAdapter and read concurrently afterwards.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator creates a Translator from the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(ctx, translations); err != nil {
		return nil, err
	}

	t.translations = normalizeLanguages(translations)
	t.logger.DebugContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.supportedLanguages()),
	)
	return t, nil
}

func (t *Translator) validateTranslations(ctx context.Context, trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.WarnContext(ctx, "no translations provided", logger.Component("i18n"))
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if translations == nil {
			return fmt.Errorf("%w: %s", ErrNilTranslations, lang)
		}
	}
	return nil
}

// normalizeLanguages lower-cases language codes so lookups are case-insensitive.
// Codes that collide by case are merged into a fresh map; the adapter's maps
// are never written to.
func normalizeLanguages(trans map[string]map[string]any) map[string]map[string]any {
	out := make(map[string]map[string]any, len(trans))
	merged := make(map[string]bool)
	for lang, values := range trans {
		key := strings.ToLower(lang)
		existing, ok := out[key]
		if !ok {
			out[key] = values
			continue
		}
		if !merged[key] {
			existing = maps.Clone(existing)
			out[key] = existing
			merged[key] = true
		}
		maps.Copy(existing, values)
	}
	return out
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted list of loaded language codes.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a requested one is missing.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// resolveLanguage picks the catalog for lang: an exact match first, then the
// base language of a regional tag ("de-AT" -> "de"), then the default language.
func (t *Translator) resolveLanguage(lang string) (map[string]any, bool) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if m, ok := t.translations[lang]; ok {
		return m, true
	}

	if tag, err := language.Parse(lang); err == nil {
		base, _ := tag.Base()
		if m, ok := t.translations[strings.ToLower(base.String())]; ok {
			return m, true
		}
	}

	m, ok := t.translations[strings.ToLower(t.defaultLang)]
	return m, ok
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "validation.phone.invalid" walks m["validation"]["phone"]["invalid"].
// A flat entry stored under the full dotted key is also accepted.
func getTranslation(m map[string]any, key string) (any, bool) {
	if val, ok := m[key]; ok {
		return val, true
	}

	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}

		switch nested := next.(type) {
		case map[string]any:
			current = nested
		case map[any]any:
			current = make(map[string]any, len(nested))
			for k, v := range nested {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// lookup returns the string translation for key, if any.
func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.resolveLanguage(lang)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", logger.Locale(lang), slog.String("key", key))
		}
		return "", false
	}

	val, ok := getTranslation(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", logger.Locale(lang), slog.String("key", key))
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string",
				logger.Locale(lang),
				slog.String("key", key),
				slog.String("type", fmt.Sprintf("%T", v)),
			)
		}
		return "", false
	}
}

// HasTranslation reports whether key resolves to a string for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang. Additional args are key-value pairs substituted
// into "%{name}" placeholders:
//
//	// "validation.phone.invalid": "%{field} is not a valid phone number"
//	translator.T("en", "validation.phone.invalid", "field", "phone")
//
// A missing translation returns the key when fallback to key is enabled and an
// empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates key for lang, using defaultValue when no translation exists.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	return sprintf(defaultValue, args)
}

// Tc translates key using the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Tdc translates key using the locale stored in ctx, with an explicit default.
func (t *Translator) Tdc(ctx context.Context, key, defaultValue string, args ...string) string {
	return t.Td(GetLocale(ctx), key, defaultValue, args...)
}

// ValidationFunc returns a validator.TranslateFunc bound to the locale in ctx.
// Translation values are stringified with fmt. Unknown keys yield "", so
// validator.ValidationErrors.Localize keeps the original message.
func (t *Translator) ValidationFunc(ctx context.Context) validator.TranslateFunc {
	lang := GetLocale(ctx)
	return func(key string, values map[string]any) string {
		tmpl, ok := t.lookup(lang, key)
		if !ok {
			return ""
		}
		args := make([]string, 0, len(values)*2)
		for name, v := range values {
			args = append(args, name, fmt.Sprint(v))
		}
		return sprintf(tmpl, args)
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes "%{name}" placeholders with the key-value pairs in args.
// Unknown placeholders are left untouched; an odd trailing arg is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
