// Package phone provides an attribute-level validation rule that checks a
// model field holds a phone number valid for the model's country, and
// optionally rewrites the field in a canonical format.
//
// The rule is glue: parsing, validity and formatting are delegated to a
// Service (LibService wraps github.com/nyaruka/phonenumbers), messages to an
// optional Translator (see pkg/i18n), and field access to a Model.
//
// # Country resolution
//
// The country is taken from the first source that yields a non-empty value:
//
//  1. the model field named by Config.CountryAttribute;
//  2. the fixed Config.Country;
//  3. the model field "country_code";
//  4. the model field "country".
//
// Country values are trimmed and upper-cased, so "gb" and " GB " both select
// the United Kingdom.
//
// Without a country, a strict rule fails with KindMissingCountry and never
// parses; a non-strict rule passes without touching the model.
//
// # Formatting
//
// Config.Format is a Style. StyleDefault resolves to StyleInternational;
// StyleNone leaves the attribute byte-for-byte unchanged. The attribute is
// rewritten only when the number is valid and a concrete style applies.
//
// # Usage
//
//	rule := phone.New(phone.DefaultConfig())
//	model := phone.NewMapModel(map[string]any{
//		"country_code": "US",
//		"phone":        "6502530000",
//	})
//	out := rule.Validate(ctx, model, "phone")
//	// out.Valid == true, model.Values["phone"] == "+1 650-253-0000"
//
// Localized messages and structured logs come from the i18n and logger
// packages; the locale travels in the context and is logged with every record:
//
//	tr, _ := i18n.DefaultMessages(ctx)
//	log := logger.New(
//		logger.WithEnvironment(logger.EnvProduction, "signup"),
//		logger.WithContextExtractors(i18n.LocaleExtractor),
//	)
//	rule := phone.New(cfg, phone.WithTranslator(tr), phone.WithLogger(log))
//	out := rule.Validate(i18n.SetLocale(ctx, "de"), model, "phone")
//
// Struct models are wrapped with NewStructModel, and RegisterTag exposes the
// rule as a go-playground/validator tag.
//
// # Error Handling
//
// Validate never returns a Go error. Failures are reported through
// Outcome.Kind and Outcome.Message, attached to the model when it implements
// ErrorCollector, and converted to validator.ValidationErrors by Outcome.Err.
// A custom Config.Message replaces the text of every failure kind.
package phone
