// Package i18n resolves translation keys into localized messages. It is the
// message-resolution collaborator of the phone rule: the rule asks for a key
// and a default text, and the translator answers in the locale carried by the
// context.
//
// Translations are loaded once through a TranslationAdapter (MapAdapter,
// FileAdapter, FSAdapter over embed.FS or a directory) and parsed by the YAML
// or JSON parser. Top-level keys are languages; nested keys are addressed with
// dots ("validation.phone.invalid"). Placeholders use the "%{name}" form.
//
// # Usage
//
//	tr, err := i18n.DefaultMessages(ctx)
//	if err != nil {
//		return err
//	}
//	ctx = i18n.SetLocale(ctx, "de-AT")
//	msg := tr.Tdc(ctx, "validation.phone.invalid", "invalid phone")
//	// regional tags fall back to their base language: "de"
//
// Translator is safe for concurrent use. ValidationFunc adapts it to
// validator.TranslateFunc so whole ValidationErrors values can be localized.
package i18n
