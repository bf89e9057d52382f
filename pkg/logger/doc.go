// Package logger builds *slog.Logger values for the phone rule and its
// collaborators.
//
// New creates a JSON or text handler, attaches static attributes and wraps the
// result in LogHandlerDecorator, which runs every registered ContextExtractor
// on each record. That is how request-scoped values such as the active locale
// reach log lines without being passed explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.EnvDevelopment, "signup"),
//	    logger.WithContextExtractors(i18n.LocaleExtractor),
//	)
//	rule := phone.New(phone.DefaultConfig(), phone.WithLogger(log))
//
// Attribute helpers (Field, Country, Kind, Error, ...) keep key names
// consistent. Error and Errors return an empty Attr for nil errors, so they can
// be passed unconditionally.
package logger
