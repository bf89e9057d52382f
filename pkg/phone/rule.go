package phone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/phonerule/pkg/logger"
	"github.com/dmitrymomot/phonerule/pkg/sanitizer"
	"github.com/dmitrymomot/phonerule/pkg/validator"
)

// Conventional model fields probed when no country is configured.
const (
	FieldCountryCode = "country_code"
	FieldCountry     = "country"
)

// Translator resolves a message key in the locale carried by ctx, returning
// defaultValue when the key is unknown. *i18n.Translator satisfies it.
type Translator interface {
	Tdc(ctx context.Context, key, defaultValue string, args ...string) string
}

// Validator is an attribute-level validation rule.
type Validator interface {
	Validate(ctx context.Context, m Model, attribute string) Outcome
}

// Option configures a Rule.
type Option func(*Rule)

// WithService sets the phone-number service. Defaults to LibService.
func WithService(s Service) Option {
	return func(r *Rule) {
		if s != nil {
			r.service = s
		}
	}
}

// WithTranslator sets the message translator. Without one, messages are the
// built-in English defaults.
func WithTranslator(t Translator) Option {
	return func(r *Rule) {
		r.translator = t
	}
}

// WithLogger sets the rule logger. A discard logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(r *Rule) {
		if l != nil {
			r.logger = l
		}
	}
}

// Rule validates that a model attribute holds a phone number valid for the
// model's country and optionally rewrites it in a canonical format.
//
// A Rule is immutable and safe for concurrent use with distinct models.
type Rule struct {
	cfg        Config
	service    Service
	translator Translator
	logger     *slog.Logger
}

var _ Validator = (*Rule)(nil)

// New creates a Rule from cfg.
func New(cfg Config, opts ...Option) *Rule {
	r := &Rule{
		cfg:     cfg,
		service: NewLibService(),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Component("phone"))
	return r
}

// Config returns a copy of the rule configuration.
func (r *Rule) Config() Config {
	return r.cfg
}

// Validate checks m[attribute]. On a valid number with a concrete format style
// the attribute is replaced with the formatted number; on failure the message
// is attached to the attribute when m implements ErrorCollector. At most one
// error is reported per call and service failures never escape as panics.
func (r *Rule) Validate(ctx context.Context, m Model, attribute string) Outcome {
	return r.validate(ctx, m, attribute, true)
}

// Check validates a bare value against an explicit country without touching
// any model. An empty country follows the Strict setting.
func (r *Rule) Check(ctx context.Context, value any, country string) Outcome {
	country = sanitizer.NormalizeRegion(country)
	if country == "" {
		return r.done(ctx, r.missingCountry(ctx, ""))
	}
	return r.done(ctx, r.evaluate(ctx, "", value, country))
}

// AsValidatorRule runs Validate immediately and wraps its outcome as a
// validator.Rule, so the phone check composes with validator.Apply.
func (r *Rule) AsValidatorRule(ctx context.Context, m Model, attribute string) validator.Rule {
	out := r.Validate(ctx, m, attribute)
	return validator.Rule{
		Check: func() bool { return out.Valid },
		Error: out.ValidationError(),
	}
}

func (r *Rule) validate(ctx context.Context, m Model, attribute string, rewrite bool) Outcome {
	raw, present := m.Get(attribute)

	if r.cfg.SkipOnEmpty && isEmpty(raw, present) {
		return r.done(ctx, Outcome{Field: attribute, Valid: true})
	}

	country, ok := r.resolveCountry(m)
	if !ok {
		out := r.missingCountry(ctx, attribute)
		r.attach(m, out)
		return r.done(ctx, out)
	}

	out := r.evaluate(ctx, attribute, raw, country)

	if out.Valid && out.Rewritten {
		if !rewrite {
			out.Value, out.Rewritten = "", false
		} else if err := m.Set(attribute, out.Value); err != nil {
			out = r.fail(ctx, attribute, country, out.Value, KindUnexpectedFailure, err)
		}
	}

	r.attach(m, out)
	return r.done(ctx, out)
}

// resolveCountry walks the country sources in precedence order and returns
// the first value that is non-empty after trimming, upper-cased.
func (r *Rule) resolveCountry(m Model) (string, bool) {
	if r.cfg.CountryAttribute != "" {
		if c := modelString(m, r.cfg.CountryAttribute); c != "" {
			return c, true
		}
	}
	if c := sanitizer.NormalizeRegion(r.cfg.Country); c != "" {
		return c, true
	}
	if c := modelString(m, FieldCountryCode); c != "" {
		return c, true
	}
	if c := modelString(m, FieldCountry); c != "" {
		return c, true
	}
	return "", false
}

func (r *Rule) missingCountry(ctx context.Context, attribute string) Outcome {
	if !r.cfg.Strict {
		return Outcome{Field: attribute, Valid: true}
	}
	return r.fail(ctx, attribute, "", "", KindMissingCountry, nil)
}

// evaluate runs parse, validity check and formatting for a resolved country.
func (r *Rule) evaluate(ctx context.Context, attribute string, raw any, country string) Outcome {
	var value string
	err := r.safely(func() error {
		var convErr error
		value, convErr = stringValue(raw)
		return convErr
	})
	if err != nil {
		return r.fail(ctx, attribute, country, "", KindUnexpectedFailure, err)
	}

	var n Number
	err = r.safely(func() error {
		var parseErr error
		n, parseErr = r.service.Parse(value, country)
		return parseErr
	})
	if err != nil {
		kind := KindUnexpectedFailure
		if errors.Is(err, ErrParse) {
			kind = KindParseFailure
		}
		return r.fail(ctx, attribute, country, value, kind, err)
	}

	var valid bool
	if err := r.safely(func() error {
		valid = r.service.IsValid(n)
		return nil
	}); err != nil {
		return r.fail(ctx, attribute, country, value, KindUnexpectedFailure, err)
	}
	if !valid {
		return r.fail(ctx, attribute, country, value, KindInvalidNumber, nil)
	}

	out := Outcome{Field: attribute, Country: country, Valid: true}

	style, ok := r.cfg.Format.Concrete()
	if !ok {
		return out
	}

	var formatted string
	if err := r.safely(func() error {
		var formatErr error
		formatted, formatErr = r.service.Format(n, style)
		return formatErr
	}); err != nil {
		return r.fail(ctx, attribute, country, value, KindUnexpectedFailure, err)
	}

	out.Value, out.Rewritten = formatted, true
	return out
}

// safely runs a service call, turning a panic into ErrServicePanic.
func (r *Rule) safely(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrServicePanic, p)
		}
	}()
	return fn()
}

// fail builds a failed outcome. value is the raw number, logged masked.
func (r *Rule) fail(ctx context.Context, attribute, country, value string, kind ErrorKind, cause error) Outcome {
	out := Outcome{
		Field:   attribute,
		Country: country,
		Kind:    kind,
		Message: r.message(ctx, kind, attribute, country),
		Cause:   cause,
	}

	if kind == KindUnexpectedFailure {
		r.logger.WarnContext(ctx, "phone validation failed unexpectedly",
			logger.Field(attribute),
			logger.Country(country),
			slog.String("number", sanitizer.MaskPhone(value)),
			logger.Error(cause),
		)
	}
	return out
}

// done logs the final outcome of a call.
func (r *Rule) done(ctx context.Context, out Outcome) Outcome {
	r.logger.DebugContext(ctx, "phone validated",
		logger.Field(out.Field),
		logger.Country(out.Country),
		slog.Bool("valid", out.Valid),
		slog.Bool("rewritten", out.Rewritten),
		logger.Kind(string(out.Kind)),
	)
	return out
}

// message picks the configured override, else the translated default.
func (r *Rule) message(ctx context.Context, kind ErrorKind, attribute, country string) string {
	if r.cfg.Message != "" {
		return r.cfg.Message
	}
	if r.translator == nil {
		return kind.DefaultMessage()
	}
	return r.translator.Tdc(ctx, kind.TranslationKey(), kind.DefaultMessage(),
		"field", attribute,
		"country", country,
	)
}

func (r *Rule) attach(m Model, out Outcome) {
	if out.Valid {
		return
	}
	if c, ok := m.(ErrorCollector); ok {
		c.AddError(out.Field, out.Message)
	}
}

func modelString(m Model, field string) string {
	v, ok := m.Get(field)
	if !ok {
		return ""
	}
	s, err := stringValue(v)
	if err != nil {
		return ""
	}
	return sanitizer.NormalizeRegion(s)
}

func isEmpty(raw any, present bool) bool {
	if !present {
		return true
	}
	s, err := stringValue(raw)
	return err == nil && s == ""
}
