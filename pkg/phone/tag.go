package phone

import (
	"context"
	"fmt"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// DefaultTag is the struct tag name used by RegisterTag when tag is empty.
const DefaultTag = "phone"

// Characters and names go-playground/validator reserves for its tag syntax.
const restrictedTagChars = ".[],|=+()`~!@#$%^&*\\\"/?<>{};:' \t"

var restrictedTags = map[string]struct{}{
	"-":             {},
	"0x2C":          {},
	"0x7C":          {},
	"dive":          {},
	"endkeys":       {},
	"isdefault":     {},
	"keys":          {},
	"nostructlevel": {},
	"omitempty":     {},
	"omitnil":       {},
	"omitzero":      {},
	"required":      {},
	"structonly":    {},
}

// RegisterTag registers rule as a go-playground/validator tag.
//
// The optional tag parameter names the struct field holding the country and
// takes precedence over Config.CountryAttribute:
//
//	type Contact struct {
//		Region string
//		Phone  string `validate:"phone=Region"`
//	}
//
// Tag validation only reports validity; it never rewrites the field. Use
// Rule.Validate with a StructModel when the formatted value is wanted.
// Tag names the validator reserves are rejected with ErrInvalidTag.
func RegisterTag(v *playground.Validate, tag string, rule *Rule) (err error) {
	if rule == nil {
		return ErrNilRule
	}
	if tag == "" {
		tag = DefaultTag
	}
	if _, ok := restrictedTags[tag]; ok || strings.ContainsAny(tag, restrictedTagChars) {
		return fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}

	fn := func(ctx context.Context, fl playground.FieldLevel) bool {
		r := rule
		if param := fl.Param(); param != "" {
			r = rule.withCountryAttribute(param)
		}

		model := newReadOnlyStructModel(fl.Parent())
		field := &fieldOverlay{Model: model, name: fl.StructFieldName(), value: fl.Field().Interface()}

		return r.validate(ctx, field, fl.StructFieldName(), false).Valid
	}

	// The validator panics on tag names it refuses.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidTag, p)
		}
	}()

	if err := v.RegisterValidationCtx(tag, fn); err != nil {
		return fmt.Errorf("register %q tag: %w", tag, err)
	}
	return nil
}

// withCountryAttribute returns a copy of the rule reading the country from field.
func (r *Rule) withCountryAttribute(field string) *Rule {
	cp := *r
	cp.cfg.CountryAttribute = field
	return &cp
}

// fieldOverlay serves the validated field's value as seen by the validator,
// which also covers values reached through maps and slices that the parent
// struct cannot address by name.
type fieldOverlay struct {
	Model
	name  string
	value any
}

func (f *fieldOverlay) Get(field string) (any, bool) {
	if field == f.name {
		if f.value == nil {
			return nil, false
		}
		return f.value, true
	}
	return f.Model.Get(field)
}
