package phone

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/phonerule/pkg/validator"
)

// Model is the field accessor the rule reads from and writes to.
// Get reports false for missing fields and for nil values.
type Model interface {
	Get(field string) (any, bool)
	Set(field string, value any) error
}

// ErrorCollector receives the rule's error for an attribute. Models that
// implement it get failures attached directly.
type ErrorCollector interface {
	AddError(attribute, message string)
}

// MapModel is a Model backed by a map. It collects errors attached by rules.
type MapModel struct {
	Values map[string]any
	Errors validator.ValidationErrors
}

// NewMapModel wraps values. A nil map is replaced with an empty one.
func NewMapModel(values map[string]any) *MapModel {
	if values == nil {
		values = make(map[string]any)
	}
	return &MapModel{Values: values}
}

func (m *MapModel) Get(field string) (any, bool) {
	v, ok := m.Values[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (m *MapModel) Set(field string, value any) error {
	if m.Values == nil {
		m.Values = make(map[string]any)
	}
	m.Values[field] = value
	return nil
}

func (m *MapModel) AddError(attribute, message string) {
	m.Errors.Add(validator.ValidationError{Field: attribute, Message: message})
}

// StructModel is a Model over a struct reached through reflection.
//
// A field name matches, in order: a `phone:"name"` tag, a `json:"name"` tag,
// the exact Go field name, and finally the Go field name compared
// case-insensitively with underscores removed, so "country_code" finds
// CountryCode. Only exported fields are visible; promoted fields of embedded
// structs are included.
type StructModel struct {
	v      reflect.Value
	Errors validator.ValidationErrors
}

// NewStructModel wraps a non-nil pointer to a struct.
func NewStructModel(ptr any) (*StructModel, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, ErrNotStructPointer
	}
	return &StructModel{v: rv.Elem()}, nil
}

// newReadOnlyStructModel wraps a struct value that may not be addressable.
func newReadOnlyStructModel(rv reflect.Value) *StructModel {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return &StructModel{}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return &StructModel{}
	}
	return &StructModel{v: rv}
}

func (m *StructModel) Get(field string) (any, bool) {
	fv, ok := m.field(field)
	if !ok {
		return nil, false
	}
	for fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return nil, false
		}
		fv = fv.Elem()
	}
	return fv.Interface(), true
}

// Set assigns value to a string-kinded field or a *string field.
func (m *StructModel) Set(field string, value any) error {
	fv, ok := m.field(field)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, field)
	}
	if !fv.CanSet() {
		return fmt.Errorf("%w: %s", ErrFieldNotSettable, field)
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s: %T", ErrFieldNotSettable, field, value)
	}

	switch {
	case fv.Kind() == reflect.String:
		fv.SetString(s)
	case fv.Kind() == reflect.Pointer && fv.Type().Elem().Kind() == reflect.String:
		p := reflect.New(fv.Type().Elem())
		p.Elem().SetString(s)
		fv.Set(p)
	default:
		return fmt.Errorf("%w: %s: %s", ErrFieldNotSettable, field, fv.Type())
	}
	return nil
}

func (m *StructModel) AddError(attribute, message string) {
	m.Errors.Add(validator.ValidationError{Field: attribute, Message: message})
}

func (m *StructModel) field(name string) (reflect.Value, bool) {
	if !m.v.IsValid() || name == "" {
		return reflect.Value{}, false
	}

	fields := reflect.VisibleFields(m.v.Type())
	folded := foldFieldName(name)

	var byTag, byJSON, byName, byFold []int
	for _, f := range fields {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		switch {
		case tagName(f.Tag.Get("phone")) == name && byTag == nil:
			byTag = f.Index
		case tagName(f.Tag.Get("json")) == name && byJSON == nil:
			byJSON = f.Index
		case f.Name == name && byName == nil:
			byName = f.Index
		case foldFieldName(f.Name) == folded && byFold == nil:
			byFold = f.Index
		}
	}

	for _, index := range [][]int{byTag, byJSON, byName, byFold} {
		if index == nil {
			continue
		}
		fv, err := m.v.FieldByIndexErr(index)
		if err != nil {
			return reflect.Value{}, false
		}
		return fv, true
	}
	return reflect.Value{}, false
}

func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}

func foldFieldName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

// stringValue converts an attribute value into the string handed to the
// phone-number service. Nil becomes "".
func stringValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case fmt.Stringer:
		return x.String(), nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
