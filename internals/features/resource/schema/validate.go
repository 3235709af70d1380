package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

type Mode int

const (
	Create Mode = iota
	Update
)

var validate = validator.New()

const dateOnly = "2006-01-02"

// Validate checks input against the schema and returns the normalized values.
// Strings are trimmed, empty optional values become nil (or the field default),
// lengths are counted in characters. In Update mode only keys present in input
// are checked and returned; cross-field rules run in Create mode only, callers
// updating a row run CheckRules on the merged row.
func (s *Schema) Validate(input map[string]any, mode Mode) (Values, []FieldError) {
	out := Values{}
	var errs []FieldError

	for _, f := range s.Fields {
		raw, present := input[f.Name]
		if mode == Update && !present {
			continue
		}
		val, ferr := f.normalize(raw)
		if ferr != nil {
			errs = append(errs, *ferr)
			continue
		}
		if val == nil {
			if f.Required {
				errs = append(errs, FieldError{Field: f.Name, Message: f.Label + " is required"})
				continue
			}
			if f.Default != nil {
				val = f.Default
			}
		}
		out[f.Name] = val
	}

	for _, c := range s.Children {
		raw, present := input[c.Name]
		if !present || raw == nil {
			continue
		}
		items, cerrs := c.validate(raw)
		if len(cerrs) > 0 {
			errs = append(errs, cerrs...)
			continue
		}
		out[c.Name] = items
	}

	if mode == Create && len(errs) == 0 {
		errs = append(errs, s.CheckRules(out)...)
	}
	return out, errs
}

func (s *Schema) CheckRules(v Values) []FieldError {
	var errs []FieldError
	for _, rule := range s.Rules {
		if fe := rule(v); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

func (c Child) validate(raw any) ([]Values, []FieldError) {
	list, ok := raw.([]any)
	if !ok {
		if typed, isTyped := raw.([]Values); isTyped {
			list = make([]any, len(typed))
			for i, v := range typed {
				list[i] = map[string]any(v)
			}
		} else if typed, isMaps := raw.([]map[string]any); isMaps {
			list = make([]any, len(typed))
			for i, v := range typed {
				list[i] = v
			}
		} else {
			return nil, []FieldError{{Field: c.Name, Message: label(c.Name) + " must be a list"}}
		}
	}

	items := make([]Values, 0, len(list))
	var errs []FieldError
	for i, el := range list {
		obj, ok := asObject(el)
		if !ok {
			errs = append(errs, FieldError{Field: fmt.Sprintf("%s[%d]", c.Name, i), Message: "Each item must be an object"})
			continue
		}
		vals, ferrs := c.Schema.Validate(obj, Create)
		for _, fe := range ferrs {
			fe.Field = fmt.Sprintf("%s[%d].%s", c.Name, i, fe.Field)
			errs = append(errs, fe)
		}
		if len(ferrs) == 0 {
			// position in the submitted list wins when sortOrder is not given
			if _, given := obj["sortOrder"]; !given {
				vals["sortOrder"] = i
			}
			items = append(items, vals)
		}
	}
	return items, errs
}

func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Values:
		return t, true
	}
	return nil, false
}

// normalize returns (nil, nil) for an absent or blank value.
func (f Field) normalize(raw any) (any, *FieldError) {
	if raw == nil {
		return nil, nil
	}
	fail := func(msg string) (any, *FieldError) {
		return nil, &FieldError{Field: f.Name, Message: f.Label + " " + msg}
	}

	if f.isText() {
		var str string
		switch t := raw.(type) {
		case string:
			str = strings.TrimSpace(t)
		case time.Time:
			if f.Kind == Date {
				return t.UTC(), nil
			}
			return fail("must be a string")
		case *time.Time:
			if f.Kind == Date && t != nil {
				return t.UTC(), nil
			}
			return nil, nil
		case *string:
			if t == nil {
				return nil, nil
			}
			str = strings.TrimSpace(*t)
		default:
			return fail("must be a string")
		}
		if str == "" {
			return nil, nil
		}
		switch f.Kind {
		case ShortText, LongText:
			if f.Max > 0 && utf8.RuneCountInString(str) > f.Max {
				return fail(fmt.Sprintf("must be less than %d characters", f.Max))
			}
			return str, nil
		case URL:
			if err := validate.Var(str, "http_url"); err != nil {
				return fail("must be a valid URL")
			}
			if f.Max > 0 && utf8.RuneCountInString(str) > f.Max {
				return fail(fmt.Sprintf("must be less than %d characters", f.Max))
			}
			return str, nil
		case Enum:
			for _, opt := range f.Options {
				if opt == str {
					return str, nil
				}
			}
			return fail("must be one of: " + strings.Join(f.Options, ", "))
		case Date:
			t, err := ParseDate(str)
			if err != nil {
				return fail("must be a valid date")
			}
			return t, nil
		}
	}

	switch f.Kind {
	case Int:
		n, ok := toInt(raw)
		if !ok {
			if s, isStr := raw.(string); isStr && strings.TrimSpace(s) == "" {
				return nil, nil
			}
			return fail("must be a whole number")
		}
		if n < f.Min || (f.Max > f.Min && n > f.Max) {
			return fail(fmt.Sprintf("must be between %d and %d", f.Min, f.Max))
		}
		return n, nil
	case Bool:
		switch t := raw.(type) {
		case bool:
			return t, nil
		case string:
			if strings.TrimSpace(t) == "" {
				return nil, nil
			}
			b, err := strconv.ParseBool(strings.TrimSpace(t))
			if err != nil {
				return fail("must be true or false")
			}
			return b, nil
		}
		return fail("must be true or false")
	}
	return fail("has an unsupported type")
}

func toInt(raw any) (int, bool) {
	switch t := raw.(type) {
	case int:
		return t, true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return int(t), true
	case json.Number:
		n, err := t.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	}
	return 0, false
}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
