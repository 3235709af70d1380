package schema

import "time"

// Values holds normalized field values keyed by JSON name.
type Values map[string]any

func (v Values) String(key string) (string, bool) {
	switch t := v[key].(type) {
	case string:
		return t, true
	case *string:
		if t != nil {
			return *t, true
		}
	}
	return "", false
}

// Time reads a date value that is either already parsed or still a string
// (as it is when a stored row is decoded from JSON).
func (v Values) Time(key string) (time.Time, bool) {
	switch t := v[key].(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	case string:
		if parsed, err := ParseDate(t); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Merge overlays patch onto base and returns a new map.
func Merge(base map[string]any, patch Values) Values {
	out := make(Values, len(base)+len(patch))
	for k, val := range base {
		out[k] = val
	}
	for k, val := range patch {
		out[k] = val
	}
	return out
}

// DateAfter builds the usual "end must be after start" rule. Either bound
// being empty passes.
func DateAfter(startField, endField, message string) Rule {
	return func(v Values) *FieldError {
		start, ok1 := v.Time(startField)
		end, ok2 := v.Time(endField)
		if !ok1 || !ok2 {
			return nil
		}
		if !end.After(start) {
			return &FieldError{Field: endField, Message: message}
		}
		return nil
	}
}
