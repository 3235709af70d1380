package adminclient

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"jewelry_backend/internals/features/resource/schema"
)

var (
	ErrBusy         = errors.New("form is saving")
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError is returned by Submit when local validation fails; the
// save function is not called.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return e.Errors[0].Message
}

// SaveFunc persists normalized values and returns the stored record.
type SaveFunc func(ctx context.Context, values map[string]any) (Record, error)

// Form is the headless model of a resource editor. Without an existing
// record it creates, otherwise it edits that record.
type Form struct {
	mu      sync.Mutex
	schema  *schema.Schema
	record  Record
	values  map[string]any
	errors  map[string]string
	message string
	loading bool
}

func NewForm(s *schema.Schema, existing Record) *Form {
	f := &Form{schema: s}
	if existing != nil {
		f.record = existing.clone()
	}
	f.reset()
	return f
}

// reset loads values from the record (edit) or the field defaults (create).
func (f *Form) reset() {
	f.values = make(map[string]any, len(f.schema.Fields)+len(f.schema.Children))
	for _, fd := range f.schema.Fields {
		if f.record != nil {
			f.values[fd.Name] = f.record[fd.Name]
			continue
		}
		f.values[fd.Name] = fd.Default
	}
	for _, c := range f.schema.Children {
		if f.record != nil {
			f.values[c.Name] = f.record[c.Name]
		}
	}
	f.errors = map[string]string{}
	f.message = ""
}

func (f *Form) Schema() *schema.Schema { return f.schema }

func (f *Form) IsEdit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record != nil && f.record.ID() != ""
}

// ID is the id of the edited record, empty in create mode.
func (f *Form) ID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.record == nil {
		return ""
	}
	return f.record.ID()
}

func (f *Form) IsLoading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *Form) Value(name string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

// Values returns a copy of the current, unvalidated input.
func (f *Form) Values() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]any, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Set updates one field and clears its inline error.
func (f *Form) Set(name string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loading {
		return ErrBusy
	}
	if _, ok := f.schema.Field(name); !ok {
		if _, isChild := f.schema.Child(name); !isChild {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	f.values[name] = value
	delete(f.errors, name)
	return nil
}

// Errors returns the inline error per field from the last Submit.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form) Error(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors[name]
}

// Message is the banner text of the last failed save.
func (f *Form) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Submit validates with the same rules the server applies. On failure the
// inline errors are set and save is not called. Otherwise save receives the
// normalized values; the form is loading until it returns.
func (f *Form) Submit(ctx context.Context, save SaveFunc) (Record, error) {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	vals, errs := f.schema.Validate(f.values, schema.Create)
	f.errors = map[string]string{}
	f.message = ""
	if len(errs) > 0 {
		out := make([]FieldError, len(errs))
		for i, fe := range errs {
			out[i] = FieldError{Field: fe.Field, Message: fe.Message}
			if _, ok := f.errors[fe.Field]; !ok {
				f.errors[fe.Field] = fe.Message
			}
		}
		f.mu.Unlock()
		return nil, &ValidationError{Errors: out}
	}
	f.loading = true
	f.mu.Unlock()

	rec, err := save(ctx, map[string]any(vals))

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			for field, msg := range apiErr.FieldErrors() {
				f.errors[field] = msg
			}
		}
		f.message = err.Error()
		return nil, err
	}
	f.record = rec.clone()
	f.reset()
	return rec, nil
}

// Cancel discards every edit since the form was opened or last saved.
func (f *Form) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loading {
		return
	}
	f.reset()
}
