// Package schema describes a content resource declaratively: its fields,
// their validation rules, ordering, and nested children. The same schema is
// used by the server (validation, queries) and by the admin client (forms).
package schema

import "strings"

type Kind int

const (
	ShortText Kind = iota
	LongText
	URL
	Enum
	Int
	Bool
	Date
)

func (k Kind) String() string {
	switch k {
	case ShortText:
		return "text"
	case LongText:
		return "textarea"
	case URL:
		return "url"
	case Enum:
		return "select"
	case Int:
		return "number"
	case Bool:
		return "checkbox"
	case Date:
		return "date"
	}
	return "unknown"
}

// Field is one editable attribute. Name is the JSON key, Column the DB column.
// Max is a character cap for text kinds and the upper bound for Int.
type Field struct {
	Name       string
	Column     string
	Label      string
	Kind       Kind
	Required   bool
	Min        int
	Max        int
	Options    []string
	Default    any
	Searchable bool
	Filterable bool
}

func (f Field) isText() bool {
	switch f.Kind {
	case ShortText, LongText, URL, Enum, Date:
		return true
	}
	return false
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule is a cross-field check run on a complete (created or merged) row.
type Rule func(v Values) *FieldError

// Child describes a nested collection owned by the parent row.
type Child struct {
	Name        string // JSON key, e.g. "steps"
	Association string // struct field holding the slice, e.g. "Steps"
	ForeignKey  string // column on the child table
	ParentField string // JSON name of the foreign key on the child
	Schema      *Schema
}

type Order struct {
	Column string
	Desc   bool
}

func (o Order) SQL() string {
	if o.Desc {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// Window restricts public listings to rows whose [start, end] range contains
// now. Null bounds are open.
type Window struct {
	StartColumn string
	EndColumn   string
}

type Schema struct {
	Name        string // path segment under /api
	Singular    string // used in messages: "Banner not found"
	TitleField  string
	Fields      []Field
	Rules       []Rule
	Children    []Child
	PublicOrder []Order
	AdminOrder  []Order
	Window      *Window

	index map[string]int
}

var commonFields = []Field{
	{Name: "isActive", Column: "is_active", Label: "Active", Kind: Bool, Default: true},
	{Name: "sortOrder", Column: "sort_order", Label: "Sort order", Kind: Int, Min: 0, Max: 1_000_000, Default: 0},
}

var defaultOrder = []Order{{Column: "sort_order"}, {Column: "created_at"}}

// Define finalizes s: appends isActive/sortOrder when missing, fills column
// names and labels, and sets the default orderings.
func Define(s Schema) *Schema {
	out := s
	out.Fields = append([]Field(nil), s.Fields...)
	for _, cf := range commonFields {
		if !hasField(out.Fields, cf.Name) {
			out.Fields = append(out.Fields, cf)
		}
	}
	out.index = make(map[string]int, len(out.Fields))
	for i := range out.Fields {
		f := &out.Fields[i]
		if f.Column == "" {
			f.Column = snake(f.Name)
		}
		if f.Label == "" {
			f.Label = label(f.Name)
		}
		out.index[f.Name] = i
	}
	if len(out.PublicOrder) == 0 {
		out.PublicOrder = defaultOrder
	}
	if len(out.AdminOrder) == 0 {
		out.AdminOrder = defaultOrder
	}
	if out.TitleField == "" && len(out.Fields) > 0 {
		out.TitleField = out.Fields[0].Name
	}
	return &out
}

func hasField(fields []Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func (s *Schema) Field(name string) (Field, bool) {
	if s.index == nil {
		for _, f := range s.Fields {
			if f.Name == name {
				return f, true
			}
		}
		return Field{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.Fields[i], true
}

func (s *Schema) SearchColumns() []string {
	var out []string
	for _, f := range s.Fields {
		if f.Searchable {
			out = append(out, f.Column)
		}
	}
	return out
}

func (s *Schema) FilterFields() []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.Filterable {
			out = append(out, f)
		}
	}
	return out
}

func (s *Schema) Child(name string) (Child, bool) {
	for _, c := range s.Children {
		if c.Name == name {
			return c, true
		}
	}
	return Child{}, false
}

// Columns maps validated values to DB columns, leaving out children.
func (s *Schema) Columns(v Values) map[string]any {
	out := make(map[string]any, len(v))
	for k, val := range v {
		if f, ok := s.Field(k); ok {
			out[f.Column] = val
		}
	}
	return out
}

func snake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// label turns "mobileImageUrl" into "Mobile image URL".
func label(name string) string {
	words := strings.Split(snake(name), "_")
	for i, w := range words {
		switch w {
		case "url":
			words[i] = "URL"
			continue
		case "id":
			words[i] = "ID"
			continue
		}
		if i == 0 && w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
