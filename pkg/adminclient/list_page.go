package adminclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"jewelry_backend/internals/features/resource/schema"
)

type PageState int

const (
	StateLoading PageState = iota
	StateError
	StateEmpty
	StateReady
)

func (s PageState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateEmpty:
		return "empty"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

var (
	ErrNotConfirmed = errors.New("delete not confirmed")
	ErrNoRow        = errors.New("row not in list")
)

// Card is the summary of one row shown in the list.
type Card struct {
	ID        string
	Title     string
	Badge     string // Active | Inactive
	SortOrder int
	Created   string // YYYY-MM-DD
}

// ListPage is the headless model of a resource's admin listing.
type ListPage struct {
	Resource *ResourceClient
	Schema   *schema.Schema
	Query    ListQuery

	mu         sync.Mutex
	state      PageState
	message    string
	items      []Record
	pagination Pagination
}

func NewListPage(c *Client, s *schema.Schema) *ListPage {
	return &ListPage{
		Resource: c.Resource(s.Name),
		Schema:   s,
		Query:    ListQuery{Page: 1, Status: "all"},
		state:    StateLoading,
	}
}

// Load fetches the current page. On failure the page shows the error banner
// and keeps no rows.
func (p *ListPage) Load(ctx context.Context) error {
	p.mu.Lock()
	p.state = StateLoading
	p.message = ""
	q := p.Query
	p.mu.Unlock()

	res, err := p.Resource.List(ctx, q)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state = StateError
		p.message = err.Error()
		p.items = nil
		return err
	}
	p.items = res.Items
	p.pagination = res.Pagination
	p.settle()
	return nil
}

func (p *ListPage) settle() {
	if len(p.items) == 0 {
		p.state = StateEmpty
		return
	}
	p.state = StateReady
}

func (p *ListPage) State() PageState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Message is the error banner text.
func (p *ListPage) Message() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.message
}

// EmptyMessage is the call to action shown when there are no rows.
func (p *ListPage) EmptyMessage() string {
	return fmt.Sprintf("No %s yet. Create the first one.", p.Schema.Name)
}

func (p *ListPage) Items() []Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Record(nil), p.items...)
}

func (p *ListPage) Pagination() Pagination {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pagination
}

func (p *ListPage) Cards() []Card {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Card, 0, len(p.items))
	for _, r := range p.items {
		out = append(out, p.card(r))
	}
	return out
}

func (p *ListPage) card(r Record) Card {
	badge := "Inactive"
	if r.IsActive() {
		badge = "Active"
	}
	title := r.String(p.Schema.TitleField)
	if title == "" {
		title = r.ID()
	}
	c := Card{ID: r.ID(), Title: title, Badge: badge, SortOrder: r.SortOrder()}
	if t := r.CreatedAt(); !t.IsZero() {
		c.Created = t.UTC().Format(time.DateOnly)
	}
	return c
}

func (p *ListPage) SetSearch(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Query.Search = s
	p.Query.Page = 1
}

func (p *ListPage) SetStatus(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Query.Status = s
	p.Query.Page = 1
}

func (p *ListPage) SetPage(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n < 1 {
		n = 1
	}
	p.Query.Page = n
}

func (p *ListPage) find(id string) int {
	for i, r := range p.items {
		if r.ID() == id {
			return i
		}
	}
	return -1
}

// New opens an empty create form.
func (p *ListPage) New() *Form {
	return NewForm(p.Schema, nil)
}

// Edit opens a form pre-filled with the listed row.
func (p *ListPage) Edit(id string) (*Form, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.find(id)
	if i < 0 {
		return nil, ErrNoRow
	}
	return NewForm(p.Schema, p.items[i]), nil
}

// Save returns the SaveFunc for f: create or update depending on the form
// mode. The saved row replaces its listed copy, or is appended.
func (p *ListPage) Save(f *Form) SaveFunc {
	return func(ctx context.Context, values map[string]any) (Record, error) {
		var (
			rec Record
			err error
		)
		if id := f.ID(); id != "" {
			rec, err = p.Resource.Update(ctx, id, values)
		} else {
			rec, err = p.Resource.Create(ctx, values)
		}
		if err != nil {
			return nil, err
		}
		p.upsert(rec)
		return rec, nil
	}
}

func (p *ListPage) upsert(rec Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i := p.find(rec.ID()); i >= 0 {
		p.items[i] = rec
	} else {
		p.items = append(p.items, rec)
	}
	p.settle()
}

// Delete removes the row on the server once confirm returns true, then drops
// it from the list.
func (p *ListPage) Delete(ctx context.Context, id string, confirm func(Card) bool) error {
	p.mu.Lock()
	i := p.find(id)
	if i < 0 {
		p.mu.Unlock()
		return ErrNoRow
	}
	c := p.card(p.items[i])
	p.mu.Unlock()

	if confirm == nil || !confirm(c) {
		return ErrNotConfirmed
	}
	if err := p.Resource.Delete(ctx, id); err != nil {
		p.setMessage(err)
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if i := p.find(id); i >= 0 {
		p.items = append(p.items[:i], p.items[i+1:]...)
	}
	if p.pagination.Total > 0 {
		p.pagination.Total--
	}
	p.settle()
	return nil
}

// Toggle flips isActive on the server and replaces the row with the result.
func (p *ListPage) Toggle(ctx context.Context, id string) (Record, error) {
	rec, err := p.Resource.Toggle(ctx, id)
	if err != nil {
		p.setMessage(err)
		return nil, err
	}
	p.upsert(rec)
	return rec, nil
}

func (p *ListPage) setMessage(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.message = err.Error()
}
