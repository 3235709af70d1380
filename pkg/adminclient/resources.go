package adminclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Record is one resource row as the API returns it (camelCase keys).
type Record map[string]any

func (r Record) ID() string { return r.String("id") }

func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

func (r Record) IsActive() bool {
	b, _ := r["isActive"].(bool)
	return b
}

func (r Record) SortOrder() int {
	switch v := r["sortOrder"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func (r Record) CreatedAt() time.Time {
	t, _ := time.Parse(time.RFC3339Nano, r.String("createdAt"))
	return t
}

func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

type ListQuery struct {
	Page    int
	Limit   int
	Search  string
	Status  string // all | active | inactive
	Filters map[string]string
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	for k, val := range q.Filters {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}

type ListResult struct {
	Items      []Record
	Pagination Pagination
}

type ReorderItem struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sortOrder"`
}

// ResourceClient calls the CRUD routes of one resource.
type ResourceClient struct {
	c    *Client
	base string
}

func (c *Client) Resource(name string) *ResourceClient {
	return &ResourceClient{c: c, base: "/api/" + url.PathEscape(name)}
}

func (r *ResourceClient) path(parts ...string) string {
	p := r.base
	for _, s := range parts {
		p += "/" + s
	}
	return p
}

// ListPublic returns the active rows, as the public site sees them.
func (r *ResourceClient) ListPublic(ctx context.Context, filters map[string]string) ([]Record, error) {
	var items []Record
	_, err := r.c.do(ctx, request{method: fiber.MethodGet, path: r.base, query: ListQuery{Filters: filters}.values()}, &items)
	return items, err
}

func (r *ResourceClient) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	var items []Record
	env, err := r.c.do(ctx, request{method: fiber.MethodGet, path: r.path("admin"), query: q.values()}, &items)
	if err != nil {
		return nil, err
	}
	out := &ListResult{Items: items}
	if out.Items == nil {
		out.Items = []Record{}
	}
	if env.Pagination != nil {
		out.Pagination = *env.Pagination
	}
	return out, nil
}

func (r *ResourceClient) All(ctx context.Context) ([]Record, error) {
	var items []Record
	_, err := r.c.do(ctx, request{method: fiber.MethodGet, path: r.path("admin", "all")}, &items)
	return items, err
}

func (r *ResourceClient) Get(ctx context.Context, id string) (Record, error) {
	return r.one(ctx, fiber.MethodGet, r.path("admin", url.PathEscape(id)), nil)
}

func (r *ResourceClient) GetPublic(ctx context.Context, id string) (Record, error) {
	return r.one(ctx, fiber.MethodGet, r.path(url.PathEscape(id)), nil)
}

func (r *ResourceClient) Create(ctx context.Context, values map[string]any) (Record, error) {
	return r.one(ctx, fiber.MethodPost, r.base, values)
}

func (r *ResourceClient) Update(ctx context.Context, id string, values map[string]any) (Record, error) {
	return r.one(ctx, fiber.MethodPut, r.path(url.PathEscape(id)), values)
}

func (r *ResourceClient) Toggle(ctx context.Context, id string) (Record, error) {
	return r.one(ctx, fiber.MethodPatch, r.path(url.PathEscape(id), "toggle"), nil)
}

func (r *ResourceClient) Delete(ctx context.Context, id string) error {
	_, err := r.c.do(ctx, request{method: fiber.MethodDelete, path: r.path(url.PathEscape(id))}, nil)
	return err
}

func (r *ResourceClient) Reorder(ctx context.Context, items []ReorderItem) error {
	_, err := r.c.do(ctx, request{
		method: fiber.MethodPut,
		path:   r.path("reorder"),
		body:   map[string]any{"items": items},
	}, nil)
	return err
}

func (r *ResourceClient) one(ctx context.Context, method, path string, body any) (Record, error) {
	var rec Record
	req := request{method: method, path: path}
	if body != nil {
		req.body = body
	}
	if _, err := r.c.do(ctx, req, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}
