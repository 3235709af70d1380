package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"jewelry_backend/internals/features/resource/schema"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("resource not found")

// Model is satisfied by every struct embedding model.Base.
type Model interface {
	PrimaryKey() uuid.UUID
}

type ListParams struct {
	Search  string
	Status  string // all | active | inactive
	Filters map[string]string
	Limit   int
	Offset  int
}

type ReorderItem struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	SortOrder int       `json:"sortOrder" validate:"min=0"`
}

// Repository runs every resource operation for one table described by a
// schema. T is the GORM model.
type Repository[T Model] struct {
	db     *gorm.DB
	schema *schema.Schema
}

func New[T Model](db *gorm.DB, s *schema.Schema) *Repository[T] {
	return &Repository[T]{db: db, schema: s}
}

func (r *Repository[T]) Schema() *schema.Schema { return r.schema }

func (r *Repository[T]) preload(q *gorm.DB, activeOnly bool) *gorm.DB {
	for _, c := range r.schema.Children {
		order := childOrder(c)
		q = q.Preload(c.Association, func(db *gorm.DB) *gorm.DB {
			if activeOnly {
				db = db.Where("is_active = ?", true)
			}
			return db.Order(order)
		})
	}
	return q
}

func childOrder(c schema.Child) string {
	parts := make([]string, 0, len(c.Schema.PublicOrder))
	for _, o := range c.Schema.PublicOrder {
		parts = append(parts, o.SQL())
	}
	return strings.Join(parts, ", ")
}

func applyOrder(q *gorm.DB, orders []schema.Order) *gorm.DB {
	for _, o := range orders {
		q = q.Order(o.SQL())
	}
	return q
}

func (r *Repository[T]) applyFilters(q *gorm.DB, filters map[string]string) *gorm.DB {
	for _, f := range r.schema.FilterFields() {
		if v := strings.TrimSpace(filters[f.Name]); v != "" {
			q = q.Where(f.Column+" = ?", v)
		}
	}
	return q
}

// ListPublic returns active rows (inside the schema's date window, if any)
// in presentation order.
func (r *Repository[T]) ListPublic(ctx context.Context, filters map[string]string, now time.Time) ([]T, error) {
	q := r.db.WithContext(ctx).Model(new(T)).Where("is_active = ?", true)
	if w := r.schema.Window; w != nil {
		q = q.Where(fmt.Sprintf("(%s IS NULL OR %s <= ?)", w.StartColumn, w.StartColumn), now).
			Where(fmt.Sprintf("(%s IS NULL OR %s >= ?)", w.EndColumn, w.EndColumn), now)
	}
	q = r.applyFilters(q, filters)
	q = applyOrder(r.preload(q, true), r.schema.PublicOrder)

	rows := make([]T, 0)
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository[T]) adminScope(ctx context.Context, p ListParams) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(T))
	switch p.Status {
	case "active":
		q = q.Where("is_active = ?", true)
	case "inactive":
		q = q.Where("is_active = ?", false)
	}
	q = r.applyFilters(q, p.Filters)

	if s := strings.ToLower(strings.TrimSpace(p.Search)); s != "" {
		cols := r.schema.SearchColumns()
		if len(cols) > 0 {
			conds := make([]string, len(cols))
			args := make([]any, len(cols))
			for i, col := range cols {
				conds[i] = "LOWER(" + col + ") LIKE ?"
				args[i] = "%" + s + "%"
			}
			q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
		}
	}
	return q
}

// ListAdmin returns one page of rows plus the total matching count.
// Limit <= 0 returns every matching row.
func (r *Repository[T]) ListAdmin(ctx context.Context, p ListParams) ([]T, int64, error) {
	var total int64
	if err := r.adminScope(ctx, p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := applyOrder(r.preload(r.adminScope(ctx, p), false), r.schema.AdminOrder)
	if p.Limit > 0 {
		q = q.Limit(p.Limit).Offset(p.Offset)
	}
	rows := make([]T, 0)
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *Repository[T]) find(q *gorm.DB, id uuid.UUID, activeOnly bool) (*T, error) {
	q = r.preload(q.Model(new(T)), activeOnly).Where("id = ?", id)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var row T
	if err := q.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *Repository[T]) FindByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*T, error) {
	return r.find(r.db.WithContext(ctx), id, activeOnly)
}

func decodeRow[T any](vals schema.Values) (*T, error) {
	raw, err := sonic.Marshal(vals)
	if err != nil {
		return nil, err
	}
	var row T
	if err := sonic.Unmarshal(raw, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts the row and its children in one transaction and returns the
// stored row.
func (r *Repository[T]) Create(ctx context.Context, vals schema.Values) (*T, error) {
	row, err := decodeRow[T](vals)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.schema.Name, err)
	}
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	}); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, (*row).PrimaryKey(), false)
}

type rowState struct {
	IsActive  bool
	UpdatedAt time.Time
}

func (r *Repository[T]) lockedState(tx *gorm.DB, id uuid.UUID) (rowState, error) {
	q := tx.Model(new(T))
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var st rowState
	res := q.Select("is_active", "updated_at").Where("id = ?", id).Limit(1).Scan(&st)
	if res.Error != nil {
		return st, res.Error
	}
	if res.RowsAffected == 0 {
		return st, ErrNotFound
	}
	return st, nil
}

// nextStamp returns a timestamp strictly after prev.
func nextStamp(prev time.Time) time.Time {
	now := time.Now().UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		now = prev.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
	}
	return now
}

// Update writes the supplied columns. A children list, when present,
// replaces the stored children in the same transaction.
func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, vals schema.Values) (*T, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st, err := r.lockedState(tx, id)
		if err != nil {
			return err
		}
		cols := r.schema.Columns(vals)
		cols["updated_at"] = nextStamp(st.UpdatedAt)
		if err := tx.Model(new(T)).Where("id = ?", id).Updates(cols).Error; err != nil {
			return err
		}

		for _, c := range r.schema.Children {
			items, ok := vals[c.Name].([]schema.Values)
			if !ok {
				continue
			}
			if err := r.replaceChildren(tx, id, c, items); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id, false)
}

// childSlice returns the type of T's association field, e.g. []GalleryItem.
func (r *Repository[T]) childSlice(c schema.Child) (reflect.Type, error) {
	t := reflect.TypeOf(new(T)).Elem()
	f, ok := t.FieldByName(c.Association)
	if !ok || f.Type.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%s: no slice field %q", r.schema.Name, c.Association)
	}
	return f.Type, nil
}

func (r *Repository[T]) deleteChildren(tx *gorm.DB, id uuid.UUID, c schema.Child) error {
	st, err := r.childSlice(c)
	if err != nil {
		return err
	}
	child := reflect.New(st.Elem()).Interface()
	return tx.Where(c.ForeignKey+" = ?", id).Delete(child).Error
}

func (r *Repository[T]) replaceChildren(tx *gorm.DB, id uuid.UUID, c schema.Child, items []schema.Values) error {
	if err := r.deleteChildren(tx, id, c); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	st, err := r.childSlice(c)
	if err != nil {
		return err
	}
	for _, it := range items {
		it[c.ParentField] = id
	}
	raw, err := sonic.Marshal(items)
	if err != nil {
		return err
	}
	children := reflect.New(st)
	if err := sonic.Unmarshal(raw, children.Interface()); err != nil {
		return err
	}
	return tx.Create(children.Interface()).Error
}

// Delete removes the row and its children. A missing row is ErrNotFound.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range r.schema.Children {
			if err := r.deleteChildren(tx, id, c); err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Toggle flips is_active. On Postgres the read holds a row lock so two
// concurrent toggles serialize; elsewhere last writer wins.
func (r *Repository[T]) Toggle(ctx context.Context, id uuid.UUID) (*T, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st, err := r.lockedState(tx, id)
		if err != nil {
			return err
		}
		return tx.Model(new(T)).Where("id = ?", id).Updates(map[string]any{
			"is_active":  !st.IsActive,
			"updated_at": nextStamp(st.UpdatedAt),
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id, false)
}

// Reorder applies every sort order or none of them.
func (r *Repository[T]) Reorder(ctx context.Context, items []ReorderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			st, err := r.lockedState(tx, it.ID)
			if err != nil {
				return err
			}
			if err := tx.Model(new(T)).Where("id = ?", it.ID).Updates(map[string]any{
				"sort_order": it.SortOrder,
				"updated_at": nextStamp(st.UpdatedAt),
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
