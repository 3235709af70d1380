package repository

import (
	"context"
	"testing"
	"time"

	database "jewelry_backend/internals/databases"
	"jewelry_backend/internals/features/resource/model"
	"jewelry_backend/internals/features/resource/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type Collection struct {
	model.Base
	Title     string     `gorm:"column:title;not null" json:"title"`
	Note      *string    `gorm:"column:note" json:"note"`
	Kind      string     `gorm:"column:kind;not null" json:"kind"`
	Weight    int        `gorm:"column:weight;not null" json:"weight"`
	StartDate *time.Time `gorm:"column:start_date" json:"startDate"`
	EndDate   *time.Time `gorm:"column:end_date" json:"endDate"`
	model.Publishable

	Pieces []Piece `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"pieces"`
}

type Piece struct {
	model.Base
	CollectionID uuid.UUID `gorm:"column:collection_id;type:uuid;not null;index" json:"collectionId"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	model.Publishable
}

var pieceSchema = schema.Define(schema.Schema{
	Name:   "pieces",
	Fields: []schema.Field{{Name: "name", Kind: schema.ShortText, Required: true, Max: 50}},
})

var collectionSchema = schema.Define(schema.Schema{
	Name:     "collections",
	Singular: "Collection",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.ShortText, Required: true, Max: 100, Searchable: true},
		{Name: "note", Kind: schema.ShortText, Max: 100, Searchable: true},
		{Name: "kind", Kind: schema.Enum, Options: []string{"ring", "necklace"}, Default: "ring", Filterable: true},
		{Name: "weight", Kind: schema.Int, Max: 100, Default: 0},
		{Name: "startDate", Kind: schema.Date},
		{Name: "endDate", Kind: schema.Date},
	},
	Window:      &schema.Window{StartColumn: "start_date", EndColumn: "end_date"},
	PublicOrder: []schema.Order{{Column: "weight", Desc: true}, {Column: "sort_order"}, {Column: "created_at"}},
	Children: []schema.Child{{
		Name: "pieces", Association: "Pieces", ForeignKey: "collection_id",
		ParentField: "collectionId", Schema: pieceSchema,
	}},
})

func newTestRepo(t *testing.T) (*Repository[Collection], *gorm.DB) {
	t.Helper()
	db, err := database.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared", nil)
	require.NoError(t, err)
	require.NoError(t, database.TunePool(db))
	require.NoError(t, db.AutoMigrate(&Collection{}, &Piece{}))
	t.Cleanup(func() { _ = database.Close(db) })
	return New[Collection](db, collectionSchema), db
}

func mustCreate(t *testing.T, r *Repository[Collection], input map[string]any) *Collection {
	t.Helper()
	vals, errs := collectionSchema.Validate(input, schema.Create)
	require.Empty(t, errs)
	row, err := r.Create(context.Background(), vals)
	require.NoError(t, err)
	return row
}

func TestCreate_WithChildren(t *testing.T) {
	r, _ := newTestRepo(t)
	row := mustCreate(t, r, map[string]any{
		"title": "Bridal",
		"pieces": []any{
			map[string]any{"name": "Band", "sortOrder": float64(2)},
			map[string]any{"name": "Solitaire", "sortOrder": float64(1)},
		},
	})

	assert.NotEqual(t, uuid.Nil, row.ID)
	assert.False(t, row.CreatedAt.IsZero())
	assert.True(t, row.IsActive)
	assert.Equal(t, "ring", row.Kind)
	assert.Nil(t, row.Note)
	require.Len(t, row.Pieces, 2)
	assert.Equal(t, "Solitaire", row.Pieces[0].Name)
	assert.Equal(t, row.ID, row.Pieces[0].CollectionID)
}

func TestCreate_InactiveStaysInactive(t *testing.T) {
	r, _ := newTestRepo(t)
	row := mustCreate(t, r, map[string]any{"title": "Hidden", "isActive": false})
	assert.False(t, row.IsActive)
}

func TestListPublic_FiltersAndOrders(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	low := mustCreate(t, r, map[string]any{"title": "Low", "weight": 1})
	high := mustCreate(t, r, map[string]any{"title": "High", "weight": 9, "kind": "necklace"})
	mustCreate(t, r, map[string]any{"title": "Off", "isActive": false})
	mustCreate(t, r, map[string]any{"title": "Future", "startDate": now.Add(48 * time.Hour).Format(time.RFC3339)})
	mustCreate(t, r, map[string]any{"title": "Past", "endDate": now.Add(-48 * time.Hour).Format(time.RFC3339)})
	open := mustCreate(t, r, map[string]any{
		"title":     "Running",
		"startDate": now.Add(-time.Hour).Format(time.RFC3339),
		"endDate":   now.Add(time.Hour).Format(time.RFC3339),
	})

	rows, err := r.ListPublic(ctx, nil, now)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, high.ID, rows[0].ID)
	assert.Equal(t, low.ID, rows[1].ID)
	assert.Equal(t, open.ID, rows[2].ID)

	rows, err = r.ListPublic(ctx, map[string]string{"kind": "necklace"}, now)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, high.ID, rows[0].ID)
}

func TestListAdmin_SearchStatusPaging(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		mustCreate(t, r, map[string]any{"title": "Ring " + string(rune('A'+i)), "sortOrder": i})
	}
	mustCreate(t, r, map[string]any{"title": "Pendant", "note": "GOLD chain", "isActive": false})

	rows, total, err := r.ListAdmin(ctx, ListParams{Status: "all", Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 13, total)
	assert.Len(t, rows, 10)
	assert.Equal(t, "Ring A", rows[0].Title)

	rows, total, err = r.ListAdmin(ctx, ListParams{Status: "all", Limit: 10, Offset: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 13, total)
	assert.Len(t, rows, 3)

	rows, total, err = r.ListAdmin(ctx, ListParams{Search: "gold"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Pendant", rows[0].Title)

	_, total, err = r.ListAdmin(ctx, ListParams{Status: "inactive"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = r.ListAdmin(ctx, ListParams{Status: "active", Search: "RING"})
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
}

func TestFindByID_ActiveOnly(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	row := mustCreate(t, r, map[string]any{"title": "Draft", "isActive": false})

	_, err := r.FindByID(ctx, row.ID, true)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := r.FindByID(ctx, row.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Draft", got.Title)

	_, err = r.FindByID(ctx, uuid.New(), false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_PartialAndTimestamps(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	row := mustCreate(t, r, map[string]any{
		"title":  "Bridal",
		"note":   "keep",
		"pieces": []any{map[string]any{"name": "Old"}},
	})

	patch, errs := collectionSchema.Validate(map[string]any{"title": "Bridal 2025"}, schema.Update)
	require.Empty(t, errs)
	updated, err := r.Update(ctx, row.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "Bridal 2025", updated.Title)
	require.NotNil(t, updated.Note)
	assert.Equal(t, "keep", *updated.Note)
	assert.True(t, updated.UpdatedAt.After(row.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(row.CreatedAt))
	require.Len(t, updated.Pieces, 1)

	patch, errs = collectionSchema.Validate(map[string]any{
		"pieces": []any{map[string]any{"name": "New A"}, map[string]any{"name": "New B"}},
	}, schema.Update)
	require.Empty(t, errs)
	again, err := r.Update(ctx, row.ID, patch)
	require.NoError(t, err)
	require.Len(t, again.Pieces, 2)
	assert.Equal(t, "New A", again.Pieces[0].Name)
	assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))

	_, err = r.Update(ctx, uuid.New(), schema.Values{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_RemovesChildren(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	row := mustCreate(t, r, map[string]any{
		"title":  "Gone",
		"pieces": []any{map[string]any{"name": "A"}, map[string]any{"name": "B"}},
	})

	require.NoError(t, r.Delete(ctx, row.ID))

	var pieces int64
	require.NoError(t, db.Model(&Piece{}).Where("collection_id = ?", row.ID).Count(&pieces).Error)
	assert.Zero(t, pieces)

	_, err := r.FindByID(ctx, row.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, row.ID), ErrNotFound)
}

func TestToggle_FlipsAndBumpsUpdatedAt(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	row := mustCreate(t, r, map[string]any{"title": "Flip"})

	off, err := r.Toggle(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, off.IsActive)
	assert.True(t, off.UpdatedAt.After(row.UpdatedAt))

	on, err := r.Toggle(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, on.IsActive)
	assert.True(t, on.UpdatedAt.After(off.UpdatedAt))

	_, err = r.Toggle(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReorder_AllOrNothing(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	a := mustCreate(t, r, map[string]any{"title": "A"})
	b := mustCreate(t, r, map[string]any{"title": "B"})

	require.NoError(t, r.Reorder(ctx, []ReorderItem{{ID: a.ID, SortOrder: 5}, {ID: b.ID, SortOrder: 1}}))
	rows, _, err := r.ListAdmin(ctx, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, b.ID, rows[0].ID)

	err = r.Reorder(ctx, []ReorderItem{{ID: a.ID, SortOrder: 0}, {ID: uuid.New(), SortOrder: 9}})
	assert.ErrorIs(t, err, ErrNotFound)
	got, err := r.FindByID(ctx, a.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 5, got.SortOrder)
}
