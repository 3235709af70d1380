package adminclient

import (
	"testing"
	"time"

	"jewelry_backend/internals/features/content/resources"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPage_Lifecycle(t *testing.T) {
	srv := startServer(t)
	ctx := t.Context()
	page := NewListPage(loggedIn(t, srv), resources.FAQs)

	assert.Equal(t, StateLoading, page.State())
	require.NoError(t, page.Load(ctx))
	assert.Equal(t, StateEmpty, page.State())
	assert.Equal(t, "No faqs yet. Create the first one.", page.EmptyMessage())

	form := page.New()
	require.NoError(t, form.Set("question", "Do you engrave?"))
	require.NoError(t, form.Set("answer", "Yes."))
	created, err := form.Submit(ctx, page.Save(form))
	require.NoError(t, err)
	assert.Equal(t, StateReady, page.State())

	cards := page.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, created.ID(), cards[0].ID)
	assert.Equal(t, "Do you engrave?", cards[0].Title)
	assert.Equal(t, "Active", cards[0].Badge)
	assert.Equal(t, time.Now().UTC().Format(time.DateOnly), cards[0].Created)

	edit, err := page.Edit(created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Do you engrave?", edit.Value("question"))
	require.NoError(t, edit.Set("question", "Do you engrave rings?"))
	_, err = edit.Submit(ctx, page.Save(edit))
	require.NoError(t, err)
	require.Len(t, page.Cards(), 1)
	assert.Equal(t, "Do you engrave rings?", page.Cards()[0].Title)

	_, err = page.Toggle(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Inactive", page.Cards()[0].Badge)

	err = page.Delete(ctx, created.ID(), func(c Card) bool {
		assert.Equal(t, "Do you engrave rings?", c.Title)
		return false
	})
	assert.ErrorIs(t, err, ErrNotConfirmed)
	require.Len(t, page.Items(), 1)

	require.NoError(t, page.Delete(ctx, created.ID(), func(Card) bool { return true }))
	assert.Equal(t, StateEmpty, page.State())

	// the server agrees
	require.NoError(t, page.Load(ctx))
	assert.Equal(t, StateEmpty, page.State())

	_, err = page.Edit(created.ID())
	assert.ErrorIs(t, err, ErrNoRow)
}

func TestListPage_ErrorBanner(t *testing.T) {
	srv := startServer(t)
	page := NewListPage(New(srv.URL, nil), resources.Quotes)

	err := page.Load(t.Context())
	require.Error(t, err)
	assert.True(t, IsStatus(err, fiber.StatusUnauthorized))
	assert.Equal(t, StateError, page.State())
	assert.Equal(t, "No token provided", page.Message())
	assert.Empty(t, page.Cards())
}

func TestListPage_CompositeForm(t *testing.T) {
	srv := startServer(t)
	ctx := t.Context()
	page := NewListPage(loggedIn(t, srv), resources.CelebrationProcess)
	require.NoError(t, page.Load(ctx))

	form := page.New()
	require.NoError(t, form.Set("title", "Your big day"))
	require.NoError(t, form.Set("steps", []any{
		map[string]any{"title": "Consult"},
		map[string]any{"title": "Design", "icon": "pencil"},
	}))
	rec, err := form.Submit(ctx, page.Save(form))
	require.NoError(t, err)

	steps, ok := rec["steps"].([]any)
	require.True(t, ok)
	require.Len(t, steps, 2)
	first := Record(steps[0].(map[string]any))
	assert.Equal(t, "Consult", first.String("title"))
	assert.Equal(t, rec.ID(), first.String("celebrationProcessId"))

	// editing round-trips the stored children
	edit, err := page.Edit(rec.ID())
	require.NoError(t, err)
	require.NoError(t, edit.Set("title", "Your bigger day"))
	again, err := edit.Submit(ctx, page.Save(edit))
	require.NoError(t, err)
	assert.Equal(t, "Your bigger day", again.String("title"))
	assert.Len(t, again["steps"], 2)

	require.NoError(t, form.Set("steps", []any{map[string]any{"title": ""}}))
	_, err = form.Submit(ctx, page.Save(form))
	require.Error(t, err)
	assert.Equal(t, "Title is required", form.Error("steps[0].title"))
}
