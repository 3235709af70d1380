package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jewelry_backend/internals/configs"
	database "jewelry_backend/internals/databases"
	"jewelry_backend/internals/databases/migrations"
	"jewelry_backend/internals/features/content/resources"
	"jewelry_backend/internals/features/resource/schema"
	authModel "jewelry_backend/internals/features/users/auth/model"
	authService "jewelry_backend/internals/features/users/auth/service"
	"jewelry_backend/internals/seeds/admins"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	testSecret    = "routes-test-secret"
	ownerEmail    = "owner@example.com"
	ownerPassword = "password123"
)

type harness struct {
	t   *testing.T
	app *fiber.App
	db  *gorm.DB
	cfg *configs.Config
}

func newHarness(t *testing.T, seedOwner bool) *harness {
	t.Helper()
	log := zap.NewNop()
	db, err := database.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared", nil)
	require.NoError(t, err)
	require.NoError(t, database.TunePool(db))
	require.NoError(t, migrations.RunInOrder(db, log))
	t.Cleanup(func() { _ = database.Close(db) })
	if seedOwner {
		require.NoError(t, admins.SeedAdmin(db, admins.AdminSeed{
			Email: ownerEmail, Username: "owner", Password: ownerPassword,
		}, log))
	}

	cfg := &configs.Config{
		Env:               "test",
		JWTSecret:         testSecret,
		JWTExpiresIn:      time.Hour,
		CORSOrigin:        "*",
		RateLimitWindow:   time.Minute,
		RateLimitMax:      100000,
		LoginRateLimitMax: 1000,
		UploadDir:         filepath.Join(t.TempDir(), "uploads"),
		UploadMaxBytes:    1 << 20,
		PublicBaseURL:     "http://localhost:3000",
	}
	app, err := NewApp(cfg, db, log)
	require.NoError(t, err)
	return &harness{t: t, app: app, db: db, cfg: cfg}
}

type reply struct {
	Status int
	Body   map[string]any
}

func (r reply) data() map[string]any {
	m, _ := r.Body["data"].(map[string]any)
	return m
}

func (r reply) list() []any {
	l, _ := r.Body["data"].([]any)
	return l
}

func (h *harness) call(method, path, token string, body any) reply {
	h.t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := h.app.Test(req, 5000)
	require.NoError(h.t, err)
	out := reply{Status: resp.StatusCode, Body: map[string]any{}}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)
	if len(raw) > 0 {
		require.NoError(h.t, json.Unmarshal(raw, &out.Body), string(raw))
	}
	return out
}

func (h *harness) login(email, password string) string {
	h.t.Helper()
	r := h.call("POST", "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(h.t, fiber.StatusOK, r.Status, r.Body)
	tok, _ := r.data()["token"].(string)
	require.NotEmpty(h.t, tok)
	return tok
}

// sample returns a valid create body for s: every required field filled.
func sample(s *schema.Schema) map[string]any {
	out := map[string]any{}
	for _, f := range s.Fields {
		if !f.Required {
			continue
		}
		switch f.Kind {
		case schema.URL:
			out[f.Name] = "https://cdn.example.com/" + f.Name + ".jpg"
		case schema.Enum:
			out[f.Name] = f.Options[0]
		case schema.Int:
			out[f.Name] = f.Min
		case schema.Bool:
			out[f.Name] = true
		default:
			out[f.Name] = "  Sample " + f.Name + "  "
		}
	}
	return out
}

func countAll(h *harness, token, resource string) int {
	h.t.Helper()
	r := h.call("GET", "/api/"+resource+"/admin/all", token, nil)
	require.Equal(h.t, fiber.StatusOK, r.Status)
	return len(r.list())
}

func containsID(items []any, id string) bool {
	for _, it := range items {
		if m, ok := it.(map[string]any); ok && m["id"] == id {
			return true
		}
	}
	return false
}

// =============================
// Every resource
// =============================

func TestResources_Lifecycle(t *testing.T) {
	h := newHarness(t, true)
	tok := h.login(ownerEmail, ownerPassword)

	for _, s := range resources.All {
		t.Run(s.Name, func(t *testing.T) {
			base := "/api/" + s.Name
			input := sample(s)

			created := h.call("POST", base, tok, input)
			require.Equal(t, fiber.StatusCreated, created.Status, created.Body)
			row := created.data()
			id, _ := row["id"].(string)
			require.NotEmpty(t, id)
			assert.NotEmpty(t, row["createdAt"])
			assert.NotEmpty(t, row["updatedAt"])

			got := h.call("GET", base+"/admin/"+id, tok, nil)
			require.Equal(t, fiber.StatusOK, got.Status)
			for k, v := range input {
				if str, ok := v.(string); ok {
					v = strings.TrimSpace(str)
				}
				assert.EqualValues(t, v, got.data()[k], k)
			}

			pub := h.call("GET", base+"/"+id, "", nil)
			assert.Equal(t, fiber.StatusOK, pub.Status)

			// hidden rows leave the public list only
			off := h.call("PUT", base+"/"+id, tok, map[string]any{"isActive": false, "sortOrder": 0})
			require.Equal(t, fiber.StatusOK, off.Status, off.Body)
			assert.False(t, containsID(h.call("GET", base, "", nil).list(), id))
			assert.True(t, containsID(h.call("GET", base+"/admin?status=all", tok, nil).list(), id))
			assert.Equal(t, fiber.StatusNotFound, h.call("GET", base+"/"+id, "", nil).Status)

			// toggle twice restores the row
			first := h.call("PATCH", base+"/"+id+"/toggle", tok, nil)
			require.Equal(t, fiber.StatusOK, first.Status)
			assert.Equal(t, true, first.data()["isActive"])
			second := h.call("PATCH", base+"/"+id+"/toggle", tok, nil)
			assert.Equal(t, false, second.data()["isActive"])
			for k := range input {
				assert.Equal(t, off.data()[k], second.data()[k], k)
			}

			del := h.call("DELETE", base+"/"+id, tok, nil)
			assert.Equal(t, fiber.StatusOK, del.Status)
			again := h.call("DELETE", base+"/"+id, tok, nil)
			assert.Equal(t, fiber.StatusNotFound, again.Status)
			assert.Equal(t, s.Singular+" not found", again.Body["message"])
		})
	}
}

func TestResources_ValidationPersistsNothing(t *testing.T) {
	h := newHarness(t, true)
	tok := h.login(ownerEmail, ownerPassword)

	for _, s := range resources.All {
		t.Run(s.Name, func(t *testing.T) {
			before := countAll(h, tok, s.Name)

			r := h.call("POST", "/api/"+s.Name, tok, map[string]any{})
			assert.Equal(t, fiber.StatusBadRequest, r.Status)
			assert.Equal(t, false, r.Body["success"])
			assert.NotEmpty(t, r.Body["errors"])

			for _, f := range s.Fields {
				if f.Max == 0 || (f.Kind != schema.ShortText && f.Kind != schema.LongText) {
					continue
				}
				input := sample(s)
				input[f.Name] = strings.Repeat("x", f.Max+1)
				r := h.call("POST", "/api/"+s.Name, tok, input)
				assert.Equal(t, fiber.StatusBadRequest, r.Status, f.Name)
				assert.Contains(t, r.Body["message"], "must be less than", f.Name)
			}

			for _, f := range s.Fields {
				if f.Kind != schema.URL {
					continue
				}
				input := sample(s)
				input[f.Name] = "not a url"
				r := h.call("POST", "/api/"+s.Name, tok, input)
				assert.Equal(t, fiber.StatusBadRequest, r.Status, f.Name)
				assert.Equal(t, f.Label+" must be a valid URL", r.Body["message"])
			}

			assert.Equal(t, before, countAll(h, tok, s.Name))
		})
	}
}

func TestResources_PartialUpdate(t *testing.T) {
	h := newHarness(t, true)
	tok := h.login(ownerEmail, ownerPassword)

	created := h.call("POST", "/api/testimonials", tok, map[string]any{
		"customerName": "Ayu", "content": "Stunning ring", "rating": 5,
	})
	require.Equal(t, fiber.StatusCreated, created.Status, created.Body)
	id := created.data()["id"].(string)

	time.Sleep(5 * time.Millisecond)
	upd := h.call("PUT", "/api/testimonials/"+id, tok, map[string]any{"rating": 4})
	require.Equal(t, fiber.StatusOK, upd.Status, upd.Body)
	assert.EqualValues(t, 4, upd.data()["rating"])
	assert.Equal(t, "Ayu", upd.data()["customerName"])
	assert.Equal(t, "Stunning ring", upd.data()["content"])

	before, err := time.Parse(time.RFC3339Nano, created.data()["updatedAt"].(string))
	require.NoError(t, err)
	after, err := time.Parse(time.RFC3339Nano, upd.data()["updatedAt"].(string))
	require.NoError(t, err)
	assert.True(t, after.After(before))
	assert.Equal(t, created.data()["createdAt"], upd.data()["createdAt"])

	r := h.call("PUT", "/api/testimonials/"+uuid.NewString(), tok, map[string]any{"rating": 3})
	assert.Equal(t, fiber.StatusNotFound, r.Status)
	assert.Equal(t, "Testimonial not found", r.Body["message"])
}

// =============================
// Auth gate
// =============================

func TestAdminRoutes_RequireValidToken(t *testing.T) {
	h := newHarness(t, true)

	var owner authModel.AdminModel
	require.NoError(t, h.db.Where("email = ?", ownerEmail).First(&owner).Error)
	expired, _, err := authService.NewTokenService(testSecret, -time.Minute).Issue(&owner)
	require.NoError(t, err)

	disabled := &authModel.AdminModel{Username: "gone", Email: "gone@example.com", Password: "x", Role: "admin", IsActive: false}
	require.NoError(t, h.db.Create(disabled).Error)
	disabledTok, _, err := authService.NewTokenService(testSecret, time.Hour).Issue(disabled)
	require.NoError(t, err)

	id := uuid.NewString()
	routes := []struct{ method, path string }{
		{"GET", "/api/quotes/admin"},
		{"GET", "/api/quotes/admin/all"},
		{"GET", "/api/quotes/admin/" + id},
		{"POST", "/api/quotes"},
		{"PUT", "/api/quotes/" + id},
		{"DELETE", "/api/quotes/" + id},
		{"PATCH", "/api/quotes/" + id + "/toggle"},
		{"PUT", "/api/quotes/reorder"},
		{"GET", "/api/analytics/dashboard"},
		{"GET", "/api/analytics/realtime"},
		{"GET", "/api/auth/me"},
		{"GET", "/api/auth/admins"},
		{"POST", "/api/uploads"},
	}
	tokens := map[string]string{"no header": "", "expired": expired, "deactivated": disabledTok}

	for _, rt := range routes {
		for name, tok := range tokens {
			r := h.call(rt.method, rt.path, tok, nil)
			assert.Equal(t, fiber.StatusUnauthorized, r.Status, "%s %s (%s)", rt.method, rt.path, name)
			assert.Equal(t, false, r.Body["success"])
			assert.Nil(t, r.Body["data"])
		}
	}
}

func TestRegister_BootstrapThenGuarded(t *testing.T) {
	h := newHarness(t, false)

	first := h.call("POST", "/api/auth/register", "", map[string]any{
		"username": "founder", "email": "founder@example.com", "password": "password123",
	})
	require.Equal(t, fiber.StatusCreated, first.Status, first.Body)
	assert.NotEmpty(t, first.data()["token"])

	second := h.call("POST", "/api/auth/register", "", map[string]any{
		"username": "intruder", "email": "intruder@example.com", "password": "password123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, second.Status)

	tok := h.login("founder@example.com", "password123")
	third := h.call("POST", "/api/auth/register", tok, map[string]any{
		"username": "editor1", "email": "editor1@example.com", "password": "password123", "role": "editor",
	})
	assert.Equal(t, fiber.StatusCreated, third.Status, third.Body)
}

// =============================
// Scenarios
// =============================

func TestScenario_QuoteVisibility(t *testing.T) {
	h := newHarness(t, true)
	tok := h.login(ownerEmail, ownerPassword)

	created := h.call("POST", "/api/quotes", tok, map[string]any{
		"text": "Diamonds are forever", "author": "Anon", "sortOrder": 0, "isActive": true,
	})
	require.Equal(t, fiber.StatusCreated, created.Status)
	id := created.data()["id"].(string)

	assert.True(t, containsID(h.call("GET", "/api/quotes", "", nil).list(), id))

	r := h.call("PUT", "/api/quotes/"+id, tok, map[string]any{"isActive": false})
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.False(t, containsID(h.call("GET", "/api/quotes", "", nil).list(), id))

	admin := h.call("GET", "/api/quotes/admin", tok, nil)
	assert.True(t, containsID(admin.list(), id))
	assert.NotNil(t, admin.Body["pagination"])
}

func TestScenario_CultureToggle(t *testing.T) {
	h := newHarness(t, true)
	tok := h.login(ownerEmail, ownerPassword)

	created := h.call("POST", "/api/cultures", tok, map[string]any{
		"title": "Javanese wedding rings", "description": "A story of craft", "category": "heritage",
	})
	require.Equal(t, fiber.StatusCreated, created.Status)
	id := created.data()["id"].(string)

	off := h.call("PATCH", "/api/cultures/"+id+"/toggle", tok, nil)
	assert.Equal(t, false, off.data()["isActive"])
	on := h.call("PATCH", "/api/cultures/"+id+"/toggle", tok, nil)
	assert.Equal(t, true, on.data()["isActive"])

	for _, k := range []string{"title", "description", "category", "sortOrder", "createdAt"} {
		assert.Equal(t, created.data()[k], off.data()[k], k)
		assert.Equal(t, created.data()[k], on.data()[k], k)
	}
}

func TestScenario_BannerDateRange(t *testing.T) {
	h := newHarness(t, true)
	tok := h.login(ownerEmail, ownerPassword)
	before := countAll(h, tok, "banners")

	r := h.call("POST", "/api/banners", tok, map[string]any{
		"title":     "Spring sale",
		"imageUrl":  "https://cdn.example.com/spring.jpg",
		"startDate": "2025-04-01",
		"endDate":   "2025-03-01",
	})
	assert.Equal(t, fiber.StatusBadRequest, r.Status)
	assert.Equal(t, false, r.Body["success"])
	assert.Equal(t, "End date must be after start date", r.Body["message"])
	assert.Equal(t, before, countAll(h, tok, "banners"))
}

func TestScenario_WrongPasswordNeverLocks(t *testing.T) {
	h := newHarness(t, true)
	for i := 0; i < 3; i++ {
		r := h.call("POST", "/api/auth/login", "", map[string]string{"email": ownerEmail, "password": "wrong-password"})
		assert.Equal(t, fiber.StatusUnauthorized, r.Status)
		assert.Equal(t, "Invalid email or password", r.Body["message"])
	}
	h.login(ownerEmail, ownerPassword)
}

// =============================
// Analytics and base routes
// =============================

func TestAnalytics_IngestThenReport(t *testing.T) {
	h := newHarness(t, true)
	tok := h.login(ownerEmail, ownerPassword)

	s := h.call("POST", "/api/analytics/sessions", "", map[string]any{
		"sessionKey": "s-1", "visitorId": "v-1", "country": "ID", "deviceType": "mobile", "landingPage": "/",
	})
	require.Equal(t, fiber.StatusCreated, s.Status, s.Body)
	for _, path := range []string{"/", "/rings"} {
		r := h.call("POST", "/api/analytics/pageviews", "", map[string]any{"sessionKey": "s-1", "visitorId": "v-1", "path": path})
		require.Equal(t, fiber.StatusCreated, r.Status, r.Body)
	}
	e := h.call("POST", "/api/analytics/events", "", map[string]any{"sessionKey": "s-1", "visitorId": "v-1", "name": "conversion", "category": "contact"})
	require.Equal(t, fiber.StatusCreated, e.Status, e.Body)

	d := h.call("GET", "/api/analytics/dashboard?period=7d", tok, nil)
	require.Equal(t, fiber.StatusOK, d.Status, d.Body)
	overview := d.data()["overview"].(map[string]any)
	assert.EqualValues(t, 1, overview["totalSessions"])
	assert.EqualValues(t, 2, overview["pageViews"])
	assert.EqualValues(t, 0, overview["bounceRate"])
	assert.EqualValues(t, 1, overview["conversions"])

	bad := h.call("GET", "/api/analytics/dashboard?period=2w", tok, nil)
	assert.Equal(t, fiber.StatusBadRequest, bad.Status)

	rt := h.call("GET", "/api/analytics/realtime", tok, nil)
	require.Equal(t, fiber.StatusOK, rt.Status)
	assert.EqualValues(t, 1, rt.data()["activeVisitors"])
}

func TestBaseRoutes(t *testing.T) {
	h := newHarness(t, false)

	health := h.call("GET", "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, health.Status)
	assert.Equal(t, "OK", health.data()["status"])

	missing := h.call("GET", "/api/nope", "", nil)
	assert.Equal(t, fiber.StatusNotFound, missing.Status)
	assert.Equal(t, "Route not found", missing.Body["message"])
}
