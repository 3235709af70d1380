package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePaging(t *testing.T) {
	cases := []struct {
		name        string
		page, limit string
		wantPage    int
		wantLimit   int
		wantOffset  int
	}{
		{"defaults", "", "", 1, 10, 0},
		{"explicit", "3", "20", 3, 20, 40},
		{"capped", "1", "500", 1, 100, 0},
		{"garbage", "x", "-4", 1, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NormalizePaging(tc.page, tc.limit, DefaultLimit, MaxLimit)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
			assert.Equal(t, tc.wantOffset, p.Offset)
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(25, 2, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPagination(0, 1, 10)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)

	last := BuildPagination(20, 2, 10)
	assert.False(t, last.HasNext)
}

func decode(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestErrorHandler_RendersEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(nil)})
	app.Get("/validation", func(c *fiber.Ctx) error {
		return ValidationFailed("Title is required", []map[string]string{{"field": "title", "message": "Title is required"}})
	})
	app.Get("/missing", func(c *fiber.Ctx) error { return NotFound("Banner not found") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("pq: connection refused") })
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.ErrMethodNotAllowed })

	resp, err := app.Test(httptest.NewRequest("GET", "/validation", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Title is required", body["message"])
	assert.Equal(t, CodeValidationFailed, body["error"])
	assert.Len(t, body["errors"], 1)

	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, CodeNotFound, decode(t, resp.Body)["error"])

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	body = decode(t, resp.Body)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, body["message"], "pq")

	resp, err = app.Test(httptest.NewRequest("GET", "/fiber", nil))
	require.NoError(t, err)
	assert.Equal(t, 405, resp.StatusCode)
}

func TestJsonCollection_EmptySliceKeepsData(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JsonCollection(c, "", []string{}, 0)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body := decode(t, resp.Body)
	assert.Equal(t, []any{}, body["data"])
	assert.Equal(t, float64(0), body["count"])
}

func TestValidateStruct_FieldMessages(t *testing.T) {
	type req struct {
		Email           string `json:"email" validate:"required,email"`
		CurrentPassword string `json:"currentPassword" validate:"required"`
		NewPassword     string `json:"newPassword" validate:"required,min=8,nefield=CurrentPassword"`
		Role            string `json:"role" validate:"omitempty,oneof=admin editor"`
	}

	assert.NoError(t, ValidateStruct(&req{Email: "a@b.co", CurrentPassword: "old-pass", NewPassword: "new-pass1"}))

	err := ValidateStruct(&req{Email: "nope", CurrentPassword: "same-pass", NewPassword: "same-pass", Role: "owner"})
	var ae *AppError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, fiber.StatusBadRequest, ae.Status)
	assert.Equal(t, CodeValidationFailed, ae.Code)
	assert.Equal(t, "Email must be a valid email", ae.Message)

	fields, ok := ae.Errors.([]FieldError)
	require.True(t, ok)
	byField := map[string]string{}
	for _, fe := range fields {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "New password must differ from current password", byField["newPassword"])
	assert.Equal(t, "Role must be one of: admin, editor", byField["role"])

	err = ValidateStruct(&req{Email: "a@b.co", CurrentPassword: "x", NewPassword: "short"})
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "New password must be at least 8 characters", ae.Message)
}
