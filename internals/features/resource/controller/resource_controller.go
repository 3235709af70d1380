package controller

import (
	"errors"
	"strings"
	"time"

	"jewelry_backend/internals/features/resource/repository"
	"jewelry_backend/internals/features/resource/schema"
	helper "jewelry_backend/internals/helpers"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

type ResourceController[T repository.Model] struct {
	Repo   *repository.Repository[T]
	Schema *schema.Schema
}

func NewResourceController[T repository.Model](repo *repository.Repository[T]) *ResourceController[T] {
	return &ResourceController[T]{Repo: repo, Schema: repo.Schema()}
}

func (ctl *ResourceController[T]) notFound() error {
	return helper.NotFound(ctl.Schema.Singular + " not found")
}

func (ctl *ResourceController[T]) fail(action string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ctl.notFound()
	}
	return helper.ServerError("Failed to "+action+" "+strings.ToLower(ctl.Schema.Singular), err)
}

func (ctl *ResourceController[T]) parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, ctl.notFound()
	}
	return id, nil
}

func (ctl *ResourceController[T]) filters(c *fiber.Ctx) (map[string]string, error) {
	out := map[string]string{}
	for _, f := range ctl.Schema.FilterFields() {
		v := strings.TrimSpace(c.Query(f.Name))
		if v == "" {
			continue
		}
		if f.Kind == schema.Enum && !contains(f.Options, v) {
			return nil, helper.BadRequest(f.Label + " must be one of: " + strings.Join(f.Options, ", "))
		}
		out[f.Name] = v
	}
	return out, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func parseBody(c *fiber.Ctx) (map[string]any, error) {
	input := map[string]any{}
	if len(c.Body()) == 0 {
		return input, nil
	}
	if err := c.BodyParser(&input); err != nil {
		return nil, helper.BadRequest("Invalid request body")
	}
	return input, nil
}

func validationError(errs []schema.FieldError) error {
	return helper.ValidationFailed(errs[0].Message, errs)
}

// =============================
// 🌐 Public
// =============================

// GET /api/<resource>
func (ctl *ResourceController[T]) ListPublic(c *fiber.Ctx) error {
	filters, err := ctl.filters(c)
	if err != nil {
		return err
	}
	rows, err := ctl.Repo.ListPublic(c.UserContext(), filters, time.Now().UTC())
	if err != nil {
		return ctl.fail("fetch", err)
	}
	return helper.JsonCollection(c, "", rows, len(rows))
}

// GET /api/<resource>/:id (active rows only)
func (ctl *ResourceController[T]) GetPublic(c *fiber.Ctx) error {
	id, err := ctl.parseID(c)
	if err != nil {
		return err
	}
	row, err := ctl.Repo.FindByID(c.UserContext(), id, true)
	if err != nil {
		return ctl.fail("fetch", err)
	}
	return helper.JsonOK(c, "", row)
}

// =============================
// 🔐 Admin
// =============================

// GET /api/<resource>/admin?page=&limit=&search=&status=
func (ctl *ResourceController[T]) ListAdmin(c *fiber.Ctx) error {
	status := strings.ToLower(strings.TrimSpace(c.Query("status", "all")))
	if !contains([]string{"all", "active", "inactive"}, status) {
		return helper.BadRequest("Status must be one of: all, active, inactive")
	}
	filters, err := ctl.filters(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)

	rows, total, err := ctl.Repo.ListAdmin(c.UserContext(), repository.ListParams{
		Search:  c.Query("search"),
		Status:  status,
		Filters: filters,
		Limit:   paging.Limit,
		Offset:  paging.Offset,
	})
	if err != nil {
		return ctl.fail("fetch", err)
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/<resource>/admin/all
func (ctl *ResourceController[T]) ListAll(c *fiber.Ctx) error {
	rows, _, err := ctl.Repo.ListAdmin(c.UserContext(), repository.ListParams{Status: "all"})
	if err != nil {
		return ctl.fail("fetch", err)
	}
	return helper.JsonCollection(c, "", rows, len(rows))
}

// GET /api/<resource>/admin/:id
func (ctl *ResourceController[T]) GetAdmin(c *fiber.Ctx) error {
	id, err := ctl.parseID(c)
	if err != nil {
		return err
	}
	row, err := ctl.Repo.FindByID(c.UserContext(), id, false)
	if err != nil {
		return ctl.fail("fetch", err)
	}
	return helper.JsonOK(c, "", row)
}

// POST /api/<resource>
func (ctl *ResourceController[T]) Create(c *fiber.Ctx) error {
	input, err := parseBody(c)
	if err != nil {
		return err
	}
	vals, errs := ctl.Schema.Validate(input, schema.Create)
	if len(errs) > 0 {
		return validationError(errs)
	}
	row, err := ctl.Repo.Create(c.UserContext(), vals)
	if err != nil {
		return ctl.fail("create", err)
	}
	return helper.JsonCreated(c, ctl.Schema.Singular+" created successfully", row)
}

// PUT /api/<resource>/:id
func (ctl *ResourceController[T]) Update(c *fiber.Ctx) error {
	id, err := ctl.parseID(c)
	if err != nil {
		return err
	}
	input, err := parseBody(c)
	if err != nil {
		return err
	}
	vals, errs := ctl.Schema.Validate(input, schema.Update)
	if len(errs) > 0 {
		return validationError(errs)
	}

	if len(ctl.Schema.Rules) > 0 {
		existing, err := ctl.Repo.FindByID(c.UserContext(), id, false)
		if err != nil {
			return ctl.fail("update", err)
		}
		stored, err := toMap(existing)
		if err != nil {
			return ctl.fail("update", err)
		}
		if errs := ctl.Schema.CheckRules(schema.Merge(stored, vals)); len(errs) > 0 {
			return validationError(errs)
		}
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, vals)
	if err != nil {
		return ctl.fail("update", err)
	}
	return helper.JsonUpdated(c, ctl.Schema.Singular+" updated successfully", row)
}

func toMap(row any) (map[string]any, error) {
	raw, err := sonic.Marshal(row)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	return out, sonic.Unmarshal(raw, &out)
}

// DELETE /api/<resource>/:id
func (ctl *ResourceController[T]) Delete(c *fiber.Ctx) error {
	id, err := ctl.parseID(c)
	if err != nil {
		return err
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return ctl.fail("delete", err)
	}
	return helper.JsonDeleted(c, ctl.Schema.Singular+" deleted successfully", fiber.Map{"id": id})
}

// PATCH /api/<resource>/:id/toggle
func (ctl *ResourceController[T]) Toggle(c *fiber.Ctx) error {
	id, err := ctl.parseID(c)
	if err != nil {
		return err
	}
	row, err := ctl.Repo.Toggle(c.UserContext(), id)
	if err != nil {
		return ctl.fail("toggle", err)
	}
	return helper.JsonOK(c, ctl.Schema.Singular+" status updated", row)
}

type reorderRequest struct {
	Items []repository.ReorderItem `json:"items" validate:"required,min=1,dive"`
}

// PUT /api/<resource>/reorder
func (ctl *ResourceController[T]) Reorder(c *fiber.Ctx) error {
	var req reorderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationFailed("Items must be a non-empty list of {id, sortOrder}", []schema.FieldError{
			{Field: "items", Message: "Items must be a non-empty list of {id, sortOrder}"},
		})
	}
	if err := ctl.Repo.Reorder(c.UserContext(), req.Items); err != nil {
		return ctl.fail("reorder", err)
	}
	return helper.JsonOK(c, ctl.Schema.Singular+" order updated", fiber.Map{"count": len(req.Items)})
}
