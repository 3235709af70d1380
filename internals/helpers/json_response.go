package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Errors     any         `json:"errors,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Count      *int        `json:"count,omitempty"`
}

func orDefault(message, fallback string) string {
	if strings.TrimSpace(message) == "" {
		return fallback
	}
	return message
}

// JsonOK: generic success (detail reads, toggles)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: orDefault(message, "ok"),
		Data:    data,
	})
}

// JsonCreated: POST
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: orDefault(message, "created"),
		Data:    data,
	})
}

// JsonUpdated: PUT/PATCH
func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: orDefault(message, "updated"),
		Data:    data,
	})
}

// JsonDeleted: DELETE
func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: orDefault(message, "deleted"),
		Data:    data,
	})
}

// JsonCollection: unpaginated list with a row count (public listings).
func JsonCollection(c *fiber.Ctx, message string, data any, count int) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: orDefault(message, "ok"),
		Data:    data,
		Count:   &count,
	})
}

// JsonList: paginated list (admin listings).
func JsonList(c *fiber.Ctx, message string, data any, pagination Pagination) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success:    true,
		Message:    orDefault(message, "ok"),
		Data:       data,
		Pagination: &pagination,
	})
}

// JsonError: non-validation failure.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
		if status < 500 {
			message = strings.TrimSpace(fiber.NewError(status).Message)
		}
	}
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
		Error:   statusToErrorCode(status),
	})
}

// JsonValidationError answers 400 with the field list; message is the first
// field message so simple clients can show a single line.
func JsonValidationError(c *fiber.Ctx, message string, fieldErrors any) error {
	return c.Status(fiber.StatusBadRequest).JSON(Response{
		Success: false,
		Message: orDefault(message, "Validation failed"),
		Error:   CodeValidationFailed,
		Errors:  fieldErrors,
	})
}
