package helper

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeBadRequest       = "BAD_REQUEST"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"
	CodeServerError      = "SERVER_ERROR"
)

// AppError carries an HTTP status and envelope fields up to a controller
// or to the app-level ErrorHandler.
type AppError struct {
	Status  int
	Code    string
	Message string
	Errors  any
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func ValidationFailed(message string, fieldErrors any) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Code: CodeValidationFailed, Message: message, Errors: fieldErrors}
}

func BadRequest(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Code: CodeBadRequest, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Status: fiber.StatusForbidden, Code: CodeForbidden, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Code: CodeNotFound, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Status: fiber.StatusConflict, Code: CodeConflict, Message: message}
}

func ServerError(message string, err error) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Code: CodeServerError, Message: message, Err: err}
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return CodeBadRequest
	case fiber.StatusUnauthorized:
		return CodeUnauthorized
	case fiber.StatusForbidden:
		return CodeForbidden
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusConflict:
		return CodeConflict
	case fiber.StatusTooManyRequests:
		return CodeTooManyRequests
	default:
		if status >= 500 {
			return CodeServerError
		}
		return "ERROR"
	}
}

// JsonAppError renders err as the envelope. Anything that is not an
// *AppError or *fiber.Error becomes a 500 without leaking its text.
func JsonAppError(c *fiber.Ctx, err error) error {
	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Code == CodeValidationFailed {
			return JsonValidationError(c, ae.Message, ae.Errors)
		}
		return c.Status(ae.Status).JSON(Response{
			Success: false,
			Message: ae.Message,
			Error:   ae.Code,
			Errors:  ae.Errors,
		})
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}

// ErrorHandler is installed as fiber.Config.ErrorHandler.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var ae *AppError
		var fe *fiber.Error
		switch {
		case errors.As(err, &ae):
			status = ae.Status
		case errors.As(err, &fe):
			status = fe.Code
		}
		if status >= 500 && log != nil {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return JsonAppError(c, err)
	}
}
