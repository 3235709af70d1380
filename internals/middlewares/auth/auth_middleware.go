// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"

	authModel "jewelry_backend/internals/features/users/auth/model"
	authRepo "jewelry_backend/internals/features/users/auth/repository"
	authService "jewelry_backend/internals/features/users/auth/service"
	helper "jewelry_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	MsgNoToken          = "No token provided"
	MsgTokenExpired     = "Token expired"
	MsgInvalidToken     = "Invalid token"
	MsgAdminDeactivated = "Invalid token or admin deactivated"
)

// AdminAuth rejects the request unless it carries a valid bearer token for
// an existing, active admin. On success the admin is stored in Locals.
func AdminAuth(db *gorm.DB, tokens *authService.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := extractBearerToken(c)
		if !ok {
			return helper.Unauthorized(MsgNoToken)
		}
		admin, err := authenticate(c, db, tokens, raw)
		if err != nil {
			return err
		}
		storeAdmin(c, admin)
		return c.Next()
	}
}

// OptionalAdminAuth authenticates when a bearer token is present and lets
// anonymous requests through. A present but bad token is still rejected.
func OptionalAdminAuth(db *gorm.DB, tokens *authService.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := extractBearerToken(c)
		if !ok {
			return c.Next()
		}
		admin, err := authenticate(c, db, tokens, raw)
		if err != nil {
			return err
		}
		storeAdmin(c, admin)
		return c.Next()
	}
}

func authenticate(c *fiber.Ctx, db *gorm.DB, tokens *authService.TokenService, raw string) (*authModel.AdminModel, error) {
	_, id, err := tokens.Parse(raw)
	if err != nil {
		if errors.Is(err, authService.ErrTokenExpired) {
			return nil, helper.Unauthorized(MsgTokenExpired)
		}
		return nil, helper.Unauthorized(MsgInvalidToken)
	}

	admin, err := authRepo.FindAdminByID(db.WithContext(c.UserContext()), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Unauthorized(MsgAdminDeactivated)
		}
		return nil, helper.ServerError("Failed to verify token", err)
	}
	if !admin.IsActive {
		return nil, helper.Unauthorized(MsgAdminDeactivated)
	}
	return admin, nil
}
