package controller

import (
	"strings"

	"jewelry_backend/internals/features/users/auth/dto"
	"jewelry_backend/internals/features/users/auth/service"
	helper "jewelry_backend/internals/helpers"
	authMw "jewelry_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthController struct {
	Service *service.AuthService
	Log     *zap.Logger
}

func NewAuthController(svc *service.AuthService, log *zap.Logger) *AuthController {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthController{Service: svc, Log: log.Named("auth")}
}

func bind(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	return helper.ValidateStruct(req)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := ac.Service.Login(c.UserContext(), req)
	if err != nil {
		ac.Log.Info("login rejected", zap.String("ip", c.IP()), zap.Error(err))
		return err
	}
	ac.Log.Info("🔓 admin logged in", zap.String("admin_id", res.Admin.ID.String()))
	return helper.JsonOK(c, "Login successful", res)
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := ac.Service.Register(c.UserContext(), req, authMw.CurrentAdmin(c))
	if err != nil {
		return err
	}
	ac.Log.Info("➕ admin registered",
		zap.String("admin_id", res.Admin.ID.String()),
		zap.String("role", res.Admin.Role))
	return helper.JsonCreated(c, "Admin registered successfully", res)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	admin := authMw.CurrentAdmin(c)
	if admin == nil {
		return helper.Unauthorized(authMw.MsgNoToken)
	}
	return helper.JsonOK(c, "", admin)
}

// PUT /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := ac.Service.ChangePassword(c.UserContext(), authMw.CurrentAdmin(c), req); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}

/* ====================== ADMIN MANAGEMENT ====================== */

func parseAdminID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, helper.NotFound("Admin not found")
	}
	return id, nil
}

// GET /api/auth/admins
func (ac *AuthController) ListAdmins(c *fiber.Ctx) error {
	admins, err := ac.Service.ListAdmins(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonCollection(c, "", admins, len(admins))
}

// PATCH /api/auth/admins/:id/toggle
func (ac *AuthController) ToggleAdmin(c *fiber.Ctx) error {
	id, err := parseAdminID(c)
	if err != nil {
		return err
	}
	admin, err := ac.Service.ToggleAdmin(c.UserContext(), authMw.CurrentAdmin(c), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Admin status updated", admin)
}

// DELETE /api/auth/admins/:id
func (ac *AuthController) DeleteAdmin(c *fiber.Ctx) error {
	id, err := parseAdminID(c)
	if err != nil {
		return err
	}
	if err := ac.Service.DeleteAdmin(c.UserContext(), authMw.CurrentAdmin(c), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Admin deleted successfully", fiber.Map{"id": id})
}
