package route

import (
	"time"

	"jewelry_backend/internals/constants"
	"jewelry_backend/internals/features/users/auth/controller"
	"jewelry_backend/internals/features/users/auth/service"
	"jewelry_backend/internals/middlewares"
	authMw "jewelry_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Options struct {
	LoginRateLimitMax int
	RateLimitWindow   time.Duration
}

// AuthRoutes mounts /api/auth. auth is the AdminAuth gate shared with the
// content routes.
func AuthRoutes(api fiber.Router, db *gorm.DB, tokens *service.TokenService, auth fiber.Handler, opt Options, log *zap.Logger) {
	ctrl := controller.NewAuthController(service.NewAuthService(db, tokens), log)

	g := api.Group("/auth")

	// 🔓 Public
	g.Post("/login", middlewares.LoginRateLimiter(opt.LoginRateLimitMax, opt.RateLimitWindow), ctrl.Login)
	g.Post("/register", middlewares.RegisterRateLimiter(), authMw.OptionalAdminAuth(db, tokens), ctrl.Register)

	// 🔐 Signed in
	g.Get("/me", auth, ctrl.Me)
	g.Put("/change-password", auth, ctrl.ChangePassword)

	// 🔐 super_admin / admin
	admins := g.Group("/admins", auth, authMw.OnlyRoles(
		constants.RoleError("admin management", constants.AdminAndAbove),
		constants.AdminAndAbove...,
	))
	admins.Get("/", ctrl.ListAdmins)
	admins.Patch("/:id/toggle", ctrl.ToggleAdmin)
	admins.Delete("/:id", ctrl.DeleteAdmin)
}
