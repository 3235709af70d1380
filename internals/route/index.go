package routes

import (
	"time"

	"jewelry_backend/internals/configs"
	analyticsRoute "jewelry_backend/internals/features/analytics/route"
	contentRoute "jewelry_backend/internals/features/content/route"
	uploadRoute "jewelry_backend/internals/features/uploads/route"
	authRoute "jewelry_backend/internals/features/users/auth/route"
	authService "jewelry_backend/internals/features/users/auth/service"
	helper "jewelry_backend/internals/helpers"
	"jewelry_backend/internals/middlewares"
	authMw "jewelry_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, log *zap.Logger) error {
	startTime = time.Now()

	tokens := authService.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	auth := authMw.AdminAuth(db, tokens)

	BaseRoutes(app, db, cfg)

	api := app.Group("/api", middlewares.GlobalRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow))

	log.Info("Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db, tokens, auth, authRoute.Options{
		LoginRateLimitMax: cfg.LoginRateLimitMax,
		RateLimitWindow:   cfg.RateLimitWindow,
	}, log)

	log.Info("Setting up AnalyticsRoutes...")
	analyticsRoute.AnalyticsRoutes(api, db, auth, log)

	log.Info("Setting up UploadRoutes...")
	if err := uploadRoute.UploadRoutes(app, api, auth, uploadRoute.Options{
		Dir:           cfg.UploadDir,
		MaxBytes:      cfg.UploadMaxBytes,
		PublicBaseURL: cfg.PublicBaseURL,
	}, log); err != nil {
		return err
	}

	log.Info("Setting up ContentRoutes...")
	contentRoute.ContentRoutes(api, db, auth)

	app.Use(func(c *fiber.Ctx) error {
		return helper.NotFound("Route not found")
	})
	return nil
}
