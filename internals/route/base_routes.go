package routes

import (
	"context"
	"time"

	"jewelry_backend/internals/configs"
	database "jewelry_backend/internals/databases"
	helper "jewelry_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BaseRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "Jewelry CMS API is running 🚀", nil)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		data := fiber.Map{
			"status":        "OK",
			"database":      "Connected",
			"serverTime":    time.Now().UTC().Format(time.RFC3339),
			"uptimeSeconds": int(time.Since(startTime).Seconds()),
			"environment":   cfg.Env,
		}
		if err := database.Ping(ctx, db); err != nil {
			data["status"] = "DOWN"
			data["database"] = "Database connection error"
			return c.Status(fiber.StatusServiceUnavailable).JSON(helper.Response{
				Success: false,
				Message: "Service unavailable",
				Error:   "SERVICE_UNAVAILABLE",
				Data:    data,
			})
		}
		return helper.JsonOK(c, "healthy", data)
	})
}
