package route

import (
	"jewelry_backend/internals/features/analytics/controller"
	"jewelry_backend/internals/features/analytics/service"
	"jewelry_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func AnalyticsRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler, log *zap.Logger) {
	ctrl := controller.NewAnalyticsController(service.NewAnalyticsService(db), log)

	g := api.Group("/analytics")

	// 🔐 Reports
	g.Get("/dashboard", auth, ctrl.Dashboard)
	g.Get("/realtime", auth, ctrl.Realtime)

	// 🌐 Beacons from the site and kiosk
	limit := middlewares.IngestRateLimiter()
	g.Post("/sessions", limit, ctrl.TrackSession)
	g.Post("/pageviews", limit, ctrl.TrackPageView)
	g.Post("/events", limit, ctrl.TrackEvent)
}
