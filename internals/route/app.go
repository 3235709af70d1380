package routes

import (
	"time"

	"jewelry_backend/internals/configs"
	helper "jewelry_backend/internals/helpers"
	"jewelry_backend/internals/middlewares"
	"jewelry_backend/internals/middlewares/logger"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ReadTimeout    = 15 * time.Second
	WriteTimeout   = 30 * time.Second
	IdleTimeout    = 90 * time.Second
	RequestTimeout = 10 * time.Second
)

// NewApp builds the Fiber app with the middleware chain and every route.
func NewApp(cfg *configs.Config, db *gorm.DB, log *zap.Logger) (*fiber.App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName: "jewelry-backend",
		// 🚀 fast JSON
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler(log),
		ReadTimeout:           ReadTimeout,
		WriteTimeout:          WriteTimeout,
		IdleTimeout:           IdleTimeout,
		BodyLimit:             int(cfg.UploadMaxBytes) + 1<<20,
	})

	// ⚙️ base middleware; logger first so it sees recovered panics
	app.Use(logger.LoggerMiddleware(log.Named("http")))
	app.Use(middlewares.RecoveryMiddleware(log))
	app.Use(middlewares.CorsMiddleware(cfg.CORSOrigin))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.RequestTimeout(RequestTimeout))

	if err := SetupRoutes(app, db, cfg, log); err != nil {
		return nil, err
	}
	return app, nil
}
