package route

import (
	"fmt"
	"os"
	"strings"
	"time"

	"jewelry_backend/internals/features/uploads/controller"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Options struct {
	Dir           string
	MaxBytes      int64
	PublicBaseURL string
}

// UploadRoutes registers POST /api/uploads and serves stored files under
// /uploads.
func UploadRoutes(app *fiber.App, api fiber.Router, auth fiber.Handler, opt Options, log *zap.Logger) error {
	if err := os.MkdirAll(opt.Dir, 0o755); err != nil {
		return fmt.Errorf("upload dir: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	ctrl := &controller.UploadController{
		Dir:      opt.Dir,
		BaseURL:  strings.TrimRight(opt.PublicBaseURL, "/"),
		MaxBytes: opt.MaxBytes,
		Log:      log.Named("uploads"),
	}

	api.Post("/uploads", auth, ctrl.Upload) // 🔐

	app.Static("/uploads", opt.Dir, fiber.Static{
		Browse:        false,
		MaxAge:        int((30 * 24 * time.Hour).Seconds()),
		ByteRange:     true,
		CacheDuration: time.Minute,
	})
	return nil
}
