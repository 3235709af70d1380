package middlewares

import (
	"time"

	helper "jewelry_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func ipLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: RATE_LIMIT_MAX_REQUESTS per RATE_LIMIT_WINDOW_MS per IP.
func GlobalRateLimiter(max int, window time.Duration) fiber.Handler {
	return ipLimiter(max, window, "Too many requests, please try again later")
}

// Rate limiter for the login route (stricter)
func LoginRateLimiter(max int, window time.Duration) fiber.Handler {
	return ipLimiter(max, window, "Too many login attempts, please try again later")
}

// Rate limiter for admin registration
func RegisterRateLimiter() fiber.Handler {
	return ipLimiter(5, 15*time.Minute, "Too many registration attempts, please wait a few minutes")
}

// Rate limiter for analytics ingestion (kiosk and site beacons)
func IngestRateLimiter() fiber.Handler {
	return ipLimiter(300, time.Minute, "Too many tracking requests")
}
