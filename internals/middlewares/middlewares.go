package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"evisa_backend/internals/middlewares/logger"
)

// SetupMiddlewares registers the global middleware chain in order:
// recovery first so it wraps everything, then CORS, logger, rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
