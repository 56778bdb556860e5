// file: internals/middlewares/middleware.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"discprofile_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra os middlewares base da aplicação.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
