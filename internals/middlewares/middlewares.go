package middlewares

import (
	"time"

	"kajianku_backend/internals/configs"
	"kajianku_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"
)

// SetupMiddlewares memasang middleware dasar untuk seluruh app.
func SetupMiddlewares(app *fiber.App, cfg configs.Config, log *zap.Logger) {
	// ⚙️ middleware dasar + performa
	app.Use(RecoveryMiddleware(log))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing; timeout sedikit di atas timeout sheet
	app.Use(RequestID(log, cfg.SheetTimeout+5*time.Second))

	app.Use(logger.LoggerMiddleware())
	app.Use("/api", CorsMiddleware(cfg.CorsOrigins))
	app.Use("/api", GlobalRateLimiter())
}
