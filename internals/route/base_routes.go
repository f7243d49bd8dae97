package routes

import (
	"os"
	"time"

	"kajianku_backend/internals/features/kajian/service"

	"github.com/gofiber/fiber/v2"
)

func BaseRoutes(app *fiber.App, reg *service.SessionRegistry) {
	app.Get("/health", func(c *fiber.Ctx) error {
		sessions := 0
		if reg != nil {
			sessions = reg.Len()
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":          "OK",
			"server_time":     time.Now().Format(time.RFC3339),
			"uptime_seconds":  int(time.Since(startTime).Seconds()),
			"active_sessions": sessions,
			"environment":     os.Getenv("APP_ENV"),
		})
	})
}
