// file: internals/route/index.go
package routes

import (
	"time"

	routeDetails "kajianku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, deps routeDetails.KajianDeps) {
	startTime = time.Now()
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("Setting up BaseRoutes...")
	BaseRoutes(app, deps.Registry)

	// PUBLIC → tanpa auth
	logger.Info("Setting up PUBLIC group...")
	public := app.Group("/api/public")

	logger.Info("Mounting Kajian routes...")
	routeDetails.KajianPublicRoutes(public, deps)
	routeDetails.KajianPageRoutes(app, deps)
}
