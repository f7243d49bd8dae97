package route

import (
	"kajianku_backend/internals/features/kajian/controller"

	"github.com/gofiber/fiber/v2"
)

// Halaman HTML (mount di root app)
func KajianPageRoutes(app fiber.Router, ctrl *controller.KajianPageController, pageLimiter, writeLimiter fiber.Handler) {
	app.Get("/", pageLimiter, ctrl.Index)
	app.Post("/kajian", pageLimiter, writeLimiter, ctrl.Submit)
}

// JSON publik (mount di /api/public)
func KajianPublicRoutes(api fiber.Router, ctrl *controller.KajianAPIController, writeLimiter fiber.Handler) {
	kajian := api.Group("/kajian")
	kajian.Get("/", ctrl.List)
	kajian.Post("/", writeLimiter, ctrl.Create)
}
