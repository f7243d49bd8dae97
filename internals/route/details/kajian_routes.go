package details

import (
	kajianController "kajianku_backend/internals/features/kajian/controller"
	kajianRoutes "kajianku_backend/internals/features/kajian/route"
	"kajianku_backend/internals/features/kajian/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// KajianDeps: semua yang dibutuhkan fitur kajian, dirakit di main.go.
type KajianDeps struct {
	Store        service.KajianStore
	Registry     *service.SessionRegistry
	Sessions     *session.Store
	MapsBase     string
	Logger       *zap.Logger
	WriteLimiter fiber.Handler
	PageLimiter  fiber.Handler
}

func passThrough(c *fiber.Ctx) error { return c.Next() }

func (d KajianDeps) writeLimiter() fiber.Handler {
	if d.WriteLimiter != nil {
		return d.WriteLimiter
	}
	return passThrough
}

func (d KajianDeps) pageLimiter() fiber.Handler {
	if d.PageLimiter != nil {
		return d.PageLimiter
	}
	return passThrough
}

// ✅ Halaman HTML di root: GET / , POST /kajian
func KajianPageRoutes(app fiber.Router, d KajianDeps) {
	ctrl := kajianController.NewKajianPageController(d.Registry, d.Sessions, d.MapsBase, d.Logger)
	kajianRoutes.KajianPageRoutes(app, ctrl, d.pageLimiter(), d.writeLimiter())
}

// ✅ Untuk route publik tanpa token
// Contoh akses: /api/public/kajian
func KajianPublicRoutes(api fiber.Router, d KajianDeps) {
	ctrl := kajianController.NewKajianAPIController(d.Store, d.MapsBase, d.Logger)
	kajianRoutes.KajianPublicRoutes(api, ctrl, d.writeLimiter())
}
