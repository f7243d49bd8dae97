package controller

import (
	"kajianku_backend/internals/features/kajian/dto"
	"kajianku_backend/internals/features/kajian/model"
	"kajianku_backend/internals/features/kajian/service"
	"kajianku_backend/internals/features/kajian/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// KajianPageController melayani halaman HTML daftar kajian.
// Setiap sesi browser punya ViewState sendiri di registry.
type KajianPageController struct {
	Registry *service.SessionRegistry
	Sessions *session.Store
	MapsBase string
	Logger   *zap.Logger
}

func NewKajianPageController(reg *service.SessionRegistry, sessions *session.Store, mapsBase string, logger *zap.Logger) *KajianPageController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KajianPageController{Registry: reg, Sessions: sessions, MapsBase: mapsBase, Logger: logger}
}

// ✅ Halaman utama | GET /?q=
func (ctrl *KajianPageController) Index(c *fiber.Ctx) error {
	vs, err := ctrl.view(c)
	if err != nil {
		ctrl.Logger.Error("Gagal memuat sesi", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	vs.Initialize(c.UserContext())

	// q tidak ada → filter sesi tetap; q="" → filter dikosongkan
	if c.Request().URI().QueryArgs().Has("q") {
		vs.SetFilterTerm(utils.CopyString(c.Query("q")))
	}

	return ctrl.render(c, fiber.StatusOK, vs)
}

// ✅ Tambah kajian | POST /kajian (form)
func (ctrl *KajianPageController) Submit(c *fiber.Ctx) error {
	var body dto.CreateKajianRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format data tidak valid")
	}

	vs, err := ctrl.view(c)
	if err != nil {
		ctrl.Logger.Error("Gagal memuat sesi", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	vs.Initialize(c.UserContext())

	// tombol submit nonaktif selama masih ada kiriman berjalan;
	// request yang tertolak tidak menyentuh draft
	if vs.Submitting() {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	// isian masuk draft apa adanya, termasuk kalau nanti gagal
	for field, value := range map[model.DraftField]string{
		model.FieldNama:   body.Nama,
		model.FieldTempat: body.Tempat,
		model.FieldWaktu:  body.Waktu,
	} {
		if err := vs.SetDraftField(field, utils.CopyString(value)); err != nil {
			return fiber.ErrInternalServerError
		}
	}

	if err := body.Validate(); err != nil {
		ctrl.Logger.Debug("Form kajian belum lengkap", zap.Error(err))
		return ctrl.render(c, fiber.StatusUnprocessableEntity, vs)
	}

	// error sudah dicatat ViewState; user hanya melihat form yang masih terisi
	_ = vs.Submit(c.UserContext())

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (ctrl *KajianPageController) view(c *fiber.Ctx) (*service.ViewState, error) {
	sess, err := ctrl.Sessions.Get(c)
	if err != nil {
		return nil, err
	}
	id := sess.ID()
	if sess.Fresh() {
		sess.Set("view", true)
	}
	if err := sess.Save(); err != nil {
		return nil, err
	}
	return ctrl.Registry.Get(id), nil
}

func (ctrl *KajianPageController) render(c *fiber.Ctx, status int, vs *service.ViewState) error {
	snap := vs.Snapshot()
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(status).Render(views.PageTemplate, views.PageData{
		Title:      views.PageTitle,
		FilterTerm: snap.FilterTerm,
		Rows:       dto.ToKajianResponses(snap.Filtered, ctrl.MapsBase),
		Draft:      snap.Draft,
		Submitting: snap.Submitting,
	})
}
