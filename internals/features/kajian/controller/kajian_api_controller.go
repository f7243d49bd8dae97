package controller

import (
	"kajianku_backend/internals/features/kajian/dto"
	"kajianku_backend/internals/features/kajian/service"
	helper "kajianku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// KajianAPIController: JSON stateless di atas SheetClient.
type KajianAPIController struct {
	Store    service.KajianStore
	MapsBase string
	Logger   *zap.Logger
}

func NewKajianAPIController(store service.KajianStore, mapsBase string, logger *zap.Logger) *KajianAPIController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KajianAPIController{Store: store, MapsBase: mapsBase, Logger: logger}
}

// ✅ List + filter | GET /api/public/kajian?q=
func (ctrl *KajianAPIController) List(c *fiber.Ctx) error {
	records, err := ctrl.Store.FetchAll(c.UserContext())
	if err != nil {
		ctrl.Logger.Error("Gagal mengambil data kajian", zap.Error(err))
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal mengambil data kajian")
	}

	filtered := service.FilterKajian(records, utils.CopyString(c.Query("q")))
	return helper.JsonList(c, "Daftar kajian berhasil diambil", dto.ToKajianResponses(filtered, ctrl.MapsBase), len(filtered))
}

// ✅ Create | POST /api/public/kajian
func (ctrl *KajianAPIController) Create(c *fiber.Ctx) error {
	var body dto.CreateKajianRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format data tidak valid")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsMap(err))
	}

	rec := body.ToModel()
	rec.Nama, rec.Tempat, rec.Waktu = utils.CopyString(rec.Nama), utils.CopyString(rec.Tempat), utils.CopyString(rec.Waktu)

	if err := ctrl.Store.Append(c.UserContext(), rec); err != nil {
		ctrl.Logger.Error("Gagal menambahkan data kajian", zap.Error(err), zap.String("nama", rec.Nama))
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menambahkan data kajian")
	}

	return helper.JsonCreated(c, "Berhasil menambahkan kajian", dto.ToKajianResponse(rec, ctrl.MapsBase))
}
