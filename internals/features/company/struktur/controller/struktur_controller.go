package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "apgi_backend/internals/databases"
	assetService "apgi_backend/internals/features/company/asset_update/service"
	"apgi_backend/internals/features/company/struktur/dto"
	"apgi_backend/internals/features/company/struktur/model"
	helper "apgi_backend/internals/helpers"
	"apgi_backend/internals/helpers/uploads"
)

var validateStruktur = helper.NewValidator()

type StrukturController struct {
	DB     *gorm.DB
	Assets *assetService.AssetUpdater
}

func NewStrukturController(db *gorm.DB, assets *assetService.AssetUpdater) *StrukturController {
	return &StrukturController{DB: db, Assets: assets}
}

// GET /api/struktur (hanya baris aktif)
func (ctrl *StrukturController) GetStruktur(c *fiber.Ctx) error {
	var row model.StrukturOrganisasiModel
	found, err := database.FindSingleton(c.UserContext(), ctrl.DB, &row, database.OnlyActive)
	if err != nil {
		return err
	}
	return helper.JsonRowOrEmpty(c, found, row)
}

// PUT /api/admin/struktur (multipart, file: gambar_bagan)
func (ctrl *StrukturController) UpdateStruktur(c *fiber.Ctx) error {
	var req dto.UpdateStrukturRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.GambarBagan = helper.OptionalFormValue(c, "gambar_bagan")
	req.Normalize()
	if err := validateStruktur.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	files, err := uploads.FormFiles(c, "gambar_bagan")
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	var row model.StrukturOrganisasiModel
	found, err := database.FindSingleton(ctx, ctrl.DB, &row)
	if err != nil {
		return err
	}
	req.ApplyTo(&row, found)

	bagan := &assetService.Slot{
		Field:    "gambar_bagan",
		File:     files["gambar_bagan"],
		Current:  row.GambarBagan,
		Supplied: req.GambarBagan,
	}
	err = ctrl.Assets.Apply(ctx, []*assetService.Slot{bagan}, func(ctx context.Context) error {
		row.ID = database.SingletonID
		row.GambarBagan = bagan.Path
		return database.UpsertSingleton(ctx, ctrl.DB, &row)
	})
	if err != nil {
		return err
	}

	return helper.JsonMessage(c, "Struktur updated successfully")
}
