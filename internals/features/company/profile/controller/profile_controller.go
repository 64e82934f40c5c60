package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "apgi_backend/internals/databases"
	assetService "apgi_backend/internals/features/company/asset_update/service"
	"apgi_backend/internals/features/company/profile/dto"
	"apgi_backend/internals/features/company/profile/model"
	helper "apgi_backend/internals/helpers"
	"apgi_backend/internals/helpers/uploads"
)

var validateProfile = helper.NewValidator()

type ProfileController struct {
	DB     *gorm.DB
	Assets *assetService.AssetUpdater
}

func NewProfileController(db *gorm.DB, assets *assetService.AssetUpdater) *ProfileController {
	return &ProfileController{DB: db, Assets: assets}
}

// =============================
// 📄 GET /api/profile
// =============================
func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	var row model.ProfileOrganisasiModel
	found, err := database.FindSingleton(c.UserContext(), ctrl.DB, &row)
	if err != nil {
		return err
	}
	return helper.JsonRowOrEmpty(c, found, row)
}

// =============================
// ✏️ PUT /api/admin/profile (multipart, file: logo)
// =============================
func (ctrl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.LogoURL = helper.OptionalFormValue(c, "logo_url")
	req.TahunBerdiri = helper.OptionalFormValue(c, "tahun_berdiri")
	req.Normalize()
	if err := validateProfile.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	files, err := uploads.FormFiles(c, "logo")
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	var row model.ProfileOrganisasiModel
	if _, err := database.FindSingleton(ctx, ctrl.DB, &row); err != nil {
		return err
	}
	if err := req.ApplyTo(&row); err != nil {
		return err
	}

	logo := &assetService.Slot{
		Field:    "logo",
		File:     files["logo"],
		Current:  row.LogoURL,
		Supplied: req.LogoURL,
	}
	err = ctrl.Assets.Apply(ctx, []*assetService.Slot{logo}, func(ctx context.Context) error {
		row.ID = database.SingletonID
		row.LogoURL = logo.Path
		return database.UpsertSingleton(ctx, ctrl.DB, &row)
	})
	if err != nil {
		return err
	}

	return helper.JsonMessage(c, "Profile updated successfully")
}
