package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "apgi_backend/internals/databases"
	assetService "apgi_backend/internals/features/company/asset_update/service"
	"apgi_backend/internals/features/company/website_info/dto"
	"apgi_backend/internals/features/company/website_info/model"
	helper "apgi_backend/internals/helpers"
	"apgi_backend/internals/helpers/uploads"
)

var validateWebsiteInfo = helper.NewValidator()

type WebsiteInfoController struct {
	DB     *gorm.DB
	Assets *assetService.AssetUpdater
}

func NewWebsiteInfoController(db *gorm.DB, assets *assetService.AssetUpdater) *WebsiteInfoController {
	return &WebsiteInfoController{DB: db, Assets: assets}
}

func (ctrl *WebsiteInfoController) GetWebsiteInfo(c *fiber.Ctx) error {
	var row model.WebsiteInfoModel
	found, err := database.FindSingleton(c.UserContext(), ctrl.DB, &row)
	if err != nil {
		return err
	}
	return helper.JsonRowOrEmpty(c, found, row)
}

// PUT /api/admin/website-info (multipart, file: favicon + hero_banner)
func (ctrl *WebsiteInfoController) UpdateWebsiteInfo(c *fiber.Ctx) error {
	var req dto.UpdateWebsiteInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.FaviconURL = helper.OptionalFormValue(c, "favicon_url")
	req.HeroBannerURL = helper.OptionalFormValue(c, "hero_banner_url")
	req.Normalize()
	if err := validateWebsiteInfo.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	files, err := uploads.FormFiles(c, "favicon", "hero_banner")
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	var row model.WebsiteInfoModel
	if _, err := database.FindSingleton(ctx, ctrl.DB, &row); err != nil {
		return err
	}
	req.ApplyTo(&row)

	favicon := &assetService.Slot{
		Field:    "favicon",
		File:     files["favicon"],
		Current:  row.FaviconURL,
		Supplied: req.FaviconURL,
	}
	hero := &assetService.Slot{
		Field:    "hero_banner",
		File:     files["hero_banner"],
		Current:  row.HeroBannerURL,
		Supplied: req.HeroBannerURL,
	}
	err = ctrl.Assets.Apply(ctx, []*assetService.Slot{favicon, hero}, func(ctx context.Context) error {
		row.ID = database.SingletonID
		row.FaviconURL = favicon.Path
		row.HeroBannerURL = hero.Path
		return database.UpsertSingleton(ctx, ctrl.DB, &row)
	})
	if err != nil {
		return err
	}

	return helper.JsonMessage(c, "Website info updated successfully")
}
