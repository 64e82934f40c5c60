package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetService "apgi_backend/internals/features/company/asset_update/service"
	"apgi_backend/internals/features/company/website_info/controller"
)

func WebsiteInfoPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewWebsiteInfoController(db, nil)
	api.Get("/website-info", ctrl.GetWebsiteInfo)
}

func WebsiteInfoAdminRoutes(admin fiber.Router, db *gorm.DB, assets *assetService.AssetUpdater, gate fiber.Handler) {
	ctrl := controller.NewWebsiteInfoController(db, assets)
	admin.Put("/website-info", gate, ctrl.UpdateWebsiteInfo)
}
