package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetService "apgi_backend/internals/features/company/asset_update/service"
	"apgi_backend/internals/features/company/struktur/controller"
)

func StrukturPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStrukturController(db, nil)
	api.Get("/struktur", ctrl.GetStruktur)
}

func StrukturAdminRoutes(admin fiber.Router, db *gorm.DB, assets *assetService.AssetUpdater, gate fiber.Handler) {
	ctrl := controller.NewStrukturController(db, assets)
	admin.Put("/struktur", gate, ctrl.UpdateStruktur)
}
