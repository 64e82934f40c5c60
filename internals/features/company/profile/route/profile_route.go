package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetService "apgi_backend/internals/features/company/asset_update/service"
	"apgi_backend/internals/features/company/profile/controller"
)

// 🌐 Public (read-only)
func ProfilePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db, nil)
	api.Get("/profile", ctrl.GetProfile)
}

// 🔐 Admin (token wajib)
func ProfileAdminRoutes(admin fiber.Router, db *gorm.DB, assets *assetService.AssetUpdater, gate fiber.Handler) {
	ctrl := controller.NewProfileController(db, assets)
	admin.Put("/profile", gate, ctrl.UpdateProfile)
}
