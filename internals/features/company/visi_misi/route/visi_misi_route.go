package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"apgi_backend/internals/features/company/visi_misi/controller"
)

func VisiMisiPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVisiMisiController(db)
	api.Get("/visi-misi", ctrl.GetVisiMisi)
}

func VisiMisiAdminRoutes(admin fiber.Router, db *gorm.DB, gate fiber.Handler) {
	ctrl := controller.NewVisiMisiController(db)
	admin.Put("/visi-misi", gate, ctrl.UpdateVisiMisi)
}
