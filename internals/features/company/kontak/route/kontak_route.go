package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"apgi_backend/internals/features/company/kontak/controller"
)

func KontakPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKontakController(db)
	api.Get("/kontak", ctrl.GetKontak)
}

func KontakAdminRoutes(admin fiber.Router, db *gorm.DB, gate fiber.Handler) {
	ctrl := controller.NewKontakController(db)
	admin.Put("/kontak", gate, ctrl.UpdateKontak)
}
