package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"apgi_backend/internals/features/admins/auth/controller"
	"apgi_backend/internals/features/admins/auth/service"
)

// AdminAuthRoutes: /login tidak pernah lewat gate, /verify wajib token.
func AdminAuthRoutes(admin fiber.Router, auth *service.AuthService, gate, loginLimiter fiber.Handler, log *zap.Logger) {
	ctrl := controller.NewAuthController(auth, log)

	admin.Post("/login", loginLimiter, ctrl.Login)
	admin.Get("/verify", gate, ctrl.Verify)
}
