package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	authRoute "apgi_backend/internals/features/admins/auth/route"
	authService "apgi_backend/internals/features/admins/auth/service"
)

// Contoh akses: POST /api/admin/login, GET /api/admin/verify
func AuthRoutes(admin fiber.Router, auth *authService.AuthService, gate, loginLimiter fiber.Handler, log *zap.Logger) {
	authRoute.AdminAuthRoutes(admin, auth, gate, loginLimiter, log)
}
