package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"apgi_backend/internals/features/admins/auth/dto"
	"apgi_backend/internals/features/admins/auth/service"
	helper "apgi_backend/internals/helpers"
	authMiddleware "apgi_backend/internals/middlewares/auth"
)

type AuthController struct {
	Auth *service.AuthService
	Log  *zap.Logger
}

func NewAuthController(auth *service.AuthService, log *zap.Logger) *AuthController {
	return &AuthController{Auth: auth, Log: log.Named("auth")}
}

// =============================
// 🔑 POST /api/admin/login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username and password required")
	}
	if !req.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username and password required")
	}

	res, err := ctrl.Auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		// password tidak pernah ikut di-log
		ctrl.Log.Info("login gagal", zap.String("username", req.Username), zap.String("ip", c.IP()), zap.Error(err))
		return err
	}

	ctrl.Log.Info("login berhasil", zap.Uint("admin_id", res.Admin.ID))
	return c.JSON(dto.LoginResponse{
		Message: "Login successful",
		Token:   res.Token,
		Admin:   dto.ToAdminDTO(res.Admin),
	})
}

// =============================
// ✅ GET /api/admin/verify
// =============================
func (ctrl *AuthController) Verify(c *fiber.Ctx) error {
	claims, ok := authMiddleware.CurrentAdmin(c)
	if !ok {
		return service.ErrTokenMissing
	}
	return c.JSON(fiber.Map{
		"message": "Token valid",
		"user":    claims,
	})
}
