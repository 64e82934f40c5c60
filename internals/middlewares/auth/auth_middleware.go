package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	authService "apgi_backend/internals/features/admins/auth/service"
	helper "apgi_backend/internals/helpers"
)

/*
AccessGate dipasang per-route pada semua endpoint admin.

  - tanpa token           → 401 "Access token required"
  - token invalid/expired → 403 "Invalid token"

Keduanya ditolak sebelum handler/DB disentuh. Claims yang lolos disimpan
di Locals dan di UserContext.
*/
func AccessGate(tokens *authService.TokenService, log *zap.Logger) fiber.Handler {
	log = log.Named("auth")
	return func(c *fiber.Ctx) error {
		claims, err := tokens.Verify(helper.BearerToken(c))
		if err != nil {
			if !errors.Is(err, authService.ErrTokenMissing) {
				log.Debug("token ditolak", zap.String("path", c.Path()), zap.Error(err))
			}
			return helper.FromError(c, err)
		}

		c.Locals(LocalsAdminClaims, claims)
		c.SetUserContext(WithAdmin(c.UserContext(), claims))
		return c.Next()
	}
}
