package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	authService "apgi_backend/internals/features/admins/auth/service"
)

const LocalsAdminClaims = "admin_claims"

type adminCtxKey struct{}

func WithAdmin(ctx context.Context, claims *authService.AdminClaims) context.Context {
	return context.WithValue(ctx, adminCtxKey{}, claims)
}

func AdminFromContext(ctx context.Context) (*authService.AdminClaims, bool) {
	claims, ok := ctx.Value(adminCtxKey{}).(*authService.AdminClaims)
	return claims, ok && claims != nil
}

// CurrentAdmin: claims admin dari request yang sudah lewat AccessGate.
func CurrentAdmin(c *fiber.Ctx) (*authService.AdminClaims, bool) {
	claims, ok := c.Locals(LocalsAdminClaims).(*authService.AdminClaims)
	return claims, ok && claims != nil
}
