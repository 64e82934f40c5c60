package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// BearerToken mengambil token dari header "Authorization: Bearer <token>".
// Header kosong atau tanpa token → "".
func BearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return ""
	}
	scheme, token, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
