package helper

import (
	"github.com/gofiber/fiber/v2"

	"apgi_backend/internals/helpers/uploads"
)

// OptionalFormValue membedakan field yang tidak dikirim (nil) dengan field
// yang dikirim kosong (pointer ke ""). Berlaku untuk multipart & urlencoded.
func OptionalFormValue(c *fiber.Ctx, key string) *string {
	if uploads.IsMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil || form == nil {
			return nil
		}
		if vs, ok := form.Value[key]; ok && len(vs) > 0 {
			v := vs[0]
			return &v
		}
		return nil
	}

	args := c.Request().PostArgs()
	if !args.Has(key) {
		return nil
	}
	v := string(args.Peek(key))
	return &v
}
