package uploads

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// IsMultipart menilai request multipart/form-data
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// FormFiles mengambil maksimal satu file per field yang diminta.
// Field tanpa file tidak masuk map; request non-multipart → map kosong.
// File di field lain diabaikan.
func FormFiles(c *fiber.Ctx, fields ...string) (map[string]*multipart.FileHeader, error) {
	out := make(map[string]*multipart.FileHeader, len(fields))
	if !IsMultipart(c) {
		return out, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
	}
	if form == nil || form.File == nil {
		return out, nil
	}
	for _, f := range fields {
		for _, fh := range form.File[f] {
			if fh != nil && fh.Filename != "" {
				out[f] = fh
				break
			}
		}
	}
	return out, nil
}
