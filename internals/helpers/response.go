package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	authService "apgi_backend/internals/features/admins/auth/service"
	"apgi_backend/internals/helpers/uploads"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

// ErrorResponse tetap membawa key "error" (dibaca front end) plus error_code.
type ErrorResponse struct {
	Success   bool              `json:"success"`
	Error     string            `json:"error"`
	ErrorCode string            `json:"error_code,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Error:     message,
		ErrorCode: statusToErrorCode(status),
	})
}

// ValidationError: error dari validator.v10 → 400 dengan detail per field.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success:   false,
		Error:     "Validation failed: " + firstFieldMessage(ve),
		ErrorCode: "BAD_REQUEST",
		Errors:    fields,
	})
}

func firstFieldMessage(ve validator.ValidationErrors) string {
	fe := ve[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must contain at least " + fe.Param() + " item(s)"
	default:
		return fe.Field() + " is invalid (" + fe.Tag() + ")"
	}
}

// FromError memetakan error domain ke respon HTTP. Error yang tidak dikenal
// dianggap error persistence → 500 dengan pesan aslinya.
func FromError(c *fiber.Ctx, err error) error {
	var (
		fe *fiber.Error
		ue *uploads.UploadError
		ve validator.ValidationErrors
	)
	switch {
	case errors.As(err, &ve):
		return ValidationError(c, err)
	case errors.As(err, &ue):
		return JsonError(c, fiber.StatusBadRequest, ue.Error())
	case errors.Is(err, authService.ErrInvalidCredentials):
		return JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, authService.ErrTokenMissing):
		return JsonError(c, fiber.StatusUnauthorized, "Access token required")
	case errors.Is(err, authService.ErrTokenInvalid):
		return JsonError(c, fiber.StatusForbidden, "Invalid token")
	case errors.As(err, &fe):
		return JsonError(c, fe.Code, fe.Message)
	default:
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// ErrorHandler dipasang di fiber.Config supaya error yang di-return handler
// (termasuk dari middleware bawaan fiber) punya bentuk yang sama.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) || fe.Code >= 500 {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}
		return FromError(c, err)
	}
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonMessage: respon sukses untuk mutasi (PUT/POST).
func JsonMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// JsonRowOrEmpty: endpoint publik mengembalikan baris apa adanya, atau {} kalau belum ada.
func JsonRowOrEmpty(c *fiber.Ctx, found bool, row any) error {
	if !found {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{})
	}
	return c.Status(fiber.StatusOK).JSON(row)
}
