package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"apgi_backend/internals/configs"
	"apgi_backend/internals/middlewares/logger"
)

// RequestTimeout selaras dengan batas waktu query DB per request.
const RequestTimeout = 10 * time.Second

// SetupMiddlewares memasang middleware global. Urutan penting:
// recover paling luar, lalu request log, baru cors/compress/etag.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, log *zap.Logger) {
	app.Use(RecoveryMiddleware(log))
	app.Use(logger.RequestLogger(log, RequestTimeout))
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
}
