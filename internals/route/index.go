package routes

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"apgi_backend/internals/configs"
	authService "apgi_backend/internals/features/admins/auth/service"
	assetService "apgi_backend/internals/features/company/asset_update/service"
	helper "apgi_backend/internals/helpers"
	"apgi_backend/internals/helpers/uploads"
	"apgi_backend/internals/middlewares"
	authMiddleware "apgi_backend/internals/middlewares/auth"
	routeDetails "apgi_backend/internals/route/details"
)

var startTime time.Time

// Deps dibangun sekali di main dan dibagikan ke semua controller.
type Deps struct {
	DB     *gorm.DB
	Cfg    *configs.Config
	Log    *zap.Logger
	Tokens *authService.TokenService
	Store  *uploads.Store
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()
	log := d.Log.Named("routes")

	BaseRoutes(app, d.DB, d.Cfg)

	// 🖼️ file upload disajikan read-only
	app.Static(strings.TrimSuffix(uploads.PublicPrefix, "/"), d.Store.Dir(), fiber.Static{
		ByteRange: true,
		MaxAge:    3600,
	})

	// ===================== GROUPS =====================
	api := app.Group("/api", middlewares.GlobalRateLimiter(d.Cfg.RateLimitPerMinute))
	admin := api.Group("/admin")

	gate := authMiddleware.AccessGate(d.Tokens, d.Log)
	assets := assetService.NewAssetUpdater(d.Store, d.Log)

	// ===================== MOUNT ROUTES =====================
	log.Debug("mounting auth routes")
	routeDetails.AuthRoutes(admin,
		authService.NewAuthService(d.DB, d.Tokens),
		gate,
		middlewares.LoginRateLimiter(d.Cfg.LoginLimitPerMinute),
		d.Log,
	)

	log.Debug("mounting company routes")
	routeDetails.CompanyPublicRoutes(api, d.DB)
	routeDetails.CompanyAdminRoutes(admin, d.DB, assets, gate)

	app.Use(func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
	})
}
