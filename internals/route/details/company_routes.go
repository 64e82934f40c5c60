package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetService "apgi_backend/internals/features/company/asset_update/service"
	KontakRoutes "apgi_backend/internals/features/company/kontak/route"
	ProfileRoutes "apgi_backend/internals/features/company/profile/route"
	StrukturRoutes "apgi_backend/internals/features/company/struktur/route"
	VisiMisiRoutes "apgi_backend/internals/features/company/visi_misi/route"
	WebsiteInfoRoutes "apgi_backend/internals/features/company/website_info/route"
)

// ✅ Untuk route publik tanpa token
// Contoh akses: /api/profile
func CompanyPublicRoutes(api fiber.Router, db *gorm.DB) {
	ProfileRoutes.ProfilePublicRoutes(api, db)
	VisiMisiRoutes.VisiMisiPublicRoutes(api, db)
	StrukturRoutes.StrukturPublicRoutes(api, db)
	KontakRoutes.KontakPublicRoutes(api, db)
	WebsiteInfoRoutes.WebsiteInfoPublicRoutes(api, db)
}

// ✅ Untuk route admin (gate dipasang per-route)
// Contoh akses: PUT /api/admin/profile
func CompanyAdminRoutes(admin fiber.Router, db *gorm.DB, assets *assetService.AssetUpdater, gate fiber.Handler) {
	ProfileRoutes.ProfileAdminRoutes(admin, db, assets, gate)
	VisiMisiRoutes.VisiMisiAdminRoutes(admin, db, gate)
	StrukturRoutes.StrukturAdminRoutes(admin, db, assets, gate)
	KontakRoutes.KontakAdminRoutes(admin, db, gate)
	WebsiteInfoRoutes.WebsiteInfoAdminRoutes(admin, db, assets, gate)
}
