package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	authModel "apgi_backend/internals/features/admins/auth/model"
	kontakModel "apgi_backend/internals/features/company/kontak/model"
	profileModel "apgi_backend/internals/features/company/profile/model"
	strukturModel "apgi_backend/internals/features/company/struktur/model"
	visiMisiModel "apgi_backend/internals/features/company/visi_misi/model"
	websiteInfoModel "apgi_backend/internals/features/company/website_info/model"
)

// Models: semua tabel yang dikelola aplikasi, urut sesuai dependensi FK.
func Models() []any {
	return []any{
		&authModel.AdminModel{},
		&profileModel.ProfileOrganisasiModel{},
		&visiMisiModel.VisiMisiModel{},
		&visiMisiModel.MisiModel{},
		&strukturModel.StrukturOrganisasiModel{},
		&kontakModel.KontakModel{},
		&websiteInfoModel.WebsiteInfoModel{},
	}
}

func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info("✅ migrasi selesai", zap.Int("tables", len(Models())))
	return nil
}
