package company

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	database "apgi_backend/internals/databases"
	kontakModel "apgi_backend/internals/features/company/kontak/model"
	profileModel "apgi_backend/internals/features/company/profile/model"
	strukturModel "apgi_backend/internals/features/company/struktur/model"
	visiMisiRepo "apgi_backend/internals/features/company/visi_misi/repository"
	websiteInfoModel "apgi_backend/internals/features/company/website_info/model"
)

type VisiMisiSeed struct {
	Visi     string   `json:"visi"`
	MisiList []string `json:"misi_list"`
}

// CompanySeed: isi awal tiap section. Section yang kosong (nil) tidak di-seed.
type CompanySeed struct {
	Profile     *profileModel.ProfileOrganisasiModel   `json:"profile"`
	VisiMisi    *VisiMisiSeed                          `json:"visi_misi"`
	Struktur    *strukturModel.StrukturOrganisasiModel `json:"struktur"`
	Kontak      *kontakModel.KontakModel               `json:"kontak"`
	WebsiteInfo *websiteInfoModel.WebsiteInfoModel     `json:"website_info"`
}

func SeedCompanyFromJSON(ctx context.Context, db *gorm.DB, filePath string, log *zap.Logger) error {
	log.Info("📥 membaca file company", zap.String("path", filePath))

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("gagal membaca file JSON: %w", err)
	}
	var seed CompanySeed
	if err := sonic.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("gagal decode JSON: %w", err)
	}
	return SeedCompany(ctx, db, seed, log)
}

// SeedCompany hanya membuat baris id=1 yang belum ada; data admin tidak ditimpa.
func SeedCompany(ctx context.Context, db *gorm.DB, seed CompanySeed, log *zap.Logger) error {
	if seed.Profile != nil {
		if err := createIfMissing(ctx, db, "profile_organisasi", &profileModel.ProfileOrganisasiModel{}, seed.Profile, log); err != nil {
			return err
		}
	}
	if seed.Struktur != nil {
		seed.Struktur.IsActive = true
		if err := createIfMissing(ctx, db, "struktur_organisasi", &strukturModel.StrukturOrganisasiModel{}, seed.Struktur, log); err != nil {
			return err
		}
	}
	if seed.Kontak != nil {
		if err := createIfMissing(ctx, db, "kontak", &kontakModel.KontakModel{}, seed.Kontak, log); err != nil {
			return err
		}
	}
	if seed.WebsiteInfo != nil {
		if err := createIfMissing(ctx, db, "website_info", &websiteInfoModel.WebsiteInfoModel{}, seed.WebsiteInfo, log); err != nil {
			return err
		}
	}

	if seed.VisiMisi != nil {
		_, found, err := visiMisiRepo.GetVisiMisi(ctx, db)
		if err != nil {
			return err
		}
		if found {
			log.Info("ℹ️ visi_misi sudah ada, dilewati")
		} else {
			if err := visiMisiRepo.ReplaceVisiMisi(ctx, db, seed.VisiMisi.Visi, seed.VisiMisi.MisiList); err != nil {
				return fmt.Errorf("seed visi_misi: %w", err)
			}
			log.Info("✅ visi_misi dibuat", zap.Int("misi", len(seed.VisiMisi.MisiList)))
		}
	}
	return nil
}

// createIfMissing: probe dipakai untuk cek keberadaan baris id=1, row yang di-insert.
func createIfMissing(ctx context.Context, db *gorm.DB, table string, probe any, row any, log *zap.Logger) error {
	found, err := database.FindSingleton(ctx, db, probe)
	if err != nil {
		return err
	}
	if found {
		log.Info("ℹ️ baris sudah ada, dilewati", zap.String("table", table))
		return nil
	}
	if err := setSingletonID(row); err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("seed %s: %w", table, err)
	}
	log.Info("✅ baris dibuat", zap.String("table", table))
	return nil
}

func setSingletonID(row any) error {
	switch r := row.(type) {
	case *profileModel.ProfileOrganisasiModel:
		r.ID = database.SingletonID
	case *strukturModel.StrukturOrganisasiModel:
		r.ID = database.SingletonID
	case *kontakModel.KontakModel:
		r.ID = database.SingletonID
	case *websiteInfoModel.WebsiteInfoModel:
		r.ID = database.SingletonID
	default:
		return fmt.Errorf("tipe seed tidak dikenal: %T", row)
	}
	return nil
}
