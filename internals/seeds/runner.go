package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"apgi_backend/internals/seeds/admins"
	"apgi_backend/internals/seeds/company"
)

const (
	DefaultAdminsFile  = "internals/seeds/admins/data_admins.json"
	DefaultCompanyFile = "internals/seeds/company/data_company.json"
)

type Options struct {
	AdminsFile  string
	CompanyFile string
}

// RunAllSeeds: file yang kosong dilewati. Aman dijalankan berulang.
func RunAllSeeds(ctx context.Context, db *gorm.DB, opts Options, log *zap.Logger) error {
	log = log.Named("seed")

	//* Admin
	if opts.AdminsFile != "" {
		n, err := admins.SeedAdminsFromJSON(ctx, db, opts.AdminsFile, log)
		if err != nil {
			return err
		}
		log.Info("admin seed selesai", zap.Int("created", n))
	}

	//* Company (singleton rows)
	if opts.CompanyFile != "" {
		if err := company.SeedCompanyFromJSON(ctx, db, opts.CompanyFile, log); err != nil {
			return err
		}
	}
	return nil
}
