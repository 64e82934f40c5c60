package company

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "apgi_backend/internals/databases"
	kontakModel "apgi_backend/internals/features/company/kontak/model"
	profileModel "apgi_backend/internals/features/company/profile/model"
	strukturModel "apgi_backend/internals/features/company/struktur/model"
	visiMisiRepo "apgi_backend/internals/features/company/visi_misi/repository"
)

func openSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))
	return db
}

func TestSeedCompanyFromJSON_DefaultData(t *testing.T) {
	db := openSeedDB(t)
	ctx := context.Background()

	require.NoError(t, SeedCompanyFromJSON(ctx, db, "data_company.json", zap.NewNop()))

	var profile profileModel.ProfileOrganisasiModel
	found, err := database.FindSingleton(ctx, db, &profile)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "APPGI", profile.NamaOrganisasi)

	var struktur strukturModel.StrukturOrganisasiModel
	found, err = database.FindSingleton(ctx, db, &struktur, database.OnlyActive)
	require.NoError(t, err)
	require.True(t, found, "struktur hasil seed harus aktif")

	vm, found, err := visiMisiRepo.GetVisiMisi(ctx, db)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, vm.MisiList, 3)
	assert.Equal(t, 1, vm.MisiList[0].Urutan)
}

func TestSeedCompany_DoesNotOverwriteExistingRows(t *testing.T) {
	db := openSeedDB(t)
	ctx := context.Background()

	edited := &kontakModel.KontakModel{ID: database.SingletonID, Alamat: "Alamat dari admin"}
	require.NoError(t, db.Create(edited).Error)
	require.NoError(t, visiMisiRepo.ReplaceVisiMisi(ctx, db, "Visi admin", []string{"Misi admin"}))

	seed := CompanySeed{
		Kontak:   &kontakModel.KontakModel{Alamat: "Jakarta, Indonesia"},
		VisiMisi: &VisiMisiSeed{Visi: "Visi default", MisiList: []string{"A", "B"}},
	}
	require.NoError(t, SeedCompany(ctx, db, seed, zap.NewNop()))
	// dijalankan ulang tetap aman
	require.NoError(t, SeedCompany(ctx, db, seed, zap.NewNop()))

	var kontak kontakModel.KontakModel
	_, err := database.FindSingleton(ctx, db, &kontak)
	require.NoError(t, err)
	assert.Equal(t, "Alamat dari admin", kontak.Alamat)

	vm, _, err := visiMisiRepo.GetVisiMisi(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "Visi admin", vm.Visi)
	require.Len(t, vm.MisiList, 1)
}
