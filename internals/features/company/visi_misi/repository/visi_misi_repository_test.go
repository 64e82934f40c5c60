package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"apgi_backend/internals/features/company/visi_misi/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.VisiMisiModel{}, &model.MisiModel{}))
	return db
}

func texts(rows []model.MisiModel) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.TeksMisi
	}
	return out
}

func TestGetVisiMisi_Empty(t *testing.T) {
	db := openTestDB(t)

	row, found, err := GetVisiMisi(context.Background(), db)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, row)
}

func TestReplaceVisiMisi_DenseOrder(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, ReplaceVisiMisi(ctx, db, "Menjadi asosiasi terdepan", []string{"Gamma", "Alpha", "Beta"}))

	row, found, err := GetVisiMisi(ctx, db)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Menjadi asosiasi terdepan", row.Visi)
	require.Len(t, row.MisiList, 3)
	assert.Equal(t, []string{"Gamma", "Alpha", "Beta"}, texts(row.MisiList))
	for i, m := range row.MisiList {
		assert.Equal(t, i+1, m.Urutan)
	}

	// list diganti penuh, bukan ditambah
	require.NoError(t, ReplaceVisiMisi(ctx, db, "Visi baru", []string{"Satu", "Dua"}))

	var total int64
	require.NoError(t, db.Model(&model.MisiModel{}).Count(&total).Error)
	assert.EqualValues(t, 2, total)

	row, _, err = GetVisiMisi(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "Visi baru", row.Visi)
	assert.Equal(t, []string{"Satu", "Dua"}, texts(row.MisiList))
}

func TestGetVisiMisi_HidesInactive(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, ReplaceVisiMisi(ctx, db, "Visi", []string{"Aktif"}))
	require.NoError(t, db.Create(&model.MisiModel{
		VisiMisiID: 1, Urutan: 2, TeksMisi: "Arsip", IsActive: false,
	}).Error)

	row, _, err := GetVisiMisi(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aktif"}, texts(row.MisiList))
}

func TestReplaceVisiMisi_RollbackOnInsertFailure(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, ReplaceVisiMisi(ctx, db, "Visi lama", []string{"Misi lama 1", "Misi lama 2"}))

	boom := errors.New("insert misi gagal")
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_misi", func(tx *gorm.DB) {
		if tx.Statement.Table == "misi" {
			_ = tx.AddError(boom)
		}
	}))

	err := ReplaceVisiMisi(ctx, db, "Visi baru", []string{"X"})
	require.ErrorIs(t, err, boom)

	row, found, err := GetVisiMisi(ctx, db)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Visi lama", row.Visi)
	assert.Equal(t, []string{"Misi lama 1", "Misi lama 2"}, texts(row.MisiList))
}
