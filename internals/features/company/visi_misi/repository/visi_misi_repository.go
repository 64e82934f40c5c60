package repository

import (
	"context"

	"gorm.io/gorm"

	database "apgi_backend/internals/databases"
	"apgi_backend/internals/features/company/visi_misi/model"
)

// GetVisiMisi membaca visi beserta misi aktif, urut berdasarkan urutan.
func GetVisiMisi(ctx context.Context, db *gorm.DB) (*model.VisiMisiModel, bool, error) {
	var row model.VisiMisiModel
	found, err := database.FindSingleton(ctx, db, &row, func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("MisiList", func(q *gorm.DB) *gorm.DB {
			return database.OnlyActive(q).Order("urutan ASC")
		})
	})
	if err != nil || !found {
		return nil, found, err
	}
	if row.MisiList == nil {
		row.MisiList = []model.MisiModel{}
	}
	return &row, true, nil
}

/*
ReplaceVisiMisi dalam satu transaksi:
  - upsert visi (id=1)
  - hapus semua misi milik id=1
  - insert daftar baru, urutan = index+1, semua aktif

Gagal di langkah mana pun → rollback semua.
*/
func ReplaceVisiMisi(ctx context.Context, db *gorm.DB, visi string, items []string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		parent := model.VisiMisiModel{ID: database.SingletonID, Visi: visi}
		if err := database.UpsertSingleton(ctx, tx, &parent); err != nil {
			return err
		}

		if err := tx.Where("visi_misi_id = ?", database.SingletonID).
			Delete(&model.MisiModel{}).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}
		rows := make([]model.MisiModel, 0, len(items))
		for i, teks := range items {
			rows = append(rows, model.MisiModel{
				VisiMisiID: database.SingletonID,
				Urutan:     i + 1,
				TeksMisi:   teks,
				IsActive:   true,
			})
		}
		return tx.Create(&rows).Error
	})
}
