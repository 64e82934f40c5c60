package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SingletonID: setiap tabel konten hanya punya satu baris logis di id=1.
const SingletonID uint = 1

// FindSingleton membaca baris id=1 ke dst. found=false kalau belum ada.
func FindSingleton(ctx context.Context, db *gorm.DB, dst any, scopes ...func(*gorm.DB) *gorm.DB) (bool, error) {
	err := db.WithContext(ctx).
		Scopes(scopes...).
		Where("id = ?", SingletonID).
		Take(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpsertSingleton menulis seluruh kolom row dalam satu statement
// (INSERT ... ON CONFLICT / ON DUPLICATE KEY UPDATE). Row harus ber-ID 1.
func UpsertSingleton(ctx context.Context, db *gorm.DB, row any) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
}

// OnlyActive dipakai untuk tabel yang punya kolom is_active.
func OnlyActive(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
