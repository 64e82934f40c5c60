package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authModel "apgi_backend/internals/features/admins/auth/model"
)

// FindAdminByUsername mengembalikan (nil, nil) kalau username tidak ada.
func FindAdminByUsername(ctx context.Context, db *gorm.DB, username string) (*authModel.AdminModel, error) {
	var admin authModel.AdminModel
	err := db.WithContext(ctx).
		Where("username = ?", username).
		Take(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func IsUsernameTaken(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(&authModel.AdminModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func CreateAdmin(ctx context.Context, db *gorm.DB, admin *authModel.AdminModel) error {
	return db.WithContext(ctx).Create(admin).Error
}
