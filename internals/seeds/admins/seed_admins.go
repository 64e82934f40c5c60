package admins

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authModel "apgi_backend/internals/features/admins/auth/model"
	authRepo "apgi_backend/internals/features/admins/auth/repository"
	authService "apgi_backend/internals/features/admins/auth/service"
)

// AdminSeed: password boleh plaintext (di-hash saat seed) atau sudah berupa bcrypt hash.
type AdminSeed struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	PasswordHash string `json:"password_hash"`
	Email        string `json:"email"`
}

// SeedAdminsFromJSON membuat akun admin yang belum ada. Username yang sudah
// terdaftar dilewati (tidak di-update).
func SeedAdminsFromJSON(ctx context.Context, db *gorm.DB, filePath string, log *zap.Logger) (int, error) {
	log.Info("📥 membaca file admin", zap.String("path", filePath))

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("gagal membaca file JSON: %w", err)
	}
	var seeds []AdminSeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return 0, fmt.Errorf("gagal decode JSON: %w", err)
	}
	return SeedAdmins(ctx, db, seeds, log)
}

func SeedAdmins(ctx context.Context, db *gorm.DB, seeds []AdminSeed, log *zap.Logger) (int, error) {
	created := 0
	for i, s := range seeds {
		username := strings.TrimSpace(s.Username)
		if username == "" {
			return created, fmt.Errorf("admin #%d: username kosong", i+1)
		}

		taken, err := authRepo.IsUsernameTaken(ctx, db, username)
		if err != nil {
			return created, err
		}
		if taken {
			log.Info("ℹ️ admin sudah ada, dilewati", zap.String("username", username))
			continue
		}

		hash, err := resolveHash(s)
		if err != nil {
			return created, fmt.Errorf("admin %q: %w", username, err)
		}
		admin := &authModel.AdminModel{
			Username: username,
			Password: hash,
			Email:    strings.TrimSpace(s.Email),
		}
		if err := authRepo.CreateAdmin(ctx, db, admin); err != nil {
			return created, fmt.Errorf("admin %q: %w", username, err)
		}
		created++
		log.Info("✅ admin dibuat", zap.String("username", username), zap.Uint("id", admin.ID))
	}
	return created, nil
}

func resolveHash(s AdminSeed) (string, error) {
	if h := strings.TrimSpace(s.PasswordHash); h != "" {
		if !strings.HasPrefix(h, "$2") {
			return "", errors.New("password_hash bukan bcrypt hash")
		}
		return h, nil
	}
	if s.Password == "" {
		return "", errors.New("password atau password_hash wajib diisi")
	}
	return authService.HashPassword(s.Password)
}
