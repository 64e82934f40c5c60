package admins

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

	authModel "apgi_backend/internals/features/admins/auth/model"
	authRepo "apgi_backend/internals/features/admins/auth/repository"
	authService "apgi_backend/internals/features/admins/auth/service"
)

func openAdminDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&authModel.AdminModel{}))
	return db
}

func TestSeedAdminsFromJSON_Example(t *testing.T) {
	db := openAdminDB(t)
	ctx := context.Background()

	n, err := SeedAdminsFromJSON(ctx, db, "data_admins.example.json", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	admin, err := authRepo.FindAdminByUsername(ctx, db, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.NotEqual(t, "ganti-password-ini", admin.Password)
	assert.NoError(t, authService.CheckPasswordHash(admin.Password, "ganti-password-ini"))

	// kedua kali: username sudah ada, dilewati
	n, err = SeedAdminsFromJSON(ctx, db, "data_admins.example.json", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSeedAdmins_PrehashedAndInvalid(t *testing.T) {
	db := openAdminDB(t)
	ctx := context.Background()

	hash, err := authService.HashPassword("rahasia")
	require.NoError(t, err)

	n, err := SeedAdmins(ctx, db, []AdminSeed{{Username: " editor ", PasswordHash: hash}}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	admin, err := authRepo.FindAdminByUsername(ctx, db, "editor")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, hash, admin.Password)

	_, err = SeedAdmins(ctx, db, []AdminSeed{{Username: "x", PasswordHash: "plaintext"}}, zap.NewNop())
	assert.Error(t, err)

	_, err = SeedAdmins(ctx, db, []AdminSeed{{Username: "y"}}, zap.NewNop())
	assert.Error(t, err)

	_, err = SeedAdmins(ctx, db, []AdminSeed{{Username: "  ", Password: "p"}}, zap.NewNop())
	assert.Error(t, err)
}
