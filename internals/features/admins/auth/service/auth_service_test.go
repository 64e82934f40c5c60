package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authModel "apgi_backend/internals/features/admins/auth/model"
)

func openAuthDB(t *testing.T) *gorm.DB {
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

func seedAdmin(t *testing.T, db *gorm.DB, username, password string) *authModel.AdminModel {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &authModel.AdminModel{Username: username, Password: string(hash), Email: username + "@appgi.or.id"}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func TestLogin_Success(t *testing.T) {
	db := openAuthDB(t)
	admin := seedAdmin(t, db, "admin", "s3cret")
	tokens := NewTokenService(testSecret)

	res, err := NewAuthService(db, tokens).Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, res.Admin.ID)
	assert.Equal(t, "admin@appgi.or.id", res.Admin.Email)

	claims, err := tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.ID)
	assert.Equal(t, "admin", claims.Username)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	db := openAuthDB(t)
	seedAdmin(t, db, "admin", "s3cret")
	svc := NewAuthService(db, NewTokenService(testSecret))

	_, wrongPassword := svc.Login(context.Background(), "admin", "salah")
	_, unknownUser := svc.Login(context.Background(), "ghost", "s3cret")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogin_DatabaseErrorIsNotCredentialError(t *testing.T) {
	db := openAuthDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = NewAuthService(db, NewTokenService(testSecret)).Login(context.Background(), "admin", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("rahasia")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia", hash)
	assert.NoError(t, CheckPasswordHash(hash, "rahasia"))
	assert.Error(t, CheckPasswordHash(hash, "bukan"))
}
