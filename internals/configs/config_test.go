package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadEnv_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGINS", "https://appgi.or.id,https://admin.appgi.or.id")
	t.Setenv("UPLOAD_MAX_DIMENSION", "1600")

	cfg, err := LoadEnv(zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "uploads-apgi", cfg.UploadDir)
	assert.Equal(t, 1600, cfg.UploadMaxDimension)
	assert.Equal(t, []string{"https://appgi.or.id", "https://admin.appgi.or.id"}, cfg.CORSOrigins)
}

func TestValidate(t *testing.T) {
	cfg := &Config{JWTSecret: "x", DBDriver: "postgres"}
	assert.NoError(t, cfg.Validate())

	cfg.JWTSecret = "  "
	assert.Error(t, cfg.Validate())

	cfg = &Config{JWTSecret: "x", DBDriver: "sqlserver"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{JWTSecret: "x", DBDriver: "mysql", UploadMaxDimension: -1}
	assert.Error(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	pg := &Config{DBDriver: "postgres", DBUser: "u", DBPassword: "p", DBHost: "db", DBName: "apgi_db", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/apgi_db?sslmode=disable&application_name=apgi", pg.DSN())

	my := &Config{DBDriver: "mysql", DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "3307", DBName: "apgi_db"}
	assert.Equal(t, "u:p@tcp(db:3307)/apgi_db?charset=utf8mb4&parseTime=True&loc=Local", my.DSN())
}
