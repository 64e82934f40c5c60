package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config dibangun sekali di main lalu di-inject ke semua komponen.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBDriver      string `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT"`
	DBUser        string `env:"DB_USER"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME" envDefault:"apgi_db"`
	DBSSLMode     string `env:"DB_SSLMODE" envDefault:"disable"`
	DBAutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	JWTSecret string `env:"JWT_SECRET"`

	UploadDir          string `env:"UPLOAD_DIR" envDefault:"uploads-apgi"`
	UploadMaxDimension int    `env:"UPLOAD_MAX_DIMENSION" envDefault:"0"`

	CORSOrigins         []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	RateLimitPerMinute  int      `env:"RATE_LIMIT_PER_MINUTE" envDefault:"100"`
	LoginLimitPerMinute int      `env:"LOGIN_RATE_LIMIT_PER_MINUTE" envDefault:"5"`
}

// LoadEnv membaca .env (kalau bukan di Railway) lalu parse ke Config.
func LoadEnv(log *zap.Logger) (*Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Info("tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Info(".env file berhasil dimuat")
		}
	} else {
		log.Info("running in Railway, menggunakan ENV dari sistem")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate dipanggil sebelum server jalan; seeder tidak butuh JWT_SECRET.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET belum diset")
	}
	switch c.DBDriver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("DB_DRIVER %q tidak didukung (postgres|mysql)", c.DBDriver)
	}
	if c.UploadMaxDimension < 0 {
		return errors.New("UPLOAD_MAX_DIMENSION tidak boleh negatif")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// DSN sesuai driver. Port default mengikuti driver.
func (c *Config) DSN() string {
	port := c.DBPort
	switch c.DBDriver {
	case "mysql":
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, port, c.DBName)
	default:
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=apgi",
			c.DBUser, c.DBPassword, c.DBHost, port, c.DBName, c.DBSSLMode)
	}
}
