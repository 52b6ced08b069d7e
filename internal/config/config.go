package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DataDir           string
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	// Upload caps in bytes.
	MaxInstallerSize int64
	MaxLogoSize      int64
	MaxDocSize       int64
}

var Current Config

func Load() error {
	_ = godotenv.Load()

	Current = Config{
		Port:              getenv("PORT", "5000"),
		DataDir:           getenv("DATA_DIR", "."),
		JWTSecret:         getenv("JWT_SECRET", "dev-secret-change"),
		AdminEmail:        getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),
		MaxInstallerSize:  getenvMB("MAX_INSTALLER_MB", 500),
		MaxLogoSize:       getenvMB("MAX_LOGO_MB", 50),
		MaxDocSize:        getenvMB("MAX_DOC_MB", 50),
	}

	if Current.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvMB(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n << 20
		}
	}
	return def << 20
}
