package config

import (
	"os"

	"github.com/eventhub/eventhub-backend/pkg/storage"
)

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// StorageDriver selects where event images go: "local" (default)
	// or "r2".
	StorageDriver string
	UploadDir     string
	R2            storage.R2Config

	Email EmailConfig
}

func Load() *Config {
	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		StorageDriver: getenv("STORAGE_DRIVER", "local"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
	}

	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
