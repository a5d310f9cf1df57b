package config

import (
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/abagency/backend/internal/mailer"
	"github.com/abagency/backend/internal/migrations"
)

type Config struct {
	DatabaseURL    string
	SQLitePath     string
	SecretKey      string
	Port           string
	AssetDir       string
	UploadDir      string
	InquiryLogPath string
	SMTP           mailer.SMTPConfig
}

func Load() *Config {
	return &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     getEnv("SQLITE_PATH", "app.db"),
		SecretKey:      getEnv("SECRET_KEY", "change-me"),
		Port:           getEnv("PORT", "8080"),
		AssetDir:       getEnv("ASSET_DIR", "assets"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		InquiryLogPath: getEnv("INQUIRY_LOG_PATH", "inquiries.jsonl"),
		SMTP: mailer.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			UseTLS:   getEnvBool("SMTP_USE_TLS", true),
			From:     getEnv("SMTP_FROM", "no-reply@abagency.local"),
			To:       getEnv("SMTP_TO", "bookings@abagency.com"),
		},
	}
}

// Notifier picks the outbound mail implementation: no relay host configured
// means notifications are silently skipped.
func (c *Config) Notifier() mailer.Notifier {
	if c.SMTP.Host == "" {
		return mailer.Noop{}
	}
	return mailer.NewSMTPNotifier(c.SMTP)
}

// InitDatabase opens the relational store (postgres when DATABASE_URL is
// set, a local sqlite file otherwise) and reconciles the schema before any
// traffic is served. The process must not come up on a broken schema.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := migrations.Run(db); err != nil {
		return nil, err
	}
	return db, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes", "TRUE", "True":
		return true
	case "0", "false", "no", "FALSE", "False":
		return false
	}
	return defaultValue
}
