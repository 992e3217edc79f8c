package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL         string
	Port                string
	IsProduction        bool
	UploadDir           string
	MaxAttachmentSizeMB int64
	RateLimit           string
}

// MaxAttachmentBytes converts the configured megabyte limit to bytes.
// Zero disables the limit.
func (c *Config) MaxAttachmentSizeBytes() int64 {
	return c.MaxAttachmentSizeMB * 1024 * 1024
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("MAX_ATTACHMENT_SIZE_MB", 10)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.UploadDir = viper.GetString("UPLOAD_DIR")
	cfg.MaxAttachmentSizeMB = viper.GetInt64("MAX_ATTACHMENT_SIZE_MB")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
