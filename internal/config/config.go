package config

import (
	"errors"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                 string
	Port                string
	StorageBackend      string // "memory" or "database"
	DatabaseURL         string
	JWTSecret           string
	BackupDir           string
	BackupSchedule      string
	BackupRetentionDays int
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:                 getEnv("APP_ENV", "development"),
			Port:                getEnv("PORT", "3000"),
			StorageBackend:      getEnv("STORAGE_BACKEND", "memory"),
			DatabaseURL:         getEnv("DATABASE_URL", "spotless.db"),
			JWTSecret:           getEnv("JWT_SECRET", "spotless-demo-secret"),
			BackupDir:           getEnv("BACKUP_DIR", "backups"),
			BackupSchedule:      getEnv("BACKUP_SCHEDULE", "0 3 * * *"),
			BackupRetentionDays: getEnvInt("BACKUP_RETENTION_DAYS", 30),
		}
		if err := cfg.Validate(); err != nil {
			panic("invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.StorageBackend != "memory" && c.StorageBackend != "database" {
		return errors.New("STORAGE_BACKEND must be one of: memory, database")
	}
	if c.StorageBackend == "database" && c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required when STORAGE_BACKEND=database")
	}
	if c.BackupRetentionDays <= 0 {
		return errors.New("BACKUP_RETENTION_DAYS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
