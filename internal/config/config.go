package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port        string
	Env         string
	DBDriver    string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
}

const devSecret = "dev-secret-change-in-production"

func Load() Config {
	cfg := Config{
		Port:      getEnv("PORT", "3001"),
		Env:       getEnv("ENV", "development"),
		DBDriver:  getEnv("DB_DRIVER", "mysql"),
		JWTSecret: getEnv("JWT_SECRET", devSecret),
		JWTExpiry: 24 * time.Hour,
	}

	switch cfg.DBDriver {
	case "sqlite3":
		cfg.DatabaseDSN = getEnv("DATABASE_DSN", "accounting.db")
	default:
		cfg.DatabaseDSN = getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/accounting_platform?parseTime=true")
	}

	if cfg.Env == "production" && cfg.JWTSecret == devSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
