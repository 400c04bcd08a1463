package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port       string
	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string
	DBPort     string
	// DatabaseDSN, when set, overrides the DB_* parts entirely.
	DatabaseDSN string
	Env         string
}

// Load loads configuration from environment with development defaults.
// Precedence: explicit env var > .env file (if loaded by the caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("SERVER_PORT", "8080")
	cfg.DBUser = getEnv("DB_USER", "admin")
	cfg.DBPassword = getEnv("DB_PASSWORD", "mypassword")
	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBName = getEnv("DB_NAME", "commerce")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DatabaseDSN = os.Getenv("DATABASE_DSN")
	cfg.Env = getEnv("APP_ENV", "development")
	return cfg
}

// DSN returns the connection string: the DATABASE_DSN override verbatim, or a
// key=value DSN assembled from the DB_* parts.
func (c Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
