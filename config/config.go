package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	Env          string
	DBPath       string
	LogLevel     string
	CORSOrigins  string
	RateLimitMax int

	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

var AppConfig *Config

func Load() *Config {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:          GetEnv("PORT", "3000"),
		Env:           GetEnv("ENV", "development"),
		DBPath:        GetEnv("DB_PATH", "./esantiye.db"),
		LogLevel:      GetEnv("LOG_LEVEL", "info"),
		CORSOrigins:   GetEnv("CORS_ORIGINS", "http://localhost:3001"),
		RateLimitMax:  GetEnvInt("RATE_LIMIT_MAX", 200),
		AdminUsername: GetEnv("ADMIN_USERNAME", ""),
		AdminEmail:    GetEnv("ADMIN_EMAIL", ""),
		AdminPassword: GetEnv("ADMIN_PASSWORD", ""),
	}

	return AppConfig
}

// HasAdmin reports whether a bootstrap admin account is configured
func (c *Config) HasAdmin() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
