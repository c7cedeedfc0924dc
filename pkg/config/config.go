package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int
	DataFile string

	CORSAllowOrigins []string
}

func Load() Config {
	// Dev convenience; a missing .env is fine.
	_ = godotenv.Load()

	return Config{
		AppEnv:           getEnv("APP_ENV", "dev"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		HTTPPort:         getEnvInt("PORT", 4000),
		DataFile:         getEnv("DATA_FILE", "db.json"),
		CORSAllowOrigins: splitCSV(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
