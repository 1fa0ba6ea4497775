// README: Config loader with env defaults for HTTP, catalog DB, and extraction settings.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN is optional; when empty the embedded catalog seed is used.
		DSN string
	}
	Extract struct {
		// GeminiKey is optional; when empty only rule-based extraction runs.
		GeminiKey string
		Timeout   time.Duration
	}
	Session struct {
		HistorySize int
	}
}

func Load() (Config, error) {
	// Load .env if present; env vars win.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("SKYQUOTE_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("SKYQUOTE_DB_DSN")
	cfg.Extract.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Extract.Timeout = time.Duration(envOrDefaultInt("SKYQUOTE_EXTRACT_TIMEOUT_MS", 3000)) * time.Millisecond
	cfg.Session.HistorySize = envOrDefaultInt("SKYQUOTE_HISTORY_SIZE", 3)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
