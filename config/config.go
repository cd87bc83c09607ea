package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full process configuration, read once at startup.
type Config struct {
	Port          string
	SessionSecret []byte
	SessionTTL    time.Duration

	RedisAddr string

	GoogleProjectID string
	GoogleLocation  string
	GeminiModel     string

	DirectoryArchiveDir string
}

// Load reads .env (if present) and the environment. A missing SESSION_SECRET
// gets a random one, which invalidates outstanding tokens on restart; that is
// acceptable because sessions are transient anyway.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                envDefault("PORT", "8080"),
		SessionTTL:          24 * time.Hour,
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		GoogleProjectID:     os.Getenv("GOOGLE_PROJECT_ID"),
		GoogleLocation:      envDefault("GOOGLE_LOCATION", "us-central1"),
		GeminiModel:         os.Getenv("GEMINI_MODEL"),
		DirectoryArchiveDir: os.Getenv("DIRECTORY_ARCHIVE_DIR"),
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, err
		}
		cfg.SessionTTL = d
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.SessionSecret = []byte(secret)
	} else {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		cfg.SessionSecret = []byte(hex.EncodeToString(buf))
	}

	return cfg, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
