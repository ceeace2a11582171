package booking

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings. Values are read once at startup and the
// struct is treated as immutable afterwards.
type Config struct {
	ListenAddr string
	DSN        string
	SigningKey string
	TokenTTL   time.Duration
}

const defaultTokenTTL = 24 * time.Hour

// LoadConfig reads an optional .env file, then the environment. The signing
// key has no default: refusing to start beats minting tokens with a
// well-known key.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr: envOr("BOOKING_LISTEN_ADDR", ":3000"),
		DSN:        envOr("BOOKING_DSN", "file:booking.db?cache=shared&_pragma=foreign_keys(1)"),
		SigningKey: os.Getenv("BOOKING_SIGNING_KEY"),
		TokenTTL:   defaultTokenTTL,
	}

	if cfg.SigningKey == "" {
		return Config{}, fmt.Errorf("BOOKING_SIGNING_KEY is required")
	}

	if raw := os.Getenv("BOOKING_TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse BOOKING_TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = ttl
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
