package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultListenAddr = ":8080"
	defaultJWTTTL     = "24h"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	ListenAddr  string
}

// Load reads runtime configuration from the environment. DATABASE_URL and
// JWT_SECRET have no sane defaults and are required.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	cfg.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttlRaw := strings.TrimSpace(os.Getenv("JWT_TTL"))
	if ttlRaw == "" {
		ttlRaw = defaultJWTTTL
	}
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL %q: %w", ttlRaw, err)
	}
	cfg.JWTTTL = ttl

	cfg.ListenAddr = strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}

	return cfg, nil
}
