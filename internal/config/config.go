package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// ErrMissingDatabaseURL is returned by Validate when DATABASE_URL is unset.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Database
	DatabaseURL  string
	StoreTimeout time.Duration // per-request deadline for the insert

	// CORS
	CORSOrigins string // Comma-separated allowed origins, "*" for any

	// Rate limiting
	RateLimitMax int    // requests per minute per IP, 0 disables
	RedisURL     string // optional shared limiter storage

	// Background jobs
	StoreCheckInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":8081"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		StoreTimeout:       getDuration("STORE_TIMEOUT", 5*time.Second),
		CORSOrigins:        getEnv("CORS_ORIGINS", "*"),
		RateLimitMax:       getInt("RATE_LIMIT_MAX", 100),
		RedisURL:           getEnv("REDIS_URL", ""),
		StoreCheckInterval: getDuration("STORE_CHECK_INTERVAL", 30*time.Second),
	}
}

// Validate reports configuration that makes startup impossible.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n >= 0 {
		return n
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// RateLimitEnabled returns true if requests should be rate limited.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitMax > 0
}
