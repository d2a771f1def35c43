package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultStudentID is the student used when a request does not name one.
const DefaultStudentID = "EST2024001"

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string
	StaticDir  string

	JWTSecret  string
	JWTExpiry  time.Duration
	BcryptCost int

	// FixtureSeed seeds the synthetic attendance generator. Zero picks a
	// time-derived seed so each boot produces a different history.
	FixtureSeed uint64

	// LoginRateLimit is the number of login attempts allowed per IP per minute.
	LoginRateLimit int

	// RedisURL and DatabaseURL are optional. Without Redis the profile-update
	// audit trail only goes to the log; without Postgres the queue is not drained.
	RedisURL    string
	DatabaseURL string
	MaxDBConns  int32

	// AllowedOrigins controls HTTP CORS and WebSocket origin validation.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		StaticDir:      getEnv("STATIC_DIR", "./static"),
		JWTSecret:      getEnv("JWT_SECRET", "asistnet-secret-key-2024"),
		JWTExpiry:      time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		BcryptCost:     getEnvInt("BCRYPT_COST", 6),
		FixtureSeed:    getEnvUint("FIXTURE_SEED", 0),
		LoginRateLimit: getEnvInt("LOGIN_RATE_LIMIT", 30),
		RedisURL:       getEnv("REDIS_URL", ""),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MaxDBConns:     getEnvInt32("MAX_DB_CONNS", 4, 1, 64),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvInt32 parses a 32-bit integer and clamps it to [lo, hi].
func getEnvInt32(key string, fallback, lo, hi int32) int32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return fallback
	}
	return min(max(int32(n), lo), hi)
}

func getEnvUint(key string, fallback uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
