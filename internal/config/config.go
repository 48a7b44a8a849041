package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string

	// Database
	DatabaseURL string

	// JWT issued by the identity provider
	JWTSecret string

	// Storage
	StoragePath         string
	ImportRetentionDays int

	// Background Workers
	WorkerCount       int
	ImportConcurrency int

	// Cache
	RedisURL string
	CacheTTL time.Duration

	// Ledger
	ListLimit int
	WeekStart time.Weekday

	// CORS
	AllowedOrigins []string

	// Reports
	WkhtmltopdfPath string

	// Sentry
	SentryDSN string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		StoragePath:         getEnv("STORAGE_PATH", "./storage"),
		ImportRetentionDays: getEnvAsInt("IMPORT_RETENTION_DAYS", 30),
		WorkerCount:         getEnvAsInt("WORKER_COUNT", 5),
		ImportConcurrency:   getEnvAsInt("IMPORT_CONCURRENCY", 4),
		RedisURL:            getEnv("REDIS_URL", ""),
		CacheTTL:            time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		ListLimit:           getEnvAsInt("LIST_LIMIT", 1000),
		AllowedOrigins:      getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		WkhtmltopdfPath:     getEnv("WKHTMLTOPDF_PATH", ""),
		SentryDSN:           getEnv("SENTRY_DSN", ""),
	}

	weekStart, err := ParseWeekStart(getEnv("WEEK_START", "sunday"))
	if err != nil {
		return nil, err
	}
	cfg.WeekStart = weekStart

	// Validate required configuration
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" && cfg.Environment == "production" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	// Set default JWT secret for development
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-in-production"
	}

	if cfg.ImportConcurrency < 1 {
		cfg.ImportConcurrency = 1
	}
	if cfg.ListLimit < 1 {
		cfg.ListLimit = 1000
	}

	return cfg, nil
}

// ParseWeekStart accepts the two week conventions the reports support
func ParseWeekStart(value string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "sunday", "domingo":
		return time.Sunday, nil
	case "monday", "segunda":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("WEEK_START must be sunday or monday, got %q", value)
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice reads an environment variable as comma-separated slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
