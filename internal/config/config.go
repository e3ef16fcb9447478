// Package config loads process configuration from the environment and an
// optional .env file
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMySQL    = "mysql"
)

// Config holds process configuration
type Config struct {
	Port           int
	StorageBackend string
	RedisAddr      string
	DatabasePath   string
	DatabaseURL    string
	ManualDefense  bool
	FinalBossID    string
	SRDImport      bool
	SRDBaseURL     string
	LogLevel       string
	LogFormat      string
}

// Load reads an optional .env file then the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	return &Config{
		Port:           getEnvInt("PORT", 50051),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageMemory)),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		DatabasePath:   getEnv("DATABASE_PATH", "./legends.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		ManualDefense:  getEnvBool("MANUAL_DEFENSE", false),
		FinalBossID:    getEnv("FINAL_BOSS_ID", "arim"),
		SRDImport:      getEnvBool("SRD_IMPORT", false),
		SRDBaseURL:     getEnv("SRD_BASE_URL", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}
}

// Validate checks backend specific requirements
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("port", c.Port, 1, 65535, vb)
	errors.ValidateEnum("storage_backend", c.StorageBackend,
		[]string{StorageMemory, StorageRedis, StorageSQLite, StoragePostgres, StorageMySQL}, vb)
	errors.ValidateRequired("final_boss_id", c.FinalBossID, vb)
	errors.ValidateEnum("log_format", c.LogFormat, []string{"text", "json"}, vb)

	switch c.StorageBackend {
	case StorageRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	case StorageSQLite:
		errors.ValidateRequired("database_path", c.DatabasePath, vb)
	case StoragePostgres, StorageMySQL:
		errors.ValidateRequired("database_url", c.DatabaseURL, vb)
	}

	return vb.Build()
}

// SlogLevel maps LogLevel onto slog levels, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger from LogLevel and LogFormat
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Ignoring non-numeric env value", "key", key, "value", value)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("Ignoring non-boolean env value", "key", key, "value", value)
		return defaultValue
	}
	return b
}
