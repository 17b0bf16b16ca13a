package app

import (
	"os"
	"strconv"
	"time"

	"github.com/askfold/askfold/pkg/jwtx"
)

type Config struct {
	Issuer string // Required: issuer claim for tokens

	DatabaseFile string        // Optional: path to SQLite database file (default: ./board.db)
	PepperFile   string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	AssetsDir    string        // Optional: directory of static web client files (default: none, API only)
	TokenTTL     time.Duration // Optional: access token lifetime (default: 30m)

	AdminUsername string // Optional: username to provision as admin at startup
	AdminPassword string // Optional: password for the provisioned admin account

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              os.Getenv("BOARD_ISSUER"),
		DatabaseFile:        getEnvOrDefault("BOARD_DATABASE_FILE", "board.db"),
		PepperFile:          getEnvOrDefault("BOARD_PEPPER_FILE", "pepper"),
		AssetsDir:           os.Getenv("BOARD_ASSETS_DIR"),
		TokenTTL:            getEnvDurationOrDefault("BOARD_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		AdminUsername:       os.Getenv("BOARD_ADMIN_USERNAME"),
		AdminPassword:       os.Getenv("BOARD_ADMIN_PASSWORD"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "askfold-board"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
