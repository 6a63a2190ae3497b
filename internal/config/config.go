package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultLogLevel  = "warn"
	DefaultLogOutput = "stderr"
)

type Config struct {
	CatalogPath string
	LogLevel    string
	LogOutput   string
	Color       bool
}

// Load loads configuration from environment variables only.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile loads configuration from an optional .env file and environment variables.
func LoadWithFile(envFile string) (*Config, error) {
	// Attempt to load .env file if provided, but don't fail if it doesn't exist.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		CatalogPath: strings.TrimSpace(os.Getenv("HOTEL_CATALOG_PATH")),
		LogLevel:    strings.ToLower(getEnvOrDefault("HOTEL_LOG_LEVEL", DefaultLogLevel)),
		LogOutput:   strings.ToLower(getEnvOrDefault("HOTEL_LOG_OUTPUT", DefaultLogOutput)),
		Color:       parseBool(os.Getenv("HOTEL_COLOR")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that enumerated fields hold a known value.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("HOTEL_LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	switch c.LogOutput {
	case "stderr", "stdout", "none":
	default:
		return fmt.Errorf("HOTEL_LOG_OUTPUT must be one of stderr, stdout, none; got %q", c.LogOutput)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseBool converts a string to a boolean, defaulting to false.
func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}
