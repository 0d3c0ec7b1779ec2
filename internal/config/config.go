// Package config reads the CLI's environment configuration.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the formwidget CLI. Flags
// override every value.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
}

// AppConfig controls what the CLI renders and how it prints results.
type AppConfig struct {
	// PageConfig is a YAML page configuration; empty selects the embedded one.
	PageConfig string
	// OpenAPI is an OpenAPI document whose Schema replaces the first form.
	OpenAPI string
	Schema  string
	// Locale restricts prompt and check to the mount with that locale.
	Locale       string
	OutputFormat string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level   string
	Verbose bool
}

// Load reads configuration from environment variables, applying defaults
// where possible. A .env file in the working directory is loaded first when
// present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			PageConfig:   getEnv("FORMWIDGET_CONFIG", ""),
			OpenAPI:      getEnv("FORMWIDGET_OPENAPI", ""),
			Schema:       getEnv("FORMWIDGET_SCHEMA", ""),
			Locale:       getEnv("FORMWIDGET_LOCALE", ""),
			OutputFormat: getEnv("FORMWIDGET_OUTPUT_FORMAT", "json"),
		},
		Logger: LoggerConfig{
			Level:   getEnv("FORMWIDGET_LOG_LEVEL", "warn"),
			Verbose: getEnvAsBool("FORMWIDGET_VERBOSE", false),
		},
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
