package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DefaultConfigFile = "script/.deploy-config.json"
	DefaultEnvFile    = ".env"
	DefaultForgeBin   = "forge"
)

// Config holds the runtime settings for dropwizard
type Config struct {
	// Persisted deployment parameters
	ConfigFile string
	EnvFile    string

	// Forge invocation
	ForgeBin     string
	WorkDir      string
	ForgeTimeout time.Duration

	// Logging
	Verbose bool
}

// Load creates a new config from environment variables
func Load() *Config {
	return &Config{
		ConfigFile:   getEnv("DEPLOY_CONFIG_FILE", DefaultConfigFile),
		EnvFile:      getEnv("DEPLOY_ENV_FILE", DefaultEnvFile),
		ForgeBin:     getEnv("FORGE_BIN", DefaultForgeBin),
		WorkDir:      getEnv("FORGE_WORKDIR", ""),
		ForgeTimeout: getDuration("FORGE_TIMEOUT", 0),
		Verbose:      getBool("VERBOSE", false),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
