package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config carries the runtime settings of the attestation service.
type Config struct {
	// FreshnessWindow bounds how old an activity may be and still verify.
	FreshnessWindow time.Duration
}

// Load reads configuration from the environment, falling back to defaults.
func Load() Config {
	days, err := strconv.Atoi(GetenvDefault("FRESHNESS_WINDOW_DAYS", "30"))
	if err != nil || days <= 0 {
		log.Fatalf("invalid FRESHNESS_WINDOW_DAYS: %v", os.Getenv("FRESHNESS_WINDOW_DAYS"))
	}

	return Config{
		FreshnessWindow: time.Duration(days) * 24 * time.Hour,
	}
}

// MustEnv returns the value of an environment variable or logs a fatal error
// if it is not defined. Used for required config values.
func MustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

// GetenvDefault returns the environment variable value if set,
// or a provided default if not. Used for optional configuration values.
func GetenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
