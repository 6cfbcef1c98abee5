// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds all configuration values for the nightlife CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat selects the log handler: "json" (default) or "text" for
	// colored human-readable output.
	LogFormat string `validate:"oneof=json text"`

	// CatalogPath is a YAML venue catalog to use instead of the embedded
	// sample catalog. Empty means the sample.
	CatalogPath string

	// QRSize is the edge length in pixels of generated check-in QR codes.
	// Defaults to 256.
	QRSize int `validate:"min=64,max=2048"`

	// SpikeMinutes is how many minutes a simulated wait spike adds.
	// Defaults to 20.
	SpikeMinutes int `validate:"min=1"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming every variable that is malformed or out of range.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "json")),
		CatalogPath: os.Getenv("NIGHTLIFE_CATALOG"),
	}

	var invalid []string

	var err error
	if cfg.QRSize, err = getEnvInt("QR_SIZE", 256); err != nil {
		invalid = append(invalid, "QR_SIZE")
	}
	if cfg.SpikeMinutes, err = getEnvInt("SPIKE_MINUTES", 20); err != nil {
		invalid = append(invalid, "SPIKE_MINUTES")
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				invalid = appendUnique(invalid, envName(fe.Field()))
			}
		} else {
			return Config{}, fmt.Errorf("validate config: %w", err)
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt parses the integer environment variable named by key,
// returning fallback if it is not set or is empty.
func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

// envName maps a Config field to the environment variable that sets it.
func envName(field string) string {
	switch field {
	case "LogFormat":
		return "LOG_FORMAT"
	case "QRSize":
		return "QR_SIZE"
	case "SpikeMinutes":
		return "SPIKE_MINUTES"
	default:
		return field
	}
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
