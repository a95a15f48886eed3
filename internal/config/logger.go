package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is json or console.
	Format string
	// Output is stdout, stderr, or a file path.
	Output string
	// Service is attached to every entry as the "service" field.
	Service string
}

// LoadLoggerConfigFromEnv loads logger configuration from environment variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:   strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		Format:  strings.ToLower(GetEnv("LOG_FORMAT", "json")),
		Output:  GetEnv("LOG_OUTPUT", "stdout"),
		Service: GetEnv("LOG_SERVICE", "travel_together"),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	if !slices.Contains(logLevels, c.Level) {
		return fmt.Errorf("invalid log level: %s (must be: %s)", c.Level, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, c.Format) {
		return fmt.Errorf("invalid log format: %s (must be: %s)", c.Format, strings.Join(logFormats, ", "))
	}
	if c.Output == "" {
		return fmt.Errorf("log output must not be empty")
	}
	return nil
}

// IsProduction reports whether entries should use the production encoder.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}
