package inspect

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read by the CLI when no -config flag is given
const DefaultConfigPath = "configs/default.yaml"

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Inspect InspectConfig `yaml:"inspect"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type InspectConfig struct {
	QueueSize    int `yaml:"queue_size"`
	MaxBodyBytes int `yaml:"max_body_bytes"`
}

// Log formats
const (
	FormatTint    = "tint"
	FormatConsole = "console"
	FormatDev     = "dev"
)

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: FormatTint},
		Inspect: InspectConfig{QueueSize: 16, MaxBodyBytes: 4096},
	}
}

// LoadConfig loads configuration from a yaml file on top of DefaultConfig.
// If allowMissing is set, a missing file yields the defaults.
func LoadConfig(path string, allowMissing bool) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// validate checks if the configuration is valid
func (c *Config) validate() error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %v)", c.Logging.Level, validLevels)
	}

	validFormats := []string{FormatTint, FormatConsole, FormatDev}
	if !slices.Contains(validFormats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("invalid log format: %s (must be one of: %v)", c.Logging.Format, validFormats)
	}

	if c.Inspect.QueueSize <= 0 {
		return fmt.Errorf("invalid queue_size: %d (must be positive)", c.Inspect.QueueSize)
	}

	if c.Inspect.MaxBodyBytes < 0 {
		return fmt.Errorf("invalid max_body_bytes: %d (must be non-negative)", c.Inspect.MaxBodyBytes)
	}

	return nil
}

// GetSlogLevel returns slog.Level from config
func (c *Config) GetSlogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
