package inspect

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: debug\n  format: console\ninspect:\n  queue_size: 4\n  max_body_bytes: 0\n")

	config, err := LoadConfig(path, false)
	if err != nil {
		t.Fatal(err)
	}

	if config.Logging.Format != FormatConsole {
		t.Errorf("expected format %s, got %s", FormatConsole, config.Logging.Format)
	}
	if config.GetSlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", config.GetSlogLevel())
	}
	if config.Inspect.QueueSize != 4 {
		t.Errorf("expected queue size 4, got %d", config.Inspect.QueueSize)
	}
	if config.Inspect.MaxBodyBytes != 0 {
		t.Errorf("expected unlimited body, got %d", config.Inspect.MaxBodyBytes)
	}
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: warn\n")

	config, err := LoadConfig(path, false)
	if err != nil {
		t.Fatal(err)
	}

	defaults := DefaultConfig()
	if config.Logging.Format != defaults.Logging.Format {
		t.Errorf("expected default format, got %s", config.Logging.Format)
	}
	if config.Inspect != defaults.Inspect {
		t.Errorf("expected default inspect section, got %+v", config.Inspect)
	}
	if config.GetSlogLevel() != slog.LevelWarn {
		t.Errorf("expected warn level, got %v", config.GetSlogLevel())
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	if _, err := LoadConfig(missing, false); err == nil {
		t.Fatal("expected error for missing config file")
	}

	config, err := LoadConfig(missing, true)
	if err != nil {
		t.Fatal(err)
	}
	if *config != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", config)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "logging: [",
		"bad level":      "logging:\n  level: verbose\n",
		"bad format":     "logging:\n  format: json\n",
		"zero queue":     "inspect:\n  queue_size: 0\n",
		"negative limit": "inspect:\n  max_body_bytes: -1\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, content), false); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDefaultConfigFileIsValid(t *testing.T) {
	config, err := LoadConfig(filepath.Join("..", "..", DefaultConfigPath), false)
	if err != nil {
		t.Fatal(err)
	}
	if config.Logging.Format != FormatTint {
		t.Errorf("expected tint format, got %s", config.Logging.Format)
	}
}
