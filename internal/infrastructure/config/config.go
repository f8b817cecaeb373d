package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/GriffinCanCode/AgentOS/desktop/internal/shared/paths"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging LogConfig
	Paths   PathsConfig
	Metrics MetricsConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// PathsConfig holds filesystem layout configuration.
type PathsConfig struct {
	// Home overrides the OS-reported home directory when set.
	Home    string   `envconfig:"AGENTOS_HOME"`
	Root    string   `envconfig:"AGENTOS_ROOT" default:"~/.agentos"`
	DirPerm FileMode `envconfig:"AGENTOS_DIR_PERM" default:"0755"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled   bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"desktop"`
}

// FileMode is an os.FileMode read from an octal string such as "0750".
type FileMode os.FileMode

// Decode implements envconfig.Decoder.
func (m *FileMode) Decode(value string) error {
	mode, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		return fmt.Errorf("invalid file mode %q: %w", value, err)
	}
	if mode > 0o777 {
		return fmt.Errorf("invalid file mode %q: only permission bits are allowed", value)
	}
	*m = FileMode(mode)
	return nil
}

// Perm returns the mode as an os.FileMode.
func (m FileMode) Perm() os.FileMode {
	return os.FileMode(m)
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Paths: PathsConfig{
			Root:    paths.DefaultRoot,
			DirPerm: 0o755,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "desktop",
		},
	}
}
