package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration. Values come from the
// environment under the GRAVLAB_ prefix; CLI flags override them.
type Config struct {
	Output  OutputConfig
	Logging LogConfig
}

// OutputConfig controls where run artifacts land.
type OutputConfig struct {
	Dir       string `envconfig:"OUT_DIR" default:"."`
	FigureDPI int    `envconfig:"FIGURE_DPI" default:"150"`
}

// LogConfig holds logging configuration. Development selects console
// encoding on stderr; set GRAVLAB_LOG_DEV=false for JSON diagnostics in
// scripted runs.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("gravlab", &cfg); err != nil {
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
		Output: OutputConfig{
			Dir:       ".",
			FigureDPI: 150,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: true,
		},
	}
}
