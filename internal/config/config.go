// Package config resolves carbonfocus configuration from defaults, an
// optional YAML file and environment variables, in that precedence order.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/carbonfocus/carbonfocus/internal/logging"
)

// Environment variable overrides. These win over the config file so CI
// and one-off runs can adjust behavior without editing it.
const (
	EnvLogLevel    = "CARBONFOCUS_LOG_LEVEL"
	EnvLogFormat   = "CARBONFOCUS_LOG_FORMAT"
	EnvFactorsPath = "CARBONFOCUS_FACTORS_PATH"
	EnvOutput      = "CARBONFOCUS_OUTPUT"
)

// Config is the resolved application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Factors FactorsConfig `yaml:"factors"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig mirrors logging.Config in file form.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// FactorsConfig points at the emission factor dataset.
type FactorsConfig struct {
	// Path overrides the embedded factor table. Empty uses the
	// embedded default.
	Path string `yaml:"path"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	// Format is the default output format: table or json.
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Output:  OutputConfig{Format: "table"},
	}
}

// DefaultPath returns the user config file location,
// $HOME/.carbonfocus/config.yaml. Empty when the home directory cannot be
// resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".carbonfocus", "config.yaml")
}

// Load resolves configuration: defaults, then the YAML file at path (or
// DefaultPath when empty; a missing file is not an error), then
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing config file means defaults.
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.Output.Format != "table" && cfg.Output.Format != "json" {
		return nil, fmt.Errorf("config: output format must be table or json, got %q", cfg.Output.Format)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvFactorsPath); v != "" {
		cfg.Factors.Path = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output.Format = v
	}
}

// ToLoggingConfig converts the file form into the logger constructor's.
func (c LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{Level: c.Level, Format: c.Format, File: c.File}
}
