// Package config provides configuration loading for the analyzer CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/botlens/botlens/pkg/models"
)

// TracingConfig controls OpenTelemetry span emission.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// Config is the structure of the botlens.yaml file. Every field is optional;
// command-line flags override whatever the file sets.
type Config struct {
	LogLevel          string        `yaml:"log_level"`
	DefaultPlatform   string        `yaml:"default_platform"`
	CustomRulesFile   string        `yaml:"custom_rules_file"`
	KnowledgeBaseFile string        `yaml:"knowledge_base_file"`
	Tracing           TracingConfig `yaml:"tracing"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Tracing: TracingConfig{
			ServiceName: "botlens",
		},
	}
}

// Load reads and validates a configuration file.
func Load(filePath string) (Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	if config.Tracing.ServiceName == "" {
		config.Tracing.ServiceName = "botlens"
	}

	if err := Validate(config); err != nil {
		return Config{}, err
	}

	return config, nil
}

// LoadOrDefault attempts to load the config file, falling back to defaults
// when the file doesn't exist.
func LoadOrDefault(filePath string) Config {
	config, err := Load(filePath)
	if err != nil {
		return Default()
	}

	return config
}

// Validate checks field values against their allowed sets.
func Validate(config Config) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be debug, info, warn or error", config.LogLevel)
	}

	if config.DefaultPlatform != "" {
		switch models.Platform(config.DefaultPlatform) {
		case models.PlatformUiPath, models.PlatformBluePrism, models.PlatformGeneric:
		default:
			return fmt.Errorf("invalid default_platform %q", config.DefaultPlatform)
		}
	}

	return nil
}
