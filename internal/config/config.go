package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/pipeline-inputs/internal/inputs"
	"github.com/eugenenazirov/pipeline-inputs/internal/render"
)

const (
	defaultFormat   = render.FormatJSON
	defaultLogLevel = "info"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Format     string            `yaml:"format"`
	LogLevel   string            `yaml:"log_level"`
	EnvPrefix  string            `yaml:"env_prefix"`
	OutputFile string            `yaml:"output_file"`
	Inputs     map[string]string `yaml:"inputs"`
}

// envConfig represents the environment variables read by the tool itself.
type envConfig struct {
	ConfigFile string `env:"PIPELINE_INPUTS_CONFIG"`
	Format     string `env:"PIPELINE_INPUTS_FORMAT"`
	LogLevel   string `env:"PIPELINE_INPUTS_LOG_LEVEL"`
	EnvPrefix  string `env:"PIPELINE_INPUTS_ENV_PREFIX"`
	OutputFile string `env:"PIPELINE_INPUTS_OUTPUT_FILE"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	Format     *string
	LogLevel   *string
	EnvPrefix  *string
	OutputFile *string
	Inputs     map[string]string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	applyEnvConfig(&cfg, envCfg)

	configFile := envCfg.ConfigFile
	if overrides != nil && overrides.ConfigFile != "" {
		configFile = overrides.ConfigFile
	}

	// YAML overrides environment
	if configFile != "" {
		yamlCfg, err := loadFromFile(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Format:    defaultFormat,
		LogLevel:  defaultLogLevel,
		EnvPrefix: inputs.DefaultEnvPrefix,
		Inputs:    map[string]string{},
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg Config
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *Config) {
	if yamlCfg.Format != "" {
		cfg.Format = yamlCfg.Format
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.EnvPrefix != "" {
		cfg.EnvPrefix = yamlCfg.EnvPrefix
	}
	if yamlCfg.OutputFile != "" {
		cfg.OutputFile = yamlCfg.OutputFile
	}
	for key, value := range yamlCfg.Inputs {
		cfg.Inputs[key] = value
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config, envCfg envConfig) {
	if v := strings.TrimSpace(envCfg.Format); v != "" {
		cfg.Format = v
	}
	if v := strings.TrimSpace(envCfg.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(envCfg.EnvPrefix); v != "" {
		cfg.EnvPrefix = v
	}
	if v := strings.TrimSpace(envCfg.OutputFile); v != "" {
		cfg.OutputFile = v
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Format != nil && *overrides.Format != "" {
		cfg.Format = *overrides.Format
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
	if overrides.EnvPrefix != nil && *overrides.EnvPrefix != "" {
		cfg.EnvPrefix = *overrides.EnvPrefix
	}
	if overrides.OutputFile != nil && *overrides.OutputFile != "" {
		cfg.OutputFile = *overrides.OutputFile
	}
	for key, value := range overrides.Inputs {
		cfg.Inputs[key] = value
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if !render.Supported(cfg.Format) {
		return fmt.Errorf("unsupported output format %q", cfg.Format)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}
