package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".empconfig.yaml"

	// envPrefix prefixes environment overrides, e.g. EMP_DATA_FILE.
	envPrefix = "EMP"

	// Default configuration values
	DefaultSkillSeparator = ","
	DefaultColor          = ColorAuto
	DefaultLogLevel       = "warn"
)

// Color modes for the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents user configuration from .empconfig.yaml.
// This file is user-managed and never written by emp.
type Config struct {
	// DataFile is the roster file. Its extension picks the backend.
	DataFile string `yaml:"data_file" mapstructure:"data_file"`

	// SkillSeparator splits skill lists typed on the command line.
	SkillSeparator string `yaml:"skill_separator" mapstructure:"skill_separator"`

	// Color is one of auto, always, never.
	Color string `yaml:"color" mapstructure:"color"`

	// LogLevel is a zerolog level name for diagnostics on stderr.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile:       DefaultDataFile,
		SkillSeparator: DefaultSkillSeparator,
		Color:          DefaultColor,
		LogLevel:       DefaultLogLevel,
	}
}

// LoadConfig loads .empconfig.yaml from dir if it exists, otherwise returns defaults.
// Partial config files are merged with defaults.
// EMP_* environment variables override both.
func LoadConfig(dir string) (*Config, error) {
	configPath := ConfigPath(dir)

	v := viper.New()
	v.SetConfigType("yaml")
	defaults := DefaultConfig()
	v.SetDefault("data_file", defaults.DataFile)
	v.SetDefault("skill_separator", defaults.SkillSeparator)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", userConfigFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("%s: data_file must not be empty", userConfigFile)
	}
	if c.SkillSeparator == "" {
		return fmt.Errorf("%s: skill_separator must not be empty", userConfigFile)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color %q must be one of auto, always, never", userConfigFile, c.Color)
	}
	return nil
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}
