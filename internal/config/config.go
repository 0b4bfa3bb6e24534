package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/lsf/internal/logger"
)

// FileName is the configuration file looked up inside the lsf home.
const FileName = "config.yaml"

// Config holds the settings lsf reads from its optional YAML file.
type Config struct {
	// Width overrides the screen width; 0 means query the terminal.
	Width    int    `yaml:"width"`
	LogLevel string `yaml:"log_level"`

	// LSColors and PathExt stand in for the environment variables of the
	// same name when those are unset.
	LSColors string `yaml:"ls_colors"`
	PathExt  string `yaml:"pathext"`

	// Suffixes maps an extension (no dot) to the interpreter that runs it.
	Suffixes map[string]string `yaml:"suffixes"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Width:    0,
		LogLevel: logger.DefaultLevel,
		Suffixes: map[string]string{},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns defaults and an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fileCfg.Width != 0 {
		cfg.Width = fileCfg.Width
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	cfg.LSColors = fileCfg.LSColors
	cfg.PathExt = fileCfg.PathExt
	for ext, cmd := range fileCfg.Suffixes {
		cfg.Suffixes[ext] = cmd
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(width *int, logLevel *string) {
	if width != nil {
		c.Width = *width
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", c.Width)
	}

	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	for ext := range c.Suffixes {
		if ext == "" {
			return fmt.Errorf("suffixes: empty extension")
		}
		if strings.ContainsAny(ext, `./\`) {
			return fmt.Errorf("suffixes: extension %q must not contain a dot or separator", ext)
		}
	}

	return nil
}
