package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/seek/pkg/seek/logging"
	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level      string            `mapstructure:"level" yaml:"level"`
	Path       string            `mapstructure:"path" yaml:"path"`
	Components map[string]string `mapstructure:"components" yaml:"components,omitempty"`
}

// Config represents the application configuration.
type Config struct {
	DefaultPath string        `mapstructure:"default_path" yaml:"default_path"`
	Exclude     []string      `mapstructure:"exclude" yaml:"exclude"`
	Output      string        `mapstructure:"output" yaml:"output"`
	Template    string        `mapstructure:"template" yaml:"template,omitempty"`
	Color       string        `mapstructure:"color" yaml:"color"`
	Strict      bool          `mapstructure:"strict" yaml:"strict"`
	Stats       bool          `mapstructure:"stats" yaml:"stats"`
	Logging     LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("default_path", DefaultPath)
	v.SetDefault("exclude", []string{})
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("template", "")
	v.SetDefault("color", DefaultColor)
	v.SetDefault("strict", false)
	v.SetDefault("stats", false)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.path", "") // Empty disables file logging
	v.SetDefault("logging.components", DefaultComponents)
}

// Load reads configuration into v and decodes it. When file is empty the
// config is searched for in:
//   - $XDG_CONFIG_HOME/seek/config.yaml
//   - $HOME/.config/seek/config.yaml
//
// and a missing file is not an error. An explicit file must exist.
//
// Environment variables are prefixed with SEEK_ (e.g., SEEK_OUTPUT). Flags
// bound to v with BindPFlag take precedence over both.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			v.AddConfigPath(filepath.Join(xdgConfigHome, "seek"))
		}
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", "seek"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	var err error
	if cfg.DefaultPath, err = ExpandPath(cfg.DefaultPath); err != nil {
		return nil, err
	}
	if cfg.Logging.Path, err = ExpandPath(cfg.Logging.Path); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "seek"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "seek"), nil
}

// ConfigPath returns the default config file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// WriteDefault writes a commented default config file and returns its path.
// An existing file is left untouched and created is false.
func WriteDefault() (path string, created bool, err error) {
	path, err = ConfigPath()
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("failed to check config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := fmt.Sprintf(`# seek configuration

# Root walked when no path is given
default_path: %s

# Glob patterns pruned from every walk (matched against names and paths)
exclude: []
#  - .git
#  - node_modules

# Output format: paths, null, jsonl, yaml, template
output: %s

# text/template used by the template format (default: "{{.Type.Token}} {{.Path}}")
# template: "{{.Path}}"

# Color: auto, always, never
color: %s

# Exit with status 1 when any entry could not be read
strict: false

# Print a summary line to stderr after each run
stats: false

# Logging configuration
logging:
  # Log level: debug, info, warn, error
  level: %s
  # Log file path (empty disables file logging; e.g. %s)
  path: ""
  # Per-component log levels
  components:
    finder: info
    cli: info
`, DefaultPath, DefaultOutput, DefaultColor, DefaultLogLevel, logging.DefaultLogPath())

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write default config: %w", err)
	}

	return path, true, nil
}

// ExpandPath expands ~ in a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}
