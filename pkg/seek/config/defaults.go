// Package config provides configuration management for seek.
package config

// Default configuration values for seek.
const (
	// DefaultPath is the root walked when no path is given on the command line.
	DefaultPath = "."

	// DefaultOutput is the default output format.
	DefaultOutput = "paths"

	// DefaultColor is the default color mode.
	DefaultColor = "auto"

	// DefaultLogLevel is the default log file level.
	DefaultLogLevel = "info"

	// EnvPrefix prefixes environment overrides (SEEK_OUTPUT, SEEK_LOGGING_LEVEL).
	EnvPrefix = "SEEK"

	// FileName is the config file name inside ConfigDir.
	FileName = "config.yaml"
)

// DefaultComponents holds the default per-component log levels.
var DefaultComponents = map[string]string{
	"finder": "info",
	"cli":    "info",
}
