// Package logging provides component loggers for seek, built on
// charmbracelet/log. Log lines are separate from diagnostics: a plain run
// logs nothing, --verbose sends debug output to stderr, and a log file can be
// configured for post-mortem inspection.
//
// Basic usage:
//
//	if err := logging.Init(logging.Config{Level: "info", ConsoleLevel: "debug"}); err != nil {
//	    return err
//	}
//	defer logging.Close()
//
//	logger := logging.Get("finder")
//	logger.Debug("walking root", "path", root)
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Level represents a logging level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// toCharmLevel converts our Level to charmbracelet/log level.
func (l Level) toCharmLevel() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// Config configures the logging system.
type Config struct {
	// Level is the default log level (debug, info, warn, error) for the log file.
	Level string

	// Path is the log file path. Empty disables file logging.
	Path string

	// Components maps component names to their log levels.
	Components map[string]string

	// ConsoleLevel enables console output at the specified level.
	// Empty string disables console output (default).
	ConsoleLevel string

	// Console is the console destination. Nil means os.Stderr.
	Console io.Writer
}

// Logger is a component logger. It is cheap to copy around and always writes
// through the sinks installed by the most recent Init, so package-level
// loggers created before Init start logging once Init runs.
type Logger struct {
	component string
	fields    []interface{}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log(LevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log(LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log(LevelError, msg, args...)
}

// With returns a new logger with additional key/value context.
func (l *Logger) With(args ...interface{}) *Logger {
	fields := make([]interface{}, 0, len(l.fields)+len(args))
	fields = append(fields, l.fields...)
	fields = append(fields, args...)
	return &Logger{component: l.component, fields: fields}
}

func (l *Logger) log(level Level, msg string, args ...interface{}) {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if !globalState.initialized {
		return
	}

	if len(l.fields) > 0 {
		args = append(append([]interface{}{}, l.fields...), args...)
	}

	sinks := globalState.sinks(l.component)
	for _, s := range sinks {
		logTo(s, level, msg, args...)
	}
}

// logTo writes a log message to the given logger at the specified level.
func logTo(logger *log.Logger, level Level, msg string, args ...interface{}) {
	switch level {
	case LevelDebug:
		logger.Debug(msg, args...)
	case LevelInfo:
		logger.Info(msg, args...)
	case LevelWarn:
		logger.Warn(msg, args...)
	case LevelError:
		logger.Error(msg, args...)
	}
}

// state holds the global logging state.
type state struct {
	mu          sync.Mutex
	initialized bool
	file        *os.File
	level       Level
	components  map[string]Level

	consoleEnabled bool
	consoleLevel   Level
	console        io.Writer

	// Per-component charm loggers, rebuilt on Init.
	fileLoggers    map[string]*log.Logger
	consoleLoggers map[string]*log.Logger
}

var globalState = &state{
	components:     make(map[string]Level),
	fileLoggers:    make(map[string]*log.Logger),
	consoleLoggers: make(map[string]*log.Logger),
}

// sinks returns the charm loggers for a component, creating them on first use.
// Must be called with mu held.
func (s *state) sinks(component string) []*log.Logger {
	var out []*log.Logger

	if s.file != nil {
		fl, ok := s.fileLoggers[component]
		if !ok {
			fl = log.NewWithOptions(s.file, log.Options{
				Level:           s.levelFor(component).toCharmLevel(),
				ReportTimestamp: true,
				TimeFormat:      time.RFC3339,
				Prefix:          component,
			})
			s.fileLoggers[component] = fl
		}
		out = append(out, fl)
	}

	if s.consoleEnabled {
		cl, ok := s.consoleLoggers[component]
		if !ok {
			cl = log.NewWithOptions(s.console, log.Options{
				Level:           s.consoleLevel.toCharmLevel(),
				ReportTimestamp: true,
				TimeFormat:      "15:04:05",
				Prefix:          component,
			})
			s.consoleLoggers[component] = cl
		}
		out = append(out, cl)
	}

	return out
}

func (s *state) levelFor(component string) Level {
	if lvl, ok := s.components[component]; ok {
		return lvl
	}
	return s.level
}

// Init initializes the logging system with the given configuration.
// Calling Init again replaces the previous configuration.
// Before Init is called, all loggers are silent.
func Init(cfg Config) error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if err := globalState.closeLocked(); err != nil {
		return err
	}

	levelStr := cfg.Level
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	components := make(map[string]Level, len(cfg.Components))
	for comp, lvl := range cfg.Components {
		parsedLevel, err := ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("parsing level for component %s: %w", comp, err)
		}
		components[comp] = parsedLevel
	}

	var consoleLevel Level
	consoleEnabled := cfg.ConsoleLevel != ""
	if consoleEnabled {
		consoleLevel, err = ParseLevel(cfg.ConsoleLevel)
		if err != nil {
			return fmt.Errorf("parsing console level: %w", err)
		}
	}

	var file *os.File
	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		file, err = os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
	}

	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	globalState.level = level
	globalState.components = components
	globalState.consoleEnabled = consoleEnabled
	globalState.consoleLevel = consoleLevel
	globalState.console = console
	globalState.file = file
	globalState.initialized = true

	return nil
}

// Get returns a logger for the given component. Per-component level
// overrides from Config.Components apply to the log file.
func Get(component string) *Logger {
	return &Logger{component: component}
}

// Close flushes and closes the log file. It is safe to call more than once.
func Close() error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()
	return globalState.closeLocked()
}

// closeLocked resets the state. Must be called with mu held.
func (s *state) closeLocked() error {
	var err error
	if s.file != nil {
		if cerr := s.file.Close(); cerr != nil {
			err = fmt.Errorf("closing log file: %w", cerr)
		}
		s.file = nil
	}
	s.initialized = false
	s.consoleEnabled = false
	s.components = make(map[string]Level)
	s.fileLoggers = make(map[string]*log.Logger)
	s.consoleLoggers = make(map[string]*log.Logger)
	return err
}

// DefaultLogPath returns $XDG_STATE_HOME/seek/seek.log, the path suggested
// by `seek config init` for file logging.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "seek", "seek.log")
}
