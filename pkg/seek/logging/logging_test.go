package logging_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jamesainslie/seek/pkg/seek/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests share the package's global state, so none of them run in parallel.

func TestInit(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     logging.Config
		wantErr bool
	}{
		{
			name: "defaults without file",
			cfg:  logging.Config{},
		},
		{
			name: "file in nested directory",
			cfg: logging.Config{
				Level: "debug",
				Path:  filepath.Join(dir, "nested", "seek.log"),
			},
		},
		{
			name: "component overrides",
			cfg: logging.Config{
				Level:      "info",
				Components: map[string]string{"finder": "debug"},
			},
		},
		{
			name:    "invalid level",
			cfg:     logging.Config{Level: "loud"},
			wantErr: true,
		},
		{
			name:    "invalid component level",
			cfg:     logging.Config{Components: map[string]string{"finder": "loud"}},
			wantErr: true,
		},
		{
			name:    "invalid console level",
			cfg:     logging.Config{ConsoleLevel: "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logging.Init(tt.cfg)
			if tt.wantErr {
				assert.True(t, errors.Is(err, logging.ErrInvalidLevel), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			require.NoError(t, logging.Close())
		})
	}
}

func TestSilentAfterClose(t *testing.T) {
	var console bytes.Buffer
	require.NoError(t, logging.Init(logging.Config{ConsoleLevel: "debug", Console: &console}))
	require.NoError(t, logging.Close())

	logging.Get("finder").Error("nobody hears this")

	assert.Empty(t, console.String())
}

func TestLoggerCreatedBeforeInitWritesAfterInit(t *testing.T) {
	logger := logging.Get("finder")

	var console bytes.Buffer
	require.NoError(t, logging.Init(logging.Config{ConsoleLevel: "debug", Console: &console}))
	t.Cleanup(func() { _ = logging.Close() })

	logger.Debug("walking root", "path", "/tmp")

	out := console.String()
	assert.Contains(t, out, "walking root")
	assert.Contains(t, out, "finder")
	assert.Contains(t, out, "/tmp")
}

func TestConsoleLevelFilters(t *testing.T) {
	var console bytes.Buffer
	require.NoError(t, logging.Init(logging.Config{ConsoleLevel: "warn", Console: &console}))
	t.Cleanup(func() { _ = logging.Close() })

	logger := logging.Get("cli")
	logger.Debug("debug line")
	logger.Info("info line")
	logger.Warn("warn line")

	out := console.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
}

func TestFileLoggingWithComponentOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seek.log")
	require.NoError(t, logging.Init(logging.Config{
		Level:      "warn",
		Path:       path,
		Components: map[string]string{"finder": "debug"},
	}))

	logging.Get("finder").Debug("finder debug")
	logging.Get("cli").Debug("cli debug")
	logging.Get("cli").Error("cli error")
	require.NoError(t, logging.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "finder debug")
	assert.NotContains(t, content, "cli debug")
	assert.Contains(t, content, "cli error")
}

func TestWithAddsFields(t *testing.T) {
	var console bytes.Buffer
	require.NoError(t, logging.Init(logging.Config{ConsoleLevel: "info", Console: &console}))
	t.Cleanup(func() { _ = logging.Close() })

	logging.Get("finder").With("root", "src").Info("done", "matched", 3)

	out := console.String()
	assert.Contains(t, out, "root=src")
	assert.Contains(t, out, "matched=3")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    logging.Level
		wantErr bool
	}{
		{"debug", logging.LevelDebug, false},
		{"INFO", logging.LevelInfo, false},
		{"warning", logging.LevelWarn, false},
		{"error", logging.LevelError, false},
		{"verbose", logging.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, strings.ToLower(got.String()), got.String())
		})
	}
}

func TestDefaultLogPath(t *testing.T) {
	path := logging.DefaultLogPath()
	assert.Equal(t, "seek.log", filepath.Base(path))
	assert.Equal(t, "seek", filepath.Base(filepath.Dir(path)))
}
