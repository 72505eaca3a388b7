package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode selects when ANSI styling is used.
type ColorMode int

const (
	// ColorAuto enables color when the destination is a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = iota
	// ColorAlways forces color.
	ColorAlways
	// ColorNever disables color.
	ColorNever
)

// ErrInvalidColorMode indicates that the color mode string could not be parsed.
var ErrInvalidColorMode = errors.New("invalid color mode")

// String returns the string representation of the color mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode parses "auto", "always" or "never" (case-insensitive).
// The empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("%w: %q (expected auto, always or never)", ErrInvalidColorMode, s)
	}
}

// Enabled resolves the mode for a destination file.
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}
