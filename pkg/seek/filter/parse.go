package filter

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/jamesainslie/seek/pkg/seek/types"
)

// Configuration errors. All of them are fatal to a run.
var (
	// ErrUnknownType indicates a type token other than d, f or l.
	ErrUnknownType = errors.New("unknown entry type")

	// ErrInvalidPattern indicates a name pattern that is not a valid regular expression.
	ErrInvalidPattern = errors.New("invalid name pattern")

	// ErrInvalidGlob indicates an exclude pattern that is not a valid glob.
	ErrInvalidGlob = errors.New("invalid exclude glob")
)

// ParseEntryType parses a single type token: "d", "f" or "l".
func ParseEntryType(s string) (types.EntryType, error) {
	switch s {
	case "d":
		return types.Directory, nil
	case "f":
		return types.File, nil
	case "l":
		return types.Symlink, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected d, f or l)", ErrUnknownType, s)
	}
}

// ParseTypes parses type tokens into a set. Each value may itself hold several
// comma-separated tokens, so "-t d,f" and "-t d -t f" produce the same set.
// Empty tokens are ignored.
func ParseTypes(values []string) (TypeSet, error) {
	var set TypeSet
	for _, v := range values {
		for _, tok := range strings.Split(v, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			t, err := ParseEntryType(tok)
			if err != nil {
				return 0, err
			}
			set = set.With(t)
		}
	}
	return set, nil
}

// CompileNames compiles name patterns in order. The first invalid pattern
// aborts compilation.
func CompileNames(patterns []string) ([]*regexp.Regexp, error) {
	names := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, p, err)
		}
		names = append(names, re)
	}
	return names, nil
}

// CompileGlobs compiles exclude globs. The path separator is the glob
// separator, so "*" never crosses a directory boundary.
func CompileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, filepath.Separator)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidGlob, p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
