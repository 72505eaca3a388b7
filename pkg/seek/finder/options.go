// Package finder implements the traversal-filter pipeline of seek: it walks
// each root depth-first, classifies every visited entry, applies the type and
// name filters, and emits matches in traversal order.
package finder

import (
	"regexp"
	"slices"

	"github.com/gobwas/glob"
	"github.com/jamesainslie/seek/pkg/seek/filter"
)

// DefaultPath is the root walked when no paths are supplied.
const DefaultPath = "."

// Config is the immutable description of a run. It is built once with
// NewConfig and may be reused across roots and runs; accessors return copies.
type Config struct {
	paths   []string
	types   filter.TypeSet
	names   []*regexp.Regexp
	exclude []glob.Glob
}

// Option configures a Config under construction.
type Option func(*Config)

// NewConfig builds a Config. With no paths, DefaultPath is used.
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	if len(c.paths) == 0 {
		c.paths = []string{DefaultPath}
	}
	return c
}

// WithPaths sets the root paths, walked in the given order. Empty strings are dropped.
func WithPaths(paths ...string) Option {
	return func(c *Config) {
		c.paths = make([]string, 0, len(paths))
		for _, p := range paths {
			if p != "" {
				c.paths = append(c.paths, p)
			}
		}
	}
}

// WithTypes sets the accepted entry types. The empty set accepts all.
func WithTypes(set filter.TypeSet) Option {
	return func(c *Config) {
		c.types = set
	}
}

// WithNames sets the name patterns. An entry is accepted when any pattern
// matches its base name; no patterns accepts all.
func WithNames(names ...*regexp.Regexp) Option {
	return func(c *Config) {
		c.names = slices.Clone(names)
	}
}

// WithExclude sets globs that prune matching entries below the roots.
func WithExclude(globs ...glob.Glob) Option {
	return func(c *Config) {
		c.exclude = slices.Clone(globs)
	}
}

// Paths returns the root paths in walk order.
func (c Config) Paths() []string {
	return slices.Clone(c.paths)
}

// Types returns the accepted entry types.
func (c Config) Types() filter.TypeSet {
	return c.types
}

// Names returns the name patterns in the order given.
func (c Config) Names() []*regexp.Regexp {
	return slices.Clone(c.names)
}

// Exclude returns the exclude globs.
func (c Config) Exclude() []glob.Glob {
	return slices.Clone(c.exclude)
}
