// Package output provides the writers seek uses to report results: match
// formatters (paths, null, jsonl, yaml, template) that stream one entry at a time, and the
// diagnostics writer for non-fatal traversal problems.
//
// The package uses a registry pattern so formats can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("paths", output.Options{})
//	if err != nil {
//	    return err
//	}
//	emitter := output.NewEmitter(os.Stdout, formatter)
//	_ = emitter.Emit(entry)
package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/jamesainslie/seek/pkg/seek/types"
)

// Format names.
const (
	FormatPaths    = "paths"
	FormatNull     = "null"
	FormatJSONL    = "jsonl"
	FormatYAML     = "yaml"
	FormatTemplate = "template"
)

// ErrUnknownFormat is returned when no formatter is registered under a name.
var ErrUnknownFormat = errors.New("unknown output format")

// Options configures formatter construction.
type Options struct {
	// Color enables ANSI styling for formats that support it.
	Color bool

	// Template is the text/template source for the template format.
	Template string
}

// Formatter writes a single matched entry. Implementations must write the
// entry completely before returning so output order equals traversal order.
type Formatter interface {
	Format(w io.Writer, e types.Entry) error
}

// FormatterFactory creates a new Formatter instance. Factories validate
// their options so that bad settings fail before any output is written.
type FormatterFactory func(opts Options) (Formatter, error)

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
func (r *Registry) Get(name string, opts Options) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return factory(opts)
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string, opts Options) (Formatter, error) {
	return DefaultRegistry.Get(name, opts)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}

// Emitter writes each matched entry to w as soon as it is found.
type Emitter struct {
	w io.Writer
	f Formatter
}

// NewEmitter binds a formatter to a destination.
func NewEmitter(w io.Writer, f Formatter) *Emitter {
	return &Emitter{w: w, f: f}
}

// Emit formats and writes a single entry.
func (e *Emitter) Emit(entry types.Entry) error {
	return e.f.Format(e.w, entry)
}
