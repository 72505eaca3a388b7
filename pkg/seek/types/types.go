// Package types provides core data types for the seek file finder.
// It includes the entry classification enum, the per-entry value produced
// during traversal, and structures for reporting walk errors and run statistics.
package types

import (
	"fmt"
	"time"
)

// EntryType classifies a filesystem entry. The set is closed: every
// classified entry is exactly one of Directory, File, or Symlink.
type EntryType int

const (
	// Directory is a directory entry.
	Directory EntryType = iota
	// File is a regular file.
	File
	// Symlink is a symbolic link (never followed below a root).
	Symlink
)

// EntryTypes lists every EntryType in declaration order.
var EntryTypes = []EntryType{Directory, File, Symlink}

// String returns the long name of the entry type.
func (t EntryType) String() string {
	switch t {
	case Directory:
		return "directory"
	case File:
		return "file"
	case Symlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Token returns the single-letter code used on the command line.
func (t EntryType) Token() string {
	switch t {
	case Directory:
		return "d"
	case File:
		return "f"
	case Symlink:
		return "l"
	default:
		return "?"
	}
}

// MarshalText implements encoding.TextMarshaler so entry types render by name
// in JSON output.
func (t EntryType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Entry is the transient value produced for each visited filesystem node.
type Entry struct {
	// Path is the full path, joined from the root exactly as it was supplied.
	Path string

	// Name is the base name of the entry.
	Name string

	// Type is the classification made at visit time.
	Type EntryType

	// Depth is the distance from the root (the root itself is 0).
	Depth int
}

// WalkError is a non-fatal problem encountered while visiting a path.
type WalkError struct {
	// Path is the file or directory path where the error occurred.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error returns "<path>: <cause>".
func (e *WalkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *WalkError) Unwrap() error {
	return e.Err
}

// RunStats summarizes a completed run.
type RunStats struct {
	// Visited is the number of entries successfully visited.
	Visited int64 `json:"visited" yaml:"visited"`

	// Matched is the number of entries emitted.
	Matched int64 `json:"matched" yaml:"matched"`

	// Errors is the number of non-fatal traversal and classification errors.
	Errors int64 `json:"errors" yaml:"errors"`

	// Skipped is the number of entries dropped without an error, such as names
	// that are not valid UTF-8.
	Skipped int64 `json:"skipped" yaml:"skipped"`

	// Elapsed is the wall time of the run.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}
