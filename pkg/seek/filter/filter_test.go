package filter

import (
	"regexp"
	"testing"

	"github.com/gobwas/glob"
	"github.com/jamesainslie/seek/pkg/seek/types"
)

func mustCompile(t *testing.T, patterns ...string) []*regexp.Regexp {
	t.Helper()
	names, err := CompileNames(patterns)
	if err != nil {
		t.Fatalf("CompileNames(%v) failed: %v", patterns, err)
	}
	return names
}

func TestTypeSet(t *testing.T) {
	var empty TypeSet
	if !empty.Empty() {
		t.Error("zero TypeSet should be empty")
	}

	s := NewTypeSet(types.File, types.Symlink)
	if s.Has(types.Directory) {
		t.Error("set should not contain Directory")
	}
	if !s.Has(types.File) || !s.Has(types.Symlink) {
		t.Error("set should contain File and Symlink")
	}
	if got := s.String(); got != "f,l" {
		t.Errorf("String() = %q, want %q", got, "f,l")
	}

	// With returns a copy; the original is untouched.
	s2 := s.With(types.Directory)
	if s.Has(types.Directory) {
		t.Error("With mutated the receiver")
	}
	if !s2.Has(types.Directory) {
		t.Error("With did not add Directory")
	}

	if s.Has(types.EntryType(9)) {
		t.Error("out-of-range type should never be a member")
	}
}

func TestTypeAccepted_EmptySetAcceptsAll(t *testing.T) {
	for _, typ := range types.EntryTypes {
		if !TypeAccepted(typ, TypeSet(0)) {
			t.Errorf("empty set rejected %v", typ)
		}
	}
}

func TestTypeAccepted(t *testing.T) {
	tests := []struct {
		name string
		typ  types.EntryType
		set  TypeSet
		want bool
	}{
		{name: "file in file set", typ: types.File, set: NewTypeSet(types.File), want: true},
		{name: "dir not in file set", typ: types.Directory, set: NewTypeSet(types.File), want: false},
		{name: "link in multi set", typ: types.Symlink, set: NewTypeSet(types.Directory, types.Symlink), want: true},
		{name: "file not in multi set", typ: types.File, set: NewTypeSet(types.Directory, types.Symlink), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeAccepted(tt.typ, tt.set); got != tt.want {
				t.Errorf("TypeAccepted(%v, %v) = %v, want %v", tt.typ, tt.set, got, tt.want)
			}
		})
	}
}

func TestNameAccepted_NoPatternsAcceptsAll(t *testing.T) {
	for _, name := range []string{"", "a", ".hidden", "x.txt", "white space"} {
		if !NameAccepted(name, nil) {
			t.Errorf("no patterns rejected %q", name)
		}
	}
}

func TestNameAccepted(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		input    string
		want     bool
	}{
		{name: "suffix anchor matches", patterns: []string{`\.txt$`}, input: "x.txt", want: true},
		{name: "suffix anchor rejects", patterns: []string{`\.txt$`}, input: "x.log", want: false},
		{name: "substring search", patterns: []string{"oba"}, input: "foobar.txt", want: true},
		{name: "or first pattern", patterns: []string{"foo", "bar"}, input: "foo.txt", want: true},
		{name: "or second pattern", patterns: []string{"foo", "bar"}, input: "bar.txt", want: true},
		{name: "or both patterns", patterns: []string{"foo", "bar"}, input: "foobar.txt", want: true},
		{name: "or neither pattern", patterns: []string{"foo", "bar"}, input: "baz.txt", want: false},
		{name: "full anchor", patterns: []string{"^a$"}, input: "ab", want: false},
		{name: "case sensitive", patterns: []string{"README"}, input: "readme", want: false},
		{name: "inline flag", patterns: []string{"(?i)README"}, input: "readme", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := mustCompile(t, tt.patterns...)
			if got := NameAccepted(tt.input, names); got != tt.want {
				t.Errorf("NameAccepted(%q, %v) = %v, want %v", tt.input, tt.patterns, got, tt.want)
			}
		})
	}
}

func TestExcluded(t *testing.T) {
	globs, err := CompileGlobs([]string{".git", "*.tmp", "build/**"})
	if err != nil {
		t.Fatalf("CompileGlobs failed: %v", err)
	}

	tests := []struct {
		path string
		name string
		want bool
	}{
		{path: "src/.git", name: ".git", want: true},
		{path: "src/a.tmp", name: "a.tmp", want: true},
		{path: "build/out/x", name: "x", want: true},
		{path: "src/main.go", name: "main.go", want: false},
		{path: "src/gitignore", name: "gitignore", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Excluded(tt.path, tt.name, globs); got != tt.want {
				t.Errorf("Excluded(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}

	if Excluded("anything", "anything", []glob.Glob(nil)) {
		t.Error("no globs should exclude nothing")
	}
}
