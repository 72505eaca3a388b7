// Package filter provides the pure predicates that decide whether a visited
// entry is reported by seek, along with parsers that turn command-line values
// into the compiled filter data the predicates consume.
//
// Every predicate takes the entry data and the filter data explicitly, so each
// one can be tested on its own and none of them hold state.
package filter

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/jamesainslie/seek/pkg/seek/types"
)

// TypeSet is a set of entry types. The zero value is the empty set, which
// TypeAccepted treats as "accept all types".
type TypeSet uint8

// NewTypeSet returns a set containing the given types.
func NewTypeSet(ts ...types.EntryType) TypeSet {
	var s TypeSet
	for _, t := range ts {
		s = s.With(t)
	}
	return s
}

// With returns a copy of the set that also contains t.
func (s TypeSet) With(t types.EntryType) TypeSet {
	return s | bit(t)
}

// Has reports whether t is in the set.
func (s TypeSet) Has(t types.EntryType) bool {
	b := bit(t)
	return b != 0 && s&b != 0
}

// Empty reports whether the set has no members.
func (s TypeSet) Empty() bool {
	return s == 0
}

// Types returns the members in declaration order.
func (s TypeSet) Types() []types.EntryType {
	var out []types.EntryType
	for _, t := range types.EntryTypes {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// String returns the member tokens joined by commas, e.g. "d,f".
func (s TypeSet) String() string {
	members := s.Types()
	tokens := make([]string, len(members))
	for i, t := range members {
		tokens[i] = t.Token()
	}
	return strings.Join(tokens, ",")
}

func bit(t types.EntryType) TypeSet {
	if t < types.Directory || t > types.Symlink {
		return 0
	}
	return 1 << uint(t)
}

// TypeAccepted returns true if the set is empty or contains the entry type.
func TypeAccepted(t types.EntryType, set TypeSet) bool {
	return set.Empty() || set.Has(t)
}

// NameAccepted returns true if there are no patterns or if any pattern
// matches somewhere in the base name. Matching is unanchored: a pattern only
// matches the whole name when it says so with ^ and $.
func NameAccepted(name string, names []*regexp.Regexp) bool {
	if len(names) == 0 {
		return true
	}
	for _, re := range names {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Excluded returns true if any glob matches the base name or the full path.
func Excluded(path, name string, globs []glob.Glob) bool {
	for _, g := range globs {
		if g.Match(name) || g.Match(path) {
			return true
		}
	}
	return false
}
