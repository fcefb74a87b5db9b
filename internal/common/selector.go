// Package common holds the small value types shared by every subsystem:
// selectors, identifiers and imports. None of them carry behavior beyond
// what the scope analyzer, candidate registry and selection strategy need.
package common

import "strings"

// Selector is an ordered, non-empty sequence of identifier segments, e.g.
// the selector for "java.util.List" is []string{"java", "util", "List"}.
// Selectors are immutable: every method that would "change" a selector
// returns a new one.
type Selector struct {
	segments []string
}

// NewSelector builds a Selector from its segments. It panics if segments is
// empty: a selector always identifies something.
func NewSelector(segments ...string) Selector {
	if len(segments) == 0 {
		panic("common: selector must have at least one segment")
	}
	cp := make([]string, len(segments))
	copy(cp, segments)
	return Selector{segments: cp}
}

// ParseSelector splits a dotted path such as "java.util.List" into a
// Selector.
func ParseSelector(dotted string) Selector {
	return NewSelector(strings.Split(dotted, ".")...)
}

// Segments returns the selector's segments. Callers must not mutate the
// returned slice.
func (s Selector) Segments() []string {
	return s.segments
}

// Size returns the number of segments.
func (s Selector) Size() int {
	return len(s.segments)
}

// Rightmost returns the last segment, the identifier this selector
// ultimately introduces into scope.
func (s Selector) Rightmost() string {
	return s.segments[len(s.segments)-1]
}

// Combine concatenates this selector with other, returning a new selector
// with this selector's segments followed by other's.
func (s Selector) Combine(other Selector) Selector {
	combined := make([]string, 0, len(s.segments)+len(other.segments))
	combined = append(combined, s.segments...)
	combined = append(combined, other.segments...)
	return Selector{segments: combined}
}

// StartsWith reports whether this selector's segments begin with prefix's
// segments, in order.
func (s Selector) StartsWith(prefix Selector) bool {
	if len(prefix.segments) > len(s.segments) {
		return false
	}
	for i, seg := range prefix.segments {
		if s.segments[i] != seg {
			return false
		}
	}
	return true
}

// CommonPrefixLen returns the number of leading segments s shares with
// other.
func (s Selector) CommonPrefixLen(other Selector) int {
	n := 0
	for n < len(s.segments) && n < len(other.segments) && s.segments[n] == other.segments[n] {
		n++
	}
	return n
}

// Equal reports value equality between two selectors.
func (s Selector) Equal(other Selector) bool {
	if len(s.segments) != len(other.segments) {
		return false
	}
	for i, seg := range s.segments {
		if other.segments[i] != seg {
			return false
		}
	}
	return true
}

// String renders the selector as a dotted path.
func (s Selector) String() string {
	return strings.Join(s.segments, ".")
}
