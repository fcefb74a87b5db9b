// Package candidates defines the shared shapes every candidate source
// (stdlib, sibling, external environment) and the registry that fans out
// to them agree on.
package candidates

import (
	"context"

	"github.com/Songmu/javaimports/internal/common"
)

// Source tags where a Candidate import came from. Selection ranks entirely
// on this before anything else.
type Source int

const (
	Stdlib Source = iota
	Sibling
	External
)

func (s Source) String() string {
	switch s {
	case Stdlib:
		return "stdlib"
	case Sibling:
		return "sibling"
	case External:
		return "external"
	default:
		return "unknown"
	}
}

// Candidate is one possible import for some unresolved identifier.
type Candidate struct {
	Import common.Import
	Source Source
}

// Candidates maps an unresolved identifier to every Candidate found for it,
// preserving insertion order within each source's contribution but not
// across sources.
type Candidates map[string][]Candidate

// Finder is the uniform contract every candidate source exposes: given a
// set of identifiers, return whatever candidates it can offer for
// each.
type Finder interface {
	Find(ctx context.Context, identifiers map[string]struct{}) (Candidates, error)
}

// New builds an empty Candidates map.
func New() Candidates {
	return Candidates{}
}

// Add appends one candidate for identifier, preserving insertion order.
func (c Candidates) Add(identifier string, cand Candidate) {
	c[identifier] = append(c[identifier], cand)
}

// Merge folds other into c in place, appending other's per-identifier lists
// after c's own: concatenation, not deduplication, preserving per-selector
// candidate ordering.
func (c Candidates) Merge(other Candidates) {
	for id, cands := range other {
		c[id] = append(c[id], cands...)
	}
}

// Identifiers returns the set of identifiers with at least one candidate.
func (c Candidates) Identifiers() []string {
	out := make([]string, 0, len(c))
	for id := range c {
		out = append(out, id)
	}
	return out
}
