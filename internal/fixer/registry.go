package fixer

import (
	"context"

	"github.com/Songmu/javaimports/internal/candidates"
)

// Registry fans an identifier lookup out to every candidate source that has
// been registered with it, merging their results by concatenating each
// source's per-identifier candidate lists. It corresponds to the
// original tool's CandidateFinder.
type Registry struct {
	sources []candidates.Finder
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a candidate source. Sources are queried in registration
// order; Candidates.Merge preserves that order within each identifier's
// list.
func (r *Registry) Add(source candidates.Finder) {
	r.sources = append(r.sources, source)
}

// Find implements candidates.Finder by merging every registered source's
// result for identifiers. A source that errors is skipped rather than
// aborting the batch: candidates already merged from earlier sources stay
// usable, the same way a malformed POM or an unreadable sibling degrades
// instead of failing the whole lookup.
func (r *Registry) Find(ctx context.Context, identifiers map[string]struct{}) (candidates.Candidates, error) {
	out := candidates.New()
	for _, source := range r.sources {
		found, err := source.Find(ctx, identifiers)
		if err != nil {
			continue
		}
		out.Merge(found)
	}
	return out, nil
}
