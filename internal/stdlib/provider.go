// Package stdlib implements the standard-library candidate source: given
// identifiers, it returns every stdlib import whose rightmost selector
// segment equals one of them. The table itself is a static, embedded
// fixture rather than a live Javadoc scrape (the original tool's
// scripts/javadoc_parser.go scrapes the real JDK Javadoc site once to
// produce one; here it's checked in directly).
package stdlib

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Songmu/javaimports/internal/candidates"
	"github.com/Songmu/javaimports/internal/common"
)

//go:embed data.yaml
var embeddedData []byte

type tableEntry struct {
	Selector string `yaml:"selector"`
	Static   bool   `yaml:"static"`
}

type table struct {
	Entries []tableEntry `yaml:"entries"`
}

// Provider is the standard-library candidate source. It is immutable after
// construction and safe for concurrent use.
type Provider struct {
	byIdentifier map[string][]common.Import
}

// New builds a Provider from the embedded static table.
func New() (*Provider, error) {
	var t table
	if err := yaml.Unmarshal(embeddedData, &t); err != nil {
		return nil, fmt.Errorf("stdlib: parse embedded table: %w", err)
	}
	return newFromEntries(t.Entries)
}

// NewEmpty builds a Provider with no entries, the equivalent of the
// original tool's StdlibProviders.empty() test seam.
func NewEmpty() *Provider {
	return &Provider{byIdentifier: map[string][]common.Import{}}
}

// NewFromImports builds a Provider directly from a fixed set of imports,
// the equivalent of StdlibProviders.stub() — useful in tests that want a
// small, explicit stdlib without pulling in the full embedded table.
func NewFromImports(imports ...common.Import) *Provider {
	p := NewEmpty()
	for _, imp := range imports {
		p.byIdentifier[imp.Identifier()] = append(p.byIdentifier[imp.Identifier()], imp)
	}
	return p
}

func newFromEntries(entries []tableEntry) (*Provider, error) {
	p := NewEmpty()
	for _, e := range entries {
		if e.Selector == "" {
			continue
		}
		imp := common.NewImport(e.Selector, e.Static)
		p.byIdentifier[imp.Identifier()] = append(p.byIdentifier[imp.Identifier()], imp)
	}
	return p, nil
}

// Find implements candidates.Finder. The standard-library table never
// changes once loaded, so ctx is unused — it is part of the signature only
// because the interface is shared with sources that do block on I/O.
func (p *Provider) Find(_ context.Context, identifiers map[string]struct{}) (candidates.Candidates, error) {
	out := candidates.New()
	for id := range identifiers {
		for _, imp := range p.byIdentifier[id] {
			out.Add(id, candidates.Candidate{Import: imp, Source: candidates.Stdlib})
		}
	}
	return out, nil
}
