// Package parsedfile aggregates a single Java compilation unit's scope
// analysis with the rest of what the fixer needs about it: its declared
// package and its own imports.
package parsedfile

import (
	"context"

	"github.com/Songmu/javaimports/internal/common"
	"github.com/Songmu/javaimports/internal/javasyntax"
	"github.com/Songmu/javaimports/internal/scope"
)

// ParsedFile is the root scope of a compilation unit plus the file's own
// package selector and its existing import declarations.
type ParsedFile struct {
	Path        string
	Package     common.Selector
	HasPackage  bool
	Imports     []common.Import
	Unresolved  map[string]struct{}
	Orphans     []*scope.ClassEntity
}

// Parse reads src as Java source, runs the scope analyzer over it, and
// returns the resulting ParsedFile. It never consults path's contents on
// disk — callers own I/O (the fixer driver reads files through afs).
func Parse(ctx context.Context, path string, src []byte) (*ParsedFile, error) {
	f, err := javasyntax.ParseFile(ctx, path, src)
	if err != nil {
		return nil, err
	}

	result := scope.NewAnalyzer().Analyze(f.Package)

	return &ParsedFile{
		Path:       path,
		Package:    f.PackageName,
		HasPackage: f.HasPackage,
		Imports:    f.Imports,
		Unresolved: result.Unresolved,
		Orphans:    result.Orphans,
	}, nil
}

// IsComplete reports whether the file has nothing left for the fixer to
// resolve: no unresolved identifiers and no still-orphaned classes.
func (p *ParsedFile) IsComplete() bool {
	return len(p.Unresolved) == 0 && len(p.Orphans) == 0
}

// AllUnresolved returns every identifier the fixer must still find a
// candidate for: the file's own top-level unresolved set, plus every
// orphan class's pending-resolution set.
func (p *ParsedFile) AllUnresolved() map[string]struct{} {
	all := make(map[string]struct{}, len(p.Unresolved))
	for id := range p.Unresolved {
		all[id] = struct{}{}
	}
	for _, orphan := range p.Orphans {
		for id := range orphan.Pending {
			all[id] = struct{}{}
		}
	}
	return all
}

// HasExistingImport reports whether the file already imports sel. Existing
// imports are never consulted during candidate selection. The rewriter does
// not call this: it runs its own equivalent check over the import list it
// is given.
func (p *ParsedFile) HasExistingImport(sel common.Selector) bool {
	for _, imp := range p.Imports {
		if imp.Selector.Equal(sel) {
			return true
		}
	}
	return false
}
