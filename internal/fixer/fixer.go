// Package fixer implements the fixer driver: given a parsed file, it
// loads cross-file orphan-extension information, then runs the candidate
// search and selection strategy over whatever is still unresolved,
// producing either a complete fix or the best partial one.
package fixer

import (
	"context"

	"github.com/viant/afs"

	"github.com/Songmu/javaimports/internal/candidates"
	"github.com/Songmu/javaimports/internal/common"
	"github.com/Songmu/javaimports/internal/parsedfile"
	"github.com/Songmu/javaimports/internal/selection"
)

// Fixer drives one file's fix: cross-file orphan extension via its Loader,
// candidate discovery via its Registry, and winner selection via a
// selection.Strategy.
type Fixer struct {
	file     *parsedfile.ParsedFile
	registry *Registry
	loader   *Loader
	strategy selection.Strategy
}

// New creates a Fixer for file. fs is used by the Loader to discover
// sibling files on disk.
func New(fs afs.Service, file *parsedfile.ParsedFile) *Fixer {
	return &Fixer{
		file:     file,
		registry: NewRegistry(),
		loader:   NewLoader(fs, file),
		strategy: selection.NewBasic(),
	}
}

// AddSource registers a candidate source (stdlib, sibling, external
// environment) with the fixer's registry.
func (f *Fixer) AddSource(source candidates.Finder) {
	f.registry.Add(source)
}

// TryToFix identifies symbols that need importing and tries to find a
// fitting import for each. If any orphan class could not be extended even
// after cross-file loading, it gives up without attempting a candidate
// search at all, on the theory that an incomplete picture of the file's own
// members would make any fix unreliable.
func (f *Fixer) TryToFix(ctx context.Context) (Result, error) {
	return f.loadAndTryToFix(ctx, false)
}

// LastTryToFix behaves like TryToFix, but never gives up early: if orphans
// remain, it proceeds to the candidate search anyway and returns the best
// fixes it can find.
func (f *Fixer) LastTryToFix(ctx context.Context) (Result, error) {
	return f.loadAndTryToFix(ctx, true)
}

func (f *Fixer) loadAndTryToFix(ctx context.Context, lastTry bool) (Result, error) {
	if err := f.loader.Load(ctx); err != nil {
		return Result{}, err
	}

	if len(f.file.AllUnresolved()) == 0 && len(f.loader.Orphans()) == 0 {
		return complete(), nil
	}

	return f.fix(ctx, lastTry)
}

// fix runs the candidate search and selection phase.
func (f *Fixer) fix(ctx context.Context, lastTry bool) (Result, error) {
	if len(f.loader.Orphans()) > 0 && !lastTry {
		return incomplete(), nil
	}

	unresolved := f.file.AllUnresolved()
	if len(unresolved) == 0 {
		return complete(), nil
	}

	found, err := f.registry.Find(ctx, unresolved)
	if err != nil {
		return Result{}, err
	}

	winners := f.strategy.Select(found, f.file.Package)

	fixes := make([]common.Import, 0, len(winners))
	for _, imp := range winners {
		fixes = append(fixes, imp)
	}

	if len(winners) == len(unresolved) {
		return complete(fixes...), nil
	}
	return incomplete(fixes...), nil
}
