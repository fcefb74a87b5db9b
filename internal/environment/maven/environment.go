// Package maven implements the Maven-backed external environment: given a
// target file's module root, it flattens the module's POM and its parent
// chain into a resolved dependency set, then indexes the
// classes those dependencies provide out of a local Maven repository.
package maven

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/viant/afs"

	"github.com/Songmu/javaimports/internal/candidates"
)

// Environment is the Maven implementation of environment.Environment. Each
// Environment owns one classpath index; repeated Find calls against the same
// dependency set reuse it without rescanning the jars.
type Environment struct {
	fs       afs.Service
	repoRoot string
	index    *ClasspathIndex

	resolved *ResolvedModule
}

// New creates a Maven environment for targetFile, using repoRoot as the
// local Maven repository (dependency jars are expected under it in the
// usual <group>/<artifact>/<version> layout).
func New(fs afs.Service, targetFile, repoRoot string) *Environment {
	return &Environment{
		fs:       fs,
		repoRoot: repoRoot,
		index:    NewClasspathIndex(fs, repoRoot),
	}
}

// Find implements candidates.Finder over the module resolved by ResolveFor;
// it returns an error if ResolveFor has not been called. The first call
// populates the classpath index; later calls against the same dependency
// set reuse it without rescanning.
func (e *Environment) Find(ctx context.Context, identifiers map[string]struct{}) (candidates.Candidates, error) {
	deps, err := e.dependencies(ctx)
	if err != nil {
		return nil, err
	}
	if len(deps) == 0 {
		return candidates.New(), nil
	}
	if err := e.index.EnsurePopulated(ctx, deps); err != nil {
		return nil, err
	}
	return e.index.Find(ctx, identifiers)
}

// ResolveFor points this environment at targetFile's module, resolving its
// flattened dependency set. It is exposed separately from Find so a fixer
// run can resolve once per file while still sharing one ClasspathIndex
// across every file in the same module.
func (e *Environment) ResolveFor(ctx context.Context, targetFile string) error {
	root := moduleRootFor(targetFile)
	if root == "" {
		e.resolved = &ResolvedModule{}
		return nil
	}

	pomPath := filepath.Join(root, "pom.xml")
	resolved, err := resolveModule(ctx, e.fs, pomPath)
	if err != nil {
		return fmt.Errorf("maven: resolve %s: %w", pomPath, err)
	}
	e.resolved = resolved
	return nil
}

// Warnings returns whatever non-fatal problems ResolveFor's parent-chain
// walk ran into. A parent POM that fails to load never aborts the file's
// fix, but a --debug run surfaces it. Call after ResolveFor.
func (e *Environment) Warnings() []error {
	if e.resolved == nil {
		return nil
	}
	return e.resolved.Warnings
}

func (e *Environment) dependencies(ctx context.Context) ([]Coordinate, error) {
	if e.resolved == nil {
		return nil, fmt.Errorf("maven: environment not resolved, call ResolveFor first")
	}
	return e.resolved.Dependencies, nil
}
