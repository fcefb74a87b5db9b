package maven

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
)

// ResolvedModule is the outcome of walking a module's POM and its parent
// chain: the flattened, enriched dependency set plus any non-fatal errors
// encountered while climbing toward the root POM.
type ResolvedModule struct {
	Dependencies []Coordinate
	Warnings     []error
}

// resolveModule loads the POM at pomPath and climbs its parent chain until
// the result is well-defined or no further parent can be located. A
// failure loading or parsing any POM in the chain — the module's own or an
// ancestor's — is recorded as a warning and simply stops the climb, since a
// partially-resolved (possibly empty) dependency set is still useful to the
// candidate finder.
func resolveModule(ctx context.Context, fs afs.Service, pomPath string) (*ResolvedModule, error) {
	root, err := loadPOM(ctx, fs, pomPath)
	if err != nil {
		return &ResolvedModule{Warnings: []error{err}}, nil
	}
	flat := root.toFlatPom()

	result := &ResolvedModule{}
	dir := filepath.Dir(pomPath)

	for !flat.IsWellDefined() && flat.HasParent {
		parentURL := resolveParentPath(dir, flat.ParentPath)

		parent, loadErr := loadPOM(ctx, fs, parentURL)
		if loadErr != nil {
			result.Warnings = append(result.Warnings, fmt.Errorf("maven: parent %s: %w", parentURL, loadErr))
			break
		}

		dir = filepath.Dir(parentURL)
		flat.Merge(parent.toFlatPom())
	}

	result.Dependencies = flat.Declared
	return result, nil
}

// resolveParentPath resolves a <relativePath> (or its "../pom.xml" default)
// against the child POM's own directory, normalizing any ".." segments and
// appending "pom.xml" when the path names a directory rather than a file.
func resolveParentPath(childDir, relativePath string) string {
	joined := filepath.Join(childDir, relativePath)
	if !strings.HasSuffix(joined, "pom.xml") {
		joined = filepath.Join(joined, "pom.xml")
	}
	return joined
}
