package maven

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/minio/highwayhash"
	"github.com/viant/afs"
	"golang.org/x/sync/singleflight"

	"github.com/Songmu/javaimports/internal/candidates"
	"github.com/Songmu/javaimports/internal/common"
)

// classpathHashKey is the fixed key highwayhash.New64 requires; the value
// itself carries no secrecy requirement here, it only needs to be stable.
var classpathHashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// ClasspathIndex indexes the classes reachable through a resolved set of
// Maven dependencies, keyed by fully-qualified name's simple (rightmost)
// segment. Population reads each dependency's jar out of a local Maven
// repository; a module with many files sharing the same dependency set
// populates the index exactly once (lazy, thread-safe, idempotent).
type ClasspathIndex struct {
	fs       afs.Service
	repoRoot string

	group singleflight.Group

	mu          sync.RWMutex
	fingerprint uint64
	populated   bool
	byName      map[string][]common.Import
}

// NewClasspathIndex creates an index that resolves dependency jars under
// repoRoot, the local Maven repository root (conventionally ~/.m2/repository),
// reading them through fs.
func NewClasspathIndex(fs afs.Service, repoRoot string) *ClasspathIndex {
	return &ClasspathIndex{fs: fs, repoRoot: repoRoot}
}

// EnsurePopulated scans every jar named by dependencies exactly once per
// distinct dependency set. Concurrent callers sharing the same dependency
// set block on a single scan via singleflight; a caller with a
// already-seen fingerprint returns immediately without rescanning.
func (idx *ClasspathIndex) EnsurePopulated(ctx context.Context, dependencies []Coordinate) error {
	fp := fingerprintCoordinates(dependencies)

	idx.mu.RLock()
	already := idx.populated && idx.fingerprint == fp
	idx.mu.RUnlock()
	if already {
		return nil
	}

	key := fmt.Sprintf("%x", fp)
	_, err, _ := idx.group.Do(key, func() (interface{}, error) {
		idx.mu.RLock()
		already := idx.populated && idx.fingerprint == fp
		idx.mu.RUnlock()
		if already {
			return nil, nil
		}

		byName := map[string][]common.Import{}
		for _, dep := range dependencies {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			indexJar(ctx, idx.fs, idx.repoRoot, dep, byName)
		}

		idx.mu.Lock()
		idx.byName = byName
		idx.fingerprint = fp
		idx.populated = true
		idx.mu.Unlock()
		return nil, nil
	})
	return err
}

// Find implements candidates.Finder over the populated index. Callers must
// have EnsurePopulated the index with the module's resolved dependencies
// first; an unpopulated index simply finds nothing.
func (idx *ClasspathIndex) Find(_ context.Context, identifiers map[string]struct{}) (candidates.Candidates, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := candidates.New()
	for id := range identifiers {
		for _, imp := range idx.byName[id] {
			out.Add(id, candidates.Candidate{Import: imp, Source: candidates.External})
		}
	}
	return out, nil
}

// indexJar locates dep's jar under repoRoot and records every top-level
// class it declares into byName. A missing or unreadable jar is skipped
// silently: an unresolvable transitive dependency should not prevent the
// rest of the classpath from being usable.
func indexJar(ctx context.Context, fs afs.Service, repoRoot string, dep Coordinate, byName map[string][]common.Import) {
	jarPath := jarPathFor(repoRoot, dep)
	content, err := fs.DownloadWithURL(ctx, jarPath)
	if err != nil {
		return
	}

	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return
	}

	for _, f := range reader.File {
		name := strings.TrimSuffix(f.Name, ".class")
		if name == f.Name || strings.Contains(name, "$") || strings.HasPrefix(name, "META-INF") {
			continue
		}
		dotted := strings.ReplaceAll(name, "/", ".")
		sel := common.ParseSelector(dotted)
		imp := common.Import{Selector: sel}
		byName[sel.Rightmost()] = append(byName[sel.Rightmost()], imp)
	}
}

// jarPathFor computes a dependency's location within a local Maven
// repository: <root>/<groupId with '.' as '/'>/<artifactId>/<version>/<artifactId>-<version>.jar.
func jarPathFor(repoRoot string, dep Coordinate) string {
	groupPath := strings.ReplaceAll(dep.GroupID, ".", string(filepath.Separator))
	fileName := fmt.Sprintf("%s-%s.jar", dep.ArtifactID, dep.Version)
	if dep.Classifier != "" {
		fileName = fmt.Sprintf("%s-%s-%s.jar", dep.ArtifactID, dep.Version, dep.Classifier)
	}
	return filepath.Join(repoRoot, groupPath, dep.ArtifactID, dep.Version, fileName)
}

// fingerprintCoordinates hashes a sorted rendering of the dependency set so
// that two calls with the same dependencies (regardless of slice order)
// produce the same fingerprint and skip a redundant scan.
func fingerprintCoordinates(dependencies []Coordinate) uint64 {
	rendered := make([]string, len(dependencies))
	for i, d := range dependencies {
		rendered[i] = d.String()
	}
	sort.Strings(rendered)

	hash, err := highwayhash.New64(classpathHashKey)
	if err != nil {
		return 0
	}
	_, _ = hash.Write([]byte(strings.Join(rendered, "\n")))
	return hash.Sum64()
}
