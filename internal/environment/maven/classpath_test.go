package maven

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func writeFakeJar(t *testing.T, repoRoot string, dep Coordinate, classNames ...string) {
	t.Helper()
	groupPath := strings.ReplaceAll(dep.GroupID, ".", string(filepath.Separator))
	dir := filepath.Join(repoRoot, groupPath, dep.ArtifactID, dep.Version)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	jarPath := filepath.Join(dir, dep.ArtifactID+"-"+dep.Version+".jar")
	f, err := os.Create(jarPath)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for _, name := range classNames {
		entry, err := w.Create(name + ".class")
		require.NoError(t, err)
		_, err = entry.Write([]byte{0xCA, 0xFE, 0xBA, 0xBE})
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestClasspathIndex_FindsIndexedClass(t *testing.T) {
	repo := t.TempDir()
	dep := Coordinate{GroupID: "com.google.guava", ArtifactID: "guava", Version: "31.1", Type: "jar"}
	writeFakeJar(t, repo, dep, "com/google/common/collect/ImmutableList", "com/google/common/collect/ImmutableList$Builder")

	idx := NewClasspathIndex(afs.New(), repo)
	require.NoError(t, idx.EnsurePopulated(context.Background(), []Coordinate{dep}))

	cands, err := idx.Find(context.Background(), map[string]struct{}{"ImmutableList": {}, "Builder": {}})
	require.NoError(t, err)

	require.Contains(t, cands, "ImmutableList")
	assert.Equal(t, "com.google.common.collect.ImmutableList", cands["ImmutableList"][0].Import.Selector.String())
	assert.NotContains(t, cands, "Builder") // inner classes are not indexed
}

func TestClasspathIndex_MissingJarIsSkipped(t *testing.T) {
	repo := t.TempDir()
	dep := Coordinate{GroupID: "com.missing", ArtifactID: "nope", Version: "1.0", Type: "jar"}

	idx := NewClasspathIndex(afs.New(), repo)
	require.NoError(t, idx.EnsurePopulated(context.Background(), []Coordinate{dep}))

	cands, err := idx.Find(context.Background(), map[string]struct{}{"Anything": {}})
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestClasspathIndex_SecondCallWithSameDepsSkipsRescan(t *testing.T) {
	repo := t.TempDir()
	dep := Coordinate{GroupID: "com.example", ArtifactID: "lib", Version: "1.0", Type: "jar"}
	writeFakeJar(t, repo, dep, "com/example/Widget")

	idx := NewClasspathIndex(afs.New(), repo)
	require.NoError(t, idx.EnsurePopulated(context.Background(), []Coordinate{dep}))
	// Remove the jar: a rescan would now index nothing and lose Widget.
	require.NoError(t, os.RemoveAll(filepath.Join(repo, "com")))
	require.NoError(t, idx.EnsurePopulated(context.Background(), []Coordinate{dep}))

	cands, err := idx.Find(context.Background(), map[string]struct{}{"Widget": {}})
	require.NoError(t, err)
	require.Contains(t, cands, "Widget")
}
