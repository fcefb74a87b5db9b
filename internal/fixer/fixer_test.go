package fixer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/viant/afs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Songmu/javaimports/internal/common"
	"github.com/Songmu/javaimports/internal/parsedfile"
	"github.com/Songmu/javaimports/internal/stdlib"
)

func TestTryToFix_ResolvesFromStdlib(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Foo.java")
	src := []byte("package com.example;\nclass Foo {\n  List items;\n}\n")
	require.NoError(t, os.WriteFile(target, src, 0o644))

	file, err := parsedfile.Parse(context.Background(), target, src)
	require.NoError(t, err)

	fx := New(afs.New(), file)
	fx.AddSource(stdlib.NewFromImports(common.NewImport("java.util.List", false)))

	result, err := fx.TryToFix(context.Background())
	require.NoError(t, err)
	require.True(t, result.Complete)
	require.Len(t, result.Fixes, 1)
	assert.Equal(t, "java.util.List", result.Fixes[0].Selector.String())
}

func TestTryToFix_NothingUnresolvedIsComplete(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Foo.java")
	src := []byte("package com.example;\nclass Foo {\n  int x;\n}\n")
	require.NoError(t, os.WriteFile(target, src, 0o644))

	file, err := parsedfile.Parse(context.Background(), target, src)
	require.NoError(t, err)

	fx := New(afs.New(), file)
	result, err := fx.TryToFix(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Empty(t, result.Fixes)
}

func TestTryToFix_UnresolvableGivesIncomplete(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Foo.java")
	src := []byte("package com.example;\nclass Foo {\n  Mystery m;\n}\n")
	require.NoError(t, os.WriteFile(target, src, 0o644))

	file, err := parsedfile.Parse(context.Background(), target, src)
	require.NoError(t, err)

	fx := New(afs.New(), file)
	result, err := fx.TryToFix(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Complete)
	assert.Empty(t, result.Fixes)
}

func TestTryToFix_StuckOrphanBailsWithoutLastTry(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Foo.java")
	src := []byte("package com.example;\nclass Foo extends Unknown {\n  List items;\n}\n")
	require.NoError(t, os.WriteFile(target, src, 0o644))

	file, err := parsedfile.Parse(context.Background(), target, src)
	require.NoError(t, err)
	require.NotEmpty(t, file.Orphans)

	fx := New(afs.New(), file)
	fx.AddSource(stdlib.NewFromImports(common.NewImport("java.util.List", false)))

	result, err := fx.TryToFix(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Complete)
	assert.Empty(t, result.Fixes)

	last, err := fx.LastTryToFix(context.Background())
	require.NoError(t, err)
	assert.True(t, last.Complete) // every *unresolved identifier* found a fix; the orphan's own superclass is still unknown, but that never blocks a last try
	require.Len(t, last.Fixes, 1)
	assert.Equal(t, "java.util.List", last.Fixes[0].Selector.String())
}

func TestTryToFix_OrphanExtendedFromSiblingResolves(t *testing.T) {
	dir := t.TempDir()

	base := filepath.Join(dir, "Base.java")
	require.NoError(t, os.WriteFile(base, []byte(
		"package com.example;\nclass Base {\n  List shared;\n}\n"), 0o644))

	target := filepath.Join(dir, "Foo.java")
	src := []byte("package com.example;\nclass Foo extends Base {\n  void use() { shared.size(); }\n}\n")
	require.NoError(t, os.WriteFile(target, src, 0o644))

	file, err := parsedfile.Parse(context.Background(), target, src)
	require.NoError(t, err)
	require.NotEmpty(t, file.Orphans)

	fx := New(afs.New(), file)
	fx.AddSource(stdlib.NewFromImports(common.NewImport("java.util.List", false)))

	result, err := fx.TryToFix(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Empty(t, result.Fixes) // "shared" resolves as an inherited member, no import needed
}
