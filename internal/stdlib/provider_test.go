package stdlib

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Songmu/javaimports/internal/candidates"
	"github.com/Songmu/javaimports/internal/common"
)

func TestNew_FindsKnownClass(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	cands, err := p.Find(context.Background(), map[string]struct{}{"List": {}, "Nonexistent": {}})
	require.NoError(t, err)

	require.Contains(t, cands, "List")
	assert.Equal(t, "java.util.List", cands["List"][0].Import.Selector.String())
	assert.Equal(t, candidates.Stdlib, cands["List"][0].Source)
	assert.NotContains(t, cands, "Nonexistent")
}

func TestNewEmpty_FindsNothing(t *testing.T) {
	p := NewEmpty()
	cands, err := p.Find(context.Background(), map[string]struct{}{"List": {}})
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestNewFromImports(t *testing.T) {
	p := NewFromImports(
		common.NewImport("java.util.List", false),
		common.NewImport("java.util.ArrayList", false),
	)
	cands, err := p.Find(context.Background(), map[string]struct{}{"List": {}, "ArrayList": {}})
	require.NoError(t, err)
	assert.Len(t, cands, 2)
}
