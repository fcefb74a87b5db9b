package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Songmu/javaimports/internal/candidates"
	"github.com/Songmu/javaimports/internal/common"
)

func imp(dotted string) common.Import { return common.NewImport(dotted, false) }

func TestSelect_SiblingBeatsStdlibBeatsExternal(t *testing.T) {
	cands := candidates.Candidates{
		"Foo": {
			{Import: imp("com.example.other.Foo"), Source: candidates.External},
			{Import: imp("java.util.Foo"), Source: candidates.Stdlib},
			{Import: imp("com.example.Foo"), Source: candidates.Sibling},
		},
	}

	winners := NewBasic().Select(cands, common.ParseSelector("com.example"))
	assert.Equal(t, "com.example.Foo", winners["Foo"].Selector.String())
}

func TestSelect_StdlibPrefersJavaUtilOverEqualLength(t *testing.T) {
	cands := candidates.Candidates{
		"List": {
			{Import: imp("java.awt.List"), Source: candidates.Stdlib},
			{Import: imp("java.util.List"), Source: candidates.Stdlib},
		},
	}

	winners := NewBasic().Select(cands, common.ParseSelector("com.example"))
	assert.Equal(t, "java.util.List", winners["List"].Selector.String())
}

func TestSelect_StdlibPrefersShorterSelector(t *testing.T) {
	cands := candidates.Candidates{
		"Pattern": {
			{Import: imp("java.util.regex.Pattern"), Source: candidates.Stdlib},
			{Import: imp("java.text.Pattern"), Source: candidates.Stdlib},
		},
	}

	winners := NewBasic().Select(cands, common.ParseSelector("com.example"))
	assert.Equal(t, "java.text.Pattern", winners["Pattern"].Selector.String())
}

func TestSelect_ExternalPrefersDeepestCommonPrefix(t *testing.T) {
	cands := candidates.Candidates{
		"Helper": {
			{Import: imp("com.other.Helper"), Source: candidates.External},
			{Import: imp("com.example.sub.Helper"), Source: candidates.External},
		},
	}

	winners := NewBasic().Select(cands, common.ParseSelector("com.example.sub"))
	assert.Equal(t, "com.example.sub.Helper", winners["Helper"].Selector.String())
}

func TestSelect_LexicographicFallback(t *testing.T) {
	cands := candidates.Candidates{
		"Thing": {
			{Import: imp("com.zeta.Thing"), Source: candidates.External},
			{Import: imp("com.alpha.Thing"), Source: candidates.External},
		},
	}

	winners := NewBasic().Select(cands, common.ParseSelector("com.unrelated"))
	assert.Equal(t, "com.alpha.Thing", winners["Thing"].Selector.String())
}

func TestSelect_SameScopeAffinityCouplesSelectors(t *testing.T) {
	// "a" has two equally-ranked external candidates; "b" only has a
	// candidate in one of those same packages. The shared-package option
	// should win for "a" too.
	cands := candidates.Candidates{
		"A": {
			{Import: imp("com.one.A"), Source: candidates.External},
			{Import: imp("com.two.A"), Source: candidates.External},
		},
		"B": {
			{Import: imp("com.two.B"), Source: candidates.External},
		},
	}

	winners := NewBasic().Select(cands, common.ParseSelector("com.unrelated"))
	assert.Equal(t, "com.two.A", winners["A"].Selector.String())
}
