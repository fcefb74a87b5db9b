package scope

import (
	"testing"

	"github.com/Songmu/javaimports/internal/astwalk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode is a minimal astwalk.Node used to drive the analyzer in tests
// without going through the tree-sitter bridge.
type fakeNode struct {
	kind       astwalk.Kind
	name       string
	superclass []string
	children   []astwalk.Node
}

func (f *fakeNode) Kind() astwalk.Kind { return f.kind }
func (f *fakeNode) Name() string       { return f.name }
func (f *fakeNode) Superclass() ([]string, bool) {
	if f.superclass == nil {
		return nil, false
	}
	return f.superclass, true
}
func (f *fakeNode) Children() []astwalk.Node { return f.children }

func ident(name string) astwalk.Node {
	return &fakeNode{kind: astwalk.KindIdentifier, name: name}
}

func variable(name string, children ...astwalk.Node) astwalk.Node {
	return &fakeNode{kind: astwalk.KindVariable, name: name, children: children}
}

func method(name string, children ...astwalk.Node) astwalk.Node {
	return &fakeNode{kind: astwalk.KindMethod, name: name, children: children}
}

func class(name string, superclass []string, children ...astwalk.Node) astwalk.Node {
	return &fakeNode{kind: astwalk.KindClass, name: name, superclass: superclass, children: children}
}

func block(children ...astwalk.Node) astwalk.Node {
	return &fakeNode{kind: astwalk.KindBlock, children: children}
}

func root(children ...astwalk.Node) astwalk.Node {
	return &fakeNode{kind: astwalk.KindOther, children: children}
}

func TestAnalyzer_SimpleUnresolved(t *testing.T) {
	// class Foo { void bar() { baz(); } }
	unit := root(
		class("Foo", nil,
			method("bar", block(ident("baz"))),
		),
	)

	result := NewAnalyzer().Analyze(unit)
	assert.Contains(t, result.Unresolved, "baz")
	assert.Empty(t, result.Orphans)
}

func TestAnalyzer_VariableResolvesWithinScope(t *testing.T) {
	// class Foo { void bar() { List x; x.add(1); } }
	unit := root(
		class("Foo", nil,
			method("bar", block(
				variable("x"),
				ident("x"),
			)),
		),
	)

	result := NewAnalyzer().Analyze(unit)
	assert.NotContains(t, result.Unresolved, "x")
}

// TestAnalyzer_OrphanExtensionAcrossScope covers S5: a class extends another
// class declared later in the same scope; once the whole scope closes, the
// parent should be found and any identifier the child used but that the
// parent declares should resolve.
func TestAnalyzer_OrphanExtensionAcrossScope(t *testing.T) {
	// class B extends A { void m() { helper(); } }
	// class A { void helper() {} }
	unit := root(
		class("B", []string{"A"},
			method("m", block(ident("helper"))),
		),
		class("A", nil,
			method("helper"),
		),
	)

	result := NewAnalyzer().Analyze(unit)
	require.Empty(t, result.Orphans)
	assert.Empty(t, result.Unresolved)
}

func TestAnalyzer_OrphanNeverExtended(t *testing.T) {
	// class B extends Unknown { void m() { helper(); } }
	unit := root(
		class("B", []string{"Unknown"},
			method("m", block(ident("helper"))),
		),
	)

	result := NewAnalyzer().Analyze(unit)
	require.Len(t, result.Orphans, 1)
	assert.Contains(t, result.Orphans[0].Pending, "helper")
}

func TestAnalyzer_AmbiguousExtensionIsSilentlyDropped(t *testing.T) {
	// class B extends x.Something, where "x" resolves to a variable, not a
	// class. This should be silently unresolvable, not surfaced as an error
	// or bubbled as an unresolved identifier.
	unit := root(
		variable("x"),
		class("B", []string{"x", "Something"},
			method("m", block(ident("helper"))),
		),
	)

	result := NewAnalyzer().Analyze(unit)
	require.Empty(t, result.Orphans)
	assert.NotContains(t, result.Unresolved, "helper")
}

func TestAnalyzer_ClassBodyIsOrderIndependent(t *testing.T) {
	// class Foo { void a() { b(); } void b() {} }
	unit := root(
		class("Foo", nil,
			method("a", block(ident("b"))),
			method("b"),
		),
	)

	result := NewAnalyzer().Analyze(unit)
	assert.Empty(t, result.Unresolved)
}

func TestAnalyzer_NestedMemberSuperclassWalk(t *testing.T) {
	// class Outer { class Inner {} }
	// class Child extends Outer.Inner {}
	unit := root(
		class("Outer", nil,
			class("Inner", nil),
		),
		class("Child", []string{"Outer", "Inner"}),
	)

	result := NewAnalyzer().Analyze(unit)
	assert.Empty(t, result.Orphans)
}
