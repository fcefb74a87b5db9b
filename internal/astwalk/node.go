// Package astwalk defines the minimal AST shape the scope analyzer needs to
// walk, decoupled from any concrete parser. This is the "Parser contract" of
// the system: javasyntax builds these nodes from a real tree-sitter Java
// tree, but the analyzer in package scope never imports tree-sitter.
//
// The traversal is a polymorphic walker over tagged-variant nodes with a
// per-kind hook plus a generic descend, the shape design note 2 describes.
package astwalk

// Kind tags the AST constructs the scope analyzer cares about. Every other
// Java construct (expressions that are not identifier references, literals,
// annotations, …) is represented as KindOther and only ever descended into.
type Kind int

const (
	KindOther Kind = iota
	// KindBlock, KindFor, KindEnhancedFor, KindTry, KindCatch, KindSwitch and
	// KindLambda all open a fresh lexical scope on entry and close it on exit.
	KindBlock
	KindFor
	KindEnhancedFor
	KindTry
	KindCatch
	KindSwitch
	KindLambda
	// KindClass opens a scope for the class body and additionally registers
	// a binding for itself in the *enclosing* scope.
	KindClass
	// KindMethod opens a scope for the method body; it also registers a
	// binding for itself in the enclosing (class) scope.
	KindMethod
	// KindVariable declares a binding in the current scope; it does not open
	// a scope of its own.
	KindVariable
	// KindIdentifier is a reference to some previously (or not yet)
	// declared entity.
	KindIdentifier
)

// Node is one construct in the AST, source order preserved in Children.
type Node interface {
	// Kind tags which of the constructs the analyzer special-cases this
	// node is, or KindOther if the analyzer should just descend into it.
	Kind() Kind

	// Name is the declared or referenced identifier for
	// KindClass/KindMethod/KindVariable/KindIdentifier nodes. It is empty
	// for every other kind.
	Name() string

	// Superclass returns the selector segments of a KindClass node's
	// `extends` clause, and whether it has one at all. It is deliberately
	// not scanned for identifier references by the analyzer: the
	// analyzer reads this once, when it registers the class in its
	// enclosing scope's not-yet-extended set, and never descends into it.
	Superclass() ([]string, bool)

	// Children returns this node's children in source order. For
	// KindClass/KindMethod nodes, Children is the body: the analyzer pushes
	// a scope before descending into them and pops it on return.
	Children() []Node
}
