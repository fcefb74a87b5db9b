// Package javasyntax builds an astwalk.Node tree from a real Java source
// file, using tree-sitter's Java grammar. This is the only package that
// imports github.com/smacker/go-tree-sitter: everything downstream (package
// scope) only ever sees the astwalk contract.
package javasyntax

import (
	sitter "github.com/smacker/go-tree-sitter"
	tsjava "github.com/smacker/go-tree-sitter/java"

	"github.com/Songmu/javaimports/internal/astwalk"
)

// node implements astwalk.Node. Its children are computed once, when the
// node is built, and stored; it keeps no reference to the underlying
// *sitter.Node.
type node struct {
	kind       astwalk.Kind
	name       string
	superclass []string
	children   []astwalk.Node
}

func (n *node) Kind() astwalk.Kind               { return n.kind }
func (n *node) Name() string                     { return n.name }
func (n *node) Children() []astwalk.Node         { return n.children }
func (n *node) Superclass() ([]string, bool) {
	if n.superclass == nil {
		return nil, false
	}
	return n.superclass, true
}

func leaf(kind astwalk.Kind, name string) *node {
	return &node{kind: kind, name: name}
}

// builder turns a tree-sitter tree into astwalk.Node trees. It keeps the
// source bytes around for Content() lookups.
type builder struct {
	src []byte
}

// buildRoot builds the top-level children of a "program" node: the type
// declarations a Java compilation unit holds, skipping the package and
// import declarations (those are extracted separately; the scope graph
// never sees them).
func (b *builder) buildRoot(program *sitter.Node) astwalk.Node {
	root := &node{kind: astwalk.KindOther}
	for i := 0; i < int(program.NamedChildCount()); i++ {
		child := program.NamedChild(i)
		switch child.Type() {
		case "package_declaration", "import_declaration":
			continue
		}
		root.children = append(root.children, b.expandChild(child)...)
	}
	return root
}

// typeDeclarationTypes are the tree-sitter node types that introduce a Java
// type, all of which the analyzer treats uniformly as KindClass: member
// lookup and (for classes only) the deferred extends clause work the same
// way regardless of which kind of type declares them.
var typeDeclarationTypes = map[string]bool{
	"class_declaration":           true,
	"interface_declaration":       true,
	"enum_declaration":            true,
	"record_declaration":          true,
	"annotation_type_declaration": true,
}

// skipTypes are tree-sitter node types the analyzer has no use for and that
// carry no identifier references worth resolving: comments, type parameter
// lists, and the literal punctuation nodes tree-sitter sometimes surfaces
// as named children. A modifiers node is not skipped: its keywords are
// anonymous nodes, and its named children are the annotations on the
// declaration, which expandAnnotation turns into references.
var skipTypes = map[string]bool{
	"line_comment":     true,
	"block_comment":    true,
	"type_parameters":  true,
	"asterisk":         true,
	";":                true,
}

// build dispatches a single tree-sitter node to its astwalk.Node
// representation. Callers that already know a node is a declaration name,
// or otherwise want it excluded from its parent's generic children, must
// not call build on it.
func (b *builder) build(n *sitter.Node) astwalk.Node {
	switch {
	case typeDeclarationTypes[n.Type()]:
		return b.buildType(n)
	case n.Type() == "method_declaration" || n.Type() == "constructor_declaration":
		return b.buildMethod(n)
	case n.Type() == "block" || n.Type() == "constructor_body":
		return b.buildBlock(n)
	case n.Type() == "for_statement":
		return b.buildFor(n)
	case n.Type() == "enhanced_for_statement":
		return b.buildEnhancedFor(n)
	case n.Type() == "try_statement" || n.Type() == "try_with_resources_statement":
		return b.buildTry(n)
	case n.Type() == "catch_clause":
		return b.buildCatch(n)
	case n.Type() == "switch_expression" || n.Type() == "switch_statement":
		return b.buildSwitch(n)
	case n.Type() == "lambda_expression":
		return b.buildLambda(n)
	case n.Type() == "identifier" || n.Type() == "type_identifier":
		return leaf(astwalk.KindIdentifier, n.Content(b.src))
	default:
		return &node{kind: astwalk.KindOther, children: b.genericChildren(n)}
	}
}

// genericChildren flattens n's named children through expandChild, the
// generic "descend transparently" behavior astwalk.KindOther documents.
func (b *builder) genericChildren(n *sitter.Node) []astwalk.Node {
	var out []astwalk.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		out = append(out, b.expandChild(n.NamedChild(i))...)
	}
	return out
}

// expandChild maps one tree-sitter node to zero or more astwalk.Node
// children. Most node types map to exactly one (via build); a handful need
// to expand to several (a field declaration with multiple declarators) or
// to none (a fully-qualified name needs no identifier resolution, since it
// already names everything it needs without an import).
func (b *builder) expandChild(n *sitter.Node) []astwalk.Node {
	if skipTypes[n.Type()] {
		return nil
	}

	switch n.Type() {
	case "field_declaration", "local_variable_declaration":
		return b.expandVariableDeclaration(n)
	case "scoped_type_identifier", "scoped_identifier":
		if ref, ok := b.scopedReference(n); ok {
			return []astwalk.Node{ref}
		}
		return nil
	case "annotation", "marker_annotation":
		return b.expandAnnotation(n)
	case "method_invocation":
		return b.expandMethodInvocation(n)
	case "field_access":
		return b.expandFieldAccess(n)
	}

	return []astwalk.Node{b.build(n)}
}

// expandVariableDeclaration turns a field_declaration/local_variable_declaration
// into one KindVariable per declarator (Java allows `int a, b = 1;`), each
// carrying the shared type as a reference child plus its own initializer.
func (b *builder) expandVariableDeclaration(n *sitter.Node) []astwalk.Node {
	typeNode := n.ChildByFieldName("type")

	var out []astwalk.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		decl := n.NamedChild(i)
		if decl.Type() != "variable_declarator" {
			continue
		}
		nameNode := decl.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		v := &node{kind: astwalk.KindVariable, name: nameNode.Content(b.src)}
		if typeNode != nil {
			v.children = append(v.children, b.expandChild(typeNode)...)
		}
		if valueNode := decl.ChildByFieldName("value"); valueNode != nil {
			v.children = append(v.children, b.expandChild(valueNode)...)
		}
		out = append(out, v)
	}
	return out
}

// expandAnnotation turns an annotation use into a reference to its type
// name plus whatever its argument expressions reference — annotations need
// imports too.
func (b *builder) expandAnnotation(n *sitter.Node) []astwalk.Node {
	var out []astwalk.Node
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		out = append(out, b.expandChild(nameNode)...)
	}
	if argsNode := n.ChildByFieldName("arguments"); argsNode != nil {
		out = append(out, b.genericChildren(argsNode)...)
	}
	return out
}

// expandMethodInvocation descends into a call's receiver and arguments. A
// qualified call (`shared.size()`) references "shared" (the receiver), not
// "size" (a member resolved by the receiver's type, which this tool never
// computes). An unqualified call (`emptyList()`) has no receiver to carry
// that reference, so its name is a free identifier instead — it may resolve
// to a static import, the way the file's own static imports do.
func (b *builder) expandMethodInvocation(n *sitter.Node) []astwalk.Node {
	var out []astwalk.Node
	if obj := n.ChildByFieldName("object"); obj != nil {
		out = append(out, b.expandChild(obj)...)
	} else if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		out = append(out, leaf(astwalk.KindIdentifier, nameNode.Content(b.src)))
	}
	if typeArgs := n.ChildByFieldName("type_arguments"); typeArgs != nil {
		out = append(out, b.genericChildren(typeArgs)...)
	}
	if args := n.ChildByFieldName("arguments"); args != nil {
		out = append(out, b.genericChildren(args)...)
	}
	return out
}

// expandFieldAccess descends into `obj.field`'s receiver only, for the same
// reason expandMethodInvocation skips the method name: "field" names a
// member of whatever "object" turns out to be, not a free identifier.
func (b *builder) expandFieldAccess(n *sitter.Node) []astwalk.Node {
	obj := n.ChildByFieldName("object")
	if obj == nil {
		return nil
	}
	return b.expandChild(obj)
}

// scopedReference decides what a dotted name (scoped_type_identifier or
// scoped_identifier) needs resolved. A name whose leading segment starts
// lowercase is already a fully-qualified reference (a package prefix) and
// needs no import. Otherwise only the leftmost segment is a free
// reference — it is the outer class (or variable) the rest of the chain is
// a member of.
func (b *builder) scopedReference(n *sitter.Node) (astwalk.Node, bool) {
	segments := flattenDottedName(n, b.src)
	if len(segments) == 0 {
		return nil, false
	}
	head := segments[0]
	if head == "" || !isUpper(head[0]) {
		return nil, false
	}
	return leaf(astwalk.KindIdentifier, head), true
}

// flattenDottedName walks a left-recursive scoped_type_identifier /
// scoped_identifier chain and returns its segments in source order.
func flattenDottedName(n *sitter.Node, src []byte) []string {
	switch n.Type() {
	case "scoped_type_identifier", "scoped_identifier":
		var out []string
		for i := 0; i < int(n.NamedChildCount()); i++ {
			out = append(out, flattenDottedName(n.NamedChild(i), src)...)
		}
		return out
	case "identifier", "type_identifier":
		return []string{n.Content(src)}
	case "annotation", "marker_annotation":
		return nil
	default:
		return nil
	}
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

// buildType builds a KindClass node for any Java type declaration. Only
// class_declaration's superclass field feeds Superclass(): interfaces are
// ordinary references resolved immediately, not deferred — the extends
// clause is the only thing skipped from the walk.
func (b *builder) buildType(n *sitter.Node) astwalk.Node {
	nameNode := n.ChildByFieldName("name")
	name := ""
	if nameNode != nil {
		name = nameNode.Content(b.src)
	}

	out := &node{kind: astwalk.KindClass, name: name}

	if n.Type() == "class_declaration" {
		if sc := n.ChildByFieldName("superclass"); sc != nil {
			typeNode := sc.ChildByFieldName("type")
			if typeNode == nil && sc.NamedChildCount() > 0 {
				typeNode = sc.NamedChild(0)
			}
			if typeNode != nil {
				if segs := flattenDottedName(typeNode, b.src); len(segs) > 0 {
					out.superclass = segs
				} else {
					out.superclass = []string{typeNode.Content(b.src)}
				}
			}
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if sameNode(child, nameNode) {
			continue
		}
		if n.Type() == "class_declaration" && child.Type() == "superclass" {
			continue
		}
		out.children = append(out.children, b.expandChild(child)...)
	}
	return out
}

// buildMethod builds a KindMethod node for a method or constructor. Its
// name, return type, parameter types and throws clause are all reference
// children (save for the name itself); its body block opens its own scope
// nested inside the one the parameters land in, so the parameters are
// visible throughout the body.
func (b *builder) buildMethod(n *sitter.Node) astwalk.Node {
	nameNode := n.ChildByFieldName("name")
	name := ""
	if nameNode != nil {
		name = nameNode.Content(b.src)
	}

	out := &node{kind: astwalk.KindMethod, name: name}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if sameNode(child, nameNode) {
			continue
		}
		if child.Type() == "formal_parameters" {
			out.children = append(out.children, b.buildParameters(child)...)
			continue
		}
		out.children = append(out.children, b.expandChild(child)...)
	}
	return out
}

func (b *builder) buildParameters(n *sitter.Node) []astwalk.Node {
	var out []astwalk.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		p := n.NamedChild(i)
		switch p.Type() {
		case "formal_parameter", "spread_parameter":
			out = append(out, b.buildParameter(p))
		}
	}
	return out
}

func (b *builder) buildParameter(n *sitter.Node) astwalk.Node {
	nameNode := n.ChildByFieldName("name")
	name := ""
	if nameNode != nil {
		name = nameNode.Content(b.src)
	}
	v := &node{kind: astwalk.KindVariable, name: name}
	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		v.children = append(v.children, b.expandChild(typeNode)...)
	}
	return v
}

func (b *builder) buildBlock(n *sitter.Node) astwalk.Node {
	return &node{kind: astwalk.KindBlock, children: b.genericChildren(n)}
}

// buildFor builds a KindFor node. A C-style for's init clause can itself
// declare variables, which must land in the for loop's own scope, not the
// enclosing one — hence the scope is opened here rather than by the
// analyzer's generic KindBlock case reusing this node's children directly.
func (b *builder) buildFor(n *sitter.Node) astwalk.Node {
	out := &node{kind: astwalk.KindFor}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		out.children = append(out.children, b.expandChild(n.NamedChild(i))...)
	}
	return out
}

// buildEnhancedFor builds a KindEnhancedFor node: `for (Type x : expr) body`.
// The loop variable is declared first so it is visible in both the iterable
// expression's resolution attempt and the body — harmless since the
// iterable referencing it is not valid Java anyway, but it keeps the shape
// uniform with every other declare-then-use construct.
func (b *builder) buildEnhancedFor(n *sitter.Node) astwalk.Node {
	out := &node{kind: astwalk.KindEnhancedFor}

	nameNode := n.ChildByFieldName("name")
	name := ""
	if nameNode != nil {
		name = nameNode.Content(b.src)
	}
	v := &node{kind: astwalk.KindVariable, name: name}
	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		v.children = append(v.children, b.expandChild(typeNode)...)
	}
	out.children = append(out.children, v)

	if valueNode := n.ChildByFieldName("value"); valueNode != nil {
		out.children = append(out.children, b.expandChild(valueNode)...)
	}
	if bodyNode := n.ChildByFieldName("body"); bodyNode != nil {
		out.children = append(out.children, b.expandChild(bodyNode)...)
	}
	return out
}

func (b *builder) buildTry(n *sitter.Node) astwalk.Node {
	out := &node{kind: astwalk.KindTry}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "resource_specification":
			out.children = append(out.children, b.buildResources(child)...)
		default:
			out.children = append(out.children, b.expandChild(child)...)
		}
	}
	return out
}

func (b *builder) buildResources(n *sitter.Node) []astwalk.Node {
	var out []astwalk.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		r := n.NamedChild(i)
		if r.Type() != "resource" {
			out = append(out, b.expandChild(r)...)
			continue
		}
		nameNode := r.ChildByFieldName("name")
		if nameNode == nil {
			out = append(out, b.expandChild(r)...)
			continue
		}
		v := &node{kind: astwalk.KindVariable, name: nameNode.Content(b.src)}
		if typeNode := r.ChildByFieldName("type"); typeNode != nil {
			v.children = append(v.children, b.expandChild(typeNode)...)
		}
		if valueNode := r.ChildByFieldName("value"); valueNode != nil {
			v.children = append(v.children, b.expandChild(valueNode)...)
		}
		out = append(out, v)
	}
	return out
}

// buildCatch builds a KindCatch node. Multi-catch (`catch (A | B e)`) lists
// every union member as a reference; only the caught variable is a
// declaration.
func (b *builder) buildCatch(n *sitter.Node) astwalk.Node {
	out := &node{kind: astwalk.KindCatch}

	param := n.ChildByFieldName("parameter")
	if param != nil {
		nameNode := param.ChildByFieldName("name")
		name := ""
		if nameNode != nil {
			name = nameNode.Content(b.src)
		}
		v := &node{kind: astwalk.KindVariable, name: name}
		for i := 0; i < int(param.NamedChildCount()); i++ {
			c := param.NamedChild(i)
			if sameNode(c, nameNode) {
				continue
			}
			v.children = append(v.children, b.expandChild(c)...)
		}
		out.children = append(out.children, v)
	}

	if bodyNode := n.ChildByFieldName("body"); bodyNode != nil {
		out.children = append(out.children, b.expandChild(bodyNode)...)
	}
	return out
}

func (b *builder) buildSwitch(n *sitter.Node) astwalk.Node {
	return &node{kind: astwalk.KindSwitch, children: b.genericChildren(n)}
}

// buildLambda builds a KindLambda node. Lambda parameters are untyped
// (type inference), so each is just a declared name; a single bare
// identifier parameter (`x -> x.foo()`, no parens) is represented the same
// way tree-sitter gives it to us — as the "parameters" field directly
// holding an identifier rather than a formal_parameters list.
func (b *builder) buildLambda(n *sitter.Node) astwalk.Node {
	out := &node{kind: astwalk.KindLambda}

	params := n.ChildByFieldName("parameters")
	if params != nil {
		switch params.Type() {
		case "identifier":
			out.children = append(out.children, &node{kind: astwalk.KindVariable, name: params.Content(b.src)})
		case "formal_parameters":
			out.children = append(out.children, b.buildParameters(params)...)
		case "inferred_parameters":
			for i := 0; i < int(params.NamedChildCount()); i++ {
				p := params.NamedChild(i)
				out.children = append(out.children, &node{kind: astwalk.KindVariable, name: p.Content(b.src)})
			}
		}
	}

	if bodyNode := n.ChildByFieldName("body"); bodyNode != nil {
		out.children = append(out.children, b.expandChild(bodyNode)...)
	}
	return out
}

func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

// language exposes the tree-sitter Java grammar, kept as a single point of
// reference so file.go and tests share the exact same binding.
func language() *sitter.Language { return tsjava.GetLanguage() }
