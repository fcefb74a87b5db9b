package javasyntax

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/Songmu/javaimports/internal/astwalk"
	"github.com/Songmu/javaimports/internal/common"
)

// File is a parsed Java compilation unit: its package selector, the imports
// it already declares, and the astwalk.Node tree the scope analyzer walks.
type File struct {
	Package astwalk.Node // root node, for walking (never nil on success)
	PackageName common.Selector
	HasPackage  bool
	Imports     []common.Import
}

// ParseError reports one or more fatal parse errors, formatted the way the
// original tool's CLI prints them (line:column: error: message).
type ParseError struct {
	Diagnostics []common.Diagnostic
}

func (e *ParseError) Error() string {
	parts := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		parts[i] = d.String()
	}
	return strings.Join(parts, "\n")
}

// ParseFile parses filename's Java source and returns its File. filename is
// only used for diagnostics; parsing itself is purely a function of src.
func ParseFile(ctx context.Context, filename string, src []byte) (*File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(language())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if diags := collectErrors(root, src); len(diags) > 0 {
		return nil, &ParseError{Diagnostics: diags}
	}

	b := &builder{src: src}

	f := &File{}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			if nameNode := child.NamedChild(0); nameNode != nil {
				f.PackageName = common.ParseSelector(nameNode.Content(src))
				f.HasPackage = true
			}
		case "import_declaration":
			if imp, ok := parseImportDeclaration(child, src); ok {
				f.Imports = append(f.Imports, imp)
			}
		}
	}

	f.Package = b.buildRoot(root)
	return f, nil
}

// parseImportDeclaration extracts a single import_declaration's selector and
// static/wildcard flags. Its shape varies with tree-sitter-java's grammar
// (a plain name, a scoped name, or a scope plus a trailing asterisk for a
// wildcard import), so segments are gathered generically rather than by
// assuming one fixed structure.
func parseImportDeclaration(n *sitter.Node, src []byte) (common.Import, bool) {
	isStatic := false
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "static" {
			isStatic = true
			break
		}
	}

	var segments []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		segments = append(segments, importSegments(n.NamedChild(i), src)...)
	}
	if len(segments) == 0 {
		return common.Import{}, false
	}

	dotted := strings.Join(segments, ".")
	return common.NewImport(dotted, isStatic), true
}

func importSegments(n *sitter.Node, src []byte) []string {
	switch n.Type() {
	case "scoped_identifier":
		var out []string
		for i := 0; i < int(n.NamedChildCount()); i++ {
			out = append(out, importSegments(n.NamedChild(i), src)...)
		}
		return out
	case "asterisk":
		return []string{"*"}
	case "identifier":
		return []string{n.Content(src)}
	default:
		return nil
	}
}

// collectErrors walks the tree looking for ERROR nodes or missing tokens,
// the way tree-sitter surfaces a syntactically broken file, and reports
// each as a common.Diagnostic using tree-sitter's 0-based point converted
// to the 1-based line:column convention the original CLI prints.
func collectErrors(n *sitter.Node, src []byte) []common.Diagnostic {
	var diags []common.Diagnostic
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if n.IsMissing() {
			p := n.StartPoint()
			diags = append(diags, common.Diagnostic{
				Line:    int(p.Row) + 1,
				Column:  int(p.Column) + 1,
				Message: fmt.Sprintf("missing %s", n.Type()),
			})
		} else if n.IsError() {
			p := n.StartPoint()
			diags = append(diags, common.Diagnostic{
				Line:    int(p.Row) + 1,
				Column:  int(p.Column) + 1,
				Message: fmt.Sprintf("unexpected token %q", n.Content(src)),
			})
			return // don't descend into an error node's own garbled children
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(n)
	return diags
}
