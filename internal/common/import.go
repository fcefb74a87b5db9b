package common

// Import is a selector paired with whether it is a static import. The
// selector's rightmost segment is the identifier the import introduces into
// scope, e.g. the import for "java.util.List" has Selector "java.util.List"
// and introduces "List".
type Import struct {
	Selector Selector
	IsStatic bool
}

// NewImport builds an Import from a dotted selector string.
func NewImport(dotted string, isStatic bool) Import {
	return Import{Selector: ParseSelector(dotted), IsStatic: isStatic}
}

// Identifier returns the identifier this import introduces into scope.
func (im Import) Identifier() string {
	return im.Selector.Rightmost()
}

// Equal reports value equality between two imports.
func (im Import) Equal(other Import) bool {
	return im.IsStatic == other.IsStatic && im.Selector.Equal(other.Selector)
}

// String renders the import the way it would appear in source, without the
// trailing semicolon.
func (im Import) String() string {
	if im.IsStatic {
		return "import static " + im.Selector.String()
	}
	return "import " + im.Selector.String()
}
