package maven

import "strings"

// FlatPom is an in-memory projection of a POM: its declared dependencies,
// its managed dependencies, its property map, and an optional parent-POM
// path. FlatPom is well-defined iff every declared dependency is resolved.
type FlatPom struct {
	Declared   []Coordinate
	Managed    []Coordinate
	Properties map[string]string
	ParentPath string
	HasParent  bool
}

// IsWellDefined reports whether every declared dependency has a literal,
// non-placeholder version.
func (f *FlatPom) IsWellDefined() bool {
	for _, d := range f.Declared {
		if !d.IsResolved() {
			return false
		}
	}
	return true
}

// Builder collects FlatPom's four optional inputs and applies its build
// semantics: enrich from managed dependencies, then substitute properties.
type Builder struct {
	declared   []Coordinate
	managed    []Coordinate
	properties map[string]string
	parentPath string
	hasParent  bool
}

// NewFlatPomBuilder creates an empty Builder.
func NewFlatPomBuilder() *Builder {
	return &Builder{properties: map[string]string{}}
}

func (b *Builder) WithDeclaredDependencies(deps []Coordinate) *Builder {
	b.declared = deps
	return b
}

func (b *Builder) WithManagedDependencies(deps []Coordinate) *Builder {
	b.managed = deps
	return b
}

func (b *Builder) WithProperties(props map[string]string) *Builder {
	if props != nil {
		b.properties = props
	}
	return b
}

func (b *Builder) WithParentPath(path string) *Builder {
	b.parentPath = path
	b.hasParent = path != ""
	return b
}

// Build applies the enrichment and substitution steps in order and returns
// the resulting FlatPom.
func (b *Builder) Build() *FlatPom {
	f := &FlatPom{
		Declared:   append([]Coordinate{}, b.declared...),
		Managed:    append([]Coordinate{}, b.managed...),
		Properties: b.properties,
		ParentPath: b.parentPath,
		HasParent:  b.hasParent,
	}
	enrichFromManaged(f.Declared, f.Managed)
	substituteProperties(f.Declared, f.Properties)
	return f
}

// enrichFromManaged: for each declared dependency with an empty or
// placeholder version, copy the version from a managed dependency with a
// matching (groupId, artifactId, type, classifier) key. Collisions inside the managed
// list are permitted without error — the first match wins.
func enrichFromManaged(declared, managed []Coordinate) {
	byKey := make(map[string]string, len(managed))
	for _, m := range managed {
		if _, exists := byKey[m.managementKey()]; !exists {
			byKey[m.managementKey()] = m.Version
		}
	}
	for i := range declared {
		if declared[i].IsResolved() {
			continue
		}
		if v, ok := byKey[declared[i].managementKey()]; ok {
			declared[i].Version = v
		}
	}
}

// substituteProperties: a version of the exact form `${name}` is replaced
// with properties[name] when defined; any other
// shape (including one with a placeholder embedded inside a larger
// string) is left untouched, since Maven's own property interpolation
// this tool models is only ever used this way for version coordinates.
func substituteProperties(declared []Coordinate, properties map[string]string) {
	for i := range declared {
		v := declared[i].Version
		if !strings.HasPrefix(v, "${") || !strings.HasSuffix(v, "}") {
			continue
		}
		name := v[2 : len(v)-1]
		if resolved, ok := properties[name]; ok {
			declared[i].Version = resolved
		}
	}
}

// Merge folds other (the parent POM) into f in place. If f is already
// well-defined the merge is a no-op. Otherwise the
// parent's declared dependencies are appended after f's own (child
// dependencies win ties during later lookups simply by appearing first),
// its managed dependencies are appended to f's, properties are unioned
// with f winning on conflict, and enrichment/substitution are re-run on the
// combined state. f's parent path is finally replaced by other's, so the
// next iteration of the walker climbs one more level.
func (f *FlatPom) Merge(other *FlatPom) {
	if f.IsWellDefined() {
		return
	}

	f.Declared = append(f.Declared, other.Declared...)
	f.Managed = append(f.Managed, other.Managed...)

	merged := make(map[string]string, len(f.Properties)+len(other.Properties))
	for k, v := range other.Properties {
		merged[k] = v
	}
	for k, v := range f.Properties {
		merged[k] = v
	}
	f.Properties = merged

	enrichFromManaged(f.Declared, f.Managed)
	substituteProperties(f.Declared, f.Properties)

	f.ParentPath = other.ParentPath
	f.HasParent = other.HasParent
}
