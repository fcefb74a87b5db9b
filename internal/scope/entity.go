package scope

import "github.com/Songmu/javaimports/internal/common"

// entityKind tags what a Scope binding stands for.
type entityKind int

const (
	entityVariable entityKind = iota
	entityMethod
	entityClass
)

// entity is a binding recorded in a Scope: a name resolving to a variable, a
// method, or a class. Only class bindings carry extra state (*ClassEntity).
type entity struct {
	kind  entityKind
	name  string
	class *ClassEntity
}

// ClassEntity is a Java class, with a name, the identifiers it declares as
// members, and maybe a superclass selector that may be partly unresolved at
// creation time.
//
// A ClassEntity is closed only once either it has no superclass, or its
// superclass has itself been closed and its pending set reduced using the
// parent's members — see extendOrphans in analyzer.go.
type ClassEntity struct {
	Name string

	// Members is the set of identifiers this class declares (fields,
	// methods, nested classes). It is populated when the class's own body
	// scope closes, regardless of whether the class is an orphan.
	Members map[string]struct{}

	// Superclass is this class's `extends` selector. It is only meaningful
	// when HasSuperclass is true, and may reference segments not yet seen
	// anywhere in the file. It is cleared (HasSuperclass set to false) once
	// the class has been successfully extended.
	Superclass    common.Selector
	HasSuperclass bool

	// Pending is the set of identifiers used inside this class's body that
	// were not resolved against the class's own scope nor any ancestor
	// scope observed while the class's body was open. It is only
	// meaningful — and only consulted by anyone — while the class remains
	// an orphan (HasSuperclass still true).
	Pending map[string]struct{}

	// bodyScope is the scope opened for this class's body. It lets a
	// descendant's superclass-selector walk descend into a class's members
	// one segment at a time (A.B.C: find A, then look up B among A's own
	// declared entities, then C among B's).
	bodyScope *Scope
}

func newClassEntity(name string, superclass common.Selector, hasSuperclass bool) *ClassEntity {
	return &ClassEntity{
		Name:          name,
		Members:       map[string]struct{}{},
		Pending:       map[string]struct{}{},
		Superclass:    superclass,
		HasSuperclass: hasSuperclass,
	}
}

// IsOrphan reports whether this class still awaits resolution of its
// superclass.
func (c *ClassEntity) IsOrphan() bool {
	return c.HasSuperclass
}
