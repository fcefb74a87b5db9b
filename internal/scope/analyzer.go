// Package scope implements the scope graph and deferred-extension engine:
// it walks an astwalk.Node tree in source order, opening and closing
// lexical scopes, and computes the set of identifiers used but not declared
// in the file, deferring superclass resolution across the whole file when
// needed.
package scope

import (
	"github.com/Songmu/javaimports/internal/astwalk"
	"github.com/Songmu/javaimports/internal/common"
)

// Result is what the analyzer has left once the whole file has been walked:
// the identifiers that never resolved, plus any class whose superclass was
// never found anywhere in the file.
type Result struct {
	Unresolved map[string]struct{}
	Orphans    []*ClassEntity

	// TopLevel holds every class declared directly in the compilation
	// unit, orphan or not. A resolved class's Members are otherwise
	// invisible once its body scope closes; callers that need to extend an
	// orphan in a different file against this file's declarations (the
	// fixer's cross-file loader) use this instead of Orphans.
	TopLevel []*ClassEntity
}

// Analyzer walks one compilation unit's AST and produces a Result.
type Analyzer struct {
	current *Scope
}

// NewAnalyzer creates an Analyzer with a fresh top scope.
func NewAnalyzer() *Analyzer {
	return &Analyzer{current: newScope(nil)}
}

// Analyze walks root and returns the file's unresolved set and orphan
// classes. root is expected to be the body of the compilation unit: the
// extends clause and, by construction, the package/import declarations are
// handled outside the scope graph and never reach this walk.
func (a *Analyzer) Analyze(root astwalk.Node) Result {
	for _, child := range root.Children() {
		a.visit(child)
	}
	return a.finish()
}

func (a *Analyzer) visit(n astwalk.Node) {
	switch n.Kind() {
	case astwalk.KindClass:
		a.visitClass(n)
	case astwalk.KindMethod:
		a.visitMethod(n)
	case astwalk.KindVariable:
		a.visitVariable(n)
	case astwalk.KindIdentifier:
		a.resolve(n.Name())
	case astwalk.KindBlock, astwalk.KindFor, astwalk.KindEnhancedFor,
		astwalk.KindTry, astwalk.KindCatch, astwalk.KindSwitch, astwalk.KindLambda:
		a.pushScope(nil)
		a.visitChildren(n)
		a.closeScope(nil)
	default:
		a.visitChildren(n)
	}
}

func (a *Analyzer) visitChildren(n astwalk.Node) {
	for _, c := range n.Children() {
		a.visit(c)
	}
}

// visitClass records a class binding in the enclosing scope, registers the
// enclosing scope's not-yet-extended set if there is an extends clause, then
// opens a fresh scope for the class body. The extends clause itself is never
// scanned for identifier references.
func (a *Analyzer) visitClass(n astwalk.Node) {
	name := n.Name()

	var superclass common.Selector
	hasSuperclass := false
	if segments, ok := n.Superclass(); ok && len(segments) > 0 {
		superclass = common.NewSelector(segments...)
		hasSuperclass = true
	}

	class := newClassEntity(name, superclass, hasSuperclass)
	a.current.insert(name, &entity{kind: entityClass, name: name, class: class})
	if hasSuperclass {
		a.current.markNotYetExtended(class)
	}

	a.pushScope(class)
	a.visitChildren(n)
	a.closeScope(class)
}

// visitMethod records a method binding in the enclosing scope, then opens a
// fresh scope for the method body (parameters land in it, since they are
// children of the method node processed after the push).
func (a *Analyzer) visitMethod(n astwalk.Node) {
	name := n.Name()
	a.current.insert(name, &entity{kind: entityMethod, name: name})

	a.pushScope(nil)
	a.visitChildren(n)
	a.closeScope(nil)
}

// visitVariable records a binding in the current scope, then descends into
// the declaration's children (e.g. an initializer expression) in that same
// scope — a variable declaration does not open a scope of its own.
func (a *Analyzer) visitVariable(n astwalk.Node) {
	name := n.Name()
	a.current.insert(name, &entity{kind: entityVariable, name: name})
	a.visitChildren(n)
}

// resolve walks from the current scope upward through parent links. If any
// scope contains a binding for identifier, it is resolved. Otherwise it is
// added to the current scope's not-yet-resolved set.
func (a *Analyzer) resolve(identifier string) {
	for s := a.current; s != nil; s = s.parent {
		if _, ok := s.lookup(identifier); ok {
			return
		}
	}
	a.current.markUnresolved(identifier)
}

func (a *Analyzer) pushScope(assoc *ClassEntity) {
	s := newScope(a.current)
	s.assocClass = assoc
	if assoc != nil {
		assoc.bodyScope = s
	}
	a.current = s
}

// closeScope implements the scope-close procedure for a non-root
// scope. a.current is the scope being closed; a.current.parent must be
// non-nil (the root scope is closed separately by finish).
func (a *Analyzer) closeScope(class *ClassEntity) {
	s := a.current
	parent := s.parent

	extendOrphans(s, parent)

	if class != nil {
		finalizeClass(class, s)
		if class.IsOrphan() {
			// A class awaiting extension neither retries resolution nor
			// bubbles anything: its pending set stays with it, to be
			// consulted once (if ever) its superclass is found.
			a.current = parent
			return
		}

		for id := range s.notYetResolved {
			if _, ok := s.lookup(id); ok {
				continue
			}
			parent.markUnresolved(id)
		}
		a.current = parent
		return
	}

	for id := range s.notYetResolved {
		parent.markUnresolved(id)
	}
	a.current = parent
}

// finish closes out the top scope at end of file: one last attempt to extend
// any orphans declared directly at the top level (since top-level classes
// can extend siblings declared later in the same file), then reports the
// remaining unresolved set plus the pending sets of whatever orphans
// survive.
func (a *Analyzer) finish() Result {
	top := a.current
	extendOrphans(top, nil)

	result := Result{Unresolved: map[string]struct{}{}}
	for id := range top.notYetResolved {
		result.Unresolved[id] = struct{}{}
	}
	result.Orphans = top.notYetExtended
	result.TopLevel = topLevelClasses(top)
	return result
}

// topLevelClasses collects every class bound directly in s, in no
// particular order.
func topLevelClasses(s *Scope) []*ClassEntity {
	var out []*ClassEntity
	for _, e := range s.entities {
		if e.kind == entityClass {
			out = append(out, e.class)
		}
	}
	return out
}

// extendOrphans attempts superclass lookups for scope s, closing over parent (nil when
// s is the top scope: orphans that can't be placed stay in s itself rather
// than being propagated anywhere, and the pending identifiers an extended
// class's superclass does not declare are added to s's own not-yet-resolved
// set, which finish() reports as the file's unresolved set).
func extendOrphans(s, parent *Scope) {
	var stillOrphaned []*ClassEntity
	for _, child := range s.notYetExtended {
		switch found, status := findSuperclass(s, child); status {
		case lookupDeferred:
			if parent != nil {
				parent.markNotYetExtended(child)
			} else {
				stillOrphaned = append(stillOrphaned, child)
			}
		case lookupBad:
			// Ambiguous or broken extension: silently treated as
			// unresolvable, nothing further happens to child.
		case lookupFound:
			for id := range child.Pending {
				if _, isMember := found.Members[id]; isMember {
					continue
				}
				if parent != nil {
					parent.markUnresolved(id)
				} else {
					s.markUnresolved(id)
				}
			}
			child.HasSuperclass = false
		}
	}
	s.notYetExtended = stillOrphaned
}

// finalizeClass captures a class's declared members and pending-resolution
// set from its now-closing body scope. This happens for every class, orphan
// or not: membership never depends on superclass resolution.
func finalizeClass(class *ClassEntity, body *Scope) {
	for name, e := range body.entities {
		if e.kind == entityVariable || e.kind == entityMethod || e.kind == entityClass {
			class.Members[name] = struct{}{}
		}
	}
	for id := range body.notYetResolved {
		class.Pending[id] = struct{}{}
	}
}

type lookupStatus int

const (
	lookupDeferred lookupStatus = iota
	lookupBad
	lookupFound
)

// findSuperclass implements the lookup from the original Scope.findParent:
// walk child's superclass selector segments one at a time,
// starting in s, and descending into each found class's own body scope for
// the next segment.
func findSuperclass(s *Scope, child *ClassEntity) (*ClassEntity, lookupStatus) {
	segments := child.Superclass.Segments()
	toScan := s

	var found *entity
	for i, seg := range segments {
		e, ok := toScan.lookup(seg)
		if !ok {
			if i == 0 {
				return nil, lookupDeferred
			}
			return nil, lookupBad
		}
		if e.kind != entityClass {
			return nil, lookupBad
		}
		found = e
		toScan = e.class.bodyScope
		if toScan == nil {
			return nil, lookupBad
		}
	}

	return found.class, lookupFound
}
