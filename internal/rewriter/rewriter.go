// Package rewriter implements the import insertion step: given a source
// file and the imports the fixer chose, it inserts them at the right place
// in the source text and returns the rewritten file. This package works at
// the text level rather than re-emitting the file from a parsed structure,
// favoring a minimally invasive rewrite over a full regeneration when only
// a small region of a file changes.
package rewriter

import (
	"sort"
	"strings"

	"github.com/Songmu/javaimports/internal/common"
)

const newline = "\n"

// Rewrite inserts fixes into src immediately after the existing import
// block (or after the package declaration, or at the top of the file, in
// that order of preference), skipping any fix whose selector src already
// imports. Imports are grouped the conventional way: regular imports
// first, in lexicographic selector order, then a blank line, then static
// imports in the same order.
func Rewrite(src []byte, existing []common.Import, fixes []common.Import) []byte {
	toInsert := newImports(existing, fixes)
	if len(toInsert) == 0 {
		return src
	}

	lines := strings.Split(string(src), newline)
	insertAt, blankBefore := insertionPoint(lines)

	block := renderImportBlock(toInsert)
	if blankBefore {
		block = append([]string{""}, block...)
	}

	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:insertAt]...)
	out = append(out, block...)
	out = append(out, lines[insertAt:]...)
	return []byte(strings.Join(out, newline))
}

// newImports filters fixes down to the ones whose selector is not already
// imported by existing (static or not), deduplicating fixes against each
// other too.
func newImports(existing, fixes []common.Import) []common.Import {
	seen := make(map[string]struct{}, len(existing))
	for _, imp := range existing {
		seen[imp.Selector.String()] = struct{}{}
	}

	var out []common.Import
	for _, fix := range fixes {
		key := fix.Selector.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, fix)
	}
	return out
}

// insertionPoint finds the line index to insert a new import block at, and
// whether a blank line must precede it (always when inserting right after a
// package declaration, never otherwise).
func insertionPoint(lines []string) (index int, blankBefore bool) {
	lastImport := -1
	packageLine := -1

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "import "):
			lastImport = i
		case strings.HasPrefix(trimmed, "package ") && packageLine == -1:
			packageLine = i
		}
	}

	if lastImport >= 0 {
		return lastImport + 1, false
	}
	if packageLine >= 0 {
		return packageLine + 1, true
	}
	return 0, false
}

// renderImportBlock renders toInsert as source lines, regular imports
// first (lexicographic), then a blank separator, then static imports
// (lexicographic) — omitting the separator if one group is empty.
func renderImportBlock(imports []common.Import) []string {
	var regular, static []common.Import
	for _, imp := range imports {
		if imp.IsStatic {
			static = append(static, imp)
		} else {
			regular = append(regular, imp)
		}
	}

	sortBySelector(regular)
	sortBySelector(static)

	var out []string
	for _, imp := range regular {
		out = append(out, imp.String()+";")
	}
	if len(regular) > 0 && len(static) > 0 {
		out = append(out, "")
	}
	for _, imp := range static {
		out = append(out, imp.String()+";")
	}
	return out
}

func sortBySelector(imports []common.Import) {
	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Selector.String() < imports[j].Selector.String()
	})
}
