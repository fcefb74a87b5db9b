package fixer

import "github.com/Songmu/javaimports/internal/common"

// Result is the outcome of one fixer pass: either complete (every
// unresolved identifier got an import, or there was nothing to fix) or
// incomplete, carrying whatever fixes were found so far.
type Result struct {
	Complete bool
	Fixes    []common.Import
}

func complete(fixes ...common.Import) Result {
	return Result{Complete: true, Fixes: fixes}
}

func incomplete(fixes ...common.Import) Result {
	return Result{Complete: false, Fixes: fixes}
}
