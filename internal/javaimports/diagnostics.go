package javaimports

import (
	"strings"

	"github.com/Songmu/javaimports/internal/common"
)

// Diagnostics reports one or more fatal parse errors, the equivalent of
// the original tool's ImporterException: a file that cannot be parsed at
// all produces no fix, only this.
type Diagnostics struct {
	Errors []common.Diagnostic
}

func (d *Diagnostics) Error() string {
	parts := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		parts[i] = e.String()
	}
	return strings.Join(parts, "\n")
}
