package common

import "fmt"

// Diagnostic is a single fatal parse error, reported the way the underlying
// parser locates it: a 1-based line and column plus a human-readable
// message.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: error: %s", d.Line, d.Column, d.Message)
}
