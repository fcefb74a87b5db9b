// Command javaimports determines and inserts the import statements a Java
// source file's unresolved identifiers need.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		var real *realFailure
		if errors.As(err, &real) {
			os.Exit(1)
		}

		// Every other error (a bad flag, a missing file argument) is a
		// usage problem; always exit 0 for those.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(0)
	}
}
