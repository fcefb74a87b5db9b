package maven

import (
	"os"
	"path/filepath"
)

// findModuleRoot walks upward from startDir looking for a pom.xml, the way
// a Maven module's own directory is discovered. It returns the directory
// containing the first pom.xml found, or "" if none exists between startDir
// and the filesystem root.
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "pom.xml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// moduleRootFor returns the directory Maven would treat as this file's
// module root: the nearest ancestor directory (starting from the file's own
// directory) containing a pom.xml.
func moduleRootFor(javaFile string) string {
	abs, err := filepath.Abs(javaFile)
	if err != nil {
		abs = javaFile
	}
	return findModuleRoot(filepath.Dir(abs))
}
