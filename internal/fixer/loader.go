package fixer

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"

	"github.com/Songmu/javaimports/internal/javasyntax"
	"github.com/Songmu/javaimports/internal/parsedfile"
	"github.com/Songmu/javaimports/internal/scope"
)

// Loader resolves as many of a file's orphan classes as it can using the
// source of sibling files in the same package, before the fixer commits to
// a candidate search (`Loader.of`/`loader.load()` in the original). A
// class whose superclass is itself declared in another file never gets a
// local scope-close retry since the analyzer only ever sees one file; the
// Loader is what lets that retry happen across files.
type Loader struct {
	fs     afs.Service
	file   *parsedfile.ParsedFile
	absSrc string

	loaded   bool
	siblings map[string]*scope.ClassEntity // class simple name -> its members, across every sibling file
}

// NewLoader creates a Loader for file, whose source lives at file.Path.
// Sibling files are discovered by walking file.Path's directory with fs.
func NewLoader(fs afs.Service, file *parsedfile.ParsedFile) *Loader {
	abs, err := filepath.Abs(file.Path)
	if err != nil {
		abs = file.Path
	}
	return &Loader{fs: fs, file: file, absSrc: abs}
}

// Load scans sibling files once and attempts to extend every orphan that
// remains on file after the in-file scope analysis. It is idempotent: a
// second call is a no-op.
func (l *Loader) Load(ctx context.Context) error {
	if l.loaded {
		return nil
	}
	if err := l.loadSiblingClasses(ctx); err != nil {
		return err
	}
	l.extendOrphans()
	l.loaded = true
	return nil
}

// Orphans returns the orphans that survived cross-file extension: those
// whose superclass could not be found among the file's siblings either.
func (l *Loader) Orphans() []*scope.ClassEntity {
	var remaining []*scope.ClassEntity
	for _, o := range l.file.Orphans {
		if o.IsOrphan() {
			remaining = append(remaining, o)
		}
	}
	return remaining
}

func (l *Loader) loadSiblingClasses(ctx context.Context) error {
	l.siblings = map[string]*scope.ClassEntity{}
	if !l.file.HasPackage {
		return nil
	}

	dir := filepath.Dir(l.file.Path)
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		if !strings.HasSuffix(info.Name(), ".java") {
			return true, nil
		}
		siblingURL := url.Join(baseURL, parent, info.Name())
		if abs, err := filepath.Abs(filepath.Join(dir, parent, info.Name())); err == nil && abs == l.absSrc {
			return true, nil
		}

		content, err := l.fs.DownloadWithURL(ctx, siblingURL)
		if err != nil {
			return true, nil
		}

		f, err := javasyntax.ParseFile(ctx, siblingURL, content)
		if err != nil {
			return true, nil
		}
		if f.HasPackage != l.file.HasPackage || !f.PackageName.Equal(l.file.Package) {
			return true, nil
		}

		result := scope.NewAnalyzer().Analyze(f.Package)
		for _, class := range result.TopLevel {
			l.siblings[class.Name] = class
		}
		return true, nil
	}

	return l.fs.Walk(ctx, dir, visitor)
}

// extendOrphans retries every orphan's superclass lookup against the
// siblings collected by loadSiblingClasses. An orphan whose superclass
// selector's leftmost segment names a sibling class is resolved the same
// way an in-file extension is: its still-pending identifiers
// that name one of the sibling's members are dropped, and HasSuperclass is
// cleared. Anything left pending is handled later by the candidate search
// itself, on the theory that an inherited member this loader could not
// place is no worse off than any other unresolved identifier.
func (l *Loader) extendOrphans() {
	for _, orphan := range l.file.Orphans {
		if !orphan.IsOrphan() {
			continue
		}
		segments := orphan.Superclass.Segments()
		if len(segments) == 0 {
			continue
		}
		parent, ok := l.siblings[segments[0]]
		if !ok {
			continue
		}

		for id := range orphan.Pending {
			if _, isMember := parent.Members[id]; isMember {
				delete(orphan.Pending, id)
			}
		}
		orphan.HasSuperclass = false
	}
}
