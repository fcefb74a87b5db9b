// Package sibling implements the sibling-file candidate source: for
// every other parsed file sharing the target file's package, each of its
// top-level declarations contributes a candidate under the package's own
// selector.
package sibling

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"

	"github.com/Songmu/javaimports/internal/candidates"
	"github.com/Songmu/javaimports/internal/common"
	"github.com/Songmu/javaimports/internal/javasyntax"
)

// Source is the sibling-file candidate source for one target file. It is
// built once per fixer invocation and lazily scans the
// target's directory the first time Find is called.
type Source struct {
	fs         afs.Service
	dir        string
	absTarget  string
	pkg        common.Selector
	hasPackage bool

	loaded bool
	byName map[string]common.Import
}

// New creates a Source that will look for sibling .java files alongside
// targetFile using fs, contributing candidates under pkg (the target
// file's own package).
func New(fs afs.Service, targetFile string, pkg common.Selector, hasPackage bool) *Source {
	absTarget, err := filepath.Abs(targetFile)
	if err != nil {
		absTarget = targetFile
	}
	return &Source{
		fs:         fs,
		dir:        filepath.Dir(targetFile),
		absTarget:  absTarget,
		pkg:        pkg,
		hasPackage: hasPackage,
	}
}

// Find implements candidates.Finder.
func (s *Source) Find(ctx context.Context, identifiers map[string]struct{}) (candidates.Candidates, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	out := candidates.New()
	for id := range identifiers {
		imp, ok := s.byName[id]
		if !ok {
			continue
		}
		out.Add(id, candidates.Candidate{Import: imp, Source: candidates.Sibling})
	}
	return out, nil
}

func (s *Source) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	s.byName = map[string]common.Import{}

	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		if !strings.HasSuffix(info.Name(), ".java") {
			return true, nil
		}
		siblingURL := url.Join(baseURL, parent, info.Name())
		if abs, err := filepath.Abs(filepath.Join(s.dir, parent, info.Name())); err == nil && abs == s.absTarget {
			return true, nil
		}

		content, err := s.fs.DownloadWithURL(ctx, siblingURL)
		if err != nil {
			return true, nil // unreadable sibling: skip, don't fail the whole load
		}

		f, err := javasyntax.ParseFile(ctx, siblingURL, content)
		if err != nil {
			return true, nil // malformed sibling: skip
		}
		if f.HasPackage != s.hasPackage || (s.hasPackage && !f.PackageName.Equal(s.pkg)) {
			return true, nil // different package: not a sibling for resolution purposes
		}

		s.collectTopLevelTypes(f)
		return true, nil
	}

	if err := s.fs.Walk(ctx, s.dir, visitor); err != nil {
		return err
	}
	s.loaded = true
	return nil
}

func (s *Source) collectTopLevelTypes(f *javasyntax.File) {
	for _, decl := range f.Package.Children() {
		if decl.Name() == "" {
			continue
		}
		var sel common.Selector
		if s.hasPackage {
			sel = s.pkg.Combine(common.NewSelector(decl.Name()))
		} else {
			sel = common.NewSelector(decl.Name())
		}
		s.byName[decl.Name()] = common.Import{Selector: sel, IsStatic: false}
	}
}
