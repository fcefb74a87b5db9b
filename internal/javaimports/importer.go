// Package javaimports ties the scope analyzer, fixer and rewriter
// together into the single operation the CLI and any other caller needs:
// given a Java source file, determine and insert the imports its
// unresolved identifiers require.
package javaimports

import (
	"context"

	"github.com/Songmu/javaimports/internal/environment/maven"
	"github.com/Songmu/javaimports/internal/fixer"
	"github.com/Songmu/javaimports/internal/javasyntax"
	"github.com/Songmu/javaimports/internal/parsedfile"
	"github.com/Songmu/javaimports/internal/rewriter"
	"github.com/Songmu/javaimports/internal/sibling"
	"github.com/Songmu/javaimports/internal/stdlib"
)

// AddUsedImports determines the imports path's source needs and returns
// the rewritten source with them inserted. A syntactically broken file
// returns a *Diagnostics error and no output, matching ImporterException.
func AddUsedImports(ctx context.Context, path string, src []byte, opts Options) ([]byte, error) {
	log := opts.logger()
	fs := opts.fileSystem()

	file, err := parsedfile.Parse(ctx, path, src)
	if err != nil {
		if parseErr, ok := err.(*javasyntax.ParseError); ok {
			return nil, &Diagnostics{Errors: parseErr.Diagnostics}
		}
		return nil, err
	}

	if file.IsComplete() {
		log.Debug("nothing unresolved", "path", path)
		return src, nil
	}

	fx := fixer.New(fs, file)

	stdlibProvider, err := stdlib.New()
	if err != nil {
		return nil, err
	}
	fx.AddSource(stdlibProvider)
	fx.AddSource(sibling.New(fs, path, file.Package, file.HasPackage))

	mavenEnv := maven.New(fs, path, opts.mavenRepoRoot())
	if err := mavenEnv.ResolveFor(ctx, path); err != nil {
		log.Debug("maven: could not resolve module", "path", path, "error", err)
	} else {
		for _, w := range mavenEnv.Warnings() {
			log.Debug("maven: parent chain warning", "path", path, "error", w)
		}
	}
	fx.AddSource(mavenEnv)

	result, err := fx.TryToFix(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug("load completed", "complete", result.Complete, "fixes", len(result.Fixes))

	if !result.Complete {
		result, err = fx.LastTryToFix(ctx)
		if err != nil {
			return nil, err
		}
		log.Debug("last try completed", "complete", result.Complete, "fixes", len(result.Fixes))
	}

	return rewriter.Rewrite(src, file.Imports, result.Fixes), nil
}
