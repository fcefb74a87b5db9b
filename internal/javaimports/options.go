package javaimports

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/viant/afs"
)

// Options configures one AddUsedImports run. There are no environment
// variables and no persisted state; everything the tool needs comes
// through here or through the file itself.
type Options struct {
	// Debug makes the default logger (used when Logger is nil) log at
	// slog.LevelDebug, surfacing load results and POM warnings that are
	// otherwise swallowed (Fixer.java's options.debug() gate). It has no
	// effect on a caller-supplied Logger.
	Debug bool

	// Logger receives debug output. Defaults to a discard logger, unless
	// Debug is set, in which case the default writes to stderr instead.
	Logger *slog.Logger

	// MavenRepoRoot is the local Maven repository root dependency jars are
	// read from. Defaults to "~/.m2/repository".
	MavenRepoRoot string

	// fs lets tests substitute an in-memory afs.Service; production callers
	// never set it.
	fs afs.Service
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(defaultLoggerWriter(o.Debug), &slog.HandlerOptions{Level: debugLevel(o.Debug)}))
}

func defaultLoggerWriter(debug bool) io.Writer {
	if debug {
		return os.Stderr
	}
	return discard{}
}

func debugLevel(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func (o Options) fileSystem() afs.Service {
	if o.fs != nil {
		return o.fs
	}
	return afs.New()
}

func (o Options) mavenRepoRoot() string {
	if o.MavenRepoRoot != "" {
		return o.MavenRepoRoot
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".m2", "repository")
	}
	return filepath.Join(home, ".m2", "repository")
}

// discard is an io.Writer that drops everything written to it, used as the
// default debug-logger sink when the caller provides none.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
