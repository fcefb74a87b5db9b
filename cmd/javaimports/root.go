package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Songmu/javaimports/internal/javaimports"
)

// version is set via build-time ldflags; stays "dev" outside a release build.
var version = "dev"

// realFailure marks an error that actually comes from processing the file
// (a read failure or a parser diagnostic), as opposed to a usage problem —
// only this case exits 1.
type realFailure struct {
	err error
}

func (r *realFailure) Error() string { return r.err.Error() }
func (r *realFailure) Unwrap() error { return r.err }

func newRootCommand() *cobra.Command {
	var showVersion bool
	var debug bool

	cmd := &cobra.Command{
		Use:           "javaimports <file>",
		Short:         "Insert the import statements a Java file's unresolved identifiers need",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(cmd.ErrOrStderr(), versionString())
				return nil
			}
			if len(args) == 0 {
				return errors.New("please provide a file")
			}
			return run(cmd, args[0], debug)
		},
	}

	cmd.Flags().BoolVar(&showVersion, "version", false, "print the version and exit")
	cmd.Flags().BoolVar(&debug, "debug", false, "log fixer load results and Maven resolution warnings")

	return cmd
}

// versionString matches CLI.versionString()'s format.
func versionString() string {
	return "javaimports: Version " + version
}

func run(cmd *cobra.Command, path string, debug bool) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: could not read file: %s\n", path, err)
		return &realFailure{err}
	}

	fixed, err := javaimports.AddUsedImports(cmd.Context(), path, src, javaimports.Options{
		Debug:  debug,
		Logger: logger,
	})
	if err != nil {
		var diags *javaimports.Diagnostics
		if errors.As(err, &diags) {
			for _, d := range diags.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), d.String())
			}
			return &realFailure{err}
		}
		return &realFailure{err}
	}

	fmt.Fprint(cmd.OutOrStdout(), string(fixed))
	return nil
}
