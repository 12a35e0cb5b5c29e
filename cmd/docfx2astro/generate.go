package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gorewood/docfx2astro/internal/config"
	"github.com/gorewood/docfx2astro/internal/docfx"
	"github.com/gorewood/docfx2astro/internal/doctree"
	"github.com/gorewood/docfx2astro/internal/output"
	"github.com/gorewood/docfx2astro/internal/pipeline"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	opts := config.Default()
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render docfx metadata into Markdown pages",
		Long: `Render the docfx metadata under --input into Markdown pages under --output.

Every .yml file below the input directory is loaded (toc.yml is ignored).
The output directory is emptied first unless --dont-clear is given; nothing
is removed when the input cannot be loaded.

Environment:
  DOCFX2ASTRO_BASE_SLUG   default for --base-slug
  DOCFX2ASTRO_WORKERS     default for --workers

Examples:
  docfx2astro generate -i api -o src/content/docs/reference
  docfx2astro generate -i api -o docs/api --base-slug api --check-links
  docfx2astro generate -i api -o docs/api --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.InputDir, "input", "i", "", "Directory containing docfx metadata (.yml)")
	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "Directory to write Markdown pages to")
	cmd.Flags().StringVar(&opts.BaseSlug, "base-slug", opts.BaseSlug, "Slug prefix of every generated page")
	cmd.Flags().BoolVar(&opts.DontClear, "dont-clear", false, "Keep existing files in the output directory")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log debug details to stderr")
	cmd.Flags().IntVar(&opts.Workers, "workers", opts.Workers, "Number of pages rendered in parallel")
	cmd.Flags().BoolVar(&opts.SkipInvalid, "skip-invalid", false, "Skip unparseable files instead of aborting")
	cmd.Flags().BoolVar(&opts.CheckLinks, "check-links", false, "Report links to pages that were not generated")
	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, flagOpts config.Options) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	opts, err := resolveOptions(cmd, flagOpts, os.LookupEnv)
	if err != nil {
		printer.Error(err)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	result, err := pipeline.Run(ctx, opts, logger)
	if err != nil {
		exitErr := runError(err, opts)
		printer.Error(exitErr)
		return exitErr
	}

	return printGenerateResult(printer, opts, result)
}

// resolveOptions layers environment defaults under explicitly set flags and
// validates the result.
func resolveOptions(cmd *cobra.Command, flagOpts config.Options, lookup func(string) (string, bool)) (config.Options, error) {
	opts := flagOpts
	env := config.Default()
	if err := env.ApplyEnv(lookup); err != nil {
		return opts, output.NewUserError(err.Error())
	}
	if !cmd.Flags().Changed("base-slug") {
		opts.BaseSlug = env.BaseSlug
	}
	if !cmd.Flags().Changed("workers") {
		opts.Workers = env.Workers
	}
	if err := opts.Validate(); err != nil {
		return opts, output.NewUserError(err.Error())
	}
	return opts, nil
}

// newLogger builds the diagnostics logger. Verbose enables debug events.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// runError maps a load or generate failure to an exit error.
func runError(err error, opts config.Options) *output.ExitError {
	var parseErr *docfx.ParseError
	switch {
	case errors.Is(err, context.Canceled):
		return output.NewCancelledError(err)
	case errors.Is(err, docfx.ErrNoInput):
		return output.NewNoInputError(fmt.Sprintf("no .yml files found in %s", opts.InputDir), err)
	case errors.Is(err, fs.ErrNotExist) && !dirExists(opts.InputDir):
		return output.NewNoInputError(fmt.Sprintf("input directory %s does not exist", opts.InputDir), err)
	case errors.Is(err, doctree.ErrNoContent):
		return output.NewNoContentError(fmt.Sprintf("no types found in %s", opts.InputDir), err)
	case errors.As(err, &parseErr):
		return output.NewSystemErrorWithCause(parseErr.Error(), err)
	default:
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// printGenerateResult reports a finished run.
func printGenerateResult(printer *output.Printer, opts config.Options, result *pipeline.Result) error {
	summary := output.RunSummary{
		Message:   fmt.Sprintf("Generated %d pages for %d types in %s", result.Files, result.Types, opts.OutputDir),
		Documents: result.Documents,
		Skipped:   result.Skipped,
		Types:     result.Types,
		Files:     result.Files,
	}
	for _, asm := range result.Assemblies {
		summary.Assemblies = append(summary.Assemblies, output.AssemblyCount{Name: asm.Name, Types: asm.Types})
	}
	for _, b := range result.BrokenLinks {
		summary.BrokenLinks = append(summary.BrokenLinks, output.BrokenLink{File: b.File, Target: b.Target, Slug: b.Slug})
	}
	return printer.Summary(summary)
}
