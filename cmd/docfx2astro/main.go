// Package main provides the entry point for the docfx2astro CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/docfx2astro/internal/config"
	"github.com/gorewood/docfx2astro/internal/envfile"
	"github.com/gorewood/docfx2astro/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorMode reads the --color persistent flag.
func colorMode(cmd *cobra.Command) (output.ColorMode, error) {
	flag := cmd.Root().PersistentFlags().Lookup("color")
	if flag == nil {
		return output.ColorAuto, nil
	}
	return output.ParseColorMode(flag.Value.String())
}

// useColor reports whether human output on the command's stdout is styled.
func useColor(cmd *cobra.Command) bool {
	mode, err := colorMode(cmd)
	if err != nil {
		return false
	}
	return mode.Enabled(cmd.OutOrStdout())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the docfx2astro CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docfx2astro",
		Short: "Generate Astro Starlight API reference pages from docfx metadata",
		Long: `docfx2astro - Turn docfx ManagedReference YAML into Markdown pages for Astro Starlight.

It reads the metadata docfx writes for a .NET project, resolves every
cross-reference, and writes one page per type plus an index per assembly:
  - Summaries, remarks and signatures converted to Markdown
  - Links between types rewritten to site-relative slugs
  - Obsolete types flagged with caution or danger callouts

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'docfx2astro --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Settings that cannot be exported to the shell live in .env files.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		_ = envfile.LoadDefaults(config.Dir())
		if _, err := colorMode(cmd); err != nil {
			exitErr := output.NewUserError(err.Error())
			output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false).WithStderr(cmd.ErrOrStderr()).Error(exitErr)
			return exitErr
		}
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
