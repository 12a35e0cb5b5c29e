package main

import (
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/docfx2astro/internal/config"
	docfxmcp "github.com/gorewood/docfx2astro/internal/mcp"
	"github.com/gorewood/docfx2astro/internal/output"
	"github.com/gorewood/docfx2astro/internal/pipeline"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	opts := config.Default()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Load the docfx metadata under --input once and serve it as a Model Context
Protocol (MCP) server over stdio. Nothing is written to disk.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "docfx2astro": {
        "command": "docfx2astro",
        "args": ["serve", "--input", "api"]
      }
    }
  }

Available tools: status, lookup_reference, format_text, list_types, render_type`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.InputDir, "input", "i", "", "Directory containing docfx metadata (.yml)")
	cmd.Flags().StringVar(&opts.BaseSlug, "base-slug", opts.BaseSlug, "Slug prefix used by render_type")
	cmd.Flags().BoolVar(&opts.SkipInvalid, "skip-invalid", false, "Skip unparseable files instead of aborting")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log debug details to stderr")
	return cmd
}

// runServe loads the corpus and blocks serving MCP requests on stdio.
// stdout carries the protocol, so diagnostics only go to stderr.
func runServe(cmd *cobra.Command, opts config.Options) error {
	printer := output.NewPrinter(cmd.ErrOrStderr(), false, false)

	if strings.TrimSpace(opts.InputDir) == "" {
		err := output.NewUserError("an input directory is required (--input)")
		printer.Error(err)
		return err
	}
	if !cmd.Flags().Changed("base-slug") {
		env := config.Default()
		if err := env.ApplyEnv(os.LookupEnv); err != nil {
			exitErr := output.NewUserError(err.Error())
			printer.Error(exitErr)
			return exitErr
		}
		opts.BaseSlug = env.BaseSlug
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	corpus, err := pipeline.LoadCorpus(cmd.Context(), opts.InputDir, opts.SkipInvalid, logger)
	if err != nil {
		exitErr := runError(err, opts)
		printer.Error(exitErr)
		return exitErr
	}

	server := docfxmcp.NewServer(buildVersion(), corpus, opts.BaseSlug)
	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}
