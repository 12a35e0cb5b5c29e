// Package output provides structured output and error handling for the
// docfx2astro CLI.
//
// Every command works for people at a terminal and for scripts: with --json
// results and errors are written as JSON objects, otherwise they are styled
// with lipgloss when stdout is a terminal.
//
// # Printer
//
//	mode, _ := output.ParseColorMode(colorFlag)
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, mode.Enabled(cmd.OutOrStdout()))
//	printer.Summary(output.RunSummary{Message: "Generated 42 pages", Files: 42})
//	printer.Error(err)
//
// In JSON mode a summary is one object and errors become
// {"error": "message", "code": N}. Human mode prints the summary with
// an assemblies table and lists broken links.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad flags, invalid configuration)
//	output.ExitSystemError // 2: System error (I/O, unparseable metadata file)
//	output.ExitNoInput     // 3: No .yml files under the input directory
//	output.ExitNoContent   // 4: Files loaded but no types found
//	output.ExitCancelled   // 130: Interrupted
//
// # Error Types
//
//	output.NewUserError("--input and --output must differ")
//	output.NewSystemErrorWithCause("failed to write pages", err)
//	output.NewNoInputError("no .yml files found in ./api", err)
//
// The code travels with the error to both the JSON error object and the
// process exit status.
package output
