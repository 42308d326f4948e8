// Copyright © 2025 The icelang-ls authors

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/icelang/icelang-ls/analysis"
	"github.com/icelang/icelang-ls/parser"
)

var checkExcludes []string

var checkCmd = &cobra.Command{
	Use:   "check [flags] [files...]",
	Short: "Analyze icelang source files and report findings",
	Long: `Run the icelang analyzer over source files and report all findings.

Each file is parsed with the error-tolerant parser and analyzed in a
single pass. Findings are rendered as annotated source snippets: syntax
errors and name errors as errors, discarded expression results as
warnings, unused or unreachable code as hints.

With no files, reads from stdin. A directory argument ending in "/..."
expands to all .ice files found recursively beneath it.

Exit codes:
  0  No errors (warnings and hints may still have been reported)
  1  One or more errors were reported
  2  Bad invocation (invalid flags, unreadable files)

Examples:
  icelang-ls check file.ice                  Check a single file
  icelang-ls check ./...                     Check all .ice files recursively
  icelang-ls check --exclude=vendor ./...    Exclude a directory by name
  cat file.ice | icelang-ls check            Check from stdin`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			if checkStdin() {
				os.Exit(1)
			}
			return
		}

		expanded, err := expandArgs(args, checkExcludes)
		if err != nil {
			fmt.Fprintln(os.Stderr, err) //nolint:errcheck // best-effort error display
			os.Exit(2)
		}

		failed := false
		for _, path := range expanded {
			src, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified files
			if err != nil {
				fmt.Fprintln(os.Stderr, err) //nolint:errcheck // best-effort error display
				os.Exit(2)
			}
			if checkSource(path, src) {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

// checkStdin analyzes source read from stdin and reports whether any
// errors were found.
func checkStdin() bool {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading stdin: %v\n", err) //nolint:errcheck // best-effort error display
		os.Exit(2)
	}
	return checkSource("<stdin>", src)
}

// checkSource analyzes one source buffer, renders its diagnostics, and
// reports whether any had error severity.
func checkSource(path string, src []byte) bool {
	tree := parser.Parse(src)
	result := analysis.Analyze(src, tree)
	if len(result.Diagnostics) == 0 {
		return false
	}
	renderAnalysisDiagnostics(path, src, result.Diagnostics)
	for _, d := range result.Diagnostics {
		if d.Severity == analysis.SeverityError {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringArrayVar(&checkExcludes, "exclude", nil,
		"Glob pattern for files to exclude (may be repeated).")
}
