// Copyright © 2025 The icelang-ls authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/icelang/icelang-ls/lsp"
)

var (
	lspStdio   bool
	lspPort    int
	lspLogFile string
	lspVerbose int
	lspTrace   bool
)

var lspCmd = &cobra.Command{
	Use:   "lsp [flags]",
	Short: "Start the icelang Language Server Protocol server",
	Long: `Start an LSP server for icelang source files.

The language server provides real-time diagnostics, completion, hover
documentation and document symbols. Every document change is re-parsed
and re-analyzed synchronously and the resulting diagnostics are pushed
to the client.

Transport modes:
  --stdio      Use stdin/stdout for LSP communication (default)
  --port N     Listen for an LSP client on TCP port N

With stdio transport stdout carries the wire protocol, so logs go to
stderr or, with --log, to a file.

Examples:
  icelang-ls lsp                         Start with stdio transport
  icelang-ls lsp --stdio                 Same as above (explicit)
  icelang-ls lsp --port 7998             Start with TCP on port 7998
  icelang-ls lsp -vv --log /tmp/ls.log   Debug logging to a file

Editor configuration (VS Code):
  Install a generic LSP client extension and configure it to run
  "icelang-ls lsp --stdio" for .ice files.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		var logPath *string
		if lspLogFile != "" {
			logPath = &lspLogFile
		}
		commonlog.Configure(lspVerbose, logPath)

		if err := lsp.RegisterViews(); err != nil {
			fmt.Fprintf(os.Stderr, "registering metric views: %v\n", err) //nolint:errcheck // best-effort error display
			os.Exit(1)
		}

		if lspTrace {
			shutdown := setupTracing()
			defer shutdown()
		}

		srv := lsp.New(lspVerbose > 1)

		if !lspStdio && lspPort > 0 {
			addr := fmt.Sprintf("localhost:%d", lspPort)
			if err := srv.RunTCP(addr); err != nil {
				fmt.Fprintf(os.Stderr, "lsp server error: %v\n", err) //nolint:errcheck // best-effort error display
				os.Exit(1)
			}
		} else {
			if err := srv.RunStdio(); err != nil {
				fmt.Fprintf(os.Stderr, "lsp server error: %v\n", err) //nolint:errcheck // best-effort error display
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(lspCmd)

	lspCmd.Flags().BoolVar(&lspStdio, "stdio", false,
		"Use stdin/stdout for LSP communication (default behavior)")
	lspCmd.Flags().IntVar(&lspPort, "port", 0,
		"TCP port for LSP server (use instead of --stdio)")
	lspCmd.Flags().StringVar(&lspLogFile, "log", "",
		"Write logs to a file instead of stderr")
	lspCmd.Flags().CountVarP(&lspVerbose, "verbose", "v",
		"Increase log verbosity (repeatable)")
	lspCmd.Flags().BoolVar(&lspTrace, "trace", false,
		"Trace the parse/analyze pipeline through the log")
}
