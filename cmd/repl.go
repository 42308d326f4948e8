// Copyright © 2025 The icelang-ls authors

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/icelang/icelang-ls/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive diagnostics playground",
	Long: `Start an interactive prompt that parses and analyzes each submitted
snippet and renders the resulting diagnostics. Nothing is evaluated; the
REPL exists to explore what the analyzer reports for a given piece of
code.

Line editing, in-session history and builtin-name completion are
supported via readline. Use Ctrl-D to exit.

Example session:
  ice> set x = 1; print(x);
  x: Number
  ice> set x = y;
  error: Undeclared identifier 'y'
  ice> print(1);
  ok`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.Run("ice> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
