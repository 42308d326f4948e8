// Copyright © 2025 The icelang-ls authors

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icelang/icelang-ls/parser"
	"github.com/icelang/icelang-ls/syntax"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Dump the syntax tree of an icelang source file",
	Long: `Parse an icelang source file and print its syntax tree.

The parser never fails: malformed input produces ERROR and missing
nodes, which the dump marks explicitly. This is mainly a debugging aid
for understanding what the analyzer sees.

With no file, reads from stdin.

Examples:
  icelang-ls parse file.ice
  echo 'set x = 1;' | icelang-ls parse`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			src []byte
			err error
		)
		if len(args) == 1 {
			src, err = os.ReadFile(args[0]) //nolint:gosec // CLI tool reads user-specified files
		} else {
			src, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err) //nolint:errcheck // best-effort error display
			os.Exit(2)
		}

		out := bufio.NewWriter(os.Stdout)
		defer out.Flush() //nolint:errcheck // best-effort flush on exit
		dumpTree(out, src, parser.Parse(src))
	},
}

// dumpTree prints the syntax tree with one node per line, indented by
// depth. Positions are 1-based. Leaf nodes show their source text.
func dumpTree(w io.Writer, src []byte, root *syntax.Node) {
	var dump func(n *syntax.Node, depth int)
	dump = func(n *syntax.Node, depth int) {
		fmt.Fprint(w, strings.Repeat("  ", depth)) //nolint:errcheck // best-effort output
		if field := n.Field(); field != "" {
			fmt.Fprintf(w, "%s: ", field) //nolint:errcheck // best-effort output
		}
		rng := n.Range()
		fmt.Fprintf(w, "%s [%d:%d-%d:%d]", n.Kind, //nolint:errcheck // best-effort output
			rng.Start.Line+1, rng.Start.Col+1, rng.End.Line+1, rng.End.Col+1)
		if n.Missing {
			fmt.Fprint(w, " MISSING") //nolint:errcheck // best-effort output
		}
		if n.ChildCount() == 0 && !n.Missing {
			if text := n.Text(src); text != "" {
				fmt.Fprintf(w, " %q", text) //nolint:errcheck // best-effort output
			}
		}
		fmt.Fprintln(w) //nolint:errcheck // best-effort output
		for _, child := range n.Children() {
			dump(child, depth+1)
		}
	}
	dump(root, 0)
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
