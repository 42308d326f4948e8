// Copyright © 2025 The icelang-ls authors

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/icelang/icelang-ls/analysis"
	"github.com/icelang/icelang-ls/docs"
)

var docGuide bool

// docCmd represents the doc command
var docCmd = &cobra.Command{
	Use:   "doc [flags] [NAME]",
	Short: "Show documentation for icelang builtin functions",
	Long: `Show documentation for icelang builtin functions.

With no arguments, lists every builtin with a one-line summary. With a
name, shows the full documentation for that builtin. Use --guide to
print the icelang language reference instead.

Examples:
  icelang-ls doc               List all builtin functions
  icelang-ls doc print         Show docs for the print function
  icelang-ls doc parse_number  Show docs for parse_number
  icelang-ls doc --guide       Print the language reference`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := bufio.NewWriter(os.Stdout)
		defer out.Flush() //nolint:errcheck // best-effort flush on exit

		if docGuide {
			fmt.Fprint(out, docs.LangGuide) //nolint:errcheck // best-effort output
			return
		}
		if len(args) == 0 {
			renderBuiltinList(out)
			return
		}
		if err := renderBuiltinDoc(out, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err) //nolint:errcheck // best-effort error display
			out.Flush()                  //nolint:errcheck,gosec // flush before exit
			os.Exit(1)
		}
	},
}

// renderBuiltinList prints every builtin with the first line of its
// documentation.
func renderBuiltinList(w io.Writer) {
	for _, b := range analysis.Builtins() {
		summary := strings.SplitN(b.Doc, "\n", 2)[0]
		fmt.Fprintf(w, "%-28s %s\n", signatureOf(b), summary) //nolint:errcheck // best-effort output
	}
}

// renderBuiltinDoc prints the full documentation for one builtin,
// wrapped and indented for the terminal.
func renderBuiltinDoc(w io.Writer, name string) error {
	b := analysis.LookupBuiltin(name)
	if b == nil {
		return fmt.Errorf("unknown builtin %q (run \"icelang-ls doc\" to list builtins)", name)
	}
	fmt.Fprintf(w, "%s\n\n", signatureOf(*b)) //nolint:errcheck // best-effort output
	body := indent.String(wordwrap.String(b.Doc, 72), 2)
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	fmt.Fprint(w, body) //nolint:errcheck // best-effort output
	return nil
}

func signatureOf(b analysis.Builtin) string {
	return b.Name + "(" + strings.Join(b.Params, ", ") + ")"
}

func init() {
	rootCmd.AddCommand(docCmd)

	docCmd.Flags().BoolVarP(&docGuide, "guide", "g", false,
		"Print the icelang language reference.")
}
