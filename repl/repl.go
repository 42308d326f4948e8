// Copyright © 2025 The icelang-ls authors

package repl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ergochat/readline"

	"github.com/icelang/icelang-ls/analysis"
	"github.com/icelang/icelang-ls/parser"
	"github.com/icelang/icelang-ls/parser/token"
)

type config struct {
	stdin  io.ReadCloser
	stderr io.WriteCloser
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output to the REPL.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// Run starts an interactive diagnostics playground. Each submitted
// snippet is parsed and analyzed; diagnostics are rendered as annotated
// source snippets, clean snippets echo the declarations they introduce.
// Nothing is evaluated.
func Run(prompt string, opts ...Option) {
	cfg := newConfig(opts...)

	var out io.Writer = os.Stderr
	if cfg.stderr != nil {
		out = cfg.stderr
	}

	completer := newCompleter()
	histFile := historyPath()
	ensureHistoryFilePermissions(histFile)

	rlCfg := &readline.Config{
		Stdout:            out,
		Stderr:            out,
		Prompt:            prompt,
		HistoryFile:       histFile,
		HistorySearchFold: true,
		AutoComplete:      completer,
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	contPrompt := contPromptFor(prompt)

	for {
		snippet, err := readSnippet(rl, prompt, contPrompt)
		if err == io.EOF {
			break
		}
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			break
		}
		if len(snippet) == 0 {
			continue
		}

		tree := parser.Parse(snippet)
		result := analysis.Analyze(snippet, tree)
		completer.setDeclarations(declarationNames(result))

		if len(result.Diagnostics) > 0 {
			renderDiagnostics(out, snippet, result.Diagnostics)
			continue
		}
		reportClean(out, result)
	}
}

// readSnippet reads one logical snippet, prompting for continuation lines
// while delimiters remain open.
func readSnippet(rl *readline.Instance, prompt, cont string) ([]byte, error) {
	var snippet []byte
	rl.SetPrompt(prompt)
	for {
		line, err := rl.ReadSlice()
		if err != nil {
			return nil, err
		}
		line = bytes.TrimRight(line, " \t\r\n")
		if len(snippet) == 0 && len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if len(snippet) > 0 {
			snippet = append(snippet, '\n')
		}
		snippet = append(snippet, line...)
		if !needsMore(snippet) {
			return snippet, nil
		}
		rl.SetPrompt(cont)
	}
}

// needsMore reports whether the snippet has unclosed delimiters and the
// user should be offered a continuation line.
func needsMore(src []byte) bool {
	depth := 0
	for _, tok := range token.NewScanner(src).ScanAll() {
		switch tok.Type {
		case token.LPAREN, token.LBRACE, token.LBRACKET:
			depth++
		case token.RPAREN, token.RBRACE, token.RBRACKET:
			if depth > 0 {
				depth--
			}
		}
	}
	return depth > 0
}

// reportClean prints the declarations a clean snippet introduced, or a
// plain acknowledgement when it declared nothing.
func reportClean(w io.Writer, result *analysis.Result) {
	count := 0
	for _, d := range result.Declarations.All() {
		if d.Builtin || d.IsParam || d.Scope != nil {
			continue
		}
		fmt.Fprintln(w, d.Signature()) //nolint:errcheck // best-effort REPL output
		count++
	}
	if count == 0 {
		fmt.Fprintln(w, "ok") //nolint:errcheck // best-effort REPL output
	}
}

func declarationNames(result *analysis.Result) []string {
	var names []string
	for _, d := range result.Declarations.All() {
		if d.Builtin || d.IsParam || d.Scope != nil {
			continue
		}
		names = append(names, d.Name)
	}
	return names
}

func contPromptFor(prompt string) string {
	cont := make([]byte, len(prompt))
	for i := range cont {
		cont[i] = ' '
	}
	if len(cont) >= 2 {
		cont[len(cont)-2] = '.'
	}
	return string(cont)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".icelang_ls_history")
}

// ensureHistoryFilePermissions creates the history file if needed and
// restricts it to owner read/write. History may contain source the user
// considers private.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0600) //nolint:gosec // user's own history file
	if err == nil {
		f.Close() //nolint:errcheck,gosec // best-effort cleanup
	}
	_ = os.Chmod(path, 0600)
}
