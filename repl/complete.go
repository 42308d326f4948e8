// Copyright © 2025 The icelang-ls authors

package repl

import (
	"sort"
	"strings"
	"sync"

	"github.com/icelang/icelang-ls/analysis"
)

// completer implements readline.AutoCompleter over builtin functions,
// language keywords and the declarations from the most recent snippet.
type completer struct {
	mu    sync.Mutex
	decls []string
}

func newCompleter() *completer {
	return &completer{}
}

// setDeclarations replaces the session declaration names offered in
// addition to builtins and keywords.
func (c *completer) setDeclarations(names []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decls = names
}

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the word being typed (backwards from cursor to a
	// non-identifier character).
	start := pos
	for start > 0 {
		ch := line[start-1]
		if !isWordChar(ch) {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	candidates := c.collectNames(prefix)
	if len(candidates) == 0 {
		return nil, 0
	}

	// Each entry is the suffix to append after the prefix.
	result := make([][]rune, 0, len(candidates))
	for _, name := range candidates {
		result = append(result, []rune(name[len(prefix):]))
	}
	return result, len(prefix)
}

func (c *completer) collectNames(prefix string) []string {
	seen := make(map[string]bool)
	var result []string
	add := func(name string) {
		if strings.HasPrefix(name, prefix) && !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	for _, b := range analysis.Builtins() {
		add(b.Name)
	}
	for _, kw := range analysis.Keywords {
		add(kw)
	}

	c.mu.Lock()
	for _, name := range c.decls {
		add(name)
	}
	c.mu.Unlock()

	sort.Strings(result)
	return result
}

func isWordChar(ch rune) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}
