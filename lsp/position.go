// Copyright © 2025 The icelang-ls authors

package lsp

import (
	"strings"

	"github.com/icelang/icelang-ls/syntax"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Analysis positions are 0-based line/column pairs, the same convention
// the protocol uses, so conversion is a representation change only.

func toProtocolPosition(p syntax.Position) protocol.Position {
	return protocol.Position{
		Line:      safeUint(p.Line),
		Character: safeUint(p.Col),
	}
}

func fromProtocolPosition(p protocol.Position) syntax.Position {
	return syntax.Position{
		Line: int(p.Line),
		Col:  int(p.Character),
	}
}

func toProtocolRange(r syntax.Range) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(r.Start),
		End:   toProtocolPosition(r.End),
	}
}

// safeUint converts a non-negative int to protocol.UInteger, clamping
// negative values to zero.
func safeUint(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	return protocol.UInteger(n) // #nosec G115 -- line/col are always small positive ints
}

// completionPrefix returns the partial identifier strictly before the
// given 0-based position. Text after the cursor never narrows
// completion results.
func completionPrefix(content string, line, col int) string {
	lines := strings.Split(content, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	ln := lines[line]
	if col < 0 || col > len(ln) {
		return ""
	}
	start := col
	for start > 0 && isIdentChar(ln[start-1]) {
		start--
	}
	return ln[start:col]
}

// wordAtPosition extracts the identifier under the given 0-based position
// in content. The cursor can be inside or at the end of a word; in both
// cases the full word is returned.
func wordAtPosition(content string, line, col int) string {
	lines := strings.Split(content, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	ln := lines[line]
	if col < 0 || col > len(ln) {
		return ""
	}
	start := col
	for start > 0 && isIdentChar(ln[start-1]) {
		start--
	}
	end := col
	for end < len(ln) && isIdentChar(ln[end]) {
		end++
	}
	return ln[start:end]
}

func isIdentChar(c byte) bool {
	if c >= 'a' && c <= 'z' {
		return true
	}
	if c >= 'A' && c <= 'Z' {
		return true
	}
	if c >= '0' && c <= '9' {
		return true
	}
	return c == '_'
}

// uriToPath converts a file:// URI to a filesystem path for display in
// log lines.
func uriToPath(uri string) string {
	if path, ok := strings.CutPrefix(uri, "file://"); ok {
		return path
	}
	return uri
}
