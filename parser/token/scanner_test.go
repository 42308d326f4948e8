// Copyright © 2025 The icelang-ls authors

package token

import (
	"testing"

	"github.com/icelang/icelang-ls/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanTypes is a test helper returning token types for source, without
// the trailing EOF.
func scanTypes(t *testing.T, source string) []Type {
	t.Helper()
	var types []Type
	for _, tok := range NewScanner([]byte(source)).ScanAll() {
		if tok.Type == EOF {
			break
		}
		types = append(types, tok.Type)
	}
	return types
}

func TestScanner_Statement(t *testing.T) {
	types := scanTypes(t, "set x = 1;")
	assert.Equal(t, []Type{SET, IDENT, ASSIGN, NUMBER, SEMI}, types)
}

func TestScanner_Keywords(t *testing.T) {
	types := scanTypes(t, "null true false set function lambda for in to while loop if else match continue break return")
	assert.Equal(t, []Type{
		NULL, TRUE, FALSE, SET, FUNCTION, LAMBDA, FOR, IN, TO,
		WHILE, LOOP, IF, ELSE, MATCH, CONTINUE, BREAK, RETURN,
	}, types)
}

func TestScanner_Identifiers(t *testing.T) {
	toks := NewScanner([]byte("foo _bar baz2 settings")).ScanAll()
	require.Len(t, toks, 5)
	for _, tok := range toks[:4] {
		assert.Equal(t, IDENT, tok.Type, "token %q", tok.Text)
	}
	assert.Equal(t, "settings", toks[3].Text)
}

func TestScanner_Operators(t *testing.T) {
	types := scanTypes(t, "= == != ! < <= > >= && || -> - + * / %")
	assert.Equal(t, []Type{
		ASSIGN, EQ, NE, BANG, LT, LE, GT, GE, AND, OR, ARROW,
		MINUS, PLUS, STAR, SLASH, PERCENT,
	}, types)
}

func TestScanner_OperatorLookahead(t *testing.T) {
	// A two-rune operator only forms when the second rune is adjacent
	// and the scanner stops cleanly at end of input.
	assert.Equal(t, []Type{ASSIGN, ASSIGN}, scanTypes(t, "= ="))
	assert.Equal(t, []Type{LT, ASSIGN}, scanTypes(t, "< ="))
	assert.Equal(t, []Type{NUMBER, GT}, scanTypes(t, "1 >"))
	assert.Equal(t, []Type{IDENT, MINUS}, scanTypes(t, "x -"))
	assert.Equal(t, []Type{BANG}, scanTypes(t, "!"))
}

func TestScanner_Numbers(t *testing.T) {
	toks := NewScanner([]byte("42 3.14 7.toString")).ScanAll()
	assert.Equal(t, NUMBER, toks[0].Type)
	assert.Equal(t, "42", toks[0].Text)
	assert.Equal(t, NUMBER, toks[1].Type)
	assert.Equal(t, "3.14", toks[1].Text)
	// A dot with no digit after it is a field access, not a fraction.
	assert.Equal(t, NUMBER, toks[2].Type)
	assert.Equal(t, "7", toks[2].Text)
	assert.Equal(t, DOT, toks[3].Type)
	assert.Equal(t, IDENT, toks[4].Type)
}

func TestScanner_Strings(t *testing.T) {
	toks := NewScanner([]byte(`'single' "double" 'esc\'aped'`)).ScanAll()
	require.Len(t, toks, 4)
	assert.Equal(t, `'single'`, toks[0].Text)
	assert.Equal(t, `"double"`, toks[1].Text)
	assert.Equal(t, `'esc\'aped'`, toks[2].Text)
	for _, tok := range toks[:3] {
		assert.Equal(t, STRING, tok.Type)
	}
}

func TestScanner_StringAcrossNewline(t *testing.T) {
	toks := NewScanner([]byte("'abc\ndef'")).ScanAll()
	require.Len(t, toks, 2)
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, syntax.Position{Line: 0, Col: 0}, toks[0].Start)
	assert.Equal(t, syntax.Position{Line: 1, Col: 4}, toks[0].End)
}

func TestScanner_UnterminatedStringRunsToEOF(t *testing.T) {
	toks := NewScanner([]byte("'abc")).ScanAll()
	require.Len(t, toks, 2)
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "'abc", toks[0].Text)
}

func TestScanner_Comments(t *testing.T) {
	types := scanTypes(t, "set x = 1; -- trailing comment\n-- full line\nprint(x);")
	assert.Equal(t, []Type{SET, IDENT, ASSIGN, NUMBER, SEMI, IDENT, LPAREN, IDENT, RPAREN, SEMI}, types)
}

func TestScanner_Positions(t *testing.T) {
	toks := NewScanner([]byte("set x = 1;\nprint(x);")).ScanAll()

	x := toks[1]
	assert.Equal(t, syntax.Position{Line: 0, Col: 4}, x.Start)
	assert.Equal(t, syntax.Position{Line: 0, Col: 5}, x.End)
	assert.Equal(t, 4, x.StartByte)
	assert.Equal(t, 5, x.EndByte)

	print := toks[5]
	assert.Equal(t, "print", print.Text)
	assert.Equal(t, syntax.Position{Line: 1, Col: 0}, print.Start)
}

func TestScanner_Invalid(t *testing.T) {
	toks := NewScanner([]byte("@ # &")).ScanAll()
	require.Len(t, toks, 4)
	for _, tok := range toks[:3] {
		assert.Equal(t, INVALID, tok.Type, "token %q", tok.Text)
	}
}

func TestScanner_EOFIsSticky(t *testing.T) {
	s := NewScanner(nil)
	assert.Equal(t, EOF, s.Scan().Type)
	assert.Equal(t, EOF, s.Scan().Type)
}

func TestToken_Is(t *testing.T) {
	tok := &Token{Type: SEMI}
	assert.True(t, tok.Is(SEMI))
	assert.True(t, tok.Is(RBRACE, SEMI, EOF))
	assert.False(t, tok.Is(RBRACE, EOF))
}
