// Copyright © 2025 The icelang-ls authors

// Package token defines lexical tokens for icelang source and a scanner
// that produces them.
package token

import (
	"fmt"

	"github.com/icelang/icelang-ls/syntax"
)

// Type identifies the lexical class of a token.
type Type uint

const (
	INVALID Type = iota
	EOF

	IDENT
	NUMBER
	STRING

	// Keywords
	NULL
	TRUE
	FALSE
	SET
	FUNCTION
	LAMBDA
	FOR
	IN
	TO
	WHILE
	LOOP
	IF
	ELSE
	MATCH
	CONTINUE
	BREAK
	RETURN

	// Operators
	ASSIGN  // =
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	BANG    // !
	EQ      // ==
	NE      // !=
	LT      // <
	GT      // >
	LE      // <=
	GE      // >=
	AND     // &&
	OR      // ||
	ARROW   // ->

	// Delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	LBRACKET // [
	RBRACKET // ]
	COMMA    // ,
	SEMI     // ;
	COLON    // :
	DOT      // .

	COMMENT

	numTokenTypes
)

var typeStrings = [numTokenTypes]string{
	INVALID:  "invalid",
	EOF:      "EOF",
	IDENT:    "identifier",
	NUMBER:   "number",
	STRING:   "string",
	NULL:     "null",
	TRUE:     "true",
	FALSE:    "false",
	SET:      "set",
	FUNCTION: "function",
	LAMBDA:   "lambda",
	FOR:      "for",
	IN:       "in",
	TO:       "to",
	WHILE:    "while",
	LOOP:     "loop",
	IF:       "if",
	ELSE:     "else",
	MATCH:    "match",
	CONTINUE: "continue",
	BREAK:    "break",
	RETURN:   "return",
	ASSIGN:   "=",
	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	SLASH:    "/",
	PERCENT:  "%",
	BANG:     "!",
	EQ:       "==",
	NE:       "!=",
	LT:       "<",
	GT:       ">",
	LE:       "<=",
	GE:       ">=",
	AND:      "&&",
	OR:       "||",
	ARROW:    "->",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACE:   "{",
	RBRACE:   "}",
	LBRACKET: "[",
	RBRACKET: "]",
	COMMA:    ",",
	SEMI:     ";",
	COLON:    ":",
	DOT:      ".",
	COMMENT:  "comment",
}

func (typ Type) String() string {
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// keywords maps identifier text to keyword token types.
var keywords = map[string]Type{
	"null":     NULL,
	"true":     TRUE,
	"false":    FALSE,
	"set":      SET,
	"function": FUNCTION,
	"lambda":   LAMBDA,
	"for":      FOR,
	"in":       IN,
	"to":       TO,
	"while":    WHILE,
	"loop":     LOOP,
	"if":       IF,
	"else":     ELSE,
	"match":    MATCH,
	"continue": CONTINUE,
	"break":    BREAK,
	"return":   RETURN,
}

// Lookup returns the keyword type for text, or IDENT.
func Lookup(text string) Type {
	if typ, ok := keywords[text]; ok {
		return typ
	}
	return IDENT
}

// Token is a single lexical token with its source span.
type Token struct {
	Type      Type
	Text      string
	StartByte int
	EndByte   int
	Start     syntax.Position
	End       syntax.Position
}

func (t *Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Text)
}

// Is reports whether the token has one of the given types.
func (t *Token) Is(types ...Type) bool {
	for _, typ := range types {
		if t.Type == typ {
			return true
		}
	}
	return false
}
