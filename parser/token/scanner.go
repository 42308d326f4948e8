// Copyright © 2025 The icelang-ls authors

package token

import (
	"unicode"
	"unicode/utf8"

	"github.com/icelang/icelang-ls/syntax"
)

// Scanner tokenizes icelang source bytes. The scanner never fails; bytes
// it cannot interpret come back as INVALID tokens so that the parser can
// wrap them into error nodes.
type Scanner struct {
	src  []byte
	pos  int // byte offset of the next unread rune
	line int // 0-based line of pos
	col  int // 0-based byte column of pos

	startByte int
	startPos  syntax.Position
}

// NewScanner returns a scanner over src.
func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src}
}

// Scan returns the next token, skipping whitespace and comments. At the
// end of input it returns an EOF token and continues to do so.
func (s *Scanner) Scan() *Token {
	for {
		tok := s.scan()
		if tok.Type == COMMENT {
			continue
		}
		return tok
	}
}

// ScanAll returns every remaining token including the final EOF. Comments
// are skipped.
func (s *Scanner) ScanAll() []*Token {
	var toks []*Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

func (s *Scanner) scan() *Token {
	s.skipSpace()
	s.mark()

	c, ok := s.next()
	if !ok {
		return s.emit(EOF)
	}

	switch {
	case isIdentStart(c):
		return s.scanIdent()
	case c >= '0' && c <= '9':
		return s.scanNumber()
	case c == '"' || c == '\'':
		return s.scanString(c)
	}

	switch c {
	case '(':
		return s.emit(LPAREN)
	case ')':
		return s.emit(RPAREN)
	case '{':
		return s.emit(LBRACE)
	case '}':
		return s.emit(RBRACE)
	case '[':
		return s.emit(LBRACKET)
	case ']':
		return s.emit(RBRACKET)
	case ',':
		return s.emit(COMMA)
	case ';':
		return s.emit(SEMI)
	case ':':
		return s.emit(COLON)
	case '.':
		return s.emit(DOT)
	case '+':
		return s.emit(PLUS)
	case '*':
		return s.emit(STAR)
	case '/':
		return s.emit(SLASH)
	case '%':
		return s.emit(PERCENT)
	case '=':
		if s.accept('=') {
			return s.emit(EQ)
		}
		return s.emit(ASSIGN)
	case '!':
		if s.accept('=') {
			return s.emit(NE)
		}
		return s.emit(BANG)
	case '<':
		if s.accept('=') {
			return s.emit(LE)
		}
		return s.emit(LT)
	case '>':
		if s.accept('=') {
			return s.emit(GE)
		}
		return s.emit(GT)
	case '&':
		if s.accept('&') {
			return s.emit(AND)
		}
		return s.emit(INVALID)
	case '|':
		if s.accept('|') {
			return s.emit(OR)
		}
		return s.emit(INVALID)
	case '-':
		if s.accept('-') {
			return s.scanComment()
		}
		if s.accept('>') {
			return s.emit(ARROW)
		}
		return s.emit(MINUS)
	}
	return s.emit(INVALID)
}

func (s *Scanner) scanIdent() *Token {
	for {
		c, size := s.peek()
		if !isIdentPart(c) {
			break
		}
		s.advance(size)
	}
	tok := s.emit(IDENT)
	tok.Type = Lookup(tok.Text)
	return tok
}

func (s *Scanner) scanNumber() *Token {
	seenDot := false
	for {
		c, size := s.peek()
		if c == '.' && !seenDot {
			// Only consume the dot when a digit follows; otherwise it is
			// a field access on a number.
			if d, _ := s.peekAt(size); d < '0' || d > '9' {
				break
			}
			seenDot = true
			s.advance(size)
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		s.advance(size)
	}
	return s.emit(NUMBER)
}

// scanString consumes until the matching quote. Newlines do not terminate
// the scan; the analyzer reports strings that span lines.
func (s *Scanner) scanString(quote rune) *Token {
	for {
		c, ok := s.next()
		if !ok {
			return s.emit(STRING)
		}
		if c == '\\' {
			s.next()
			continue
		}
		if c == quote {
			return s.emit(STRING)
		}
	}
}

func (s *Scanner) scanComment() *Token {
	for {
		c, size := s.peek()
		if c == '\n' || c == utf8.RuneError && size == 0 {
			break
		}
		s.advance(size)
	}
	return s.emit(COMMENT)
}

// mark records the start of the next token.
func (s *Scanner) mark() {
	s.startByte = s.pos
	s.startPos = syntax.Position{Line: s.line, Col: s.col}
}

// emit constructs a token spanning from the last mark to the current
// position.
func (s *Scanner) emit(typ Type) *Token {
	return &Token{
		Type:      typ,
		Text:      string(s.src[s.startByte:s.pos]),
		StartByte: s.startByte,
		EndByte:   s.pos,
		Start:     s.startPos,
		End:       syntax.Position{Line: s.line, Col: s.col},
	}
}

func (s *Scanner) skipSpace() {
	for {
		c, size := s.peek()
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			return
		}
		s.advance(size)
	}
}

// peek returns the next rune without consuming it. At EOF it returns
// utf8.RuneError with size 0.
func (s *Scanner) peek() (rune, int) {
	if s.pos >= len(s.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(s.src[s.pos:])
}

// peekAt returns the rune at the given byte offset past the cursor.
func (s *Scanner) peekAt(offset int) (rune, int) {
	if s.pos+offset >= len(s.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(s.src[s.pos+offset:])
}

// accept consumes the next rune if it equals want.
func (s *Scanner) accept(want rune) bool {
	c, size := s.peek()
	if size == 0 || c != want {
		return false
	}
	s.advance(size)
	return true
}

// next consumes and returns the next rune.
func (s *Scanner) next() (rune, bool) {
	c, size := s.peek()
	if size == 0 {
		return 0, false
	}
	s.advance(size)
	return c, true
}

// advance moves the cursor by size bytes, tracking line and column.
func (s *Scanner) advance(size int) {
	if size <= 0 || s.pos >= len(s.src) {
		return
	}
	if s.src[s.pos] == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col += size
	}
	s.pos += size
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isIdentPart(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
