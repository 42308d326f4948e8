// Copyright © 2025 The icelang-ls authors

// Package parser builds icelang syntax trees. The parser is a recursive
// descent parser with single-token lookahead and is error tolerant: an
// unexpected token becomes an ERROR node, an expected-but-absent token or
// expression becomes a zero-width node flagged Missing, and parsing always
// runs to the end of the input. The analyzer turns those nodes into
// diagnostics; the parser itself never reports anything.
package parser

import (
	"github.com/icelang/icelang-ls/parser/token"
	"github.com/icelang/icelang-ls/syntax"
)

// Parse parses src and returns the root source_file node. The returned
// tree is never nil and spans the entire input.
func Parse(src []byte) *syntax.Node {
	p := &parser{src: src, sc: token.NewScanner(src)}
	p.advance()

	root := syntax.NewNode(syntax.KindSourceFile)
	for !p.at(token.EOF) {
		before := p.tok
		root.Append(p.parseStatement(), "")
		if p.tok == before {
			root.Append(p.errorNode(), "")
		}
	}
	root.SetSpan(0, len(src), syntax.Position{}, p.tok.Start)
	return root
}

type parser struct {
	src []byte
	sc  *token.Scanner
	tok *token.Token
}

func (p *parser) advance() {
	p.tok = p.sc.Scan()
}

func (p *parser) at(types ...token.Type) bool {
	return p.tok.Is(types...)
}

// accept consumes the current token if it has the given type.
func (p *parser) accept(typ token.Type) *token.Token {
	if p.tok.Type != typ {
		return nil
	}
	t := p.tok
	p.advance()
	return t
}

// leaf consumes the current token and returns it as a node of kind.
func (p *parser) leaf(kind string) *syntax.Node {
	n := p.nodeAt(kind, p.tok)
	p.advance()
	return n
}

// nodeAt returns a node of kind spanning tok.
func (p *parser) nodeAt(kind string, tok *token.Token) *syntax.Node {
	n := syntax.NewNode(kind)
	n.SetSpan(tok.StartByte, tok.EndByte, tok.Start, tok.End)
	return n
}

// missing returns a zero-width Missing node of kind at the current token.
func (p *parser) missing(kind string) *syntax.Node {
	n := syntax.NewNode(kind)
	n.Missing = true
	n.SetSpan(p.tok.StartByte, p.tok.StartByte, p.tok.Start, p.tok.Start)
	return n
}

// errorNode consumes the current token and wraps it in an ERROR node.
func (p *parser) errorNode() *syntax.Node {
	n := p.nodeAt(syntax.KindError, p.tok)
	p.advance()
	return n
}

// closeAt extends n to end at tok.
func closeAt(n *syntax.Node, tok *token.Token) {
	n.SetSpan(n.StartByte, tok.EndByte, n.StartPos, tok.End)
}

// hasIdent appends an identifier child under field, or a Missing
// placeholder when the current token is not an identifier.
func (p *parser) hasIdent(n *syntax.Node, field string) {
	if p.at(token.IDENT) {
		n.Append(p.leaf(syntax.KindIdentifier), field)
		return
	}
	n.Append(p.missing(syntax.KindIdentifier), field)
}

// semi consumes the statement terminator, recording a Missing ";" node on
// n when it is absent.
func (p *parser) semi(n *syntax.Node) {
	if t := p.accept(token.SEMI); t != nil {
		closeAt(n, t)
		return
	}
	n.Append(p.missing(";"), "")
}

// --- statements ---

func (p *parser) parseStatement() *syntax.Node {
	switch p.tok.Type {
	case token.SET:
		return p.parseVarDecl()
	case token.FUNCTION:
		return p.parseFuncDecl()
	case token.LOOP:
		return p.parseLoop()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.CONTINUE:
		return p.parseSimpleStmt(syntax.KindContinue)
	case token.BREAK:
		return p.parseSimpleStmt(syntax.KindBreak)
	case token.RETURN:
		return p.parseReturn()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprStatement()
	}
}

func (p *parser) parseVarDecl() *syntax.Node {
	n := p.nodeAt(syntax.KindVarDecl, p.tok)
	p.advance()
	p.hasIdent(n, syntax.FieldName)
	if p.accept(token.ASSIGN) == nil {
		n.Append(p.missing("="), "")
	}
	n.Append(p.parseExpression(), syntax.FieldValue)
	p.semi(n)
	return n
}

func (p *parser) parseFuncDecl() *syntax.Node {
	n := p.nodeAt(syntax.KindFuncDecl, p.tok)
	p.advance()
	p.hasIdent(n, syntax.FieldName)
	n.Append(p.parseParams(), syntax.FieldArgs)
	p.parseBody(n)
	return n
}

// parseBody attaches a block under the body field, or a Missing "{" when
// no block follows.
func (p *parser) parseBody(n *syntax.Node) {
	if p.at(token.LBRACE) {
		n.Append(p.parseBlock(), syntax.FieldBody)
		return
	}
	n.Append(p.missing("{"), syntax.FieldBody)
}

func (p *parser) parseBlock() *syntax.Node {
	n := p.nodeAt(syntax.KindBlock, p.tok)
	p.advance()
	for !p.at(token.RBRACE, token.EOF) {
		before := p.tok
		n.Append(p.parseStatement(), "")
		if p.tok == before {
			n.Append(p.errorNode(), "")
		}
	}
	if t := p.accept(token.RBRACE); t != nil {
		closeAt(n, t)
	}
	return n
}

func (p *parser) parseLoop() *syntax.Node {
	n := p.nodeAt(syntax.KindLoop, p.tok)
	p.advance()
	p.parseBody(n)
	return n
}

func (p *parser) parseWhile() *syntax.Node {
	n := p.nodeAt(syntax.KindWhile, p.tok)
	p.advance()
	n.Append(p.parseExpression(), syntax.FieldCondition)
	p.parseBody(n)
	return n
}

func (p *parser) parseFor() *syntax.Node {
	n := p.nodeAt(syntax.KindFor, p.tok)
	p.advance()

	iter := p.nodeAt(syntax.KindIterator, p.tok)
	p.hasIdent(iter, syntax.FieldName)
	if p.accept(token.COMMA) != nil {
		p.hasIdent(iter, syntax.FieldName)
	}
	if p.accept(token.IN) == nil {
		iter.Append(p.missing("in"), "")
	}
	iter.Append(p.parseExpression(), syntax.FieldValue)
	if p.accept(token.TO) != nil {
		iter.Append(p.parseExpression(), syntax.FieldEnd)
	}
	n.Append(iter, syntax.FieldIterator)

	p.parseBody(n)
	return n
}

func (p *parser) parseSimpleStmt(kind string) *syntax.Node {
	n := p.nodeAt(kind, p.tok)
	p.advance()
	p.semi(n)
	return n
}

func (p *parser) parseReturn() *syntax.Node {
	n := p.nodeAt(syntax.KindReturn, p.tok)
	p.advance()
	if !p.at(token.SEMI, token.RBRACE, token.EOF) {
		n.Append(p.parseExpression(), syntax.FieldValue)
	}
	p.semi(n)
	return n
}

func (p *parser) parseExprStatement() *syntax.Node {
	n := syntax.NewNode(syntax.KindExprStmt)
	expr := p.parseExpression()
	n.Append(expr, syntax.FieldValue)
	if expr.IsError() {
		// Error recovery: swallow a trailing terminator without
		// demanding one.
		if t := p.accept(token.SEMI); t != nil {
			closeAt(n, t)
		}
		return n
	}
	p.semi(n)
	return n
}

// --- expressions ---

// binaryLevels lists binary operator tokens from lowest to highest
// precedence. Assignment is handled separately because it associates to
// the right.
var binaryLevels = [][]token.Type{
	{token.OR},
	{token.AND},
	{token.EQ, token.NE},
	{token.LT, token.GT, token.LE, token.GE},
	{token.PLUS, token.MINUS},
	{token.STAR, token.SLASH, token.PERCENT},
}

func (p *parser) parseExpression() *syntax.Node {
	left := p.parseBinary(0)
	if !p.at(token.ASSIGN) {
		return left
	}
	n := syntax.NewNode(syntax.KindBinary)
	n.Append(left, syntax.FieldLeft)
	n.Append(p.leaf(syntax.KindOperator), syntax.FieldOperator)
	n.Append(p.parseExpression(), syntax.FieldRight)
	return n
}

func (p *parser) parseBinary(level int) *syntax.Node {
	if level >= len(binaryLevels) {
		return p.parseUnary()
	}
	left := p.parseBinary(level + 1)
	for p.at(binaryLevels[level]...) {
		n := syntax.NewNode(syntax.KindBinary)
		n.Append(left, syntax.FieldLeft)
		n.Append(p.leaf(syntax.KindOperator), syntax.FieldOperator)
		n.Append(p.parseBinary(level+1), syntax.FieldRight)
		left = n
	}
	return left
}

func (p *parser) parseUnary() *syntax.Node {
	if p.at(token.BANG, token.MINUS) {
		n := p.nodeAt(syntax.KindUnary, p.tok)
		n.Append(p.leaf(syntax.KindOperator), syntax.FieldOperator)
		n.Append(p.parseUnary(), syntax.FieldValue)
		return n
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() *syntax.Node {
	expr := p.parsePrimary()
	for {
		switch p.tok.Type {
		case token.LPAREN:
			n := syntax.NewNode(syntax.KindCall)
			n.Append(expr, syntax.FieldFunction)
			n.Append(p.parseCallArgs(), syntax.FieldArgs)
			expr = n
		case token.LBRACKET:
			n := syntax.NewNode(syntax.KindIndex)
			n.Append(expr, syntax.FieldValue)
			p.advance()
			n.Append(p.parseExpression(), syntax.FieldIndex)
			if t := p.accept(token.RBRACKET); t != nil {
				closeAt(n, t)
			} else {
				n.Append(p.missing("]"), "")
			}
			expr = n
		case token.DOT:
			n := syntax.NewNode(syntax.KindField)
			n.Append(expr, syntax.FieldValue)
			p.advance()
			p.hasIdent(n, syntax.FieldField)
			expr = n
		default:
			return expr
		}
	}
}

func (p *parser) parsePrimary() *syntax.Node {
	switch p.tok.Type {
	case token.NUMBER, token.STRING, token.NULL, token.TRUE, token.FALSE:
		return p.leaf(syntax.KindLiteral)
	case token.IDENT:
		return p.leaf(syntax.KindIdentifier)
	case token.LPAREN:
		return p.parseGroup()
	case token.LBRACKET:
		return p.parseArray()
	case token.LBRACE:
		return p.parseObject()
	case token.IF:
		return p.parseIf()
	case token.MATCH:
		return p.parseMatch()
	case token.LAMBDA:
		return p.parseLambda()
	case token.SEMI, token.RPAREN, token.RBRACE, token.RBRACKET,
		token.COMMA, token.COLON, token.ARROW, token.EOF:
		// An expression was expected here but the token closes an
		// enclosing construct; leave it for the caller.
		return p.missing(syntax.KindIdentifier)
	default:
		return p.errorNode()
	}
}

func (p *parser) parseGroup() *syntax.Node {
	n := p.nodeAt(syntax.KindGroup, p.tok)
	p.advance()
	n.Append(p.parseExpression(), syntax.FieldValue)
	if t := p.accept(token.RPAREN); t != nil {
		closeAt(n, t)
	} else {
		n.Append(p.missing(")"), "")
	}
	return n
}

func (p *parser) parseArray() *syntax.Node {
	n := p.nodeAt(syntax.KindArray, p.tok)
	p.advance()
	for !p.at(token.RBRACKET, token.EOF) {
		before := p.tok
		n.Append(p.parseExpression(), "")
		p.accept(token.COMMA)
		if p.tok == before {
			n.Append(p.errorNode(), "")
		}
	}
	if t := p.accept(token.RBRACKET); t != nil {
		closeAt(n, t)
	}
	return n
}

func (p *parser) parseObject() *syntax.Node {
	n := p.nodeAt(syntax.KindObject, p.tok)
	p.advance()
	for !p.at(token.RBRACE, token.EOF) {
		before := p.tok
		prop := p.nodeAt(syntax.KindProperty, p.tok)
		p.hasIdent(prop, syntax.FieldName)
		if p.accept(token.COLON) == nil {
			prop.Append(p.missing(":"), "")
		}
		prop.Append(p.parseExpression(), syntax.FieldValue)
		n.Append(prop, "")
		p.accept(token.COMMA)
		if p.tok == before {
			n.Append(p.errorNode(), "")
		}
	}
	if t := p.accept(token.RBRACE); t != nil {
		closeAt(n, t)
	}
	return n
}

func (p *parser) parseIf() *syntax.Node {
	n := p.nodeAt(syntax.KindIf, p.tok)
	p.advance()
	n.Append(p.parseExpression(), syntax.FieldCondition)
	p.parseBody(n)
	if p.accept(token.ELSE) != nil {
		if p.at(token.IF) {
			n.Append(p.parseIf(), syntax.FieldElse)
		} else {
			p.parseBodyField(n, syntax.FieldElse)
		}
	}
	return n
}

func (p *parser) parseBodyField(n *syntax.Node, field string) {
	if p.at(token.LBRACE) {
		n.Append(p.parseBlock(), field)
		return
	}
	n.Append(p.missing("{"), field)
}

func (p *parser) parseMatch() *syntax.Node {
	n := p.nodeAt(syntax.KindMatch, p.tok)
	p.advance()
	n.Append(p.parseExpression(), syntax.FieldValue)

	if !p.at(token.LBRACE) {
		n.Append(p.missing("{"), syntax.FieldBody)
		return n
	}
	body := p.nodeAt(syntax.KindMatchBody, p.tok)
	p.advance()
	for !p.at(token.RBRACE, token.EOF) {
		before := p.tok
		arm := p.nodeAt(syntax.KindMatchArm, p.tok)
		arm.Append(p.parseExpression(), syntax.FieldPattern)
		if p.accept(token.ARROW) == nil {
			arm.Append(p.missing("->"), "")
		}
		arm.Append(p.parseExpression(), syntax.FieldValue)
		body.Append(arm, "")
		p.accept(token.COMMA)
		if p.tok == before {
			body.Append(p.errorNode(), "")
		}
	}
	if t := p.accept(token.RBRACE); t != nil {
		closeAt(body, t)
	}
	n.Append(body, syntax.FieldBody)
	return n
}

func (p *parser) parseLambda() *syntax.Node {
	n := p.nodeAt(syntax.KindLambda, p.tok)
	p.advance()
	n.Append(p.parseParams(), syntax.FieldArgs)
	p.parseBody(n)
	return n
}

// parseParams parses a parenthesized parameter-name list into an args
// node. Parameters are identifiers, not expressions.
func (p *parser) parseParams() *syntax.Node {
	n := p.nodeAt(syntax.KindArgs, p.tok)
	if p.accept(token.LPAREN) == nil {
		n.Missing = true
		n.SetSpan(p.tok.StartByte, p.tok.StartByte, p.tok.Start, p.tok.Start)
		return n
	}
	for !p.at(token.RPAREN, token.LBRACE, token.EOF) {
		before := p.tok
		if p.at(token.IDENT) {
			n.Append(p.leaf(syntax.KindIdentifier), "")
		}
		p.accept(token.COMMA)
		if p.tok == before {
			n.Append(p.errorNode(), "")
		}
	}
	if t := p.accept(token.RPAREN); t != nil {
		closeAt(n, t)
	}
	return n
}

// parseCallArgs parses a parenthesized expression list into an args node.
func (p *parser) parseCallArgs() *syntax.Node {
	n := p.nodeAt(syntax.KindArgs, p.tok)
	p.advance() // consume '('
	for !p.at(token.RPAREN, token.EOF) {
		before := p.tok
		n.Append(p.parseExpression(), "")
		p.accept(token.COMMA)
		if p.tok == before {
			n.Append(p.errorNode(), "")
		}
	}
	if t := p.accept(token.RPAREN); t != nil {
		closeAt(n, t)
	} else {
		n.Append(p.missing(")"), "")
	}
	return n
}
