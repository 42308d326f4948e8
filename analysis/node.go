// Copyright © 2025 The icelang-ls authors

package analysis

import "github.com/icelang/icelang-ls/syntax"

// NodeType is the closed semantic classification of a syntax node. The
// parser exposes node kinds as raw strings; the analyzer maps every node
// through Classify before dispatching so that all matching is exhaustive
// over this enumeration instead of comparing strings.
type NodeType int

const (
	NodeUnnamed NodeType = iota
	NodeError

	NodeBlock
	NodeVarDecl
	NodeFuncDecl
	NodeLoop
	NodeWhile
	NodeFor
	NodeContinue
	NodeBreak
	NodeReturn
	NodeExprStmt

	NodeLiteral
	NodeGroup
	NodeIdentifier
	NodeArray
	NodeObject
	NodeUnary
	NodeBinary
	NodeIndex
	NodeField
	NodeIf
	NodeMatch
	NodeCall
	NodeLambda

	NodeArgs
	NodeProperty
	NodeIterator
)

func (t NodeType) String() string {
	switch t {
	case NodeError:
		return "error"
	case NodeBlock:
		return "block"
	case NodeVarDecl:
		return "var-decl"
	case NodeFuncDecl:
		return "func-decl"
	case NodeLoop:
		return "loop"
	case NodeWhile:
		return "while"
	case NodeFor:
		return "for"
	case NodeContinue:
		return "continue"
	case NodeBreak:
		return "break"
	case NodeReturn:
		return "return"
	case NodeExprStmt:
		return "expr-stmt"
	case NodeLiteral:
		return "literal"
	case NodeGroup:
		return "group"
	case NodeIdentifier:
		return "identifier"
	case NodeArray:
		return "array"
	case NodeObject:
		return "object"
	case NodeUnary:
		return "unary"
	case NodeBinary:
		return "binary"
	case NodeIndex:
		return "index"
	case NodeField:
		return "field"
	case NodeIf:
		return "if"
	case NodeMatch:
		return "match"
	case NodeCall:
		return "call"
	case NodeLambda:
		return "lambda"
	case NodeArgs:
		return "args"
	case NodeProperty:
		return "property"
	case NodeIterator:
		return "iterator"
	default:
		return "unnamed"
	}
}

var kindTypes = map[string]NodeType{
	syntax.KindBlock:      NodeBlock,
	syntax.KindVarDecl:    NodeVarDecl,
	syntax.KindFuncDecl:   NodeFuncDecl,
	syntax.KindLoop:       NodeLoop,
	syntax.KindWhile:      NodeWhile,
	syntax.KindFor:        NodeFor,
	syntax.KindContinue:   NodeContinue,
	syntax.KindBreak:      NodeBreak,
	syntax.KindReturn:     NodeReturn,
	syntax.KindExprStmt:   NodeExprStmt,
	syntax.KindLiteral:    NodeLiteral,
	syntax.KindGroup:      NodeGroup,
	syntax.KindIdentifier: NodeIdentifier,
	syntax.KindArray:      NodeArray,
	syntax.KindObject:     NodeObject,
	syntax.KindUnary:      NodeUnary,
	syntax.KindBinary:     NodeBinary,
	syntax.KindIndex:      NodeIndex,
	syntax.KindField:      NodeField,
	syntax.KindIf:         NodeIf,
	syntax.KindMatch:      NodeMatch,
	syntax.KindCall:       NodeCall,
	syntax.KindLambda:     NodeLambda,
	syntax.KindArgs:       NodeArgs,
	syntax.KindProperty:   NodeProperty,
	syntax.KindIterator:   NodeIterator,
	syntax.KindError:      NodeError,
}

// Classify maps a node's raw kind string to its NodeType. The mapping is
// total: unrecognized kinds classify as NodeUnnamed, never as a failure.
func Classify(n *syntax.Node) NodeType {
	if n == nil {
		return NodeUnnamed
	}
	if t, ok := kindTypes[n.Kind]; ok {
		return t
	}
	return NodeUnnamed
}
