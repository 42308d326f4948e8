// Copyright © 2025 The icelang-ls authors

// Package syntax defines the tree produced by the icelang parser and
// consumed by the analyzer. The shape follows tree-sitter conventions:
// nodes carry a raw kind string, a source range, optional named fields on
// their children, and flags for error and missing (expected-but-absent)
// nodes. Navigation is bidirectional; a node can reach its parent and
// siblings.
package syntax

// Node kinds produced by the parser. The analyzer maps these raw strings
// to a closed classification before dispatching on them.
const (
	KindSourceFile = "source_file"
	KindBlock      = "block"

	KindVarDecl  = "stmt_var_decl"
	KindFuncDecl = "stmt_func_decl"
	KindLoop     = "stmt_loop"
	KindWhile    = "stmt_while"
	KindFor      = "stmt_for"
	KindContinue = "stmt_continue"
	KindBreak    = "stmt_break"
	KindReturn   = "stmt_return"
	KindExprStmt = "stmt_expr"

	KindLiteral    = "expr_literal"
	KindGroup      = "expr_group"
	KindIdentifier = "expr_identifier"
	KindArray      = "expr_array"
	KindObject     = "expr_object"
	KindUnary      = "expr_unary"
	KindBinary     = "expr_binary"
	KindIndex      = "expr_index"
	KindField      = "expr_field"
	KindIf         = "expr_if"
	KindMatch      = "expr_match"
	KindCall       = "expr_call"
	KindLambda     = "expr_lambda"

	KindArgs      = "args"
	KindProperty  = "property"
	KindIterator  = "iterator"
	KindMatchBody = "match_body"
	KindMatchArm  = "match_arm"
	KindOperator  = "operator"

	KindError = "ERROR"
)

// Common field names used by the parser when attaching children.
const (
	FieldName      = "name"
	FieldValue     = "value"
	FieldBody      = "body"
	FieldArgs      = "args"
	FieldIterator  = "iterator"
	FieldOperator  = "operator"
	FieldField     = "field"
	FieldCondition = "condition"
	FieldElse      = "else"
	FieldLeft      = "left"
	FieldRight     = "right"
	FieldIndex     = "index"
	FieldFunction  = "function"
	FieldPattern   = "pattern"
	FieldEnd       = "end"
)

// Node is a single vertex of the syntax tree.
type Node struct {
	// Kind is the raw node kind string (one of the Kind constants).
	Kind string

	// StartByte and EndByte delimit the node's span in the source bytes.
	StartByte int
	EndByte   int

	// StartPos and EndPos delimit the node's span as 0-based positions.
	StartPos Position
	EndPos   Position

	// Missing marks a zero-width placeholder inserted by the parser where
	// a token or expression was expected but absent.
	Missing bool

	parent   *Node
	children []*Node
	fields   []string
}

// NewNode creates a detached node of the given kind.
func NewNode(kind string) *Node {
	return &Node{Kind: kind}
}

// IsError reports whether the node is a syntax-error node.
func (n *Node) IsError() bool {
	return n.Kind == KindError
}

// Range returns the node's source range.
func (n *Node) Range() Range {
	return Range{Start: n.StartPos, End: n.EndPos}
}

// Text slices the node's span out of the source bytes.
func (n *Node) Text(source []byte) string {
	if n.StartByte < 0 || n.EndByte > len(source) || n.StartByte > n.EndByte {
		return ""
	}
	return string(source[n.StartByte:n.EndByte])
}

// Parent returns the enclosing node, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the i-th child, or nil if out of bounds.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns the node's children in source order. The returned slice
// must not be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// FieldName returns the field name the i-th child is attached under, or ""
// for an unnamed child.
func (n *Node) FieldName(i int) string {
	if i < 0 || i >= len(n.fields) {
		return ""
	}
	return n.fields[i]
}

// ChildByField returns the first child attached under the given field
// name, or nil.
func (n *Node) ChildByField(field string) *Node {
	for i, f := range n.fields {
		if f == field {
			return n.children[i]
		}
	}
	return nil
}

// ChildrenByField returns all children attached under the given field name
// in source order.
func (n *Node) ChildrenByField(field string) []*Node {
	var out []*Node
	for i, f := range n.fields {
		if f == field {
			out = append(out, n.children[i])
		}
	}
	return out
}

// Field returns the field name n is attached under in its parent, or "".
func (n *Node) Field() string {
	if n.parent == nil {
		return ""
	}
	for i, c := range n.parent.children {
		if c == n {
			return n.parent.fields[i]
		}
	}
	return ""
}

// index returns n's position among its parent's children, or -1.
func (n *Node) index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// NextSibling returns the following child of n's parent, or nil.
func (n *Node) NextSibling() *Node {
	i := n.index()
	if i < 0 {
		return nil
	}
	return n.parent.Child(i + 1)
}

// PrevSibling returns the preceding child of n's parent, or nil.
func (n *Node) PrevSibling() *Node {
	i := n.index()
	if i <= 0 {
		return nil
	}
	return n.parent.Child(i - 1)
}

// Append attaches child under the given field name ("" for unnamed) and
// widens n's span to cover it.
func (n *Node) Append(child *Node, field string) {
	if child == nil {
		return
	}
	child.parent = n
	n.children = append(n.children, child)
	n.fields = append(n.fields, field)
	n.cover(child)
}

// cover widens n's span to include child's span.
func (n *Node) cover(child *Node) {
	if len(n.children) == 1 && n.EndByte == 0 && n.StartByte == 0 {
		n.StartByte = child.StartByte
		n.StartPos = child.StartPos
	}
	if child.StartByte < n.StartByte {
		n.StartByte = child.StartByte
		n.StartPos = child.StartPos
	}
	if child.EndByte > n.EndByte {
		n.EndByte = child.EndByte
		n.EndPos = child.EndPos
	}
}

// SetSpan fixes the node's span explicitly. Parsers call this with token
// boundaries; Append keeps the span widened as children arrive.
func (n *Node) SetSpan(startByte, endByte int, start, end Position) {
	n.StartByte = startByte
	n.EndByte = endByte
	n.StartPos = start
	n.EndPos = end
}

// Walk calls fn for n and every descendant in depth-first pre-order. If fn
// returns false the subtree below the current node is skipped.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		Walk(c, fn)
	}
}
