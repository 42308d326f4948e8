// Copyright © 2025 The icelang-ls authors

package parser

import (
	"testing"

	"github.com/icelang/icelang-ls/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source string) *syntax.Node {
	t.Helper()
	tree := Parse([]byte(source))
	require.NotNil(t, tree)
	require.Equal(t, syntax.KindSourceFile, tree.Kind)
	return tree
}

// kinds returns the top-level statement kinds of a tree.
func kinds(tree *syntax.Node) []string {
	var out []string
	for _, c := range tree.Children() {
		out = append(out, c.Kind)
	}
	return out
}

func TestParse_Statements(t *testing.T) {
	tree := parse(t, "set x = 1;\nfunction f() { return x; }\nloop { break; }\nwhile x { continue; }\nfor i in x { }\nprint(x);")
	assert.Equal(t, []string{
		syntax.KindVarDecl,
		syntax.KindFuncDecl,
		syntax.KindLoop,
		syntax.KindWhile,
		syntax.KindFor,
		syntax.KindExprStmt,
	}, kinds(tree))
}

func TestParse_VarDecl(t *testing.T) {
	tree := parse(t, "set x = 1 + 2;")
	decl := tree.Child(0)
	require.Equal(t, syntax.KindVarDecl, decl.Kind)

	name := decl.ChildByField(syntax.FieldName)
	require.NotNil(t, name)
	assert.Equal(t, "x", name.Text([]byte("set x = 1 + 2;")))

	value := decl.ChildByField(syntax.FieldValue)
	require.NotNil(t, value)
	assert.Equal(t, syntax.KindBinary, value.Kind)

	// The statement span includes the terminator.
	assert.Equal(t, syntax.Position{Line: 0, Col: 0}, decl.StartPos)
	assert.Equal(t, syntax.Position{Line: 0, Col: 14}, decl.EndPos)
}

func TestParse_FuncDecl(t *testing.T) {
	source := "function add(a, b) { return a + b; }"
	tree := parse(t, source)
	fn := tree.Child(0)
	require.Equal(t, syntax.KindFuncDecl, fn.Kind)

	args := fn.ChildByField(syntax.FieldArgs)
	require.NotNil(t, args)
	require.Equal(t, 2, args.ChildCount())
	assert.Equal(t, "a", args.Child(0).Text([]byte(source)))
	assert.Equal(t, "b", args.Child(1).Text([]byte(source)))

	body := fn.ChildByField(syntax.FieldBody)
	require.NotNil(t, body)
	assert.Equal(t, syntax.KindBlock, body.Kind)
	assert.Equal(t, syntax.Position{Line: 0, Col: 19}, body.StartPos)
}

func TestParse_Precedence(t *testing.T) {
	source := "set v = 1 + 2 * 3;"
	tree := parse(t, source)
	value := tree.Child(0).ChildByField(syntax.FieldValue)
	require.Equal(t, syntax.KindBinary, value.Kind)

	// + at the root, * nested under the right operand.
	op := value.ChildByField(syntax.FieldOperator)
	require.NotNil(t, op)
	assert.Equal(t, "+", op.Text([]byte(source)))

	right := value.ChildByField(syntax.FieldRight)
	require.Equal(t, syntax.KindBinary, right.Kind)
	assert.Equal(t, "*", right.ChildByField(syntax.FieldOperator).Text([]byte(source)))
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	source := "a = b = 1;"
	tree := parse(t, source)
	expr := tree.Child(0).ChildByField(syntax.FieldValue)
	require.Equal(t, syntax.KindBinary, expr.Kind)
	assert.Equal(t, "=", expr.ChildByField(syntax.FieldOperator).Text([]byte(source)))

	right := expr.ChildByField(syntax.FieldRight)
	require.Equal(t, syntax.KindBinary, right.Kind)
	assert.Equal(t, "=", right.ChildByField(syntax.FieldOperator).Text([]byte(source)))
}

func TestParse_PostfixChain(t *testing.T) {
	source := "obj.items[0](x);"
	tree := parse(t, source)
	expr := tree.Child(0).ChildByField(syntax.FieldValue)

	// Innermost to outermost: field, index, call.
	require.Equal(t, syntax.KindCall, expr.Kind)
	index := expr.ChildByField(syntax.FieldFunction)
	require.Equal(t, syntax.KindIndex, index.Kind)
	field := index.ChildByField(syntax.FieldValue)
	require.Equal(t, syntax.KindField, field.Kind)
	assert.Equal(t, "items", field.ChildByField(syntax.FieldField).Text([]byte(source)))
}

func TestParse_ForIterator(t *testing.T) {
	tree := parse(t, "for k, v in obj { }")
	iter := tree.Child(0).ChildByField(syntax.FieldIterator)
	require.NotNil(t, iter)
	assert.Len(t, iter.ChildrenByField(syntax.FieldName), 2)
	assert.NotNil(t, iter.ChildByField(syntax.FieldValue))
}

func TestParse_ForRange(t *testing.T) {
	tree := parse(t, "for i in 0 to 10 { }")
	iter := tree.Child(0).ChildByField(syntax.FieldIterator)
	require.NotNil(t, iter)
	assert.NotNil(t, iter.ChildByField(syntax.FieldValue))
	assert.NotNil(t, iter.ChildByField(syntax.FieldEnd))
}

func TestParse_IfElseChain(t *testing.T) {
	tree := parse(t, "set v = if a { } else if b { } else { };")
	cond := tree.Child(0).ChildByField(syntax.FieldValue)
	require.Equal(t, syntax.KindIf, cond.Kind)

	elseIf := cond.ChildByField(syntax.FieldElse)
	require.Equal(t, syntax.KindIf, elseIf.Kind)
	assert.Equal(t, syntax.KindBlock, elseIf.ChildByField(syntax.FieldElse).Kind)
}

func TestParse_Match(t *testing.T) {
	tree := parse(t, "set v = match x { 1 -> 'one', 2 -> 'two' };")
	m := tree.Child(0).ChildByField(syntax.FieldValue)
	require.Equal(t, syntax.KindMatch, m.Kind)

	body := m.ChildByField(syntax.FieldBody)
	require.Equal(t, syntax.KindMatchBody, body.Kind)
	require.Equal(t, 2, body.ChildCount())
	arm := body.Child(0)
	assert.Equal(t, syntax.KindMatchArm, arm.Kind)
	assert.NotNil(t, arm.ChildByField(syntax.FieldPattern))
	assert.NotNil(t, arm.ChildByField(syntax.FieldValue))
}

func TestParse_Lambda(t *testing.T) {
	tree := parse(t, "set f = lambda(x) { return x; };")
	lam := tree.Child(0).ChildByField(syntax.FieldValue)
	require.Equal(t, syntax.KindLambda, lam.Kind)
	assert.Equal(t, 1, lam.ChildByField(syntax.FieldArgs).ChildCount())
	assert.Equal(t, syntax.KindBlock, lam.ChildByField(syntax.FieldBody).Kind)
}

func TestParse_ObjectLiteral(t *testing.T) {
	source := "set o = { a: 1, b: 'two' };"
	tree := parse(t, source)
	obj := tree.Child(0).ChildByField(syntax.FieldValue)
	require.Equal(t, syntax.KindObject, obj.Kind)
	require.Equal(t, 2, obj.ChildCount())

	prop := obj.Child(0)
	require.Equal(t, syntax.KindProperty, prop.Kind)
	assert.Equal(t, "a", prop.ChildByField(syntax.FieldName).Text([]byte(source)))
}

func TestParse_MissingNodes(t *testing.T) {
	// set with no identifier
	tree := parse(t, "set = 1;")
	name := tree.Child(0).ChildByField(syntax.FieldName)
	require.NotNil(t, name)
	assert.True(t, name.Missing)
	assert.True(t, name.Range().Empty())

	// missing expression
	tree = parse(t, "set x = ;")
	value := tree.Child(0).ChildByField(syntax.FieldValue)
	require.NotNil(t, value)
	assert.True(t, value.Missing)

	// missing terminator
	tree = parse(t, "set x = 1")
	var missing []*syntax.Node
	syntax.Walk(tree, func(n *syntax.Node) bool {
		if n.Missing && n.Kind == ";" {
			missing = append(missing, n)
		}
		return true
	})
	assert.Len(t, missing, 1)

	// missing field member
	tree = parse(t, "set x = o.;")
	field := tree.Child(0).ChildByField(syntax.FieldValue)
	require.Equal(t, syntax.KindField, field.Kind)
	assert.True(t, field.ChildByField(syntax.FieldField).Missing)
}

func TestParse_ErrorNodes(t *testing.T) {
	tree := parse(t, "set x = @;")
	var errs []*syntax.Node
	syntax.Walk(tree, func(n *syntax.Node) bool {
		if n.IsError() {
			errs = append(errs, n)
		}
		return true
	})
	require.NotEmpty(t, errs)
	assert.Equal(t, syntax.Position{Line: 0, Col: 8}, errs[0].StartPos)
}

func TestParse_AlwaysTerminates(t *testing.T) {
	sources := []string{
		"",
		"set",
		"function (",
		"{ { {",
		")))",
		"match",
		"for in {",
		"set x = = 1;",
		"lambda",
		"-- only a comment",
	}
	for _, source := range sources {
		tree := Parse([]byte(source))
		require.NotNil(t, tree, "source: %q", source)
		require.Equal(t, syntax.KindSourceFile, tree.Kind)
	}
}

func TestParse_RootSpansInput(t *testing.T) {
	source := "set x = 1;\nprint(x);"
	tree := parse(t, source)
	assert.Equal(t, 0, tree.StartByte)
	assert.Equal(t, len(source), tree.EndByte)
}
