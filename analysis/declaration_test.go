// Copyright © 2025 The icelang-ls authors

package analysis

import (
	"testing"

	"github.com/icelang/icelang-ls/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(line, col int) syntax.Position {
	return syntax.Position{Line: line, Col: col}
}

func TestDeclarationMap_InsertRejectsDuplicate(t *testing.T) {
	m := NewDeclarationMap()

	require.True(t, m.Insert(&Declaration{Name: "x", End: pos(0, 10)}))
	assert.False(t, m.Insert(&Declaration{Name: "x", End: pos(2, 10)}))

	// A different scope is a different declaration.
	scope := syntax.Range{Start: pos(1, 0), End: pos(3, 1)}
	assert.True(t, m.Insert(&Declaration{Name: "x", End: pos(2, 10), Scope: &scope}))
}

func TestDeclarationMap_VariableVisibility(t *testing.T) {
	m := NewDeclarationMap()
	require.True(t, m.Insert(&Declaration{Name: "x", Start: pos(0, 10), End: pos(0, 10)}))

	// Not visible at or before the declaration end.
	assert.Nil(t, m.Lookup("x", pos(0, 5)))
	assert.Nil(t, m.Lookup("x", pos(0, 10)))
	assert.NotNil(t, m.Lookup("x", pos(0, 11)))
	assert.NotNil(t, m.Lookup("x", pos(5, 0)))
}

func TestDeclarationMap_FunctionHoisting(t *testing.T) {
	m := NewDeclarationMap()
	// Header spans [ (2,0), (2,13) ).
	require.True(t, m.Insert(&Declaration{
		Name:  "f",
		Kind:  DeclFunction,
		Start: pos(2, 0),
		End:   pos(2, 13),
	}))

	// Visible before its textual position and after it, but not inside
	// its own header.
	assert.NotNil(t, m.Lookup("f", pos(0, 0)))
	assert.NotNil(t, m.Lookup("f", pos(4, 0)))
	assert.Nil(t, m.Lookup("f", pos(2, 5)))
}

func TestDeclarationMap_ScopeConfinement(t *testing.T) {
	m := NewDeclarationMap()
	scope := syntax.Range{Start: pos(1, 0), End: pos(3, 1)}
	require.True(t, m.Insert(&Declaration{
		Name:  "x",
		Start: pos(2, 10),
		End:   pos(2, 10),
		Scope: &scope,
	}))

	assert.NotNil(t, m.Lookup("x", pos(2, 15)))
	// Outside the scope, and on the scope's braces themselves.
	assert.Nil(t, m.Lookup("x", pos(4, 0)))
	assert.Nil(t, m.Lookup("x", pos(1, 0)))
	assert.Nil(t, m.Lookup("x", pos(3, 1)))
}

func TestDeclarationMap_ParamVisibleThroughoutScope(t *testing.T) {
	m := NewDeclarationMap()
	scope := syntax.Range{Start: pos(0, 15), End: pos(2, 1)}
	require.True(t, m.Insert(&Declaration{
		Name:    "a",
		Start:   pos(0, 15),
		End:     pos(0, 15),
		Scope:   &scope,
		IsParam: true,
	}))

	// No position constraint inside the scope.
	assert.NotNil(t, m.Lookup("a", pos(1, 0)))
	assert.Nil(t, m.Lookup("a", pos(3, 0)))
}

func TestDeclarationMap_ResolveMarksUsed(t *testing.T) {
	m := NewDeclarationMap()
	d := &Declaration{Name: "x", End: pos(0, 10)}
	require.True(t, m.Insert(d))

	assert.False(t, m.Resolve("x", pos(0, 5)))
	assert.False(t, d.Used)

	assert.True(t, m.Resolve("x", pos(1, 0)))
	assert.True(t, d.Used)

	// Lookup never marks used.
	d2 := &Declaration{Name: "y", End: pos(0, 10)}
	require.True(t, m.Insert(d2))
	require.NotNil(t, m.Lookup("y", pos(1, 0)))
	assert.False(t, d2.Used)
}

func TestDeclarationMap_NearestWinsShadowing(t *testing.T) {
	m := NewDeclarationMap()
	inner := syntax.Range{Start: pos(1, 0), End: pos(4, 1)}
	outerDecl := &Declaration{Name: "x", Start: pos(0, 10), End: pos(0, 10)}
	innerDecl := &Declaration{Name: "x", Start: pos(2, 12), End: pos(2, 12), Scope: &inner}
	require.True(t, m.Insert(outerDecl))
	require.True(t, m.Insert(innerDecl))

	// Inside the inner scope after both declare, the inner one wins.
	assert.Same(t, innerDecl, m.Lookup("x", pos(3, 0)))
	// Inside the inner scope before the inner declaration, the outer one
	// still applies.
	assert.Same(t, outerDecl, m.Lookup("x", pos(2, 0)))
	// Outside the inner scope only the outer one applies.
	assert.Same(t, outerDecl, m.Lookup("x", pos(5, 0)))
}

func TestDeclarationMap_CompletionsAtShadowing(t *testing.T) {
	m := NewDeclarationMap()
	inner := syntax.Range{Start: pos(1, 0), End: pos(4, 1)}
	outerDecl := &Declaration{Name: "x", Start: pos(0, 10), End: pos(0, 10)}
	innerDecl := &Declaration{Name: "x", Start: pos(2, 12), End: pos(2, 12), Scope: &inner}
	require.True(t, m.Insert(outerDecl))
	require.True(t, m.Insert(innerDecl))

	var got []*Declaration
	for _, d := range m.CompletionsAt(pos(3, 0)) {
		if d.Name == "x" {
			got = append(got, d)
		}
	}
	require.Len(t, got, 1)
	assert.Same(t, innerDecl, got[0])
}

func TestDeclarationMap_CompletionsIncludeBuiltins(t *testing.T) {
	m := NewDeclarationMap()
	completions := m.CompletionsAt(pos(0, 0))
	require.Len(t, completions, len(Builtins()))
	assert.Equal(t, "print", completions[0].Name)
}

func TestDeclarationMap_BuiltinsAlwaysPresent(t *testing.T) {
	m := NewDeclarationMap()
	for _, b := range Builtins() {
		assert.True(t, m.IsBuiltin(b.Name))
		d := m.Lookup(b.Name, pos(0, 0))
		require.NotNil(t, d, "builtin %s", b.Name)
		assert.True(t, d.Used)
		assert.True(t, d.Builtin)
		assert.NotEmpty(t, d.Doc)
	}
	// Preloaded as used, so never reported unused.
	assert.Empty(t, m.Unused())
}

func TestDeclarationMap_UnusedOrderIsInsertionOrder(t *testing.T) {
	m := NewDeclarationMap()
	require.True(t, m.Insert(&Declaration{Name: "b", End: pos(0, 5)}))
	require.True(t, m.Insert(&Declaration{Name: "a", End: pos(1, 5)}))
	require.True(t, m.Insert(&Declaration{Name: "c", End: pos(2, 5)}))

	unused := m.Unused()
	require.Len(t, unused, 3)
	assert.Equal(t, "b", unused[0].Name)
	assert.Equal(t, "a", unused[1].Name)
	assert.Equal(t, "c", unused[2].Name)
}

func TestDeclaration_Signature(t *testing.T) {
	fn := &Declaration{Name: "add", Kind: DeclFunction, Params: []string{"a", "b"}}
	assert.Equal(t, "add(a, b)", fn.Signature())

	noArgs := &Declaration{Name: "f", Kind: DeclFunction}
	assert.Equal(t, "f()", noArgs.Signature())

	variable := &Declaration{Name: "x", Kind: DeclVariable, VarType: TypeNumber}
	assert.Equal(t, "x: Number", variable.Signature())

	untyped := &Declaration{Name: "y", Kind: DeclVariable}
	assert.Equal(t, "y: Any", untyped.Signature())
}
