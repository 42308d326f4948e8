// Copyright © 2025 The icelang-ls authors

package analysis

import (
	"testing"

	"github.com/icelang/icelang-ls/syntax"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		kind string
		want NodeType
	}{
		{syntax.KindBlock, NodeBlock},
		{syntax.KindVarDecl, NodeVarDecl},
		{syntax.KindFuncDecl, NodeFuncDecl},
		{syntax.KindLoop, NodeLoop},
		{syntax.KindWhile, NodeWhile},
		{syntax.KindFor, NodeFor},
		{syntax.KindContinue, NodeContinue},
		{syntax.KindBreak, NodeBreak},
		{syntax.KindReturn, NodeReturn},
		{syntax.KindExprStmt, NodeExprStmt},
		{syntax.KindLiteral, NodeLiteral},
		{syntax.KindIdentifier, NodeIdentifier},
		{syntax.KindBinary, NodeBinary},
		{syntax.KindLambda, NodeLambda},
		{syntax.KindMatch, NodeMatch},
		{syntax.KindError, NodeError},
		{syntax.KindIterator, NodeIterator},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(syntax.NewNode(tt.kind)), "kind %s", tt.kind)
	}
}

func TestClassify_Total(t *testing.T) {
	// Unknown kinds and nil nodes never fail classification.
	assert.Equal(t, NodeUnnamed, Classify(nil))
	assert.Equal(t, NodeUnnamed, Classify(syntax.NewNode("something_new")))
	assert.Equal(t, NodeUnnamed, Classify(syntax.NewNode("")))
	assert.Equal(t, NodeUnnamed, Classify(syntax.NewNode(";")))
	assert.Equal(t, NodeUnnamed, Classify(syntax.NewNode(syntax.KindSourceFile)))
}

func TestDiagnostic_SeverityAndTags(t *testing.T) {
	assert.Equal(t, SeverityError, SyntaxError.Severity())
	assert.Equal(t, SeverityError, Undeclared.Severity())
	assert.Equal(t, SeverityWarning, UnusedResult.Severity())
	assert.Equal(t, SeverityHint, Assign.Severity())
	assert.Equal(t, SeverityHint, Unused.Severity())

	d := NewDiagnostic(Unreachable, syntax.Range{}, "")
	assert.Equal(t, []Tag{TagUnnecessary}, d.Tags)
	assert.Empty(t, NewDiagnostic(SyntaxError, syntax.Range{}, "").Tags)
}

func TestDiagnostic_String(t *testing.T) {
	d := NewDiagnostic(Undeclared, syntax.Range{
		Start: syntax.Position{Line: 2, Col: 4},
		End:   syntax.Position{Line: 2, Col: 5},
	}, "x")
	assert.Equal(t, "3:5: error: Undeclared identifier 'x'", d.String())
}
