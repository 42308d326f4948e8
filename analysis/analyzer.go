// Copyright © 2025 The icelang-ls authors

// Package analysis implements the icelang semantic analyzer. A single
// depth-first walk over a parsed tree produces a diagnostics list and a
// declaration map with exact visibility ranges; the declaration map then
// answers completion and hover queries until the next edit replaces it.
package analysis

import (
	"github.com/icelang/icelang-ls/syntax"
)

// Result is the outcome of one analysis pass. Diagnostics are ordered by
// detection: walk order first, then unresolved references, then unused
// declarations. Callers treat the declaration map as immutable.
type Result struct {
	Diagnostics  []Diagnostic
	Declarations *DeclarationMap
}

// Analyze walks tree against source and returns diagnostics plus the
// document's declarations. It never fails: malformed input degrades to
// diagnostics and the walk always completes.
func Analyze(source []byte, tree *syntax.Node) *Result {
	a := &analyzer{
		source: source,
		decls:  NewDeclarationMap(),
	}
	a.walk(tree)
	a.resolveReferences()
	a.reportUnused()
	return &Result{Diagnostics: a.diags, Declarations: a.decls}
}

// reference is a queued identifier use, resolved after the walk so that
// hoisted functions declared later in the document are found.
type reference struct {
	name string
	rng  syntax.Range
}

type analyzer struct {
	source []byte
	diags  []Diagnostic
	decls  *DeclarationMap
	refs   []reference
}

func (a *analyzer) report(kind Kind, rng syntax.Range, detail string) {
	a.diags = append(a.diags, NewDiagnostic(kind, rng, detail))
}

func (a *analyzer) walk(n *syntax.Node) {
	if n == nil {
		return
	}
	a.handleSyntax(n)

	switch Classify(n) {
	case NodeVarDecl:
		a.varDecl(n)
	case NodeFuncDecl:
		a.funcDecl(n)
	case NodeLambda:
		a.lambda(n)
	case NodeFor:
		a.forLoop(n)
	case NodeIdentifier:
		a.identifier(n)
	case NodeContinue:
		a.controlFlow(n, ContinueOutside, a.insideLoop(n))
	case NodeBreak:
		a.controlFlow(n, BreakOutside, a.insideLoop(n))
	case NodeReturn:
		a.controlFlow(n, ReturnOutside, a.insideFunction(n))
	case NodeExprStmt:
		a.exprStatement(n)
	case NodeLiteral:
		a.literal(n)
	case NodeMatch:
		a.match(n)
	}

	for _, c := range n.Children() {
		a.walk(c)
	}
}

// handleSyntax turns parser error and missing nodes into diagnostics.
func (a *analyzer) handleSyntax(n *syntax.Node) {
	if n.IsError() {
		if child := n.Child(0); child != nil {
			if Classify(child) == NodeIdentifier {
				a.report(SyntaxError, child.Range(), "")
			} else {
				a.report(Unexpected, child.Range(), "")
			}
		} else {
			a.report(SyntaxError, n.Range(), "")
		}
	}
	if n.Missing {
		if n.Kind == syntax.KindIdentifier {
			if n.Field() == syntax.FieldField {
				a.report(ExpectedField, n.Range(), "")
			} else {
				a.report(ExpectedExpr, n.Range(), "")
			}
		} else {
			a.report(Missing, n.Range(), n.Kind)
		}
	}
}

func (a *analyzer) varDecl(n *syntax.Node) {
	name, nameRange, ok := a.declaredName(n)
	if !ok {
		return
	}

	value := n.ChildByField(syntax.FieldValue)
	varType, fields := a.inferType(value)

	// A variable becomes visible after its declaring statement, except
	// that a lambda-valued variable is visible from the lambda's body
	// start so the lambda can call itself.
	visible := n.EndPos
	if Classify(value) == NodeLambda {
		if body := value.ChildByField(syntax.FieldBody); body != nil {
			visible = body.StartPos
		}
	}

	a.insert(&Declaration{
		Name:      name,
		Kind:      DeclVariable,
		VarType:   varType,
		Fields:    fields,
		Start:     visible,
		End:       visible,
		NameRange: nameRange,
		Scope:     enclosingScope(n),
	}, nameRange)
}

func (a *analyzer) funcDecl(n *syntax.Node) {
	name, nameRange, ok := a.declaredName(n)
	if !ok {
		return
	}

	body := n.ChildByField(syntax.FieldBody)
	bodyStart := n.EndPos
	if body != nil {
		bodyStart = body.StartPos
	}

	params := paramNodes(n)
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Text(a.source))
	}

	// Hoisted: the function resolves everywhere outside its own header
	// range [Start, End).
	a.insert(&Declaration{
		Name:      name,
		Kind:      DeclFunction,
		Params:    names,
		Start:     n.StartPos,
		End:       bodyStart,
		NameRange: nameRange,
		Scope:     enclosingScope(n),
	}, nameRange)

	a.bindParams(n, params, true)
}

func (a *analyzer) lambda(n *syntax.Node) {
	a.bindParams(n, paramNodes(n), false)
}

// paramNodes returns the parameter identifiers of a function or lambda
// node. Recovery placeholders in the args list are skipped.
func paramNodes(n *syntax.Node) []*syntax.Node {
	args := n.ChildByField(syntax.FieldArgs)
	if args == nil || args.Missing {
		return nil
	}
	var params []*syntax.Node
	for _, c := range args.Children() {
		if c.Missing || Classify(c) != NodeIdentifier {
			continue
		}
		params = append(params, c)
	}
	return params
}

// bindParams registers each parameter as a declaration scoped to the
// function body, visible throughout it. Functions additionally bind the
// implicit self receiver; lambdas do not.
func (a *analyzer) bindParams(fn *syntax.Node, params []*syntax.Node, receiver bool) {
	body := fn.ChildByField(syntax.FieldBody)
	if body == nil || Classify(body) != NodeBlock {
		return
	}
	scope := body.Range()
	for _, p := range params {
		rng := p.Range()
		a.insert(&Declaration{
			Name:      p.Text(a.source),
			Kind:      DeclVariable,
			Start:     scope.Start,
			End:       scope.Start,
			NameRange: rng,
			Scope:     &scope,
			IsParam:   true,
		}, rng)
	}
	if receiver {
		a.decls.Insert(&Declaration{
			Name:      "self",
			Kind:      DeclVariable,
			Start:     scope.Start,
			End:       scope.Start,
			NameRange: scope,
			Scope:     &scope,
			IsParam:   true,
		})
	}
}

func (a *analyzer) forLoop(n *syntax.Node) {
	iter := n.ChildByField(syntax.FieldIterator)
	body := n.ChildByField(syntax.FieldBody)
	if iter == nil || body == nil || Classify(body) != NodeBlock {
		return
	}
	scope := body.Range()
	for _, binding := range iter.ChildrenByField(syntax.FieldName) {
		if binding.Missing {
			continue
		}
		rng := binding.Range()
		a.insert(&Declaration{
			Name:      binding.Text(a.source),
			Kind:      DeclVariable,
			Start:     scope.Start,
			End:       scope.Start,
			NameRange: rng,
			Scope:     &scope,
		}, rng)
	}
}

func (a *analyzer) identifier(n *syntax.Node) {
	if n.Missing || a.isDeclarationSite(n) {
		return
	}
	name := n.Text(a.source)
	if name == "" {
		a.report(ExpectedField, n.Range(), "")
		return
	}
	a.refs = append(a.refs, reference{name: name, rng: n.Range()})
}

// isDeclarationSite reports whether the identifier introduces a name
// rather than referencing one: declaration and property and iterator
// names, field-access members, and parameters.
func (a *analyzer) isDeclarationSite(n *syntax.Node) bool {
	switch n.Field() {
	case syntax.FieldName, syntax.FieldField:
		return true
	}
	parent := n.Parent()
	if Classify(parent) != NodeArgs {
		return false
	}
	switch Classify(parent.Parent()) {
	case NodeFuncDecl, NodeLambda:
		return true
	}
	return false
}

func (a *analyzer) controlFlow(n *syntax.Node, outside Kind, valid bool) {
	if !valid {
		a.report(outside, n.Range(), "")
		return
	}
	a.markUnreachable(n)
}

func (a *analyzer) exprStatement(n *syntax.Node) {
	inner := n.ChildByField(syntax.FieldValue)
	if inner == nil || !a.discardsResult(inner) {
		return
	}
	// The final statement of a block is its implicit result and is not
	// flagged.
	if n.NextSibling() == nil {
		return
	}
	a.report(UnusedResult, n.Range(), "")
	a.report(Assign, n.Range(), "")
}

// discardsResult reports whether evaluating expr as a statement throws
// its value away: plain literals, identifiers, unary expressions, and
// binary expressions other than assignment.
func (a *analyzer) discardsResult(expr *syntax.Node) bool {
	switch Classify(expr) {
	case NodeLiteral, NodeIdentifier, NodeUnary:
		return true
	case NodeBinary:
		op := expr.ChildByField(syntax.FieldOperator)
		return op == nil || op.Text(a.source) != "="
	}
	return false
}

func (a *analyzer) literal(n *syntax.Node) {
	text := n.Text(a.source)
	if len(text) == 0 || (text[0] != '\'' && text[0] != '"') {
		return
	}
	if n.StartPos.Line == n.EndPos.Line {
		return
	}
	// A string spilling across lines is almost always a lost delimiter;
	// flag both ends so the stray quote is easy to spot.
	open := syntax.Range{
		Start: n.StartPos,
		End:   syntax.Position{Line: n.StartPos.Line, Col: n.StartPos.Col + 1},
	}
	closing := syntax.Range{
		Start: syntax.Position{Line: n.EndPos.Line, Col: max(n.EndPos.Col-1, 0)},
		End:   n.EndPos,
	}
	a.report(UndelimitedStr, open, "")
	a.report(UndelimitedStr, closing, "")
}

func (a *analyzer) match(n *syntax.Node) {
	body := n.ChildByField(syntax.FieldBody)
	if body == nil || body.Missing {
		return
	}
	for _, c := range body.Children() {
		if c.Kind == syntax.KindMatchArm {
			return
		}
	}
	a.report(EmptyMatch, n.Range(), "")
}

// markUnreachable flags every statement following a definite control
// transfer in the same block with one hint spanning all of them.
func (a *analyzer) markUnreachable(n *syntax.Node) {
	first := n.NextSibling()
	if first == nil {
		return
	}
	end := first.EndPos
	for sib := first.NextSibling(); sib != nil; sib = sib.NextSibling() {
		if end.Before(sib.EndPos) {
			end = sib.EndPos
		}
	}
	a.report(Unreachable, syntax.Range{Start: first.StartPos, End: end}, "")
}

// declaredName extracts and validates the name of a declaration node.
// Builtin names are reserved.
func (a *analyzer) declaredName(n *syntax.Node) (string, syntax.Range, bool) {
	nameNode := n.ChildByField(syntax.FieldName)
	if nameNode == nil || nameNode.Missing {
		return "", syntax.Range{}, false
	}
	name := nameNode.Text(a.source)
	if name == "" {
		return "", syntax.Range{}, false
	}
	rng := nameNode.Range()
	if a.decls.IsBuiltin(name) {
		a.report(InvalidName, rng, name)
		return "", syntax.Range{}, false
	}
	return name, rng, true
}

// insert adds decl to the map, reporting a redeclaration when an equal
// name already occupies the same scope.
func (a *analyzer) insert(decl *Declaration, nameRange syntax.Range) {
	if !a.decls.Insert(decl) {
		a.report(Redeclaration, nameRange, decl.Name)
	}
}

// inferType attaches a shallow type tag to a variable initializer. Only
// direct literal, array, and object initializers are recognized; objects
// additionally surface their direct property names for completion.
func (a *analyzer) inferType(value *syntax.Node) (VarType, []string) {
	switch Classify(value) {
	case NodeLiteral:
		text := value.Text(a.source)
		switch {
		case text == "null":
			return TypeNull, nil
		case text == "true" || text == "false":
			return TypeBoolean, nil
		case len(text) > 0 && (text[0] == '\'' || text[0] == '"'):
			return TypeString, nil
		default:
			return TypeNumber, nil
		}
	case NodeArray:
		return TypeArray, nil
	case NodeObject:
		var fields []string
		for _, prop := range value.Children() {
			if Classify(prop) != NodeProperty {
				continue
			}
			name := prop.ChildByField(syntax.FieldName)
			if name == nil || name.Missing {
				continue
			}
			if text := name.Text(a.source); text != "" {
				fields = append(fields, text)
			}
		}
		return TypeObject, fields
	}
	return TypeAny, nil
}

// enclosingScope returns the parent block's range for block-local
// declarations, or nil at module level.
func enclosingScope(n *syntax.Node) *syntax.Range {
	if parent := n.Parent(); Classify(parent) == NodeBlock {
		r := parent.Range()
		return &r
	}
	return nil
}

// insideLoop reports whether n has an enclosing loop without crossing a
// function boundary.
func (a *analyzer) insideLoop(n *syntax.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch Classify(p) {
		case NodeLoop, NodeWhile, NodeFor:
			return true
		case NodeFuncDecl, NodeLambda:
			return false
		}
	}
	return false
}

// insideFunction reports whether n has an enclosing function or lambda.
func (a *analyzer) insideFunction(n *syntax.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch Classify(p) {
		case NodeFuncDecl, NodeLambda:
			return true
		}
	}
	return false
}

// resolveReferences runs the queued identifier uses against the
// declaration map, marking resolved declarations used.
func (a *analyzer) resolveReferences() {
	for _, ref := range a.refs {
		if !a.decls.Resolve(ref.name, ref.rng.End) {
			a.report(Undeclared, ref.rng, ref.name)
		}
	}
}

// reportUnused emits a hint per declaration never referenced. The
// discard placeholder and the implicit receiver are exempt.
func (a *analyzer) reportUnused() {
	for _, d := range a.decls.Unused() {
		if d.Name == "_" || d.Name == "self" {
			continue
		}
		a.report(Unused, d.NameRange, d.Name)
	}
}
