// Copyright © 2025 The icelang-ls authors

package analysis

import (
	"fmt"
	"strings"

	"github.com/icelang/icelang-ls/syntax"
)

// DeclKind classifies a declaration.
type DeclKind int

const (
	DeclVariable DeclKind = iota
	DeclFunction
)

func (k DeclKind) String() string {
	switch k {
	case DeclVariable:
		return "variable"
	case DeclFunction:
		return "function"
	default:
		return "unknown"
	}
}

// VarType is the shallow, best-effort type tag attached to variables
// initialized with a literal, array, or object.
type VarType int

const (
	TypeAny VarType = iota
	TypeNull
	TypeBoolean
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

func (t VarType) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBoolean:
		return "Boolean"
	case TypeNumber:
		return "Number"
	case TypeString:
		return "String"
	case TypeArray:
		return "Array"
	case TypeObject:
		return "Object"
	default:
		return "Any"
	}
}

// Declaration is one binding introduced in a document (or a preloaded
// builtin).
type Declaration struct {
	Name string
	Kind DeclKind

	// VarType and Fields are meaningful for variables only. Fields holds
	// the direct property names of an object-initialized variable.
	VarType VarType
	Fields  []string

	// Params holds parameter names for functions.
	Params []string

	// Start and End delimit the visibility range. For a variable both
	// mark the position right after its declaring statement (or the
	// lambda body start for lambda-valued variables); the variable is
	// visible strictly after End. For a function Start is the header
	// start and End the body start; hoisting makes the function visible
	// everywhere outside [Start, End).
	Start syntax.Position
	End   syntax.Position

	// NameRange is the span of just the identifier token.
	NameRange syntax.Range

	// Scope is the enclosing block range, or nil for module level. A
	// scoped declaration is visible only strictly inside the range.
	Scope *syntax.Range

	// IsParam marks function/lambda parameters and the implicit receiver;
	// they are visible throughout their scope regardless of position.
	IsParam bool

	// Used flips when a reference first resolves to this declaration.
	Used bool

	// Builtin marks catalog entries: no scope, no position constraint,
	// preloaded and always used.
	Builtin bool

	// Doc is markdown documentation, attached for builtins.
	Doc string
}

// sameScope reports whether two declarations occupy the same scope, the
// structural equality insert uses to detect redeclarations.
func (d *Declaration) sameScope(other *Declaration) bool {
	if (d.Scope == nil) != (other.Scope == nil) {
		return false
	}
	return d.Scope == nil || *d.Scope == *other.Scope
}

// visibleAt reports whether the declaration can be referenced from pos.
func (d *Declaration) visibleAt(pos syntax.Position) bool {
	if d.Builtin {
		return true
	}
	switch {
	case d.IsParam:
		// Position is unconstrained; only the scope check applies.
	case d.Kind == DeclFunction:
		// Hoisted: visible anywhere outside the header range.
		header := syntax.Range{Start: d.Start, End: d.End}
		if header.Contains(pos) {
			return false
		}
	default:
		// Sequential: visible strictly after the declaring statement.
		if !pos.After(d.End) {
			return false
		}
	}
	if d.Scope != nil && !d.Scope.ContainsInner(pos) {
		return false
	}
	return true
}

// Signature renders a one-line description for completion details and
// hover headers.
func (d *Declaration) Signature() string {
	if d.Kind == DeclFunction {
		return fmt.Sprintf("%s(%s)", d.Name, strings.Join(d.Params, ", "))
	}
	return fmt.Sprintf("%s: %s", d.Name, d.VarType)
}

// DeclarationMap owns every declaration found in a document, keyed by
// name. Many declarations may share a name across distinct scopes; each
// name's bucket is scanned linearly, which is fine at single-file sizes.
type DeclarationMap struct {
	buckets map[string][]*Declaration
	ordered []*Declaration // insertion order, for deterministic output
}

// NewDeclarationMap returns a map seeded with the builtin catalog.
func NewDeclarationMap() *DeclarationMap {
	m := &DeclarationMap{buckets: make(map[string][]*Declaration)}
	for _, b := range Builtins() {
		m.Insert(&Declaration{
			Name:    b.Name,
			Kind:    DeclFunction,
			Params:  b.Params,
			Builtin: true,
			Used:    true,
			Doc:     b.Doc,
		})
	}
	return m
}

// IsBuiltin reports whether name is reserved by the builtin catalog.
func (m *DeclarationMap) IsBuiltin(name string) bool {
	for _, d := range m.buckets[name] {
		if d.Builtin {
			return true
		}
	}
	return false
}

// Insert adds decl unless an equal declaration (same name, same scope)
// already exists. It reports whether the insert took place; a false
// return is the analyzer's redeclaration signal and leaves the map
// unchanged.
func (m *DeclarationMap) Insert(decl *Declaration) bool {
	bucket := m.buckets[decl.Name]
	for _, d := range bucket {
		if d.sameScope(decl) {
			return false
		}
	}
	m.buckets[decl.Name] = append(bucket, decl)
	m.ordered = append(m.ordered, decl)
	return true
}

// Resolve finds the declaration for name visible at pos and marks it
// used. It reports whether resolution succeeded. When several
// declarations are visible the innermost wins; see nearest.
func (m *DeclarationMap) Resolve(name string, pos syntax.Position) bool {
	d := nearest(m.buckets[name], pos)
	if d == nil {
		return false
	}
	d.Used = true
	return true
}

// Lookup returns the declaration for name visible at pos without marking
// it used, or nil.
func (m *DeclarationMap) Lookup(name string, pos syntax.Position) *Declaration {
	return nearest(m.buckets[name], pos)
}

// CompletionsAt returns, for every name with at least one declaration
// visible at pos, the single nearest declaration. Shadowed declarations
// are never offered alongside the declaration shadowing them. Results
// are in declaration order (builtins first).
func (m *DeclarationMap) CompletionsAt(pos syntax.Position) []*Declaration {
	byName := make(map[string]*Declaration)
	var out []*Declaration
	for _, d := range m.ordered {
		best := byName[d.Name]
		if best != nil {
			continue
		}
		if n := nearest(m.buckets[d.Name], pos); n != nil {
			byName[d.Name] = n
			out = append(out, n)
		}
	}
	return out
}

// Unused returns every declaration never marked used, in declaration
// order. Builtins are preloaded as used and never appear; callers filter
// placeholder names like the discard identifier and the implicit
// receiver.
func (m *DeclarationMap) Unused() []*Declaration {
	var out []*Declaration
	for _, d := range m.ordered {
		if !d.Used {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the total number of declarations, builtins included.
func (m *DeclarationMap) Len() int {
	return len(m.ordered)
}

// All returns every declaration in insertion order. The slice must not
// be mutated.
func (m *DeclarationMap) All() []*Declaration {
	return m.ordered
}

// nearest scans a bucket for the winning declaration visible at pos:
// among visible candidates the one whose visibility start is latest wins.
// A declaration in an inner scope necessarily starts later in the text
// than any outer declaration it shadows, so latest-start picks the
// innermost applicable scope deterministically.
func nearest(bucket []*Declaration, pos syntax.Position) *Declaration {
	var best *Declaration
	for _, d := range bucket {
		if !d.visibleAt(pos) {
			continue
		}
		if best == nil || d.Start.After(best.Start) {
			best = d
		}
	}
	return best
}
