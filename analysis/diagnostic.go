// Copyright © 2025 The icelang-ls authors

package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/icelang/icelang-ls/syntax"
)

// Source identifies this analyzer in diagnostics surfaced to editors.
const Source = "icelang_ls"

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the severity as a JSON string.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Tag carries presentation metadata for a diagnostic.
type Tag int

const (
	// TagUnnecessary marks code clients may render faded or struck
	// through.
	TagUnnecessary Tag = iota + 1
)

// Kind enumerates every diagnostic the analyzer can produce. The set is
// closed; each kind renders to a fixed message shape and severity.
type Kind int

const (
	SyntaxError Kind = iota
	Unexpected
	ExpectedExpr
	ExpectedField
	Missing
	UndelimitedStr
	Redeclaration
	InvalidName
	Undeclared
	ContinueOutside
	BreakOutside
	ReturnOutside
	UnusedResult
	Assign
	EmptyMatch
	Unused
	Unreachable
)

// Severity returns the severity the kind surfaces with.
func (k Kind) Severity() Severity {
	switch k {
	case UnusedResult:
		return SeverityWarning
	case Assign, EmptyMatch, Unused, Unreachable:
		return SeverityHint
	default:
		return SeverityError
	}
}

// Message renders the human-readable message for the kind. detail carries
// the identifier name or missing token text for parameterized kinds and
// is ignored by the rest.
func (k Kind) Message(detail string) string {
	switch k {
	case SyntaxError:
		return "Syntax error"
	case Unexpected:
		return "Unexpected token"
	case ExpectedExpr:
		return "Expected expression"
	case ExpectedField:
		return "Expected field name"
	case Missing:
		return fmt.Sprintf("Missing '%s'", detail)
	case UndelimitedStr:
		return "Undelimited string"
	case Redeclaration:
		return fmt.Sprintf("Redeclaring existing identifier '%s'", detail)
	case InvalidName:
		return fmt.Sprintf("Invalid identifier name '%s'", detail)
	case Undeclared:
		return fmt.Sprintf("Undeclared identifier '%s'", detail)
	case ContinueOutside:
		return "continue outside of a loop"
	case BreakOutside:
		return "break outside of a loop"
	case ReturnOutside:
		return "return outside of a function"
	case UnusedResult:
		return "Expression result is never used"
	case Assign:
		return "Assign the result to an identifier"
	case EmptyMatch:
		return "Empty match expression"
	case Unused:
		return fmt.Sprintf("'%s' is never used", detail)
	case Unreachable:
		return "Unreachable code"
	default:
		return "Unknown diagnostic"
	}
}

// tags returns presentation tags attached to the kind.
func (k Kind) tags() []Tag {
	if k == Unreachable {
		return []Tag{TagUnnecessary}
	}
	return nil
}

// Diagnostic is a single finding, immutable once constructed.
type Diagnostic struct {
	Kind     Kind          `json:"-"`
	Range    syntax.Range  `json:"range"`
	Severity Severity      `json:"severity"`
	Message  string        `json:"message"`
	Tags     []Tag         `json:"tags,omitempty"`
}

// NewDiagnostic builds the diagnostic for kind at rng. detail is the
// name/token payload for parameterized kinds.
func NewDiagnostic(kind Kind, rng syntax.Range, detail string) Diagnostic {
	return Diagnostic{
		Kind:     kind,
		Range:    rng,
		Severity: kind.Severity(),
		Message:  kind.Message(detail),
		Tags:     kind.tags(),
	}
}

// String renders the diagnostic in a line:col: severity: message form for
// CLI output and logs.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s",
		d.Range.Start.Line+1, d.Range.Start.Col+1, d.Severity, d.Message)
}
