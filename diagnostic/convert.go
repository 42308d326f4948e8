// Copyright © 2025 The icelang-ls authors

package diagnostic

import (
	"github.com/icelang/icelang-ls/analysis"
)

// FromAnalysis converts an analysis diagnostic into a renderable one.
// Analysis positions are zero-based with an exclusive end column; spans
// are one-based with an inclusive end column. Ranges spanning multiple
// lines keep only the start line and let the renderer detect the end of
// the offending token.
func FromAnalysis(file string, d analysis.Diagnostic) Diagnostic {
	span := Span{
		File: file,
		Line: d.Range.Start.Line + 1,
		Col:  d.Range.Start.Col + 1,
	}
	if d.Range.End.Line == d.Range.Start.Line && d.Range.End.Col > d.Range.Start.Col {
		span.EndCol = d.Range.End.Col
	}
	return Diagnostic{
		Severity: mapSeverity(d.Severity),
		Message:  d.Message,
		Spans:    []Span{span},
	}
}

// FromAnalysisAll converts a batch of analysis diagnostics, preserving
// their order.
func FromAnalysisAll(file string, diags []analysis.Diagnostic) []Diagnostic {
	if len(diags) == 0 {
		return nil
	}
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, FromAnalysis(file, d))
	}
	return out
}

func mapSeverity(s analysis.Severity) Severity {
	switch s {
	case analysis.SeverityWarning:
		return SeverityWarning
	case analysis.SeverityHint:
		return SeverityHint
	default:
		return SeverityError
	}
}
