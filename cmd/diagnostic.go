// Copyright © 2025 The icelang-ls authors

package cmd

import (
	"os"

	"github.com/icelang/icelang-ls/analysis"
	"github.com/icelang/icelang-ls/diagnostic"
)

func colorMode() diagnostic.ColorMode {
	switch colorFlag {
	case "always":
		return diagnostic.ColorAlways
	case "never":
		return diagnostic.ColorNever
	default:
		return diagnostic.ColorAuto
	}
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: colorMode()}
}

// renderAnalysisDiagnostics renders analyzer findings for one file to
// stderr. When src is non-nil it backs the renderer's source reader,
// which covers stdin input that has no path to re-read.
func renderAnalysisDiagnostics(file string, src []byte, diags []analysis.Diagnostic) {
	r := newRenderer()
	if src != nil {
		r.SourceReader = func(string) ([]byte, error) {
			return src, nil
		}
	}
	_ = r.RenderAll(os.Stderr, diagnostic.FromAnalysisAll(file, diags))
}
