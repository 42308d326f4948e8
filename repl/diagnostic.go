// Copyright © 2025 The icelang-ls authors

package repl

import (
	"io"

	"github.com/icelang/icelang-ls/analysis"
	"github.com/icelang/icelang-ls/diagnostic"
)

// replFile is the display name used for snippets entered at the prompt.
const replFile = "<repl>"

// renderDiagnostics renders analysis diagnostics for a snippet using the
// annotated source renderer. The snippet itself backs the source reader
// so underlines show the line just entered.
func renderDiagnostics(w io.Writer, snippet []byte, diags []analysis.Diagnostic) {
	r := &diagnostic.Renderer{
		Color: diagnostic.ColorAuto,
		SourceReader: func(name string) ([]byte, error) {
			return snippet, nil
		},
	}
	_ = r.RenderAll(w, diagnostic.FromAnalysisAll(replFile, diags))
}
