// Copyright © 2025 The icelang-ls authors

package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/icelang/icelang-ls/analysis"
	"github.com/icelang/icelang-ls/syntax"
)

// textDocumentHover handles the textDocument/hover request.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	result, _ := doc.snapshot()
	if result == nil {
		return nil, nil
	}

	pos := fromProtocolPosition(params.Position)

	doc.mu.Lock()
	word := wordAtPosition(doc.Content, pos.Line, pos.Col)
	doc.mu.Unlock()
	if word == "" {
		return nil, nil
	}

	decl := declarationAt(result, word, pos)
	if decl == nil {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: hoverContent(decl),
		},
	}, nil
}

// declarationAt finds the declaration for word at pos. The declaration's
// own name token is checked first so hovering a definition works even
// though the name is not yet visible there; otherwise the position
// resolves like a reference.
func declarationAt(result *analysis.Result, word string, pos syntax.Position) *analysis.Declaration {
	for _, d := range result.Declarations.All() {
		if d.Name == word && !d.Builtin && d.NameRange.Contains(pos) {
			return d
		}
	}
	return result.Declarations.Lookup(word, pos)
}

// hoverContent builds Markdown hover text for a declaration.
func hoverContent(decl *analysis.Declaration) string {
	var sb strings.Builder

	label := "variable"
	switch {
	case decl.Builtin:
		label = "builtin"
	case decl.Kind == analysis.DeclFunction:
		label = "function"
	case decl.IsParam:
		label = "parameter"
	}
	fmt.Fprintf(&sb, "**%s** `%s`", label, decl.Name)

	fmt.Fprintf(&sb, "\n\n```icelang\n%s\n```", decl.Signature())

	if decl.Doc != "" {
		fmt.Fprintf(&sb, "\n\n%s", decl.Doc)
	}
	if len(decl.Fields) > 0 {
		fmt.Fprintf(&sb, "\n\nFields: `%s`", strings.Join(decl.Fields, "`, `"))
	}
	return sb.String()
}
