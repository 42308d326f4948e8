// Copyright © 2025 The icelang-ls authors

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/icelang/icelang-ls/analysis"
)

// textDocumentDocumentSymbol handles the textDocument/documentSymbol
// request, reporting the document's module-level declarations.
func (s *Server) textDocumentDocumentSymbol(_ *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	result, _ := doc.snapshot()
	if result == nil {
		return nil, nil
	}

	var symbols []protocol.DocumentSymbol
	for _, decl := range result.Declarations.All() {
		if decl.Builtin || decl.IsParam || decl.Scope != nil {
			continue
		}
		r := toProtocolRange(decl.NameRange)
		detail := decl.Signature()
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           decl.Name,
			Detail:         &detail,
			Kind:           mapSymbolKind(decl),
			Range:          r,
			SelectionRange: r,
		})
	}
	return symbols, nil
}

func mapSymbolKind(decl *analysis.Declaration) protocol.SymbolKind {
	if decl.Kind == analysis.DeclFunction {
		return protocol.SymbolKindFunction
	}
	switch decl.VarType {
	case analysis.TypeArray:
		return protocol.SymbolKindArray
	case analysis.TypeObject:
		return protocol.SymbolKindObject
	case analysis.TypeString:
		return protocol.SymbolKindString
	case analysis.TypeNumber:
		return protocol.SymbolKindNumber
	case analysis.TypeBoolean:
		return protocol.SymbolKindBoolean
	default:
		return protocol.SymbolKindVariable
	}
}
