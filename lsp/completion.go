// Copyright © 2025 The icelang-ls authors

package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/icelang/icelang-ls/analysis"
)

// textDocumentCompletion handles the textDocument/completion request.
// Results are the declarations visible at the cursor plus the language
// keywords, filtered by the partial identifier typed before the cursor.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
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
	prefix := completionPrefix(doc.Content, pos.Line, pos.Col)
	doc.mu.Unlock()

	var items []protocol.CompletionItem
	for _, decl := range result.Declarations.CompletionsAt(pos) {
		if prefix != "" && !strings.HasPrefix(decl.Name, prefix) {
			continue
		}
		items = append(items, completionItem(decl))
	}
	for _, kw := range analysis.Keywords {
		if prefix != "" && !strings.HasPrefix(kw, prefix) {
			continue
		}
		kind := protocol.CompletionItemKindKeyword
		items = append(items, protocol.CompletionItem{
			Label: kw,
			Kind:  &kind,
		})
	}
	return items, nil
}

func completionItem(decl *analysis.Declaration) protocol.CompletionItem {
	kind := protocol.CompletionItemKindVariable
	if decl.Kind == analysis.DeclFunction {
		kind = protocol.CompletionItemKindFunction
	}
	detail := decl.Signature()
	item := protocol.CompletionItem{
		Label:  decl.Name,
		Kind:   &kind,
		Detail: &detail,
	}
	if decl.Doc != "" {
		item.Documentation = &protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: decl.Doc,
		}
	}
	return item
}
