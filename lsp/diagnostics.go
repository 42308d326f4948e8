// Copyright © 2025 The icelang-ls authors

package lsp

import (
	"context"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/icelang/icelang-ls/analysis"
)

// textDocumentDidOpen handles the textDocument/didOpen notification.
func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.captureNotify(ctx)
	log.Debugf("open %s", uriToPath(params.TextDocument.URI))
	doc := s.docs.Open(
		context.Background(),
		params.TextDocument.URI,
		int32(params.TextDocument.Version),
		params.TextDocument.Text,
	)
	s.publishDiagnostics(doc)
	return nil
}

// textDocumentDidChange handles the textDocument/didChange notification.
// Analysis runs synchronously within the document's critical section, so
// the published diagnostics always describe the text of the version they
// are stamped with.
func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.captureNotify(ctx)
	// With full sync, the last content change is the complete document.
	var content string
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			content = c.Text
		case protocol.TextDocumentContentChangeEvent:
			content = c.Text
		}
	}

	doc := s.docs.Change(
		context.Background(),
		params.TextDocument.URI,
		int32(params.TextDocument.Version),
		content,
	)
	s.publishDiagnostics(doc)
	return nil
}

// textDocumentDidSave handles the textDocument/didSave notification.
func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.captureNotify(ctx)
	if doc := s.docs.Get(params.TextDocument.URI); doc != nil {
		s.publishDiagnostics(doc)
	}
	return nil
}

// textDocumentDidClose handles the textDocument/didClose notification.
func (s *Server) textDocumentDidClose(_ *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("close %s", uriToPath(params.TextDocument.URI))
	// Clear diagnostics for the closed file.
	s.sendNotification(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	s.docs.Close(params.TextDocument.URI)
	return nil
}

// publishDiagnostics sends the document's current diagnostics to the
// client, stamped with the version they were computed for. If a newer
// version was applied while this result was in flight the publish is
// dropped; the newer change publishes its own result.
func (s *Server) publishDiagnostics(doc *Document) {
	result, version := doc.snapshot()
	if result == nil {
		return
	}

	diags := make([]protocol.Diagnostic, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		diags = append(diags, convertDiagnostic(d))
	}

	doc.mu.Lock()
	current := doc.Version
	doc.mu.Unlock()
	if current != version {
		log.Debugf("dropping diagnostics for %s: version %d superseded by %d",
			uriToPath(doc.URI), version, current)
		return
	}

	v := safeUint(int(version))
	s.sendNotification(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     &v,
		Diagnostics: diags,
	})
}

// convertDiagnostic maps an analysis diagnostic to its protocol form.
func convertDiagnostic(d analysis.Diagnostic) protocol.Diagnostic {
	sev := mapSeverity(d.Severity)
	out := protocol.Diagnostic{
		Range:    toProtocolRange(d.Range),
		Severity: &sev,
		Source:   strPtr(analysis.Source),
		Message:  d.Message,
	}
	for _, tag := range d.Tags {
		if tag == analysis.TagUnnecessary {
			out.Tags = append(out.Tags, protocol.DiagnosticTagUnnecessary)
		}
	}
	return out
}

func mapSeverity(sev analysis.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case analysis.SeverityError:
		return protocol.DiagnosticSeverityError
	case analysis.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	case analysis.SeverityHint:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityInformation
	}
}
