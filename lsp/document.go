// Copyright © 2025 The icelang-ls authors

package lsp

import (
	"context"
	"sync"
	"time"

	"go.opencensus.io/stats"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/icelang/icelang-ls/analysis"
	"github.com/icelang/icelang-ls/parser"
	"github.com/icelang/icelang-ls/syntax"
)

var tracer = otel.Tracer("icelang-ls/lsp")

// Document is an open text document tracked by the server. All fields
// are guarded by mu; re-parse and re-analysis happen inside the same
// critical section that applies a content change, so analysis always
// runs against the latest applied text.
type Document struct {
	mu       sync.Mutex
	URI      string
	Version  int32
	Content  string
	tree     *syntax.Node
	analysis *analysis.Result

	// analyzedVersion is the value of Version when analysis last ran.
	// It lets publishers detect a result that predates a newer edit.
	analyzedVersion int32
}

// refresh re-parses the content and re-analyzes the fresh tree. The
// previous tree and result are discarded wholesale. Callers hold mu.
func (d *Document) refresh(ctx context.Context) {
	source := []byte(d.Content)

	ctx, parseSpan := tracer.Start(ctx, "document/parse", trace.WithAttributes(
		attribute.String("uri", d.URI),
		attribute.Int("version", int(d.Version)),
	))
	d.tree = parser.Parse(source)
	parseSpan.End()

	ctx, analyzeSpan := tracer.Start(ctx, "document/analyze")
	start := time.Now()
	d.analysis = analysis.Analyze(source, d.tree)
	elapsed := time.Since(start)
	analyzeSpan.SetAttributes(
		attribute.Int("diagnostics", len(d.analysis.Diagnostics)),
		attribute.Int("declarations", d.analysis.Declarations.Len()),
	)
	analyzeSpan.End()

	stats.Record(ctx,
		mAnalysisDuration.M(float64(elapsed)/float64(time.Millisecond)),
		mDiagnostics.M(int64(len(d.analysis.Diagnostics))),
	)
	d.analyzedVersion = d.Version
}

// snapshot returns the current analysis result and the version it was
// computed for.
func (d *Document) snapshot() (*analysis.Result, int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.analysis, d.analyzedVersion
}

// DocumentStore manages open documents. The map guards one entry per
// URI: distinct documents are handled concurrently while operations on
// the same document serialize on its mutex.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Open adds a document to the store, parses and analyzes it.
func (s *DocumentStore) Open(ctx context.Context, uri string, version int32, content string) *Document {
	doc := &Document{
		URI:     uri,
		Version: version,
		Content: content,
	}
	doc.mu.Lock()
	doc.refresh(ctx)
	doc.mu.Unlock()

	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

// Change applies a full-content replacement and re-runs parse and
// analysis before releasing the document.
func (s *DocumentStore) Change(ctx context.Context, uri string, version int32, content string) *Document {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		doc = &Document{URI: uri}
		s.docs[uri] = doc
	}
	s.mu.Unlock()

	doc.mu.Lock()
	doc.Version = version
	doc.Content = content
	doc.refresh(ctx)
	doc.mu.Unlock()
	return doc
}

// Close removes a document from the store.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

// Get retrieves a document by URI. Returns nil if not found.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

// All returns every open document.
func (s *DocumentStore) All() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]*Document, 0, len(s.docs))
	for _, d := range s.docs {
		docs = append(docs, d)
	}
	return docs
}
