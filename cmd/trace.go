// Copyright © 2025 The icelang-ls authors

package cmd

import (
	"context"
	"strings"

	"github.com/tliron/commonlog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// setupTracing installs a tracer provider that exports span summaries
// through the log. The returned function flushes and shuts the provider
// down.
func setupTracing() func() {
	exporter := &logSpanExporter{log: commonlog.GetLogger("icelang-ls.trace")}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	return func() {
		_ = tp.Shutdown(context.Background())
	}
}

// logSpanExporter writes one log line per finished span.
type logSpanExporter struct {
	log commonlog.Logger
}

func (e *logSpanExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		elapsed := span.EndTime().Sub(span.StartTime())
		e.log.Debugf("%s %s %s", span.Name(), elapsed, formatAttributes(span.Attributes()))
	}
	return nil
}

func (e *logSpanExporter) Shutdown(_ context.Context) error {
	return nil
}

func formatAttributes(attrs []attribute.KeyValue) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(attrs))
	for _, kv := range attrs {
		parts = append(parts, string(kv.Key)+"="+kv.Value.Emit())
	}
	return strings.Join(parts, " ")
}
