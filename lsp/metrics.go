// Copyright © 2025 The icelang-ls authors

package lsp

import (
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
)

var (
	mAnalysisDuration = stats.Float64(
		"icelang_ls/analysis_duration",
		"Time spent in one parse+analyze pass",
		stats.UnitMilliseconds)
	mDiagnostics = stats.Int64(
		"icelang_ls/diagnostics",
		"Diagnostics produced by one analysis pass",
		stats.UnitDimensionless)
)

// Views aggregates per-pass analysis measurements. Registration is left
// to the caller so embedding the server does not force an exporter.
func Views() []*view.View {
	return []*view.View{
		{
			Name:        "icelang_ls/analysis_duration",
			Description: "Distribution of analysis pass duration",
			Measure:     mAnalysisDuration,
			Aggregation: view.Distribution(1, 5, 10, 25, 50, 100, 250, 500, 1000),
		},
		{
			Name:        "icelang_ls/diagnostics",
			Description: "Distribution of diagnostics per analysis pass",
			Measure:     mDiagnostics,
			Aggregation: view.Distribution(0, 1, 5, 10, 25, 50, 100),
		},
	}
}

// RegisterViews registers the analysis views with the default opencensus
// registry.
func RegisterViews() error {
	return view.Register(Views()...)
}
