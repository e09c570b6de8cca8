// Package mhdb converts curated mental-health spreadsheets into RDF Turtle
// documents. The root package wires the default workbook loader, the five
// module ingesters, the renderer registry, and the header writer into an
// orchestrator so callers can start with a single constructor call.
package mhdb

import (
	"context"

	"github.com/goliatone/go-mhdb/internal/ingest"
	internalLoader "github.com/goliatone/go-mhdb/internal/workbook/loader"
	"github.com/goliatone/go-mhdb/pkg/config"
	"github.com/goliatone/go-mhdb/pkg/module"
	"github.com/goliatone/go-mhdb/pkg/orchestrator"
	"github.com/goliatone/go-mhdb/pkg/render"
	"github.com/goliatone/go-mhdb/pkg/statement"
	"github.com/goliatone/go-mhdb/pkg/workbook"
)

// Config aliases the run configuration for convenience.
type Config = config.Config

// RenderOptions aliases the per-document renderer inputs.
type RenderOptions = render.RenderOptions

// StatementMap aliases the triple model shared by ingesters and renderers.
type StatementMap = statement.Map

// NewOrchestrator constructs an orchestrator with the built-in ingesters
// registered ahead of any caller options, so options can still override them.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	defaults := []orchestrator.Option{orchestrator.WithIngesters(DefaultIngesters()...)}
	return orchestrator.New(append(defaults, options...)...)
}

// DefaultIngesters returns the built-in ingester for every module in catalog
// order.
func DefaultIngesters() []orchestrator.Ingester {
	var out []orchestrator.Ingester
	for _, name := range module.Names() {
		if ing, ok := ingest.For(name); ok {
			out = append(out, ing)
		}
	}
	return out
}

// NewLoader builds the excelize-backed workbook loader from functional
// options.
func NewLoader(options ...workbook.LoaderOption) workbook.Loader {
	return internalLoader.New(workbook.NewLoaderOptions(options...))
}

// Run executes the whole pipeline under cfg: every enabled module is fetched,
// ingested, rendered, and written to the configured output directory.
func Run(ctx context.Context, cfg *config.Config, options ...orchestrator.Option) error {
	opts := append([]orchestrator.Option{orchestrator.WithConfig(cfg)}, options...)
	return NewOrchestrator(opts...).Run(ctx)
}
