// Package orchestrator sequences the per-module pipeline: fetch workbooks,
// ingest statements, render, resolve prefixes, write the header, and emit the
// output document. Modules run strictly one after another; a fatal failure
// aborts the run and leaves the files already written in place.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/goliatone/go-mhdb/internal/emitter"
	internalLoader "github.com/goliatone/go-mhdb/internal/workbook/loader"
	"github.com/goliatone/go-mhdb/pkg/config"
	"github.com/goliatone/go-mhdb/pkg/header"
	"github.com/goliatone/go-mhdb/pkg/module"
	"github.com/goliatone/go-mhdb/pkg/ontology"
	"github.com/goliatone/go-mhdb/pkg/render"
	"github.com/goliatone/go-mhdb/pkg/renderers/ntriples"
	"github.com/goliatone/go-mhdb/pkg/renderers/turtle"
	"github.com/goliatone/go-mhdb/pkg/statement"
	"github.com/goliatone/go-mhdb/pkg/workbook"
)

// Ingester turns one module's workbook set into statements. Implementations
// live under internal/ingest; the top-level mhdb package wires them in.
type Ingester interface {
	Module() module.Name
	Ingest(ctx context.Context, books workbook.Set, statements *statement.Map) error
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithConfig supplies the run configuration.
func WithConfig(cfg *config.Config) Option {
	return func(o *Orchestrator) {
		if cfg != nil {
			o.config = cfg
		}
	}
}

// WithLoader injects a custom workbook loader.
func WithLoader(loader workbook.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithIngesters registers the module ingesters the run dispatches to.
func WithIngesters(ingesters ...Ingester) Option {
	return func(o *Orchestrator) {
		for _, ing := range ingesters {
			if ing == nil {
				continue
			}
			o.ingesters[ing.Module()] = ing
		}
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithHeaderWriter injects a custom header writer.
func WithHeaderWriter(writer *header.Writer) Option {
	return func(o *Orchestrator) {
		o.header = writer
	}
}

// WithEmitter injects a custom emitter.
func WithEmitter(e *emitter.Emitter) Option {
	return func(o *Orchestrator) {
		o.emitter = e
	}
}

// WithLogger supplies a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the full pipeline across the module catalog. It
// applies sensible defaults (file loader, turtle renderer, embedded header
// template) while remaining open to dependency injection.
type Orchestrator struct {
	config          *config.Config
	loader          workbook.Loader
	ingesters       map[module.Name]Ingester
	registry        *render.Registry
	header          *header.Writer
	emitter         *emitter.Emitter
	logger          *slog.Logger
	initialiseErr   error
	defaultsApplied bool

	// workbooks caches loads within one run so the resources workbook read
	// during setup serves both cross references and the resources module.
	workbooks map[module.Name]*workbook.Workbook
	prefixes  *ontology.Table
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		ingesters: make(map[module.Name]Ingester),
		workbooks: make(map[module.Name]*workbook.Workbook),
		logger:    slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Run executes the pipeline for every enabled module in catalog order. The
// ontologies reference table is loaded once up front, independent of which
// modules are enabled, because every module's prefix resolution reads it.
func (o *Orchestrator) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := o.initialiseErr; err != nil {
		return err
	}

	if err := o.loadPrefixTable(ctx); err != nil {
		return err
	}

	for _, desc := range module.Catalog() {
		if !o.config.Enabled(desc.Name) {
			o.logger.Debug("module disabled, skipping", slog.String("module", string(desc.Name)))
			continue
		}
		if err := o.runModule(ctx, desc); err != nil {
			return err
		}
	}
	return nil
}

// loadPrefixTable reads the ontologies sheet from the resources workbook.
func (o *Orchestrator) loadPrefixTable(ctx context.Context) error {
	wb, err := o.workbook(ctx, module.Resources)
	if err != nil {
		return fmt.Errorf("orchestrator: load ontologies table: %w", err)
	}
	sheet, ok := wb.Sheet(ontology.SheetName)
	if !ok {
		return fmt.Errorf("orchestrator: resources workbook %s has no %q sheet", wb.Location(), ontology.SheetName)
	}
	table, err := ontology.TableFromSheet(sheet)
	if err != nil {
		return fmt.Errorf("orchestrator: parse ontologies table: %w", err)
	}
	o.prefixes = table
	return nil
}

func (o *Orchestrator) runModule(ctx context.Context, desc module.Descriptor) error {
	logger := o.logger.With(slog.String("module", string(desc.Name)))
	logger.Info("generating module")

	ing, ok := o.ingesters[desc.Name]
	if !ok {
		return fmt.Errorf("orchestrator: no ingester registered for module %q", desc.Name)
	}

	books, err := o.workbookSet(ctx, desc)
	if err != nil {
		return err
	}

	statements := statement.NewMap()
	if err := ing.Ingest(ctx, books, statements); err != nil {
		return fmt.Errorf("orchestrator: ingest %s: %w", desc.Name, err)
	}
	if statements.Empty() {
		logger.Info("no statements produced, skipping output")
		return nil
	}

	renderer, err := o.registry.Get(o.config.Renderer)
	if err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}
	body, err := renderer.Render(ctx, statements, render.RenderOptions{
		BaseNamespace: desc.Namespace(),
		Prefixes:      o.prefixes,
	})
	if err != nil {
		return fmt.Errorf("orchestrator: render %s: %w", desc.Name, err)
	}

	resolver := ontology.NewResolver(o.prefixes, logger)
	entries := resolver.Resolve(statements, desc.ExcludePrefixes)

	head, err := o.header.Write(ctx, header.Params{
		Module:   desc,
		Version:  o.config.Version,
		Prefixes: entries,
	})
	if err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}

	doc := emitter.Document{
		Path:   filepath.Join(o.config.Output, desc.OutputFile),
		Header: head,
		Body:   body,
	}
	if err := o.emitter.Emit(ctx, doc); err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}

	logger.Info("module done",
		slog.String("output", doc.Path),
		slog.Int("subjects", statements.Len()))
	return nil
}

// workbookSet loads the module's own workbook and every cross-reference
// workbook its descriptor names.
func (o *Orchestrator) workbookSet(ctx context.Context, desc module.Descriptor) (workbook.Set, error) {
	primary, err := o.workbook(ctx, desc.Name)
	if err != nil {
		return workbook.Set{}, fmt.Errorf("orchestrator: load workbook %s: %w", desc.Name, err)
	}

	set := workbook.Set{Primary: primary}
	if len(desc.CrossRefs) > 0 {
		set.CrossRefs = make(map[module.Name]*workbook.Workbook, len(desc.CrossRefs))
		for _, ref := range desc.CrossRefs {
			wb, err := o.workbook(ctx, ref)
			if err != nil {
				return workbook.Set{}, fmt.Errorf("orchestrator: load cross-reference workbook %s: %w", ref, err)
			}
			set.CrossRefs[ref] = wb
		}
	}
	return set, nil
}

// workbook loads and caches one module's workbook for the run.
func (o *Orchestrator) workbook(ctx context.Context, name module.Name) (*workbook.Workbook, error) {
	if wb, ok := o.workbooks[name]; ok {
		return wb, nil
	}

	wb, err := o.loader.Load(ctx, o.source(name))
	if err != nil {
		return nil, err
	}
	o.workbooks[name] = wb
	return wb, nil
}

// source picks the remote-with-cache source when the module has a doc id and
// the run is online, the plain cache file otherwise.
func (o *Orchestrator) source(name module.Name) workbook.Source {
	path := o.config.WorkbookPath(name)
	if o.config.Offline {
		return workbook.SourceFromFile(path)
	}
	if docID := o.config.DocID(name); docID != "" {
		return workbook.SourceFromRemote(docID, path)
	}
	return workbook.SourceFromFile(path)
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.config == nil {
		o.config = config.DefaultConfig()
	}
	if o.loader == nil {
		o.loader = internalLoader.New(workbook.NewLoaderOptions(
			workbook.WithRemoteFetch(o.config.FetchTimeout),
			workbook.WithLogger(o.logger),
		))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(turtle.New())
		o.registry.MustRegister(ntriples.New())
	}
	if o.header == nil {
		writer, err := header.New(header.WithLogger(o.logger))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default header writer: %w", err)
		} else {
			o.header = writer
		}
	}
	if o.emitter == nil {
		o.emitter = emitter.New(emitter.WithLogger(o.logger))
	}

	o.defaultsApplied = true
}
