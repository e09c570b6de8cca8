// Package ingest translates workbook rows into RDF statement maps, one
// ingester per data module. The sheet and column conventions follow the
// curated mental-health spreadsheets: a Classes and a Properties sheet for
// ontology scaffolding, then domain sheets whose rows cross-reference each
// other through numeric index columns.
package ingest

import (
	"context"
	"fmt"

	"github.com/goliatone/go-mhdb/pkg/module"
	"github.com/goliatone/go-mhdb/pkg/statement"
	"github.com/goliatone/go-mhdb/pkg/workbook"
)

// Ingester turns one module's workbook set into statements.
type Ingester interface {
	// Module names the data domain this ingester serves.
	Module() module.Name

	// Ingest appends the module's statements to the map. The map may already
	// hold statements from an earlier pass.
	Ingest(ctx context.Context, books workbook.Set, statements *statement.Map) error
}

var ingesters = map[module.Name]Ingester{
	module.States:      statesIngester{},
	module.Disorders:   disordersIngester{},
	module.Resources:   resourcesIngester{},
	module.Assessments: assessmentsIngester{},
	module.Sensors:     sensorsIngester{},
}

// For returns the ingester for the named module.
func For(name module.Name) (Ingester, bool) {
	ing, ok := ingesters[name]
	return ing, ok
}

// All returns every registered ingester keyed by module name.
func All() map[module.Name]Ingester {
	out := make(map[module.Name]Ingester, len(ingesters))
	for name, ing := range ingesters {
		out[name] = ing
	}
	return out
}

// requireSheet returns the named sheet or a fatal error: a workbook missing a
// conventional sheet is treated like a parse failure.
func requireSheet(name module.Name, wb *workbook.Workbook, sheet string) (*workbook.Sheet, error) {
	if wb == nil {
		return nil, fmt.Errorf("ingest: %s: workbook is required", name)
	}
	s, ok := wb.Sheet(sheet)
	if !ok {
		return nil, fmt.Errorf("ingest: %s: workbook %s is missing sheet %q", name, wb.Location(), sheet)
	}
	return s, nil
}
