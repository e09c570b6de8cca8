package ingest

import (
	"context"

	"github.com/goliatone/go-mhdb/pkg/module"
	"github.com/goliatone/go-mhdb/pkg/statement"
	"github.com/goliatone/go-mhdb/pkg/workbook"
)

// statesIngester maps the states workbook: mental-health states and the state
// types they belong to.
type statesIngester struct{}

var _ Ingester = statesIngester{}

func (statesIngester) Module() module.Name { return module.States }

func (statesIngester) Ingest(ctx context.Context, books workbook.Set, m *statement.Map) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ingestScaffolding(module.States, books.Primary, m); err != nil {
		return err
	}

	states, err := requireSheet(module.States, books.Primary, "states")
	if err != nil {
		return err
	}
	stateTypes, err := requireSheet(module.States, books.Primary, "state_types")
	if err != nil {
		return err
	}

	// states worksheet
	for row := 0; row < states.Len(); row++ {
		state := states.Cell(row, "state")
		if statement.IsEmptyValue(state) {
			continue
		}
		iri := statement.CheckPascalIRI(state)
		m.Add(iri, "rdfs:subClassOf", "m3-lite:DomainOfInterest")
		m.Add(iri, "rdfs:label", statement.LanguageString(state, ""))

		for _, index := range indexList(states.Cell(row, "indices_state_type")) {
			if stateType, ok := valueByIndex(stateTypes, index, "state_type"); ok {
				m.Add(iri, ":hasDomainType", statement.CheckPascalIRI(stateType))
			}
		}
		// a state category is another row of the same sheet
		for _, index := range indexList(states.Cell(row, "indices_state_category")) {
			if category, ok := valueByIndex(states, index, "state"); ok {
				m.Add(iri, "rdfs:subClassOf", statement.CheckPascalIRI(category))
			}
		}
	}

	// state_types worksheet
	for row := 0; row < stateTypes.Len(); row++ {
		stateType := stateTypes.Cell(row, "state_type")
		if statement.IsEmptyValue(stateType) {
			continue
		}
		iri := statement.CheckPascalIRI(stateType)
		m.Add(iri, "rdfs:subClassOf", ":DomainType")
		m.Add(iri, "rdfs:label", statement.LanguageString(stateType, ""))
	}

	return nil
}
