package ingest

import (
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-mhdb/pkg/module"
	"github.com/goliatone/go-mhdb/pkg/statement"
	"github.com/goliatone/go-mhdb/pkg/workbook"
)

// sanitizer strips markup from free-text cells before they become literals.
var sanitizer = bluemonday.StrictPolicy()

// sanitize removes any HTML a spreadsheet cell smuggled in and unescapes the
// entities the policy introduced.
func sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(s)))
}

// splitList splits a comma-separated cell into trimmed, non-empty items.
func splitList(cell string) []string {
	if statement.IsEmptyValue(cell) {
		return nil
	}
	var items []string
	for _, item := range strings.Split(cell, ",") {
		item = strings.TrimSpace(item)
		if item == "" || statement.IsEmptyValue(item) {
			continue
		}
		items = append(items, item)
	}
	return items
}

// parseIndex reads a numeric spreadsheet index. Cells may carry a float
// rendering like "3.0".
func parseIndex(cell string) (int, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(cell); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// indexList parses an index cell that can hold one number or a
// comma-separated list.
func indexList(cell string) []int {
	if statement.IsEmptyValue(cell) {
		return nil
	}
	var indices []int
	for _, item := range strings.Split(cell, ",") {
		if n, ok := parseIndex(item); ok {
			indices = append(indices, n)
		}
	}
	return indices
}

// valueByIndex resolves a numeric index against a sheet's "index" column and
// returns the cell in the requested column.
func valueByIndex(sheet *workbook.Sheet, index int, column string) (string, bool) {
	if sheet == nil {
		return "", false
	}
	for row := 0; row < sheet.Len(); row++ {
		n, ok := parseIndex(sheet.Cell(row, "index"))
		if !ok || n != index {
			continue
		}
		value := sheet.Cell(row, column)
		if statement.IsEmptyValue(value) {
			return "", false
		}
		return value, true
	}
	return "", false
}

// anyURI wraps a link cell as an xsd:anyURI literal.
func anyURI(link string) string {
	return `"` + strings.TrimSpace(link) + `"^^xsd:anyURI`
}

// ingestClasses maps a Classes sheet: every row declares an rdf:Class with
// label, optional definition, sameAs, equivalent classes, and superclass.
func ingestClasses(sheet *workbook.Sheet, m *statement.Map) {
	for row := 0; row < sheet.Len(); row++ {
		name := sheet.Cell(row, "ClassName")
		if statement.IsEmptyValue(name) {
			continue
		}
		iri := statement.CheckIRI(name)
		m.Add(iri, "a", "rdf:Class")
		if label := sheet.Cell(row, "label"); !statement.IsEmptyValue(label) {
			m.Add(iri, "rdfs:label", statement.LanguageString(label, ""))
		}
		if def := sheet.Cell(row, "definition"); !statement.IsEmptyValue(def) {
			m.Add(iri, "rdfs:comment", statement.LanguageString(sanitize(def), ""))
		}
		if same := sheet.Cell(row, "sameAs"); !statement.IsEmptyValue(same) {
			m.Add(iri, "owl:sameAs", same)
		}
		for _, eq := range splitList(sheet.Cell(row, "equivalentClasses")) {
			m.Add(iri, "rdfs:equivalentClass", eq)
		}
		if sub := sheet.Cell(row, "subClassOf"); !statement.IsEmptyValue(sub) {
			m.Add(iri, "rdfs:subClassOf", statement.CheckIRI(sub))
		}
	}
}

// ingestProperties maps a Properties sheet: every row declares an
// rdf:Property with label, domain, range, and related properties.
func ingestProperties(sheet *workbook.Sheet, m *statement.Map) {
	for row := 0; row < sheet.Len(); row++ {
		name := sheet.Cell(row, "property")
		if statement.IsEmptyValue(name) {
			continue
		}
		iri := statement.CheckIRI(name)
		m.Add(iri, "a", "rdf:Property")
		if label := sheet.Cell(row, "label"); !statement.IsEmptyValue(label) {
			m.Add(iri, "rdfs:label", statement.LanguageString(label, ""))
		}
		if domain := sheet.Cell(row, "propertyDomain"); !statement.IsEmptyValue(domain) {
			m.Add(iri, "rdfs:domain", statement.CheckIRI(domain))
		}
		if rng := sheet.Cell(row, "propertyRange"); !statement.IsEmptyValue(rng) {
			m.Add(iri, "rdfs:range", statement.CheckIRI(rng))
		}
		if def := sheet.Cell(row, "definition"); !statement.IsEmptyValue(def) {
			m.Add(iri, "rdfs:comment", statement.LanguageString(sanitize(def), ""))
		}
		if same := sheet.Cell(row, "sameAs"); !statement.IsEmptyValue(same) {
			m.Add(iri, "owl:sameAs", same)
		}
		if eq := sheet.Cell(row, "equivalentProperty"); !statement.IsEmptyValue(eq) {
			m.Add(iri, "rdfs:equivalentProperty", eq)
		}
		if sub := sheet.Cell(row, "subPropertyOf"); !statement.IsEmptyValue(sub) {
			m.Add(iri, "rdfs:subPropertyOf", statement.CheckIRI(sub))
		}
	}
}

// ingestScaffolding handles the Classes and Properties sheets shared by every
// module workbook.
func ingestScaffolding(name module.Name, wb *workbook.Workbook, m *statement.Map) error {
	classes, err := requireSheet(name, wb, "Classes")
	if err != nil {
		return err
	}
	properties, err := requireSheet(name, wb, "Properties")
	if err != nil {
		return err
	}
	ingestClasses(classes, m)
	ingestProperties(properties, m)
	return nil
}
