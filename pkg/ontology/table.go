// Package ontology carries the namespace-prefix reference table and the
// resolver that maps a statement map's compact identifiers onto it.
package ontology

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-mhdb/pkg/statement"
	"github.com/goliatone/go-mhdb/pkg/workbook"
)

// SheetName is the reference sheet inside the resources workbook.
const SheetName = "ontologies"

// Entry is one row of the ontologies reference table: a short prefix, the
// namespace it abbreviates, and the IRI imported for that namespace.
type Entry struct {
	Prefix    string
	PrefixURI string
	ImportURI string
}

// Table holds prefix entries in reference-sheet row order.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a Table, keeping first occurrence on duplicate prefixes.
func NewTable(entries []Entry) *Table {
	t := &Table{index: make(map[string]int, len(entries))}
	for _, entry := range entries {
		if entry.Prefix == "" {
			continue
		}
		if _, exists := t.index[entry.Prefix]; exists {
			continue
		}
		t.index[entry.Prefix] = len(t.entries)
		t.entries = append(t.entries, entry)
	}
	return t
}

// TableFromSheet parses the ontologies reference sheet. Rows whose Prefix or
// PrefixURI cell is empty are skipped; a missing ImportURI is allowed.
func TableFromSheet(sheet *workbook.Sheet) (*Table, error) {
	if sheet == nil {
		return nil, errors.New("ontology: reference sheet is nil")
	}
	for _, label := range []string{"Prefix", "PrefixURI"} {
		if !sheet.HasColumn(label) {
			return nil, fmt.Errorf("ontology: reference sheet %q lacks column %q", sheet.Name, label)
		}
	}

	var entries []Entry
	for row := 0; row < sheet.Len(); row++ {
		prefix := sheet.Cell(row, "Prefix")
		prefixURI := sheet.Cell(row, "PrefixURI")
		if statement.IsEmptyValue(prefix) || statement.IsEmptyValue(prefixURI) {
			continue
		}
		importURI := sheet.Cell(row, "ImportURI")
		if statement.IsEmptyValue(importURI) {
			importURI = ""
		}
		entries = append(entries, Entry{
			Prefix:    prefix,
			PrefixURI: prefixURI,
			ImportURI: importURI,
		})
	}
	return NewTable(entries), nil
}

// Lookup returns the entry registered for prefix.
func (t *Table) Lookup(prefix string) (Entry, bool) {
	i, ok := t.index[prefix]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Entries returns all entries in row order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}
