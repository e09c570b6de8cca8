package ontology

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mhdb/pkg/statement"
	"github.com/goliatone/go-mhdb/pkg/workbook"
)

func referenceTable() *Table {
	return NewTable([]Entry{
		{Prefix: "schema", PrefixURI: "http://schema.org/", ImportURI: "http://schema.org/docs.rdf"},
		{Prefix: "ex", PrefixURI: "http://example.org/", ImportURI: "http://example.org/import"},
		{Prefix: "mhdb-sensors", PrefixURI: "http://www.purl.org/mentalhealth/sensors#"},
	})
}

func quietResolver(t *Table) *Resolver {
	return NewResolver(t, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestResolveReturnsTableOrder(t *testing.T) {
	m := statement.NewMap()
	m.Add("ex:A", "ex:hasProp", "ex:B")
	m.Add("ex:A", "rdfs:label", `"""a"""@en`)
	m.Add("ex:A", "schema:about", "schema:Thing")

	got := quietResolver(referenceTable()).Resolve(m, nil)

	want := []Entry{
		{Prefix: "schema", PrefixURI: "http://schema.org/", ImportURI: "http://schema.org/docs.rdf"},
		{Prefix: "ex", PrefixURI: "http://example.org/", ImportURI: "http://example.org/import"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resolved entries mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	m := statement.NewMap()
	m.Add("ex:A", "schema:about", "ex:B")

	r := quietResolver(referenceTable())
	first := r.Resolve(m, nil)
	second := r.Resolve(m, nil)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("resolution not idempotent (-first +second):\n%s", diff)
	}
}

func TestResolveSkipsIRIsAndLiterals(t *testing.T) {
	m := statement.NewMap()
	m.Add("http://example.org/A", "ex:hasProp", `"http://literal.example/"`)

	got := quietResolver(referenceTable()).Resolve(m, nil)
	want := []Entry{
		{Prefix: "ex", PrefixURI: "http://example.org/", ImportURI: "http://example.org/import"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resolved entries mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveHonorsExclusions(t *testing.T) {
	m := statement.NewMap()
	m.Add("mhdb-sensors:Accelerometer", "ex:hasProp", "ex:B")

	got := quietResolver(referenceTable()).Resolve(m, []string{"mhdb-sensors"})
	for _, entry := range got {
		if entry.Prefix == "mhdb-sensors" {
			t.Fatal("excluded prefix leaked into resolution")
		}
	}
}

func TestResolveDropsUnknownPrefixes(t *testing.T) {
	m := statement.NewMap()
	m.Add("mystery:A", "ex:hasProp", "ex:B")

	got := quietResolver(referenceTable()).Resolve(m, nil)
	want := []Entry{
		{Prefix: "ex", PrefixURI: "http://example.org/", ImportURI: "http://example.org/import"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unknown prefix should be dropped silently (-want +got):\n%s", diff)
	}
}

func TestResolveEmptyMap(t *testing.T) {
	if got := quietResolver(referenceTable()).Resolve(statement.NewMap(), nil); got != nil {
		t.Fatalf("expected nil for empty map, got %v", got)
	}
}

func TestTableFromSheet(t *testing.T) {
	sheet := workbook.NewSheet(SheetName, [][]string{
		{"Prefix", "PrefixURI", "ImportURI"},
		{"ex", "http://example.org/", "http://example.org/import"},
		{"nan", "nan", "nan"},
		{"schema", "http://schema.org/", ""},
		{"", "http://empty.example/", ""},
	})

	table, err := TableFromSheet(sheet)
	if err != nil {
		t.Fatalf("TableFromSheet: %v", err)
	}

	want := []Entry{
		{Prefix: "ex", PrefixURI: "http://example.org/", ImportURI: "http://example.org/import"},
		{Prefix: "schema", PrefixURI: "http://schema.org/"},
	}
	if diff := cmp.Diff(want, table.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}

	if _, ok := table.Lookup("ex"); !ok {
		t.Fatal("expected lookup hit for ex")
	}
	if _, ok := table.Lookup("mystery"); ok {
		t.Fatal("unexpected lookup hit")
	}
}

func TestTableFromSheetRequiresColumns(t *testing.T) {
	sheet := workbook.NewSheet(SheetName, [][]string{{"Prefix", "URI"}})
	if _, err := TableFromSheet(sheet); err == nil {
		t.Fatal("expected error for missing PrefixURI column")
	}
}
