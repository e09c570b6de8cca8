package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mhdb/pkg/config"
	"github.com/goliatone/go-mhdb/pkg/module"
	"github.com/goliatone/go-mhdb/pkg/statement"
	"github.com/goliatone/go-mhdb/pkg/workbook"
)

type stubLoader struct {
	books map[string]*workbook.Workbook
	loads []string
}

func (l *stubLoader) Load(_ context.Context, src workbook.Source) (*workbook.Workbook, error) {
	l.loads = append(l.loads, src.Location())
	wb, ok := l.books[src.Location()]
	if !ok {
		return nil, fmt.Errorf("stub loader: no workbook at %s", src.Location())
	}
	return wb, nil
}

type stubIngester struct {
	name    module.Name
	calls   int
	produce func(m *statement.Map)
}

func (s *stubIngester) Module() module.Name { return s.name }

func (s *stubIngester) Ingest(_ context.Context, _ workbook.Set, m *statement.Map) error {
	s.calls++
	if s.produce != nil {
		s.produce(m)
	}
	return nil
}

func sheetWorkbook(t *testing.T, path string, sheets ...*workbook.Sheet) *workbook.Workbook {
	t.Helper()
	wb, err := workbook.New(workbook.SourceFromFile(path), sheets)
	if err != nil {
		t.Fatalf("build workbook %s: %v", path, err)
	}
	return wb
}

func ontologiesSheet(rows ...[]string) *workbook.Sheet {
	all := append([][]string{{"Prefix", "PrefixURI", "ImportURI"}}, rows...)
	return workbook.NewSheet("ontologies", all)
}

// testConfig enables no modules; tests opt in per scenario.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Input = "input"
	cfg.Output = t.TempDir()
	cfg.Offline = true
	for _, name := range module.Names() {
		cfg.SetEnabled(name, false)
	}
	return cfg
}

// resourcesLoader stocks every workbook the resources module touches: its own
// plus the sensors, disorders, and states cross references.
func resourcesLoader(t *testing.T, ontologies *workbook.Sheet) *stubLoader {
	t.Helper()
	placeholder := workbook.NewSheet("Classes", [][]string{{"ClassName"}})
	return &stubLoader{books: map[string]*workbook.Workbook{
		filepath.Join("input", "resources.xlsx"):   sheetWorkbook(t, "resources.xlsx", ontologies),
		filepath.Join("input", "sensors.xlsx"):     sheetWorkbook(t, "sensors.xlsx", placeholder),
		filepath.Join("input", "disorders.xlsx"):   sheetWorkbook(t, "disorders.xlsx", placeholder),
		filepath.Join("input", "states.xlsx"):      sheetWorkbook(t, "states.xlsx", placeholder),
		filepath.Join("input", "assessments.xlsx"): sheetWorkbook(t, "assessments.xlsx", placeholder),
	}}
}

func TestRunDisabledModulesInvokeNothing(t *testing.T) {
	cfg := testConfig(t)
	loader := resourcesLoader(t, ontologiesSheet())

	var ingesters []Ingester
	var stubs []*stubIngester
	for _, name := range module.Names() {
		stub := &stubIngester{name: name}
		stubs = append(stubs, stub)
		ingesters = append(ingesters, stub)
	}

	o := New(
		WithConfig(cfg),
		WithLoader(loader),
		WithIngesters(ingesters...),
	)
	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, stub := range stubs {
		if stub.calls != 0 {
			t.Errorf("disabled module %s was ingested %d times", stub.name, stub.calls)
		}
	}

	// only the ontologies table load touches the loader
	want := []string{filepath.Join("input", "resources.xlsx")}
	if diff := cmp.Diff(want, loader.loads); diff != "" {
		t.Errorf("loads (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(cfg.Output)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no output files, found %d", len(entries))
	}
}

func TestRunEmptyStatementMapSkipsEmission(t *testing.T) {
	cfg := testConfig(t)
	cfg.SetEnabled(module.Resources, true)
	loader := resourcesLoader(t, ontologiesSheet())

	stub := &stubIngester{name: module.Resources}
	o := New(
		WithConfig(cfg),
		WithLoader(loader),
		WithIngesters(stub),
	)
	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("ingester calls = %d, want 1", stub.calls)
	}

	outPath := filepath.Join(cfg.Output, "mhdb-resources.ttl")
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Errorf("expected no output file, stat err = %v", err)
	}
}

func TestRunEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	cfg.SetEnabled(module.Resources, true)
	loader := resourcesLoader(t, ontologiesSheet(
		[]string{"ex", "http://example.org/", "http://example.org/import"},
		[]string{"unused", "http://unused.example/", ""},
	))

	stub := &stubIngester{
		name: module.Resources,
		produce: func(m *statement.Map) {
			m.Add("ex:A", "ex:hasProp", "ex:B")
		},
	}
	o := New(
		WithConfig(cfg),
		WithLoader(loader),
		WithIngesters(stub),
	)
	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Output, "mhdb-resources.ttl"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(data)

	wantHead := "PREFIX owl: <http://www.w3.org/2002/07/owl#>\n" +
		"PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>\n" +
		"PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>\n" +
		"PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>\n"
	if !strings.HasPrefix(text, wantHead) {
		t.Errorf("output does not begin with core prefixes:\n%s", text[:min(len(text), 240)])
	}
	if !strings.Contains(text, "@prefix ex: <http://example.org/> .") {
		t.Error("output lacks the referenced ex prefix declaration")
	}
	if strings.Contains(text, "unused") {
		t.Error("output declares an unreferenced prefix")
	}
	if !strings.Contains(text, "<> owl:imports <http://example.org/import> .") {
		t.Error("output lacks the ex import")
	}
	if !strings.Contains(text, "ex:A ex:hasProp ex:B .") {
		t.Error("output lacks the rendered statement")
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func(output string) []byte {
		cfg := testConfig(t)
		cfg.Output = output
		cfg.SetEnabled(module.Resources, true)
		loader := resourcesLoader(t, ontologiesSheet(
			[]string{"ex", "http://example.org/", "http://example.org/import"},
		))
		stub := &stubIngester{
			name: module.Resources,
			produce: func(m *statement.Map) {
				m.Add("ex:A", "ex:hasProp", "ex:B")
				m.Add("ex:A", "ex:hasProp", "ex:C")
				m.Add("ex:B", "rdfs:label", `"""b"""@en`)
			},
		}
		o := New(WithConfig(cfg), WithLoader(loader), WithIngesters(stub))
		if err := o.Run(context.Background()); err != nil {
			t.Fatalf("Run: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(output, "mhdb-resources.ttl"))
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		return data
	}

	first := run(t.TempDir())
	second := run(t.TempDir())
	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Errorf("reruns differ (-first +second):\n%s", diff)
	}
}

func TestRunSiblingPrefixesExcluded(t *testing.T) {
	cfg := testConfig(t)
	cfg.SetEnabled(module.Resources, true)
	loader := resourcesLoader(t, ontologiesSheet(
		[]string{"mhdb-states", "http://www.purl.org/mentalhealth/states#", ""},
		[]string{"ex", "http://example.org/", ""},
	))

	stub := &stubIngester{
		name: module.Resources,
		produce: func(m *statement.Map) {
			m.Add("ex:A", "ex:hasProp", "mhdb-states:Anxiety")
		},
	}
	o := New(WithConfig(cfg), WithLoader(loader), WithIngesters(stub))
	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Output, "mhdb-resources.ttl"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Contains(string(data), "@prefix mhdb-states:") {
		t.Error("sibling module prefix declared despite exclusion list")
	}
}

func TestRunUnknownRenderer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Renderer = "jsonld"
	cfg.SetEnabled(module.Resources, true)
	loader := resourcesLoader(t, ontologiesSheet())

	stub := &stubIngester{
		name: module.Resources,
		produce: func(m *statement.Map) {
			m.Add("ex:A", "ex:hasProp", "ex:B")
		},
	}
	o := New(WithConfig(cfg), WithLoader(loader), WithIngesters(stub))
	if err := o.Run(context.Background()); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestRunMissingOntologiesSheetFails(t *testing.T) {
	cfg := testConfig(t)
	loader := &stubLoader{books: map[string]*workbook.Workbook{
		filepath.Join("input", "resources.xlsx"): sheetWorkbook(t, "resources.xlsx",
			workbook.NewSheet("Classes", [][]string{{"ClassName"}})),
	}}

	o := New(WithConfig(cfg), WithLoader(loader))
	if err := o.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing ontologies sheet")
	}
}
