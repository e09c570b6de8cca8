package ntriples

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mhdb/pkg/ontology"
	"github.com/goliatone/go-mhdb/pkg/render"
	"github.com/goliatone/go-mhdb/pkg/statement"
)

func options() render.RenderOptions {
	return render.RenderOptions{
		BaseNamespace: "http://www.purl.org/mentalhealth/resources#",
		Prefixes: ontology.NewTable([]ontology.Entry{
			{Prefix: "ex", PrefixURI: "http://example.org/"},
		}),
	}
}

func TestRenderExpandsTerms(t *testing.T) {
	m := statement.NewMap()
	m.Add("ex:A", "a", "rdfs:Class")
	m.Add("ex:A", "ex:hasProp", `"""a label"""@en`)

	got, err := New().Render(context.Background(), m, options())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "<http://example.org/A> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2000/01/rdf-schema#Class> .\n" +
		"<http://example.org/A> <http://example.org/hasProp> \"a label\"@en .\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("ntriples output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderExpandsBaseNamespace(t *testing.T) {
	m := statement.NewMap()
	m.Add(":Guide", "ex:hasProp", "ex:B")

	got, err := New().Render(context.Background(), m, options())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(got), "<http://www.purl.org/mentalhealth/resources#Guide>") {
		t.Fatalf("base namespace not expanded: %s", got)
	}
}

func TestRenderDropsUnresolvableStatements(t *testing.T) {
	m := statement.NewMap()
	m.Add("mystery:A", "ex:hasProp", "ex:B")
	m.Add("ex:C", "ex:hasProp", "ex:D")

	got, err := New().Render(context.Background(), m, options())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := string(got)
	if strings.Contains(out, "mystery") {
		t.Fatalf("unresolvable prefix leaked: %s", out)
	}
	if !strings.Contains(out, "<http://example.org/C>") {
		t.Fatalf("resolvable statement missing: %s", out)
	}
}

func TestRenderEscapesLiterals(t *testing.T) {
	m := statement.NewMap()
	m.Add("ex:A", "ex:note", "\"line one\nline two\"")

	got, err := New().Render(context.Background(), m, options())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(got), `"line one\nline two"`) {
		t.Fatalf("newline not escaped: %q", got)
	}
}

func TestRenderAngleBracketedIRIsPassThrough(t *testing.T) {
	m := statement.NewMap()
	m.Add("<http://example.org/A>", "ex:hasProp", "<http://example.org/B>")

	got, err := New().Render(context.Background(), m, options())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "<http://example.org/A> <http://example.org/hasProp> <http://example.org/B> .\n"
	if string(got) != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}
