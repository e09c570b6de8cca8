package turtle

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mhdb/pkg/render"
	"github.com/goliatone/go-mhdb/pkg/statement"
)

func TestRenderSubjectBlocks(t *testing.T) {
	m := statement.NewMap()
	m.Add("ex:duck", "ex:continues", "ex:sitting")
	m.Add("ex:goose", "ex:begins", "ex:chasing")
	m.Add("ex:goose", "rdfs:label", `"""goose"""@en`)

	got, err := New().Render(context.Background(), m, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "ex:duck ex:continues ex:sitting .\n\n" +
		"ex:goose ex:begins ex:chasing ;\n\trdfs:label \"\"\"goose\"\"\"@en .\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("turtle output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMultipleObjects(t *testing.T) {
	m := statement.NewMap()
	m.Add("ex:A", "rdfs:subClassOf", "ex:B")
	m.Add("ex:A", "rdfs:subClassOf", "ex:C")

	got, err := New().Render(context.Background(), m, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "ex:A rdfs:subClassOf ex:B ;\n\trdfs:subClassOf ex:C .\n"
	if string(got) != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	m := statement.NewMap()
	m.Add("ex:A", "ex:p", "ex:1")
	m.Add("ex:B", "ex:q", "ex:2")

	first, err := New().Render(context.Background(), m, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := New().Render(context.Background(), m, render.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("repeated renders differ")
	}
}

func TestRenderEmptyMapErrors(t *testing.T) {
	if _, err := New().Render(context.Background(), statement.NewMap(), render.RenderOptions{}); err == nil {
		t.Fatal("expected error for empty map")
	}
}
