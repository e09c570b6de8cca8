package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mhdb/pkg/statement"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, *statement.Map, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{name: "turtle"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	renderer, err := registry.Get("turtle")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if renderer.Name() != "turtle" {
		t.Fatalf("Name = %q", renderer.Name())
	}

	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "turtle"})
	if err := registry.Register(stubRenderer{name: "turtle"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "turtle"})
	registry.MustRegister(stubRenderer{name: "ntriples"})

	if diff := cmp.Diff([]string{"ntriples", "turtle"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRejectsNilAndUnnamed(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected error for unnamed renderer")
	}
}
