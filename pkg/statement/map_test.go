package statement

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapAddPreservesInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Add("ex:B", "rdfs:label", `"""b"""@en`)
	m.Add("ex:A", "rdfs:label", `"""a"""@en`)
	m.Add("ex:B", "rdfs:subClassOf", "ex:A")

	if diff := cmp.Diff([]string{"ex:B", "ex:A"}, m.Subjects()); diff != "" {
		t.Fatalf("subjects mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"rdfs:label", "rdfs:subClassOf"}, m.Predicates("ex:B")); diff != "" {
		t.Fatalf("predicates mismatch (-want +got):\n%s", diff)
	}
}

func TestMapAddDeduplicatesObjects(t *testing.T) {
	m := NewMap()
	m.Add("ex:A", "rdfs:subClassOf", "ex:B")
	m.Add("ex:A", "rdfs:subClassOf", "ex:B")
	m.Add("ex:A", "rdfs:subClassOf", "ex:C")

	got := m.Objects("ex:A", "rdfs:subClassOf")
	if diff := cmp.Diff([]string{"ex:B", "ex:C"}, got); diff != "" {
		t.Fatalf("objects mismatch (-want +got):\n%s", diff)
	}
}

func TestMapAddRejectsEmptySentinels(t *testing.T) {
	m := NewMap()
	for _, v := range []string{"", "nan", "NaN", "NAN", "None", "EmptyValue", "[]"} {
		m.Add("ex:A", "rdfs:label", v)
		m.Add(v, "rdfs:label", "ex:A")
		m.Add("ex:A", v, "ex:B")
	}
	if !m.Empty() {
		t.Fatalf("expected map to stay empty, got %d subjects", m.Len())
	}
}

func TestMapEmpty(t *testing.T) {
	var nilMap *Map
	if !nilMap.Empty() {
		t.Fatal("nil map should be empty")
	}
	m := NewMap()
	if !m.Empty() {
		t.Fatal("new map should be empty")
	}
	m.Add("ex:A", "rdfs:label", `"""a"""@en`)
	if m.Empty() {
		t.Fatal("populated map should not be empty")
	}
}

func TestWalkVisitsDeterministically(t *testing.T) {
	m := NewMap()
	m.Add("ex:A", "ex:p", "ex:1")
	m.Add("ex:A", "ex:q", "ex:2")
	m.Add("ex:B", "ex:p", "ex:3")

	var got [][3]string
	m.Walk(func(s, p, o string) {
		got = append(got, [3]string{s, p, o})
	})

	want := [][3]string{
		{"ex:A", "ex:p", "ex:1"},
		{"ex:A", "ex:q", "ex:2"},
		{"ex:B", "ex:p", "ex:3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("walk order mismatch (-want +got):\n%s", diff)
	}
}
