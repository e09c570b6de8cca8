package workbook

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleSheet() *Sheet {
	return NewSheet("states", [][]string{
		{"index", "state", "indices_state_type"},
		{"1", "calm", "1, 2"},
		{"2", "anxious ", ""},
		{"3", "alert"},
	})
}

func TestSheetCell(t *testing.T) {
	sheet := sampleSheet()

	if got := sheet.Cell(0, "state"); got != "calm" {
		t.Fatalf("Cell(0, state) = %q", got)
	}
	if got := sheet.Cell(1, "state"); got != "anxious" {
		t.Fatalf("expected trimmed cell, got %q", got)
	}
	if got := sheet.Cell(2, "indices_state_type"); got != "" {
		t.Fatalf("short row should yield empty cell, got %q", got)
	}
	if got := sheet.Cell(0, "missing"); got != "" {
		t.Fatalf("missing column should yield empty cell, got %q", got)
	}
	if got := sheet.Cell(99, "state"); got != "" {
		t.Fatalf("out-of-range row should yield empty cell, got %q", got)
	}
}

func TestSheetLookup(t *testing.T) {
	sheet := sampleSheet()

	row, ok := sheet.Lookup("index", "2")
	if !ok || row != 1 {
		t.Fatalf("Lookup(index, 2) = (%d, %v)", row, ok)
	}
	if _, ok := sheet.Lookup("index", "42"); ok {
		t.Fatal("expected lookup miss for absent index")
	}
	if _, ok := sheet.Lookup("missing", "1"); ok {
		t.Fatal("expected lookup miss for absent column")
	}
}

func TestWorkbookSheets(t *testing.T) {
	wb, err := New(SourceFromFile("states.xlsx"), []*Sheet{
		NewSheet("Classes", nil),
		NewSheet("states", nil),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if diff := cmp.Diff([]string{"Classes", "states"}, wb.SheetNames()); diff != "" {
		t.Fatalf("sheet names mismatch (-want +got):\n%s", diff)
	}
	if _, ok := wb.Sheet("states"); !ok {
		t.Fatal("expected states sheet")
	}
	if _, ok := wb.Sheet("nope"); ok {
		t.Fatal("unexpected sheet")
	}
}

func TestWorkbookRejectsDuplicates(t *testing.T) {
	_, err := New(SourceFromFile("states.xlsx"), []*Sheet{
		NewSheet("states", nil),
		NewSheet("states", nil),
	})
	if err == nil {
		t.Fatal("expected duplicate sheet error")
	}
}

func TestSourceKinds(t *testing.T) {
	if src := SourceFromFile("a/b.xlsx"); src.Kind() != SourceKindFile || src.Location() != "a/b.xlsx" {
		t.Fatalf("file source = %v %q", src.Kind(), src.Location())
	}
	if src := SourceFromFS("b.xlsx"); src.Kind() != SourceKindFS {
		t.Fatalf("fs source = %v", src.Kind())
	}
	src := SourceFromRemote("doc-123", "cache/sensors.xlsx")
	if src.Kind() != SourceKindRemote || src.Location() != "cache/sensors.xlsx" {
		t.Fatalf("remote source = %v %q", src.Kind(), src.Location())
	}
	remote, ok := src.(RemoteSource)
	if !ok || remote.DocID() != "doc-123" {
		t.Fatalf("remote doc id = %v", remote)
	}
}
