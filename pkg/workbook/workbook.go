// Package workbook defines the spreadsheet contracts the pipeline consumes:
// sources identifying where a workbook lives, the parsed Workbook/Sheet value
// types, and the Loader seam implementations satisfy.
package workbook

import (
	"errors"
	"strings"
)

// Source identifies where a workbook originated so loaders can operate on
// files, fs.FS entries, or remote sheet documents without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// RemoteSource augments Source with the hosted document identifier used to
// fetch a fresh export.
type RemoteSource interface {
	Source
	DocID() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindRemote SourceKind = "remote"
)

// Workbook is a parsed spreadsheet with named sheets.
type Workbook struct {
	source Source
	names  []string
	sheets map[string]*Sheet
}

// New constructs a Workbook from parsed sheets, preserving sheet order.
func New(src Source, sheets []*Sheet) (*Workbook, error) {
	if src == nil {
		return nil, errors.New("workbook: source is required")
	}
	if len(sheets) == 0 {
		return nil, errors.New("workbook: at least one sheet is required")
	}

	wb := &Workbook{
		source: src,
		sheets: make(map[string]*Sheet, len(sheets)),
	}
	for _, sheet := range sheets {
		if sheet == nil || sheet.Name == "" {
			return nil, errors.New("workbook: sheet name is required")
		}
		if _, exists := wb.sheets[sheet.Name]; exists {
			return nil, errors.New("workbook: duplicate sheet " + sheet.Name)
		}
		wb.sheets[sheet.Name] = sheet
		wb.names = append(wb.names, sheet.Name)
	}
	return wb, nil
}

// Source returns the origin metadata for the workbook.
func (w *Workbook) Source() Source {
	return w.source
}

// Location returns the string identifier of the origin.
func (w *Workbook) Location() string {
	if w.source == nil {
		return ""
	}
	return w.source.Location()
}

// SheetNames lists the sheets in workbook order.
func (w *Workbook) SheetNames() []string {
	return append([]string(nil), w.names...)
}

// Sheet returns the named sheet, or false when absent.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	sheet, ok := w.sheets[name]
	return sheet, ok
}

// Sheet is a single worksheet: a header row of column labels followed by data
// rows. Cell access is by column label, the way the ingestion rules address
// the spreadsheets.
type Sheet struct {
	Name string

	header  []string
	columns map[string]int
	rows    [][]string
}

// NewSheet builds a Sheet from raw rows; the first row is the header. Sheets
// with no header are valid and simply expose zero rows.
func NewSheet(name string, rows [][]string) *Sheet {
	sheet := &Sheet{
		Name:    name,
		columns: make(map[string]int),
	}
	if len(rows) == 0 {
		return sheet
	}
	sheet.header = rows[0]
	for i, label := range rows[0] {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, exists := sheet.columns[label]; !exists {
			sheet.columns[label] = i
		}
	}
	sheet.rows = rows[1:]
	return sheet
}

// Len returns the number of data rows.
func (s *Sheet) Len() int {
	return len(s.rows)
}

// Columns returns the header labels in sheet order.
func (s *Sheet) Columns() []string {
	return append([]string(nil), s.header...)
}

// HasColumn reports whether the sheet carries the column label.
func (s *Sheet) HasColumn(label string) bool {
	_, ok := s.columns[label]
	return ok
}

// Cell returns the trimmed cell at (row, column label). Missing columns and
// short rows yield "", matching how the ingestion rules treat absent cells.
func (s *Sheet) Cell(row int, label string) string {
	if row < 0 || row >= len(s.rows) {
		return ""
	}
	col, ok := s.columns[label]
	if !ok {
		return ""
	}
	cells := s.rows[row]
	if col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}

// Lookup returns the first row whose cell in the column equals value.
func (s *Sheet) Lookup(label, value string) (int, bool) {
	col, ok := s.columns[label]
	if !ok {
		return 0, false
	}
	value = strings.TrimSpace(value)
	for i, cells := range s.rows {
		if col < len(cells) && strings.TrimSpace(cells[col]) == value {
			return i, true
		}
	}
	return 0, false
}
