package workbook

import "github.com/goliatone/go-mhdb/pkg/module"

// Set bundles the workbooks one module's ingestion reads: its own workbook
// plus any cross-reference workbooks the module descriptor names.
type Set struct {
	Primary *Workbook

	// CrossRefs holds the other modules' workbooks, keyed by module name.
	// A missing entry degrades that cross reference to no statements; it is
	// never an error.
	CrossRefs map[module.Name]*Workbook
}

// CrossRef returns the cross-reference workbook for name.
func (s Set) CrossRef(name module.Name) (*Workbook, bool) {
	wb, ok := s.CrossRefs[name]
	return wb, ok && wb != nil
}
