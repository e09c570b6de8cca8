// Package statement holds the in-memory triple model shared by ingesters and
// renderers: a statement map groups RDF objects by subject, then by predicate.
package statement

import "strings"

// emptySentinels are the cell values the source spreadsheets use to encode an
// absent value. Add refuses statements containing any of them, and IsEmptyValue
// gives ingesters the same check for raw cells.
var emptySentinels = map[string]struct{}{
	"":           {},
	"[]":         {},
	"nan":        {},
	"NaN":        {},
	"NAN":        {},
	"None":       {},
	"EmptyValue": {},
}

// IsEmptyValue reports whether a raw cell value stands for "no value".
func IsEmptyValue(s string) bool {
	_, ok := emptySentinels[strings.TrimSpace(s)]
	return ok
}

// Map is an insertion-ordered mapping from RDF subject to predicate to the
// objects asserted for that pair. Objects are deduplicated per predicate and
// keep the order in which they were first added, so rendering the same map
// twice yields byte-identical output.
type Map struct {
	subjects []string
	entries  map[string]*subjectEntry
}

type subjectEntry struct {
	predicates []string
	objects    map[string][]string
}

// NewMap returns an empty statement map.
func NewMap() *Map {
	return &Map{entries: make(map[string]*subjectEntry)}
}

// Add asserts subject predicate object. Statements containing an empty
// sentinel in any position are silently dropped, mirroring how absent
// spreadsheet cells are excluded from ingestion.
func (m *Map) Add(subject, predicate, object string) {
	subject = strings.TrimSpace(subject)
	predicate = strings.TrimSpace(predicate)
	object = strings.TrimSpace(object)
	if IsEmptyValue(subject) || IsEmptyValue(predicate) || IsEmptyValue(object) {
		return
	}

	entry, ok := m.entries[subject]
	if !ok {
		entry = &subjectEntry{objects: make(map[string][]string)}
		m.entries[subject] = entry
		m.subjects = append(m.subjects, subject)
	}

	objects, ok := entry.objects[predicate]
	if !ok {
		entry.predicates = append(entry.predicates, predicate)
	}
	for _, existing := range objects {
		if existing == object {
			return
		}
	}
	entry.objects[predicate] = append(objects, object)
}

// AddAll asserts several (predicate, object) pairs about one subject.
func (m *Map) AddAll(subject string, pairs ...[2]string) {
	for _, pair := range pairs {
		m.Add(subject, pair[0], pair[1])
	}
}

// Subjects returns the subjects in insertion order.
func (m *Map) Subjects() []string {
	return append([]string(nil), m.subjects...)
}

// Predicates returns the predicates asserted for subject, in insertion order.
func (m *Map) Predicates(subject string) []string {
	entry, ok := m.entries[subject]
	if !ok {
		return nil
	}
	return append([]string(nil), entry.predicates...)
}

// Objects returns the objects asserted for (subject, predicate), in insertion
// order.
func (m *Map) Objects(subject, predicate string) []string {
	entry, ok := m.entries[subject]
	if !ok {
		return nil
	}
	return append([]string(nil), entry.objects[predicate]...)
}

// Empty reports whether the map holds no statements. A nil map is empty. This
// is the single emptiness check callers use where the source data mixes empty
// collections with NaN-like sentinels.
func (m *Map) Empty() bool {
	return m == nil || len(m.subjects) == 0
}

// Len returns the number of distinct subjects.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.subjects)
}

// Walk visits every statement in deterministic order.
func (m *Map) Walk(fn func(subject, predicate, object string)) {
	if m == nil {
		return
	}
	for _, subject := range m.subjects {
		entry := m.entries[subject]
		for _, predicate := range entry.predicates {
			for _, object := range entry.objects[predicate] {
				fn(subject, predicate, object)
			}
		}
	}
}
