package ontology

import (
	"log/slog"
	"sort"

	"github.com/goliatone/go-mhdb/pkg/statement"
)

// Resolver computes which reference-table prefixes a statement map actually
// uses. Prefixes referenced by the data but absent from the table are dropped
// with a warning; that is a data-quality gap, not a program fault.
type Resolver struct {
	table  *Table
	logger *slog.Logger
}

// NewResolver builds a Resolver over the reference table.
func NewResolver(table *Table, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{table: table, logger: logger}
}

// Resolve scans every subject, predicate, and object for compact identifiers
// and returns the reference entries for the distinct prefixes found, in
// reference-table row order. Full IRIs and quoted literals never contribute
// a prefix. Prefixes listed in exclude are omitted even when referenced.
func (r *Resolver) Resolve(m *statement.Map, exclude []string) []Entry {
	if m.Empty() || r.table == nil {
		return nil
	}

	excluded := make(map[string]struct{}, len(exclude))
	for _, prefix := range exclude {
		excluded[prefix] = struct{}{}
	}

	referenced := make(map[string]struct{})
	collect := func(value string) {
		prefix, ok := statement.CompactPrefix(value)
		if !ok {
			return
		}
		if _, skip := excluded[prefix]; skip {
			return
		}
		referenced[prefix] = struct{}{}
	}
	m.Walk(func(subject, predicate, object string) {
		collect(subject)
		collect(predicate)
		collect(object)
	})

	var resolved []Entry
	for _, entry := range r.table.entries {
		if _, used := referenced[entry.Prefix]; used {
			resolved = append(resolved, entry)
			delete(referenced, entry.Prefix)
		}
	}

	if len(referenced) > 0 {
		missing := make([]string, 0, len(referenced))
		for prefix := range referenced {
			missing = append(missing, prefix)
		}
		sort.Strings(missing)
		for _, prefix := range missing {
			r.logger.Warn("prefix not in ontologies table, dropped", slog.String("prefix", prefix))
		}
	}

	return resolved
}
