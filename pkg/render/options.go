package render

import "github.com/goliatone/go-mhdb/pkg/ontology"

// RenderOptions carry per-document data renderers can use without mutating
// the statement map itself.
type RenderOptions struct {
	// BaseNamespace is the emitting module's own namespace IRI, used to expand
	// identifiers that carry no explicit prefix.
	BaseNamespace string

	// Prefixes is the resolved reference table for the document. Renderers
	// that need full IRIs (N-Triples) expand compact identifiers against it;
	// the Turtle renderer leaves compact identifiers as written.
	Prefixes *ontology.Table
}
