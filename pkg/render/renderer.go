// Package render defines the serializer contract for statement maps and the
// registry renderers are discovered through.
package render

import (
	"context"

	"github.com/goliatone/go-mhdb/pkg/statement"
)

// Renderer converts a statement map into a byte representation (Turtle,
// N-Triples, etc.). The returned text is appended verbatim to the output
// document after the header.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, statements *statement.Map, options RenderOptions) ([]byte, error)
}
