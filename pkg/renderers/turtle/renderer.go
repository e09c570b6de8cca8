// Package turtle serializes statement maps as Turtle documents: one triple
// block per subject, predicate/object pairs joined with " ;" continuations.
package turtle

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-mhdb/pkg/render"
	"github.com/goliatone/go-mhdb/pkg/statement"
)

const rendererName = "turtle"

// Renderer implements render.Renderer for Turtle output.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the Turtle renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name identifies the renderer inside a registry.
func (r *Renderer) Name() string {
	return rendererName
}

// ContentType returns the MIME type of the produced document.
func (r *Renderer) ContentType() string {
	return "text/turtle"
}

// Render serializes the statement map. Identifiers are written exactly as
// they appear in the map; prefix declarations are the header writer's job.
func (r *Renderer) Render(ctx context.Context, statements *statement.Map, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if statements.Empty() {
		return nil, errors.New("turtle: statement map is empty")
	}

	var sb strings.Builder
	for i, subject := range statements.Subjects() {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		writeSubjectBlock(&sb, statements, subject)
	}
	sb.WriteString("\n")

	return []byte(sb.String()), nil
}

func writeSubjectBlock(sb *strings.Builder, statements *statement.Map, subject string) {
	sb.WriteString(subject)
	sb.WriteString(" ")

	first := true
	for _, predicate := range statements.Predicates(subject) {
		for _, object := range statements.Objects(subject, predicate) {
			if !first {
				sb.WriteString(" ;\n\t")
			}
			sb.WriteString(predicate)
			sb.WriteString(" ")
			sb.WriteString(object)
			first = false
		}
	}
	sb.WriteString(" .")
}
