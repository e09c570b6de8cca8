// Package header renders the preamble block of each emitted Turtle document:
// a comment banner with the module title and provenance text, the namespace
// prefix declarations resolved for the module, the base IRI, optional
// owl:imports, and the owl:Ontology version block.
package header

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/goliatone/go-mhdb/pkg/module"
	"github.com/goliatone/go-mhdb/pkg/ontology"
	"github.com/goliatone/go-mhdb/pkg/render/template"
	"github.com/goliatone/go-mhdb/pkg/render/template/gotemplate"
	"github.com/goliatone/go-mhdb/pkg/statement"
)

//go:embed templates/header.tpl
var templateFS embed.FS

const templateName = "header"

// coreNamespace is never emitted as an owl:imports target; it is the root
// namespace every module already lives under.
const coreNamespace = "http://www.purl.org/mentalhealth#"

// Params carries everything the header needs for one module.
type Params struct {
	Module  module.Descriptor
	Version string

	// Prefixes are the resolved ontology entries for the module's statement
	// map, in reference-table row order.
	Prefixes []ontology.Entry
}

// Writer renders headers through a TemplateRenderer.
type Writer struct {
	renderer template.TemplateRenderer
	logger   *slog.Logger
}

// Option configures the Writer.
type Option func(*Writer)

// WithRenderer supplies a custom template renderer.
func WithRenderer(r template.TemplateRenderer) Option {
	return func(w *Writer) {
		if r != nil {
			w.renderer = r
		}
	}
}

// WithLogger supplies a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New constructs a Writer backed by the embedded header template unless a
// renderer is supplied.
func New(opts ...Option) (*Writer, error) {
	w := &Writer{logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	if w.renderer == nil {
		sub, err := fs.Sub(templateFS, "templates")
		if err != nil {
			return nil, fmt.Errorf("header: embedded templates: %w", err)
		}
		engine, err := gotemplate.New(gotemplate.WithFS(sub))
		if err != nil {
			return nil, fmt.Errorf("header: template engine: %w", err)
		}
		w.renderer = engine
	}
	return w, nil
}

// Write renders the header text for one module. Same inputs always yield the
// same text.
func (w *Writer) Write(ctx context.Context, p Params) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.Module.Name == "" {
		return "", errors.New("header: module descriptor required")
	}
	if strings.TrimSpace(p.Version) == "" {
		return "", errors.New("header: version required")
	}

	data := map[string]any{
		"banner":       banner(p.Module.Title, p.Module.Comment),
		"namespace":    p.Module.Namespace(),
		"modulePrefix": p.Module.Prefix(),
		"prefixes":     p.Prefixes,
		"base":         p.Module.BaseURI,
		"imports":      importClause(p.Prefixes),
		"version":      p.Version,
		"label":        p.Module.Title,
		"comment":      comment(p.Module.Title, p.Module.Comment),
	}

	rendered, err := w.renderer.RenderTemplate(templateName, data)
	if err != nil {
		return "", fmt.Errorf("header: render %s: %w", p.Module.Name, err)
	}
	return rendered, nil
}

// banner turns the title and provenance text into "#"-prefixed comment lines.
func banner(title, provenance string) string {
	rule := strings.Repeat("=", len(title))
	lines := []string{"# " + rule, "# " + title, "# " + rule, "#"}
	for _, line := range strings.Split(strings.TrimSpace(provenance), "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			lines = append(lines, "#")
			continue
		}
		lines = append(lines, "# "+line)
	}
	return strings.Join(lines, "\n")
}

// comment builds the rdfs:comment body, an underlined title followed by the
// provenance text.
func comment(title, provenance string) string {
	rule := strings.Repeat("=", len(title))
	return strings.Join([]string{
		rule,
		title,
		rule,
		"",
		strings.TrimSpace(provenance),
	}, "\n")
}

// importClause joins the import IRIs of the resolved prefixes. Entries with
// no ImportURI fall back to their PrefixURI. The root mhdb namespace is never
// imported.
func importClause(entries []ontology.Entry) string {
	var targets []string
	for _, entry := range entries {
		if entry.Prefix == statement.DefaultPrefix || entry.PrefixURI == coreNamespace {
			continue
		}
		target := entry.ImportURI
		if statement.IsEmptyValue(target) {
			target = entry.PrefixURI
		}
		targets = append(targets, statement.CheckIRI(target))
	}
	return strings.Join(targets, " ,\n\t")
}
