// Package ntriples serializes statement maps as N-Triples: one fully
// expanded triple per line, no prefix machinery in the output.
package ntriples

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-mhdb/pkg/render"
	"github.com/goliatone/go-mhdb/pkg/statement"
)

const rendererName = "ntriples"

// rdfType is the expansion of the "a" shorthand.
const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// coreNamespaces mirror the fixed PREFIX lines every Turtle document opens
// with; they are always expandable even when absent from the reference table.
var coreNamespaces = map[string]string{
	"owl":  "http://www.w3.org/2002/07/owl#",
	"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs": "http://www.w3.org/2000/01/rdf-schema#",
	"xsd":  "http://www.w3.org/2001/XMLSchema#",
}

// Renderer implements render.Renderer for N-Triples output. Statements whose
// identifiers cannot be expanded against the supplied reference table are
// dropped, matching the pipeline's best-effort policy on missing prefix data.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the N-Triples renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name identifies the renderer inside a registry.
func (r *Renderer) Name() string {
	return rendererName
}

// ContentType returns the MIME type of the produced document.
func (r *Renderer) ContentType() string {
	return "application/n-triples"
}

// Render serializes the statement map, expanding compact identifiers against
// the reference table and the module's own namespace.
func (r *Renderer) Render(ctx context.Context, statements *statement.Map, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if statements.Empty() {
		return nil, errors.New("ntriples: statement map is empty")
	}

	var sb strings.Builder
	statements.Walk(func(subject, predicate, object string) {
		s, ok := expandTerm(subject, options)
		if !ok {
			return
		}
		p, ok := expandPredicate(predicate, options)
		if !ok {
			return
		}
		o, ok := expandObject(object, options)
		if !ok {
			return
		}
		sb.WriteString(s)
		sb.WriteString(" ")
		sb.WriteString(p)
		sb.WriteString(" ")
		sb.WriteString(o)
		sb.WriteString(" .\n")
	})

	return []byte(sb.String()), nil
}

func expandPredicate(term string, options render.RenderOptions) (string, bool) {
	if term == "a" || term == "rdf:type" {
		return "<" + rdfType + ">", true
	}
	return expandTerm(term, options)
}

func expandObject(term string, options render.RenderOptions) (string, bool) {
	if statement.IsLiteral(term) {
		return normalizeLiteral(term), true
	}
	return expandTerm(term, options)
}

func expandTerm(term string, options render.RenderOptions) (string, bool) {
	if strings.HasPrefix(term, "<") && strings.HasSuffix(term, ">") {
		return term, true
	}
	if statement.IsFullIRI(term) {
		return "<" + term + ">", true
	}

	idx := strings.Index(term, ":")
	if idx < 0 {
		if options.BaseNamespace == "" {
			return "", false
		}
		return "<" + options.BaseNamespace + term + ">", true
	}

	prefix, local := term[:idx], term[idx+1:]
	if prefix == "" {
		if options.BaseNamespace == "" {
			return "", false
		}
		return "<" + options.BaseNamespace + local + ">", true
	}
	if ns, ok := coreNamespaces[prefix]; ok {
		return "<" + ns + local + ">", true
	}
	if options.Prefixes != nil {
		if entry, ok := options.Prefixes.Lookup(prefix); ok {
			return "<" + entry.PrefixURI + local + ">", true
		}
	}
	return "", false
}

// normalizeLiteral rewrites Turtle's triple-quoted literals into the
// single-quoted escaped form N-Triples requires, preserving language tags and
// datatype suffixes.
func normalizeLiteral(literal string) string {
	body := literal
	suffix := ""

	if strings.HasPrefix(body, `"""`) {
		rest := body[3:]
		if end := strings.LastIndex(rest, `"""`); end >= 0 {
			suffix = rest[end+3:]
			body = rest[:end]
		}
	} else if strings.HasPrefix(body, `"`) {
		rest := body[1:]
		if end := strings.LastIndex(rest, `"`); end >= 0 {
			suffix = rest[end+1:]
			body = rest[:end]
		}
	}

	return `"` + escape(body) + `"` + suffix
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}
