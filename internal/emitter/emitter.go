// Package emitter assembles the final output document for a module: the four
// core PREFIX declarations, the generated header, and the rendered statement
// body, written to the module's target file in one pass.
package emitter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// corePrefixes open every emitted document, in this exact order, regardless
// of which namespaces the module's data references.
const corePrefixes = `PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
`

// Document is one module's output: where it goes and the two generated
// blocks that follow the core prefixes.
type Document struct {
	Path   string
	Header string
	Body   []byte
}

// Emitter writes assembled documents to disk.
type Emitter struct {
	logger *slog.Logger
}

// Option configures the Emitter.
type Option func(*Emitter)

// WithLogger supplies a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Emitter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New constructs an Emitter.
func New(opts ...Option) *Emitter {
	e := &Emitter{logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Compose concatenates the document blocks in output order. The result is
// what Emit writes verbatim.
func Compose(doc Document) []byte {
	var buf bytes.Buffer
	buf.WriteString(corePrefixes)
	buf.WriteString("\n")
	buf.WriteString(doc.Header)
	buf.WriteString("\n")
	buf.Write(doc.Body)
	return buf.Bytes()
}

// Emit writes the composed document to doc.Path, creating the output
// directory when needed. An empty body is a caller bug; empty statement maps
// must be skipped before rendering.
func (e *Emitter) Emit(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc.Path == "" {
		return errors.New("emitter: output path is required")
	}
	if doc.Header == "" {
		return errors.New("emitter: header is required")
	}
	if len(doc.Body) == 0 {
		return errors.New("emitter: body is empty")
	}

	if err := os.MkdirAll(filepath.Dir(doc.Path), 0o755); err != nil {
		return fmt.Errorf("emitter: create output directory: %w", err)
	}

	data := Compose(doc)
	if err := os.WriteFile(doc.Path, data, 0o644); err != nil {
		return fmt.Errorf("emitter: write %s: %w", doc.Path, err)
	}

	e.logger.Info("wrote output document",
		slog.String("path", doc.Path),
		slog.Int("bytes", len(data)))
	return nil
}
