// Package documint turns placeholder-annotated .docx templates into web
// forms and filled documents. Upload a template, edit the discovered fields,
// and derived values (amounts in words, genitive names, formatted sums) are
// computed automatically before substitution.
package documint

import (
	"context"

	internaldocx "github.com/mirsardor-ktng/documint/internal/docx"
	internalscanner "github.com/mirsardor-ktng/documint/internal/scanner"
	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
	"github.com/mirsardor-ktng/documint/pkg/orchestrator"
	"github.com/mirsardor-ktng/documint/pkg/render"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// Inspection aliases the orchestrator result for callers that only import
// the root package.
type Inspection = orchestrator.Inspection

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewReader constructs a document reader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewReader(options ...docxtpl.ReaderOption) docxtpl.Reader {
	return internaldocx.NewReader(options...)
}

// NewScanner constructs a placeholder scanner backed by the internal
// implementation.
func NewScanner(options ...docxtpl.ScanOption) docxtpl.Scanner {
	return internalscanner.New(options...)
}

// NewFiller constructs a document filler backed by the internal
// implementation.
func NewFiller(options ...docxtpl.ScanOption) docxtpl.Filler {
	return internaldocx.NewFiller(options...)
}

// Inspect reads a template and returns its form model and editing state. It
// is the simplest entry point for callers that want field discovery only.
func Inspect(ctx context.Context, source docxtpl.Source, options ...orchestrator.Option) (Inspection, error) {
	return orchestrator.New(options...).Inspect(ctx, source)
}

// Generate fills a template with the supplied values, recomputing derived
// fields, and returns the bytes of the finished document.
func Generate(ctx context.Context, source docxtpl.Source, values map[string]string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, source, values)
}
