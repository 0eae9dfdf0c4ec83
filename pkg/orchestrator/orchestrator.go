// Package orchestrator coordinates the full pipeline from uploaded template
// to rendered form and filled document.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internaldocx "github.com/mirsardor-ktng/documint/internal/docx"
	internalscanner "github.com/mirsardor-ktng/documint/internal/scanner"
	"github.com/mirsardor-ktng/documint/pkg/conventions"
	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
	"github.com/mirsardor-ktng/documint/pkg/form"
	"github.com/mirsardor-ktng/documint/pkg/model"
	"github.com/mirsardor-ktng/documint/pkg/render"
	"github.com/mirsardor-ktng/documint/pkg/renderers/htmlform"
)

const defaultRendererName = "htmlform"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithReader injects a custom document reader.
func WithReader(reader docxtpl.Reader) Option {
	return func(o *Orchestrator) {
		o.reader = reader
	}
}

// WithScanner injects a custom placeholder scanner.
func WithScanner(scanner docxtpl.Scanner) Option {
	return func(o *Orchestrator) {
		o.scanner = scanner
	}
}

// WithFiller injects a custom document filler.
func WithFiller(filler docxtpl.Filler) Option {
	return func(o *Orchestrator) {
		o.filler = filler
	}
}

// WithModelBuilder injects a custom form model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit renderer name.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithProfile overrides the naming conventions used for classification and
// derived field computation.
func WithProfile(profile conventions.Profile) Option {
	return func(o *Orchestrator) {
		o.profile = profile
		o.profileSet = true
	}
}

// Orchestrator wires reader, scanner, model builder, form state and
// renderers together. Missing dependencies are initialised with the built-in
// implementations so callers can start with a single constructor call.
type Orchestrator struct {
	reader          docxtpl.Reader
	scanner         docxtpl.Scanner
	filler          docxtpl.Filler
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	profile         conventions.Profile
	profileSet      bool
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if !o.profileSet {
		o.profile = conventions.Default()
	}
	if err := o.profile.Validate(); err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: %w", err)
		return
	}
	if o.reader == nil {
		o.reader = internaldocx.NewReader()
	}
	if o.scanner == nil {
		o.scanner = internalscanner.New()
	}
	if o.filler == nil {
		o.filler = internaldocx.NewFiller()
	}
	if o.builder == nil {
		o.builder = model.NewBuilder(model.WithProfile(o.profile))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := htmlform.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
	}
}

// Inspection is the result of analysing an uploaded template: the loaded
// document, its classified form model, and a fresh form state ready for
// editing. Warning carries docxtpl.ErrNoPlaceholders when the template parsed
// cleanly but contains no tokens.
type Inspection struct {
	Document docxtpl.Document
	Model    model.FormModel
	State    *form.State
	Warning  error
}

// Inspect reads a template source, discovers its placeholders and builds the
// form model plus an empty state for it.
func (o *Orchestrator) Inspect(ctx context.Context, source docxtpl.Source) (Inspection, error) {
	if ctx == nil {
		return Inspection{}, errors.New("orchestrator: context is required")
	}
	if err := o.initialiseErr; err != nil {
		return Inspection{}, err
	}

	doc, err := o.reader.Read(ctx, source)
	if err != nil {
		return Inspection{}, err
	}

	var warning error
	result, err := o.scanner.Scan(ctx, doc)
	if err != nil {
		if !errors.Is(err, docxtpl.ErrNoPlaceholders) {
			return Inspection{}, err
		}
		warning = err
	}

	m, err := o.builder.Build(doc.Basename()+".docx", result.Tokens)
	if err != nil {
		return Inspection{}, fmt.Errorf("orchestrator: build form model: %w", err)
	}

	state, err := form.NewState(m, form.WithProfile(o.profile))
	if err != nil {
		return Inspection{}, fmt.Errorf("orchestrator: %w", err)
	}

	return Inspection{
		Document: doc,
		Model:    m,
		State:    state,
		Warning:  warning,
	}, nil
}

// RenderRequest selects a renderer and its per-request options for a form
// model produced by Inspect.
type RenderRequest struct {
	Model model.FormModel
	// Renderer names the renderer to use. Empty falls back to the default.
	Renderer      string
	RenderOptions render.RenderOptions
}

// RenderForm renders the form model for user editing.
func (o *Orchestrator) RenderForm(ctx context.Context, req RenderRequest) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	output, err := renderer.Render(ctx, req.Model, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Generate reads a template, seeds the supplied values (recomputing derived
// fields from their bases) and returns the filled document bytes.
func (o *Orchestrator) Generate(ctx context.Context, source docxtpl.Source, values map[string]string) ([]byte, error) {
	insp, err := o.Inspect(ctx, source)
	if err != nil {
		return nil, err
	}
	insp.State.Seed(values)
	return o.Fill(ctx, insp.Document, insp.State)
}

// Fill substitutes the state's payload into an already-loaded document.
func (o *Orchestrator) Fill(ctx context.Context, doc docxtpl.Document, state *form.State) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errors.New("orchestrator: form state is required")
	}

	out, err := o.filler.Fill(ctx, doc, state.Payload())
	if err != nil {
		return nil, fmt.Errorf("orchestrator: fill document: %w", err)
	}
	return out, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if o.registry.Has(target) {
		return o.registry.Get(target)
	}
	if name != "" {
		return nil, fmt.Errorf("orchestrator: renderer %q not registered", name)
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}
