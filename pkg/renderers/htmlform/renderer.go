// Package htmlform renders a form model as a standalone HTML page with one
// text input per field. Derived fields come out read-only with their captions
// attached.
package htmlform

import (
	"context"
	"embed"
	"fmt"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/mirsardor-ktng/documint/pkg/model"
	"github.com/mirsardor-ktng/documint/pkg/render"
)

//go:embed templates/*.html
var templateFS embed.FS

const templateName = "templates/form.html"

// Renderer implements render.Renderer for HTML form output.
type Renderer struct {
	set    *pongo2.TemplateSet
	policy *bluemonday.Policy
}

// New constructs the HTML form renderer with its embedded template.
func New() (*Renderer, error) {
	set := pongo2.NewSet("htmlform", pongo2.NewFSLoader(templateFS))
	if _, err := set.FromFile(templateName); err != nil {
		return nil, fmt.Errorf("htmlform: load template: %w", err)
	}
	return &Renderer{
		set:    set,
		policy: bluemonday.UGCPolicy(),
	}, nil
}

// MustNew panics when the embedded template fails to parse.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Name() string {
	return "htmlform"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the form page. Field captions pass through an HTML
// sanitizer so model-supplied notes cannot inject markup.
func (r *Renderer) Render(ctx context.Context, m model.FormModel, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	method := options.Method
	if method == "" {
		method = "POST"
	}
	action := options.Action
	if action == "" {
		action = "/generate"
	}
	title := options.Title
	if title == "" {
		title = m.Template
	}

	fields := make([]pongo2.Context, 0, len(m.Fields))
	for _, f := range m.Fields {
		fields = append(fields, pongo2.Context{
			"name":     f.Name,
			"label":    f.Label,
			"kind":     string(f.Kind),
			"value":    options.Values[f.Name],
			"readonly": f.ReadOnly,
			"note":     r.policy.Sanitize(f.Note),
			"errors":   options.Errors[f.Name],
		})
	}

	tmpl, err := r.set.FromFile(templateName)
	if err != nil {
		return nil, fmt.Errorf("htmlform: load template: %w", err)
	}
	out, err := tmpl.ExecuteBytes(pongo2.Context{
		"title":  title,
		"action": action,
		"method": method,
		"fields": fields,
	})
	if err != nil {
		return nil, fmt.Errorf("htmlform: execute template: %w", err)
	}
	return out, nil
}
