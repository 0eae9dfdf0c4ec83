package htmlform

import (
	"context"
	"strings"
	"testing"

	"github.com/mirsardor-ktng/documint/pkg/model"
	"github.com/mirsardor-ktng/documint/pkg/render"
)

func buildModel(t *testing.T, tokens ...string) model.FormModel {
	t.Helper()
	m, err := model.NewBuilder().Build("contract.docx", tokens)
	if err != nil {
		t.Fatalf("build model: %v", err)
	}
	return m
}

func TestRenderEmitsInputPerField(t *testing.T) {
	t.Parallel()

	m := buildModel(t, "city", "total_am", "total_words")
	out, err := MustNew().Render(context.Background(), m, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	for _, name := range []string{"city", "total_am", "total_words"} {
		if !strings.Contains(html, `name="`+name+`"`) {
			t.Errorf("output missing input for %q", name)
		}
	}
}

func TestRenderMarksDerivedFieldsReadonly(t *testing.T) {
	t.Parallel()

	m := buildModel(t, "total_am", "total_words")
	out, err := MustNew().Render(context.Background(), m, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	idx := strings.Index(html, `id="total_words"`)
	if idx < 0 {
		t.Fatal("output missing total_words input")
	}
	tail := html[idx:]
	end := strings.Index(tail, ">")
	if !strings.Contains(tail[:end], "readonly") {
		t.Errorf("total_words input not readonly: %q", tail[:end])
	}
	if !strings.Contains(html, "Automatically generated") {
		t.Error("output missing derived field caption")
	}
}

func TestRenderPrefillsValues(t *testing.T) {
	t.Parallel()

	m := buildModel(t, "city")
	out, err := MustNew().Render(context.Background(), m, render.RenderOptions{
		Values: map[string]string{"city": "Tashkent"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `value="Tashkent"`) {
		t.Error("output missing prefilled value")
	}
}

func TestRenderEscapesHostileValues(t *testing.T) {
	t.Parallel()

	m := buildModel(t, "city")
	out, err := MustNew().Render(context.Background(), m, render.RenderOptions{
		Values: map[string]string{"city": `<script>alert(1)</script>`},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Error("output contains unescaped script tag")
	}
}

func TestRenderShowsFieldErrors(t *testing.T) {
	t.Parallel()

	m := buildModel(t, "total_am", "total_words")
	out, err := MustNew().Render(context.Background(), m, render.RenderOptions{
		Errors: map[string][]string{"total_am": {"enter a number"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "enter a number") {
		t.Error("output missing field error message")
	}
}

func TestRendererRegisters(t *testing.T) {
	t.Parallel()

	registry := render.NewRegistry()
	registry.MustRegister(MustNew())
	if !registry.Has("htmlform") {
		t.Error("renderer not registered under its name")
	}
	if got := MustNew().ContentType(); !strings.HasPrefix(got, "text/html") {
		t.Errorf("content type = %q", got)
	}
}
