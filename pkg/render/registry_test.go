package render

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mirsardor-ktng/documint/pkg/model"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }

func (s stubRenderer) Render(_ context.Context, _ model.FormModel, _ RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if err := registry.Register(stubRenderer{name: "plain"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("plain")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "plain" {
		t.Errorf("Name() = %q, want %q", renderer.Name(), "plain")
	}

	if _, err := registry.Get("missing"); err == nil {
		t.Error("expected error for unregistered name")
	}
}

func TestRegistryRejectsBadRegistrations(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Error("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Error("expected error for unnamed renderer")
	}

	registry.MustRegister(stubRenderer{name: "plain"})
	err := registry.Register(stubRenderer{name: "plain"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("duplicate registration error = %v", err)
	}
}

func TestRegistryHasAndList(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "html"})
	registry.MustRegister(stubRenderer{name: "plain"})

	if !registry.Has("html") {
		t.Error("Has(html) = false after registration")
	}
	if registry.Has("pdf") {
		t.Error("Has(pdf) = true for unregistered name")
	}

	if diff := cmp.Diff([]string{"html", "plain"}, registry.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}
