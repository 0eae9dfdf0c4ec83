package render

import (
	"context"

	"github.com/mirsardor-ktng/documint/pkg/model"
)

// Renderer converts a FormModel into a byte representation (HTML, plain
// text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, model model.FormModel, options RenderOptions) ([]byte, error)
}
