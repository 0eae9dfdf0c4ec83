package docx

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
)

// Filler implements docxtpl.Filler by rewriting placeholder runs in place.
type Filler struct {
	left  string
	right string
}

// NewFiller builds a filler with the given scan options applied.
func NewFiller(opts ...docxtpl.ScanOption) *Filler {
	options := docxtpl.ScanOptions{
		LeftDelim:  docxtpl.DefaultLeftDelim,
		RightDelim: docxtpl.DefaultRightDelim,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Filler{left: options.LeftDelim, right: options.RightDelim}
}

// Fill substitutes the supplied values into the document and returns the
// filled archive. Placeholders without a value are left untouched.
func (f *Filler) Fill(ctx context.Context, doc docxtpl.Document, values map[string]string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for name, value := range values {
		// XML text nodes must carry valid UTF-8.
		if !utf8.ValidString(value) {
			return nil, docxtpl.NewRenderError(name, errors.New("value is not valid UTF-8"))
		}
	}

	archive, err := Open(doc.Location(), doc.Raw())
	if err != nil {
		return nil, err
	}
	if err := archive.Substitute(values, f.left, f.right); err != nil {
		return nil, err
	}
	return archive.Bytes()
}
