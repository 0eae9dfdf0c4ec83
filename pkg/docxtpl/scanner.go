package docxtpl

import "context"

// Default placeholder delimiters.
const (
	DefaultLeftDelim  = "{"
	DefaultRightDelim = "}"
)

// ScanResult carries the placeholder names discovered in a document, unique
// and in first-appearance order.
type ScanResult struct {
	Tokens []string
}

// Scanner extracts placeholder tokens from a template document.
type Scanner interface {
	Scan(ctx context.Context, doc Document) (ScanResult, error)
}

// Filler substitutes field values into a template document and returns the
// bytes of the filled archive.
type Filler interface {
	Fill(ctx context.Context, doc Document, values map[string]string) ([]byte, error)
}

// ScanOptions configures scanner construction.
type ScanOptions struct {
	LeftDelim  string
	RightDelim string
}

// ScanOption mutates ScanOptions.
type ScanOption func(*ScanOptions)

// WithDelims overrides the placeholder delimiters.
func WithDelims(left, right string) ScanOption {
	return func(o *ScanOptions) {
		o.LeftDelim = left
		o.RightDelim = right
	}
}
