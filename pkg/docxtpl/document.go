package docxtpl

import (
	"path/filepath"
	"strings"
)

// Document pairs template bytes with the source they were read from.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument builds a Document from a source descriptor and its bytes.
func NewDocument(source Source, raw []byte) Document {
	return Document{source: source, raw: raw}
}

// Source returns the descriptor the document was loaded from.
func (d Document) Source() Source {
	return d.source
}

// Raw returns the archive bytes.
func (d Document) Raw() []byte {
	return d.raw
}

// Location reports where the document came from, or "memory" when unknown.
func (d Document) Location() string {
	if d.source == nil || d.source.Location() == "" {
		return "memory"
	}
	return d.source.Location()
}

// Basename returns the source file name without its extension, for building
// output names.
func (d Document) Basename() string {
	base := filepath.Base(d.Location())
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputName returns the conventional name for a filled copy of the document.
func (d Document) OutputName() string {
	return "generated_" + d.Basename() + ".docx"
}
