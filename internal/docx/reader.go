package docx

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
)

// Reader implements docxtpl.Reader over files, fs.FS entries and in-memory
// uploads.
type Reader struct {
	opts docxtpl.ReaderOptions
}

// NewReader builds a reader with the supplied options applied.
func NewReader(opts ...docxtpl.ReaderOption) *Reader {
	options := docxtpl.ReaderOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	return &Reader{opts: options}
}

// Read loads the source, enforces the .docx extension and size cap, and
// verifies the payload opens as a wordprocessing archive.
func (r *Reader) Read(ctx context.Context, source docxtpl.Source) (docxtpl.Document, error) {
	if err := ctx.Err(); err != nil {
		return docxtpl.Document{}, err
	}
	if source == nil {
		return docxtpl.Document{}, fmt.Errorf("docx: nil source")
	}

	location := source.Location()
	if !strings.EqualFold(filepath.Ext(location), ".docx") {
		return docxtpl.Document{}, fmt.Errorf("docx: read %q: %w", location, docxtpl.ErrInvalidFileType)
	}

	data, err := r.load(source)
	if err != nil {
		return docxtpl.Document{}, fmt.Errorf("docx: read %q: %w", location, err)
	}
	if r.opts.MaxSize > 0 && int64(len(data)) > r.opts.MaxSize {
		return docxtpl.Document{}, fmt.Errorf("docx: read %q: document exceeds %d bytes", location, r.opts.MaxSize)
	}

	if _, err := Open(location, data); err != nil {
		return docxtpl.Document{}, err
	}
	return docxtpl.NewDocument(source, data), nil
}

func (r *Reader) load(source docxtpl.Source) ([]byte, error) {
	switch source.Kind() {
	case docxtpl.SourceKindFile:
		return os.ReadFile(source.Location())
	case docxtpl.SourceKindFS:
		if r.opts.FileSystem == nil {
			return fs.ReadFile(os.DirFS("."), source.Location())
		}
		return fs.ReadFile(r.opts.FileSystem, source.Location())
	case docxtpl.SourceKindBytes:
		data := docxtpl.Payload(source)
		if data == nil {
			return nil, fmt.Errorf("empty payload")
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported source kind %q", source.Kind())
	}
}
