package docxtpl

import (
	"context"
	"io/fs"
)

// Reader loads template documents from a Source and verifies they look like
// wordprocessing archives.
type Reader interface {
	Read(ctx context.Context, source Source) (Document, error)
}

// ReaderOptions configures reader construction.
type ReaderOptions struct {
	// FileSystem backs fs sources. Defaults to the process working directory.
	FileSystem fs.FS
	// MaxSize caps accepted documents in bytes. Zero means no limit.
	MaxSize int64
}

// ReaderOption mutates ReaderOptions.
type ReaderOption func(*ReaderOptions)

// WithFileSystem routes fs sources through the given filesystem.
func WithFileSystem(fsys fs.FS) ReaderOption {
	return func(o *ReaderOptions) {
		o.FileSystem = fsys
	}
}

// WithMaxSize rejects documents larger than limit bytes.
func WithMaxSize(limit int64) ReaderOption {
	return func(o *ReaderOptions) {
		o.MaxSize = limit
	}
}
