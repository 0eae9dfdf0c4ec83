package docxtpl

import (
	"errors"
	"fmt"
)

// ErrInvalidFileType reports a source that is not a .docx document by name or
// content type. The check guards the upload boundary before any archive work.
var ErrInvalidFileType = errors.New("docxtpl: not a .docx document")

// ErrNoPlaceholders reports a template that parsed cleanly but contains no
// tokens. Callers usually surface it as a warning rather than a failure.
var ErrNoPlaceholders = errors.New("docxtpl: template contains no placeholders")

// CorruptArchiveError reports a payload that could not be opened as a
// wordprocessing archive.
type CorruptArchiveError struct {
	Location string
	cause    error
}

func NewCorruptArchiveError(location string, cause error) *CorruptArchiveError {
	return &CorruptArchiveError{Location: location, cause: cause}
}

func (e *CorruptArchiveError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("docxtpl: corrupt archive %q: %v", e.Location, e.cause)
	}
	return fmt.Sprintf("docxtpl: corrupt archive %q", e.Location)
}

func (e *CorruptArchiveError) Unwrap() error {
	return e.cause
}

// SyntaxErrorKind classifies delimiter faults found while scanning.
type SyntaxErrorKind string

const (
	SyntaxUnclosedTag  SyntaxErrorKind = "unclosed_tag"
	SyntaxUnopenedTag  SyntaxErrorKind = "unopened_tag"
	SyntaxMalformedTag SyntaxErrorKind = "malformed_tag"
)

// SyntaxError reports a malformed placeholder in the template text. Tag holds
// the offending fragment so the message can point the author at it.
type SyntaxError struct {
	Kind SyntaxErrorKind
	Tag  string
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case SyntaxUnclosedTag:
		return fmt.Sprintf("docxtpl: unclosed placeholder %q", e.Tag)
	case SyntaxUnopenedTag:
		return fmt.Sprintf("docxtpl: unopened delimiter near %q", e.Tag)
	default:
		return fmt.Sprintf("docxtpl: malformed placeholder %q", e.Tag)
	}
}

// RenderError reports a substitution failure tied to a single field.
type RenderError struct {
	Field string
	cause error
}

func NewRenderError(field string, cause error) *RenderError {
	return &RenderError{Field: field, cause: cause}
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("docxtpl: render field %q: %v", e.Field, e.cause)
}

func (e *RenderError) Unwrap() error {
	return e.cause
}
