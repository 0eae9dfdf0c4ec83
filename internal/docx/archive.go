package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
)

const documentPart = "word/document.xml"

// textPartPattern matches the archive entries that carry visible text: the
// main body plus headers, footers, footnotes and endnotes.
var textPartPattern = regexp.MustCompile(`^word/(document|header[0-9]*|footer[0-9]*|footnotes|endnotes)\.xml$`)

// Archive is an in-memory wordprocessing package. Parts are kept as raw
// bytes and only the text-bearing XML entries are ever parsed or rewritten,
// so images, styles and relationships round-trip untouched.
type Archive struct {
	location string
	names    []string
	parts    map[string][]byte
}

// Open reads a .docx payload into memory. It returns a CorruptArchiveError
// when the bytes are not a zip or the package lacks a document body.
func Open(location string, data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, docxtpl.NewCorruptArchiveError(location, err)
	}

	a := &Archive{
		location: location,
		parts:    make(map[string][]byte, len(zr.File)),
	}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, docxtpl.NewCorruptArchiveError(location, fmt.Errorf("open %s: %w", f.Name, err))
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, docxtpl.NewCorruptArchiveError(location, fmt.Errorf("read %s: %w", f.Name, err))
		}
		a.names = append(a.names, f.Name)
		a.parts[f.Name] = content
	}

	if _, ok := a.parts[documentPart]; !ok {
		return nil, docxtpl.NewCorruptArchiveError(location, fmt.Errorf("missing %s", documentPart))
	}
	return a, nil
}

// TextParts lists the entries that contain document text, body first.
func (a *Archive) TextParts() []string {
	names := []string{documentPart}
	for _, name := range a.names {
		if name != documentPart && textPartPattern.MatchString(name) {
			names = append(names, name)
		}
	}
	return names
}

// Text extracts the visible text of every text part, one line per paragraph.
func (a *Archive) Text() (string, error) {
	var buf bytes.Buffer
	for _, name := range a.TextParts() {
		text, err := partText(a.parts[name])
		if err != nil {
			return "", fmt.Errorf("docx: extract %s: %w", name, err)
		}
		if text == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

// Substitute replaces every delimited placeholder that has an entry in
// values, across all text parts. Placeholders split over several formatting
// runs are handled by splicing the replacement through the runs, so the
// surrounding formatting survives.
func (a *Archive) Substitute(values map[string]string, left, right string) error {
	for _, name := range a.TextParts() {
		rewritten, changed, err := substitutePart(a.parts[name], values, left, right)
		if err != nil {
			return fmt.Errorf("docx: substitute %s: %w", name, err)
		}
		if changed {
			a.parts[name] = rewritten
		}
	}
	return nil
}

// Bytes serializes the archive back into .docx form.
func (a *Archive) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range a.names {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   name,
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("docx: write %s: %w", name, err)
		}
		if _, err := w.Write(a.parts[name]); err != nil {
			return nil, fmt.Errorf("docx: write %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: close archive: %w", err)
	}
	return buf.Bytes(), nil
}
