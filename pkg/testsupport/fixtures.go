// Package testsupport builds minimal in-memory .docx fixtures for contract
// tests across the module.
package testsupport

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
)

// Paragraph renders one w:p element with a single run per text fragment.
// Passing several fragments produces a paragraph whose text is split across
// runs, the shape editors leave behind when a placeholder gets styled
// mid-token.
func Paragraph(runs ...string) string {
	var b strings.Builder
	b.WriteString("<w:p>")
	for _, r := range runs {
		fmt.Fprintf(&b, "<w:r><w:t>%s</w:t></w:r>", r)
	}
	b.WriteString("</w:p>")
	return b.String()
}

// DocumentXML wraps paragraphs in a minimal WordprocessingML body.
func DocumentXML(paragraphs ...string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		strings.Join(paragraphs, "") +
		`</w:body></w:document>`
}

// HeaderXML wraps paragraphs in a minimal header part.
func HeaderXML(paragraphs ...string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		strings.Join(paragraphs, "") +
		`</w:hdr>`
}

// BuildArchive zips arbitrary named parts into a .docx payload.
func BuildArchive(t *testing.T, parts map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("testsupport: create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("testsupport: write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("testsupport: close archive: %v", err)
	}
	return buf.Bytes()
}

// TemplateDocx builds a single-part template where each argument becomes one
// paragraph with one run.
func TemplateDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	wrapped := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		wrapped[i] = Paragraph(p)
	}
	return BuildArchive(t, map[string]string{
		"word/document.xml": DocumentXML(wrapped...),
	})
}

// TemplateDocument wraps TemplateDocx output in a docxtpl.Document with a
// bytes source, the form uploads arrive in.
func TemplateDocument(t *testing.T, name string, paragraphs ...string) docxtpl.Document {
	t.Helper()

	data := TemplateDocx(t, paragraphs...)
	return docxtpl.NewDocument(docxtpl.SourceFromBytes(name, data), data)
}
