package docx

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
	"github.com/mirsardor-ktng/documint/pkg/testsupport"
)

func TestOpenRejectsNonZipPayload(t *testing.T) {
	t.Parallel()

	_, err := Open("broken.docx", []byte("this is not a zip"))
	var corrupt *docxtpl.CorruptArchiveError
	if !errors.As(err, &corrupt) {
		t.Fatalf("expected CorruptArchiveError, got %v", err)
	}
	if corrupt.Location != "broken.docx" {
		t.Errorf("location = %q, want %q", corrupt.Location, "broken.docx")
	}
}

func TestOpenRejectsArchiveWithoutBody(t *testing.T) {
	t.Parallel()

	data := testsupport.BuildArchive(t, map[string]string{
		"word/styles.xml": "<w:styles/>",
	})
	_, err := Open("empty.docx", data)
	var corrupt *docxtpl.CorruptArchiveError
	if !errors.As(err, &corrupt) {
		t.Fatalf("expected CorruptArchiveError, got %v", err)
	}
}

func TestTextMergesRunsWithinParagraph(t *testing.T) {
	t.Parallel()

	data := testsupport.BuildArchive(t, map[string]string{
		"word/document.xml": testsupport.DocumentXML(
			testsupport.Paragraph("Contract for {", "client", "_name}"),
			testsupport.Paragraph("Total: {amount_am}"),
		),
	})
	archive, err := Open("contract.docx", data)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	text, err := archive.Text()
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	want := "Contract for {client_name}\nTotal: {amount_am}"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestTextIncludesHeadersAndFooters(t *testing.T) {
	t.Parallel()

	data := testsupport.BuildArchive(t, map[string]string{
		"word/document.xml": testsupport.DocumentXML(testsupport.Paragraph("Body {field}")),
		"word/header1.xml":  testsupport.HeaderXML(testsupport.Paragraph("Header {company}")),
		"word/footer1.xml":  testsupport.HeaderXML(testsupport.Paragraph("Footer {page_note}")),
	})
	archive, err := Open("contract.docx", data)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	text, err := archive.Text()
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	for _, want := range []string{"{field}", "{company}", "{page_note}"} {
		if !strings.Contains(text, want) {
			t.Errorf("text %q missing %q", text, want)
		}
	}
}

func TestSubstituteSplicesTokenAcrossRuns(t *testing.T) {
	t.Parallel()

	data := testsupport.BuildArchive(t, map[string]string{
		"word/document.xml": testsupport.DocumentXML(
			testsupport.Paragraph("Dear {", "director", "_name},"),
		),
	})
	archive, err := Open("letter.docx", data)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	err = archive.Substitute(map[string]string{"director_name": "Иванов И. И."}, "{", "}")
	if err != nil {
		t.Fatalf("substitute: %v", err)
	}

	text, err := archive.Text()
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if want := "Dear Иванов И. И.,"; text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestSubstituteLeavesUnknownTokens(t *testing.T) {
	t.Parallel()

	data := testsupport.BuildArchive(t, map[string]string{
		"word/document.xml": testsupport.DocumentXML(testsupport.Paragraph("{known} and {unknown}")),
	})
	archive, err := Open("doc.docx", data)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := archive.Substitute(map[string]string{"known": "yes"}, "{", "}"); err != nil {
		t.Fatalf("substitute: %v", err)
	}
	text, err := archive.Text()
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if want := "yes and {unknown}"; text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestBytesRoundTripsAfterSubstitution(t *testing.T) {
	t.Parallel()

	data := testsupport.BuildArchive(t, map[string]string{
		"word/document.xml": testsupport.DocumentXML(testsupport.Paragraph("Sum: {amount_words}")),
		"word/styles.xml":   "<w:styles/>",
	})
	archive, err := Open("doc.docx", data)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := archive.Substitute(map[string]string{"amount_words": "Сто сумов 00 тийинов"}, "{", "}"); err != nil {
		t.Fatalf("substitute: %v", err)
	}

	out, err := archive.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}

	reopened, err := Open("doc.docx", out)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	text, err := reopened.Text()
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if want := "Sum: Сто сумов 00 тийинов"; text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
	if _, ok := reopened.parts["word/styles.xml"]; !ok {
		t.Error("styles part dropped during round trip")
	}
}

func TestFillerProducesReadableArchive(t *testing.T) {
	t.Parallel()

	data := testsupport.BuildArchive(t, map[string]string{
		"word/document.xml": testsupport.DocumentXML(testsupport.Paragraph("City: {city}")),
	})
	doc := docxtpl.NewDocument(docxtpl.SourceFromBytes("template.docx", data), data)

	out, err := NewFiller().Fill(context.Background(), doc, map[string]string{"city": "Tashkent"})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	archive, err := Open("out.docx", out)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	text, err := archive.Text()
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if want := "City: Tashkent"; text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestFillerRejectsInvalidUTF8Value(t *testing.T) {
	t.Parallel()

	doc := testsupport.TemplateDocument(t, "doc.docx", "City: {city}")
	_, err := NewFiller().Fill(context.Background(), doc, map[string]string{"city": string([]byte{0xff, 0xfe})})
	var renderErr *docxtpl.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected RenderError, got %v", err)
	}
	if renderErr.Field != "city" {
		t.Errorf("field = %q, want city", renderErr.Field)
	}
}

func TestReaderRejectsWrongExtension(t *testing.T) {
	t.Parallel()

	src := docxtpl.SourceFromBytes("notes.txt", []byte("plain text"))
	_, err := NewReader().Read(context.Background(), src)
	if !errors.Is(err, docxtpl.ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
}

func TestReaderEnforcesSizeCap(t *testing.T) {
	t.Parallel()

	data := testsupport.BuildArchive(t, map[string]string{
		"word/document.xml": testsupport.DocumentXML(testsupport.Paragraph("hello")),
	})
	src := docxtpl.SourceFromBytes("big.docx", data)
	_, err := NewReader(docxtpl.WithMaxSize(8)).Read(context.Background(), src)
	if err == nil {
		t.Fatal("expected size cap error")
	}
}

func TestReaderAcceptsValidUpload(t *testing.T) {
	t.Parallel()

	data := testsupport.BuildArchive(t, map[string]string{
		"word/document.xml": testsupport.DocumentXML(testsupport.Paragraph("hello {name}")),
	})
	src := docxtpl.SourceFromBytes("contract.docx", data)
	doc, err := NewReader().Read(context.Background(), src)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if doc.OutputName() != "generated_contract.docx" {
		t.Errorf("output name = %q", doc.OutputName())
	}
	if !bytes.Equal(doc.Raw(), data) {
		t.Error("raw bytes differ from upload")
	}
}
