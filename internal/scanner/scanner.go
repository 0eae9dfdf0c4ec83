// Package scanner discovers placeholder tokens in template text.
package scanner

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mirsardor-ktng/documint/internal/docx"
	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
)

// namePattern is the identifier guard. Anything between delimiters that does
// not match is editor noise (styled fragments, stray braces in prose) and is
// skipped rather than treated as a field.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// snippetLen caps how much surrounding text a syntax error quotes.
const snippetLen = 32

// Scanner implements docxtpl.Scanner over wordprocessing archives.
type Scanner struct {
	left  string
	right string
}

// New builds a scanner with the given options applied.
func New(opts ...docxtpl.ScanOption) *Scanner {
	options := docxtpl.ScanOptions{
		LeftDelim:  docxtpl.DefaultLeftDelim,
		RightDelim: docxtpl.DefaultRightDelim,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Scanner{left: options.LeftDelim, right: options.RightDelim}
}

// Scan extracts the document text and tokenizes it. Tokens come back unique
// and in first-appearance order. A clean template with no tokens returns
// docxtpl.ErrNoPlaceholders, which callers may treat as a warning.
func (s *Scanner) Scan(ctx context.Context, doc docxtpl.Document) (docxtpl.ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return docxtpl.ScanResult{}, err
	}

	archive, err := docx.Open(doc.Location(), doc.Raw())
	if err != nil {
		return docxtpl.ScanResult{}, err
	}
	text, err := archive.Text()
	if err != nil {
		return docxtpl.ScanResult{}, fmt.Errorf("scanner: %w", err)
	}

	tokens, err := s.Tokenize(text)
	if err != nil {
		return docxtpl.ScanResult{}, err
	}
	if len(tokens) == 0 {
		return docxtpl.ScanResult{}, docxtpl.ErrNoPlaceholders
	}
	return docxtpl.ScanResult{Tokens: tokens}, nil
}

// Tokenize walks plain text and collects placeholder names. Unbalanced
// delimiters produce a SyntaxError pointing at the offending fragment.
func (s *Scanner) Tokenize(text string) ([]string, error) {
	var tokens []string
	seen := make(map[string]bool)

	rest := text
	for {
		open := strings.Index(rest, s.left)
		close := strings.Index(rest, s.right)

		if open < 0 && close < 0 {
			return tokens, nil
		}
		if close >= 0 && (open < 0 || close < open) {
			return nil, &docxtpl.SyntaxError{
				Kind: docxtpl.SyntaxUnopenedTag,
				Tag:  snippetBefore(rest, close),
			}
		}

		inner := rest[open+len(s.left):]
		innerClose := strings.Index(inner, s.right)
		innerOpen := strings.Index(inner, s.left)
		if innerClose < 0 || (innerOpen >= 0 && innerOpen < innerClose) {
			return nil, &docxtpl.SyntaxError{
				Kind: docxtpl.SyntaxUnclosedTag,
				Tag:  snippetAfter(rest, open),
			}
		}

		name := inner[:innerClose]
		if name == "" {
			return nil, &docxtpl.SyntaxError{
				Kind: docxtpl.SyntaxMalformedTag,
				Tag:  s.left + s.right,
			}
		}
		if namePattern.MatchString(name) && !seen[name] {
			seen[name] = true
			tokens = append(tokens, name)
		}
		rest = inner[innerClose+len(s.right):]
	}
}

func snippetAfter(text string, at int) string {
	tail := text[at:]
	if nl := strings.IndexByte(tail, '\n'); nl >= 0 {
		tail = tail[:nl]
	}
	if len(tail) > snippetLen {
		tail = tail[:snippetLen]
	}
	return tail
}

func snippetBefore(text string, at int) string {
	head := text[:at+1]
	if nl := strings.LastIndexByte(head[:at], '\n'); nl >= 0 {
		head = head[nl+1:]
	}
	if len(head) > snippetLen {
		head = head[len(head)-snippetLen:]
	}
	return head
}
