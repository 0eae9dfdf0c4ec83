package docx

import (
	"strings"

	"github.com/beevik/etree"
)

// partText concatenates the w:t runs of each paragraph in a text part,
// joining paragraphs with newlines. Merging runs first matters because a
// single placeholder is frequently broken across runs by editors.
func partText(data []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", err
	}

	var lines []string
	for _, p := range doc.FindElements("//w:p") {
		var line strings.Builder
		for _, t := range p.FindElements(".//w:t") {
			line.WriteString(t.Text())
		}
		if line.Len() > 0 {
			lines = append(lines, line.String())
		}
	}
	return strings.Join(lines, "\n"), nil
}

// substitutePart rewrites a text part with placeholder values applied. It
// reports whether anything changed so untouched parts keep their original
// bytes.
func substitutePart(data []byte, values map[string]string, left, right string) ([]byte, bool, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, false, err
	}

	changed := false
	for _, p := range doc.FindElements("//w:p") {
		for name, value := range values {
			token := left + name + right
			if replaceInParagraph(p, token, value) {
				changed = true
			}
		}
	}
	if !changed {
		return data, false, nil
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// replaceInParagraph substitutes every occurrence of token within one
// paragraph, splicing replacements through the run boundaries.
func replaceInParagraph(p *etree.Element, token, value string) bool {
	replaced := false
	for spliceOnce(p, token, value) {
		replaced = true
		// A value containing its own token would otherwise loop forever.
		if strings.Contains(value, token) {
			break
		}
	}
	return replaced
}

// spliceOnce finds the first occurrence of token in the paragraph's merged
// text and rewrites the covered runs. Returns false when the token is absent.
func spliceOnce(p *etree.Element, token, value string) bool {
	nodes := p.FindElements(".//w:t")
	if len(nodes) == 0 {
		return false
	}

	var merged strings.Builder
	offsets := make([]int, len(nodes))
	for i, t := range nodes {
		offsets[i] = merged.Len()
		merged.WriteString(t.Text())
	}

	full := merged.String()
	start := strings.Index(full, token)
	if start < 0 {
		return false
	}
	end := start + len(token)

	for i, t := range nodes {
		nodeStart := offsets[i]
		nodeEnd := nodeStart + len(t.Text())
		switch {
		case nodeEnd <= start || nodeStart >= end:
			// Run outside the token span, leave it alone.
		case nodeStart <= start && nodeEnd >= end:
			// Token sits inside a single run.
			text := t.Text()
			setRunText(t, text[:start-nodeStart]+value+text[end-nodeStart:])
		case nodeStart <= start:
			// Run holds the head of the token; the replacement lands here
			// and inherits this run's formatting.
			setRunText(t, t.Text()[:start-nodeStart]+value)
		case nodeEnd >= end:
			// Run holds the tail of the token.
			setRunText(t, t.Text()[end-nodeStart:])
		default:
			// Run fully covered by the token.
			setRunText(t, "")
		}
	}
	return true
}

// setRunText updates a w:t node, marking boundary whitespace as significant
// so Word does not collapse it.
func setRunText(t *etree.Element, text string) {
	t.SetText(text)
	if text != strings.TrimSpace(text) {
		t.CreateAttr("xml:space", "preserve")
	}
}
