// Package fill re-injects user-supplied values into the original document
// structure: bracketed tokens are replaced, signature-line labels get the
// value appended after the colon. The filled result is always written as a
// new artifact; the uploaded original is never mutated.
package fill

import (
	"fmt"
	"strings"

	"github.com/DiwakaruniKoushik/DocuSign/internal/docx"
	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

// replacement is one key→value rewrite. Replacements keep field order so the
// outcome is deterministic regardless of map iteration order.
type replacement struct {
	key   string
	value string
}

// buildMaps splits fields carrying a non-empty input into bracket and
// signature replacement lists. Later duplicates of the same key are dropped;
// the first field wins, matching detection order.
func buildMaps(fields []types.Field) (brackets, signatures []replacement) {
	seenBracket := make(map[string]bool)
	seenSignature := make(map[string]bool)
	for i := range fields {
		f := &fields[i]
		value := strings.TrimSpace(f.Input)
		if value == "" {
			continue
		}
		switch f.Type {
		case types.FieldBracketed:
			if f.Value != "" && !seenBracket[f.Value] {
				seenBracket[f.Value] = true
				brackets = append(brackets, replacement{key: f.Value, value: value})
			}
		case types.FieldSignatureLine:
			key := f.Label + ":"
			if f.Label != "" && !seenSignature[key] {
				seenSignature[key] = true
				signatures = append(signatures, replacement{key: key, value: value})
			}
		}
	}
	return brackets, signatures
}

// Apply rewrites every paragraph of the document in place, recursing through
// nested table cells. Bracket keys are replaced at all occurrences in a
// paragraph; a signature key targets only its last occurrence, the same
// occurrence the scanner identified the line by.
func Apply(doc *docx.Document, fields []types.Field) {
	brackets, signatures := buildMaps(fields)
	if len(brackets) == 0 && len(signatures) == 0 {
		return
	}
	for _, p := range doc.Paragraphs() {
		fillParagraph(p, brackets, signatures)
	}
	for _, t := range doc.Tables() {
		fillTable(t, brackets, signatures)
	}
}

func fillTable(t *docx.Table, brackets, signatures []replacement) {
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			for _, p := range cell.Paragraphs() {
				fillParagraph(p, brackets, signatures)
			}
			for _, nested := range cell.Tables() {
				fillTable(nested, brackets, signatures)
			}
		}
	}
}

func fillParagraph(p *docx.Paragraph, brackets, signatures []replacement) {
	text := p.Text()
	changed := false

	for _, r := range brackets {
		if strings.Contains(text, r.key) {
			text = strings.ReplaceAll(text, r.key, r.value)
			changed = true
		}
	}
	for _, r := range signatures {
		// Rightmost occurrence: leading prose may coincidentally contain a
		// label-like substring, and the scanner keyed the line off its last
		// colon. Text after the label (the blank padding) is dropped in favor
		// of the filled value.
		if idx := strings.LastIndex(text, r.key); idx != -1 {
			text = text[:idx] + r.key + " " + r.value
			changed = true
		}
	}

	if changed {
		p.SetText(text)
	}
}

// File loads src, applies the fields' inputs, and saves the filled copy to
// dst.
func File(src, dst string, fields []types.Field) error {
	doc, err := docx.Read(src)
	if err != nil {
		return err
	}
	Apply(doc, fields)
	if err := docx.Save(doc, dst); err != nil {
		return fmt.Errorf("failed to save filled document: %w", err)
	}
	return nil
}
