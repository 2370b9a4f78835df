// Package align projects detected fields onto an independently rendered HTML
// view of the same document. The HTML renderer is free to wrap characters in
// formatting tags and reflow whitespace, so alignment matches each field's
// literal text while tolerating inserted markup between characters. Alignment
// is best effort: a field whose text cannot be located simply receives no
// marker.
package align

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

// tagRun tolerates zero or more inserted markup tags at a character boundary.
const tagRun = `(?:<[^>]+>)*`

// markerFor builds the inert marker span for a field. The marker's syntax is
// not producible by either match pattern, so an inserted marker is never
// itself consumed by a later field.
func markerFor(id string) string {
	return fmt.Sprintf(`<span class="field-marker" data-field-id="%s">__MARKER_%s__</span>`, id, id)
}

// labelCounts tracks how many HTML matches have been consumed per signature
// label across one alignment pass. The counter is threaded through the pass
// explicitly so repeated labels ("Signature:" three times) pair the n-th
// detected field with the n-th HTML occurrence.
type labelCounts map[string]int

// MarkHTML inserts a uniquely tagged marker span at each field's aligned
// position in a single left-to-right pass, fields in ascending start order.
// Fields that cannot be aligned are silently left unmarked. The input field
// slice is not mutated.
func MarkHTML(html string, fields []types.Field) string {
	sorted := make([]types.Field, len(fields))
	copy(sorted, fields)
	types.SortByStart(sorted)

	counts := make(labelCounts)
	for i := range sorted {
		f := &sorted[i]
		switch f.Type {
		case types.FieldBracketed:
			html = alignBracketed(html, f)
		case types.FieldSignatureLine:
			html = alignSignature(html, f, counts)
		}
	}
	return html
}

// bracketedPattern compiles a matcher for a bracket token where every literal
// character is still required in order but markup tags may appear after the
// opening bracket and dollar sign, before the closing bracket, and between
// characters inside the brackets.
func bracketedPattern(value string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString(`(?i)`)
	inBracket := false
	for _, ch := range value {
		switch {
		case ch == '[':
			sb.WriteString(`\[` + tagRun)
			inBracket = true
		case ch == ']':
			sb.WriteString(tagRun + `\]`)
			inBracket = false
		case ch == '$':
			sb.WriteString(`\$` + tagRun)
		case inBracket && ch != ' ' && ch != '\t' && ch != '\n':
			sb.WriteString(regexp.QuoteMeta(string(ch)) + tagRun)
		default:
			sb.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}
	return regexp.Compile(sb.String())
}

// alignBracketed replaces the first unconsumed occurrence of the field's
// token with its marker, falling back to a plain literal replace when the
// tag-tolerant pattern finds nothing.
func alignBracketed(html string, f *types.Field) string {
	marker := markerFor(f.ID)

	if re, err := bracketedPattern(f.Value); err == nil {
		if span := re.FindStringIndex(html); span != nil {
			return html[:span[0]] + marker + html[span[1]:]
		}
	}
	if strings.Contains(html, f.Value) {
		return strings.Replace(html, f.Value, marker, 1)
	}
	return html
}

// signaturePattern matches the literal label and colon followed by padding
// possibly interleaved with markup tags.
func signaturePattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(` + regexp.QuoteMeta(label) + `:)((?:<[^>]+>|\s)+)`)
}

// alignSignature pairs this field with the n-th HTML occurrence of its label,
// where n is the number of same-label fields already aligned. The label and
// colon are kept; the padding is replaced by the marker. When the counter
// exceeds the available matches the field receives no marker.
func alignSignature(html string, f *types.Field, counts labelCounts) string {
	matches := signaturePattern(f.Label).FindAllStringSubmatchIndex(html, -1)
	n := counts[f.Label]
	if n >= len(matches) {
		return html
	}

	m := matches[n]
	labelText := html[m[2]:m[3]]
	counts[f.Label] = n + 1
	return html[:m[0]] + labelText + " " + markerFor(f.ID) + html[m[1]:]
}
