package detect

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/DiwakaruniKoushik/DocuSign/internal/docx"
	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

// ContextChars is the window kept on each side of a field when deriving its
// local context.
const ContextChars = 500

// Result is the resolved field list for one detection run, the single source
// of truth consumed by both the preview and the export path.
type Result struct {
	Fields   []types.Field
	Summary  types.Summary
	FullText string
}

// Placeholders runs the full detection pipeline over a document: flatten,
// scan, resolve. It is pure and deterministic; identical documents always
// yield identical field lists and ids.
func Placeholders(doc *docx.Document) *Result {
	return Resolve(Flatten(doc))
}

// Resolve merges the scanners' outputs, orders fields by ascending start, and
// derives each field's context, id and label guess. Context and label guess
// are computed exactly once here and are immutable afterward.
func Resolve(flat *Flattened) *Result {
	fields := scanBrackets(flat.FullText)
	fields = append(fields, scanSignatureLines(flat)...)
	types.SortByStart(fields)

	for i := range fields {
		f := &fields[i]
		f.Context = contextWindow(flat.FullText, f.Start, f.End)
		// The index suffix keeps ids collision-free even when two fields
		// share type, line and text.
		f.ID = fmt.Sprintf("%s@L%d@%d", f.Type, f.Line, i)
		f.LabelGuess = guessLabel(f)
	}

	return &Result{
		Fields:   fields,
		Summary:  types.Summarize(fields),
		FullText: flat.FullText,
	}
}

var (
	horizontalWhitespace = regexp.MustCompile(`[ \t]+`)
	excessBlankLines     = regexp.MustCompile(`\n{3,}`)
)

// contextWindow slices [start-ContextChars, end+ContextChars) clamped to the
// string and to rune boundaries, then normalizes whitespace: runs of spaces
// and tabs collapse to one space, three or more newlines collapse to two.
func contextWindow(fullText string, start, end int) string {
	lo := start - ContextChars
	if lo < 0 {
		lo = 0
	}
	hi := end + ContextChars
	if hi > len(fullText) {
		hi = len(fullText)
	}
	for lo > 0 && !utf8.RuneStart(fullText[lo]) {
		lo--
	}
	for hi < len(fullText) && !utf8.RuneStart(fullText[hi]) {
		hi++
	}

	snippet := fullText[lo:hi]
	snippet = horizontalWhitespace.ReplaceAllString(snippet, " ")
	snippet = excessBlankLines.ReplaceAllString(snippet, "\n\n")
	return snippet
}
