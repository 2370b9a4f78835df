// Package detect locates fillable blanks in a document: bracketed tokens like
// [Company] or $[Amount], and signature lines such as "By:" followed by tab
// padding. Detection works over a flattened view of the document so every
// field carries exact offsets into one full-text string.
package detect

import (
	"strings"

	"github.com/DiwakaruniKoushik/DocuSign/internal/docx"
)

// Block is one paragraph-like text block in the flattened document.
// Offset is the block's starting byte offset in the full-text string.
type Block struct {
	Text      string
	Offset    int
	Paragraph *docx.Paragraph
}

// Flattened is the ordered flat view of a document: top-level paragraphs
// first, then every table's cell paragraphs in row-major, column-major order,
// recursing into nested tables. FullText joins block texts with single
// newlines and no trailing separator.
type Flattened struct {
	Blocks   []Block
	FullText string
}

// Flatten walks the document into its flat view. Offsets are exact: block i
// starts at the sum of the lengths of blocks 0..i-1 plus i separators.
func Flatten(doc *docx.Document) *Flattened {
	var paragraphs []*docx.Paragraph
	paragraphs = append(paragraphs, doc.Paragraphs()...)
	for _, table := range doc.Tables() {
		paragraphs = appendTableParagraphs(paragraphs, table)
	}

	flat := &Flattened{Blocks: make([]Block, 0, len(paragraphs))}
	var sb strings.Builder
	offset := 0
	for i, p := range paragraphs {
		text := p.Text()
		if i > 0 {
			sb.WriteByte('\n')
			offset++
		}
		flat.Blocks = append(flat.Blocks, Block{Text: text, Offset: offset, Paragraph: p})
		sb.WriteString(text)
		offset += len(text)
	}
	flat.FullText = sb.String()
	return flat
}

// appendTableParagraphs collects cell paragraphs row by row, cell by cell,
// walking nested tables depth-first after the cell's own paragraphs. This is
// the order a renderer draws the table in.
func appendTableParagraphs(paragraphs []*docx.Paragraph, table *docx.Table) []*docx.Paragraph {
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			paragraphs = append(paragraphs, cell.Paragraphs()...)
			for _, nested := range cell.Tables() {
				paragraphs = appendTableParagraphs(paragraphs, nested)
			}
		}
	}
	return paragraphs
}

// lineAt returns the 1-based line number of a byte offset in full text.
func lineAt(fullText string, offset int) int {
	return strings.Count(fullText[:offset], "\n") + 1
}
