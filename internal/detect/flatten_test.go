package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiwakaruniKoushik/DocuSign/internal/docx"
)

func TestFlattenOrderAndOffsets(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("First paragraph.")
	doc.AddParagraph("Second paragraph.")
	table := doc.AddTable(2, 2)
	table.Rows[0].Cells[0].Paragraphs()[0].SetText("r0c0")
	table.Rows[0].Cells[1].Paragraphs()[0].SetText("r0c1")
	table.Rows[1].Cells[0].Paragraphs()[0].SetText("r1c0")
	table.Rows[1].Cells[1].Paragraphs()[0].SetText("r1c1")

	flat := Flatten(doc)

	texts := make([]string, 0, len(flat.Blocks))
	for _, b := range flat.Blocks {
		texts = append(texts, b.Text)
	}
	assert.Equal(t, []string{
		"First paragraph.", "Second paragraph.",
		"r0c0", "r0c1", "r1c0", "r1c1",
	}, texts, "top-level paragraphs first, then table cells row-major")

	assert.Equal(t, "First paragraph.\nSecond paragraph.\nr0c0\nr0c1\nr1c0\nr1c1", flat.FullText)

	for i, b := range flat.Blocks {
		require.LessOrEqual(t, b.Offset+len(b.Text), len(flat.FullText))
		assert.Equal(t, b.Text, flat.FullText[b.Offset:b.Offset+len(b.Text)],
			"block %d offset must index its own text", i)
	}
}

func TestFlattenNestedTables(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("intro")
	outer := doc.AddTable(1, 2)
	outer.Rows[0].Cells[0].Paragraphs()[0].SetText("outer cell")

	// The second outer cell holds a paragraph followed by a nested table.
	second := outer.Rows[0].Cells[1]
	second.Paragraphs()[0].SetText("before nested")
	second.AddTable(1, 1).Rows[0].Cells[0].Paragraphs()[0].SetText("inner cell")

	flat := Flatten(doc)
	assert.Equal(t, "intro\nouter cell\nbefore nested\ninner cell", flat.FullText,
		"nested tables flatten depth-first after the host cell's paragraphs")
}

func TestFlattenEmptyParagraphs(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("a")
	doc.AddParagraph("")
	doc.AddParagraph("b")

	flat := Flatten(doc)
	assert.Equal(t, "a\n\nb", flat.FullText)
	assert.Equal(t, 2, flat.Blocks[1].Offset, "empty block still occupies its offset")
	assert.Equal(t, 3, flat.Blocks[2].Offset)
}

func TestLineAt(t *testing.T) {
	full := "one\ntwo\nthree"
	assert.Equal(t, 1, lineAt(full, 0))
	assert.Equal(t, 1, lineAt(full, 3))
	assert.Equal(t, 2, lineAt(full, 4))
	assert.Equal(t, 3, lineAt(full, 8))
}
