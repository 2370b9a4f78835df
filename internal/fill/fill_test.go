package fill

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiwakaruniKoushik/DocuSign/internal/detect"
	"github.com/DiwakaruniKoushik/DocuSign/internal/docx"
	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

func bracketInput(value, input string) types.Field {
	return types.Field{Type: types.FieldBracketed, Value: value, Input: input}
}

func signatureInput(label, input string) types.Field {
	return types.Field{Type: types.FieldSignatureLine, Label: label, Input: input}
}

func TestApplyBrackets(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("Pay $[Amount] to [Company]. Again: [Company].")

	Apply(doc, []types.Field{
		bracketInput("$[Amount]", "$500"),
		bracketInput("[Company]", "Acme Corp"),
	})

	assert.Equal(t, "Pay $500 to Acme Corp. Again: Acme Corp.",
		doc.Paragraphs()[0].Text(), "bracket keys replace every occurrence in the paragraph")
}

func TestApplySignatureRightmost(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("Approved By: noted above. By: \t\t")

	Apply(doc, []types.Field{signatureInput("By", "Jane Doe")})

	assert.Equal(t, "Approved By: noted above. By: Jane Doe",
		doc.Paragraphs()[0].Text(), "only the last occurrence takes the value; padding is dropped")
}

func TestApplySkipsEmptyAndWhitespaceInputs(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("Keep [This] and By: \t")

	Apply(doc, []types.Field{
		bracketInput("[This]", "   "),
		signatureInput("By", ""),
	})

	assert.Equal(t, "Keep [This] and By: \t", doc.Paragraphs()[0].Text())
}

func TestApplyFirstDuplicateKeyWins(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("value is [X]")

	Apply(doc, []types.Field{
		bracketInput("[X]", "first"),
		bracketInput("[X]", "second"),
	})

	assert.Equal(t, "value is first", doc.Paragraphs()[0].Text())
}

func TestApplyNestedTables(t *testing.T) {
	doc := &docx.Document{}
	table := doc.AddTable(1, 1)
	cell := table.Rows[0].Cells[0]
	cell.Paragraphs()[0].SetText("outer [A]")
	cell.AddTable(1, 1).Rows[0].Cells[0].Paragraphs()[0].SetText("inner Date: \t")

	Apply(doc, []types.Field{
		bracketInput("[A]", "alpha"),
		signatureInput("Date", "2026-01-15"),
	})

	assert.Equal(t, "outer alpha", cell.Paragraphs()[0].Text())
	assert.Equal(t, "inner Date: 2026-01-15",
		cell.Tables()[0].Rows[0].Cells[0].Paragraphs()[0].Text())
}

func TestApplyPreservesFirstRunFormatting(t *testing.T) {
	doc := &docx.Document{}
	p := doc.AddParagraph("")
	p.Runs = []docx.Run{{Text: "By:", Bold: true}, {Text: " \t\t"}}

	Apply(doc, []types.Field{signatureInput("By", "Jane")})

	require.Len(t, p.Runs, 1)
	assert.Equal(t, "By: Jane", p.Runs[0].Text)
	assert.True(t, p.Runs[0].Bold)
}

func TestFilledFieldsNotRedetected(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("Pay $[Amount] on [Date].")
	doc.AddParagraph("Name: \t\t")

	before := detect.Placeholders(doc)
	require.Equal(t, 3, before.Summary.Total)

	Apply(doc, []types.Field{
		bracketInput("$[Amount]", "$1,000"),
		bracketInput("[Date]", "March 1"),
		signatureInput("Name", "Jane Doe"),
	})

	after := detect.Placeholders(doc)
	assert.Zero(t, after.Summary.Total, "filled blanks must not re-detect")
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.docx")
	dst := filepath.Join(dir, "out.docx")

	doc := &docx.Document{}
	doc.AddParagraph("Agreement with [Company].")
	doc.AddParagraph("By: \t\t")
	require.NoError(t, docx.Save(doc, src))

	err := File(src, dst, []types.Field{
		bracketInput("[Company]", "Acme Corp"),
		signatureInput("By", "Jane Doe"),
	})
	require.NoError(t, err)

	filled, err := docx.Read(dst)
	require.NoError(t, err)
	assert.Equal(t, "Agreement with Acme Corp.", filled.Paragraphs()[0].Text())
	assert.Equal(t, "By: Jane Doe", filled.Paragraphs()[1].Text())

	original, err := docx.Read(src)
	require.NoError(t, err)
	assert.Equal(t, "Agreement with [Company].", original.Paragraphs()[0].Text(),
		"the source file is never mutated")
}

func TestFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := File(filepath.Join(dir, "absent.docx"), filepath.Join(dir, "out.docx"), nil)
	require.Error(t, err)
}
