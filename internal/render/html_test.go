package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DiwakaruniKoushik/DocuSign/internal/docx"
)

func TestHTMLParagraphs(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("Plain text.")
	p := doc.AddParagraph("")
	p.Runs = []docx.Run{
		{Text: "bold", Bold: true},
		{Text: " and "},
		{Text: "under", Underline: true},
	}

	out := HTML(doc)
	assert.Contains(t, out, "<p>Plain text.</p>")
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<u>under</u>")
}

func TestHTMLEscapes(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph(`a < b & "c"`)

	out := HTML(doc)
	assert.Contains(t, out, "a &lt; b &amp;")
	assert.NotContains(t, out, `< b`)
}

func TestHTMLKeepsTabsAndBreaks(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("By: \t\t")
	doc.AddParagraph("line one\nline two")

	out := HTML(doc)
	assert.Contains(t, out, "By: \t\t", "signature padding survives into the rendering")
	assert.Contains(t, out, "line one<br/>line two")
}

func TestHTMLNestingOrder(t *testing.T) {
	doc := &docx.Document{}
	p := doc.AddParagraph("")
	p.Runs = []docx.Run{{Text: "all", Bold: true, Italic: true, Underline: true}}

	assert.Contains(t, HTML(doc), "<strong><em><u>all</u></em></strong>",
		"underline is innermost")
}

func TestHTMLTables(t *testing.T) {
	doc := &docx.Document{}
	doc.AddParagraph("before")
	table := doc.AddTable(1, 2)
	table.Rows[0].Cells[0].Paragraphs()[0].SetText("left")
	table.Rows[0].Cells[1].Paragraphs()[0].SetText("right")
	doc.AddParagraph("after")

	out := HTML(doc)
	assert.Contains(t, out, "<table><tr><td><p>left</p></td><td><p>right</p></td></tr></table>")
	assert.Less(t, strings.Index(out, "before"), strings.Index(out, "<table>"))
	assert.Less(t, strings.Index(out, "</table>"), strings.Index(out, "after"),
		"body order is preserved")
}

func TestPage(t *testing.T) {
	page := Page("<p>fragment</p>")
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<p>fragment</p>")
	assert.Contains(t, page, "</html>")
}
