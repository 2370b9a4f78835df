// Package render produces alternative views of a document: an HTML rendering
// for the live preview and a fixed-layout PDF through headless Chrome.
package render

import (
	"html"
	"strings"

	"github.com/DiwakaruniKoushik/DocuSign/internal/docx"
)

// HTML renders a document body to an HTML fragment. Paragraph and table
// order is preserved; exact character offsets are not, since runs introduce
// formatting tags and text is entity-escaped. Tabs pass through literally so
// signature padding survives into the rendering.
func HTML(doc *docx.Document) string {
	var sb strings.Builder
	for _, el := range doc.Body() {
		writeElement(&sb, el)
	}
	return sb.String()
}

// Page wraps an HTML fragment in a minimal printable page.
func Page(fragment string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	sb.WriteString("body { font-family: serif; margin: 2em; }\n")
	sb.WriteString("table { border-collapse: collapse; }\n")
	sb.WriteString("td { border: 1px solid #999; padding: 4px 8px; }\n")
	sb.WriteString("</style>\n</head>\n<body>\n")
	sb.WriteString(fragment)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}

func writeElement(sb *strings.Builder, el any) {
	switch v := el.(type) {
	case *docx.Paragraph:
		writeParagraph(sb, v)
	case *docx.Table:
		writeTable(sb, v)
	}
}

func writeParagraph(sb *strings.Builder, p *docx.Paragraph) {
	sb.WriteString("<p>")
	for _, run := range p.Runs {
		writeRun(sb, run)
	}
	sb.WriteString("</p>")
}

// writeRun escapes the run text and wraps it in emphasis tags per the run's
// formatting, underline innermost.
func writeRun(sb *strings.Builder, run docx.Run) {
	if run.Text == "" {
		return
	}
	text := html.EscapeString(run.Text)
	text = strings.ReplaceAll(text, "\n", "<br/>")
	if run.Underline {
		text = "<u>" + text + "</u>"
	}
	if run.Italic {
		text = "<em>" + text + "</em>"
	}
	if run.Bold {
		text = "<strong>" + text + "</strong>"
	}
	sb.WriteString(text)
}

func writeTable(sb *strings.Builder, t *docx.Table) {
	sb.WriteString("<table>")
	for _, row := range t.Rows {
		sb.WriteString("<tr>")
		for _, cell := range row.Cells {
			sb.WriteString("<td>")
			for _, el := range cell.Content() {
				writeElement(sb, el)
			}
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
}
