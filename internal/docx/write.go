package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const wNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Save writes the document as a minimal valid .docx package at path.
// Run-level emphasis (underline, bold, italic) is preserved; document-wide
// styling parts are not carried over.
func Save(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	zw := zip.NewWriter(f)

	entries := []struct {
		name, content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{documentXMLPath, marshalBody(doc)},
	}
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", e.name, err)
		}
		if _, err := w.Write([]byte(e.content)); err != nil {
			return fmt.Errorf("failed to write %s: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize package: %w", err)
	}
	return nil
}

// marshalBody serializes the document body back to WordprocessingML.
func marshalBody(doc *Document) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:document xmlns:w="` + wNamespace + `"><w:body>`)
	for _, el := range doc.elements {
		writeElement(&sb, el)
	}
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func writeElement(sb *strings.Builder, el any) {
	switch v := el.(type) {
	case *Paragraph:
		writeParagraph(sb, v)
	case *Table:
		writeTable(sb, v)
	}
}

func writeParagraph(sb *strings.Builder, p *Paragraph) {
	if len(p.Runs) == 0 {
		sb.WriteString(`<w:p/>`)
		return
	}
	sb.WriteString(`<w:p>`)
	for _, run := range p.Runs {
		writeRun(sb, run)
	}
	sb.WriteString(`</w:p>`)
}

func writeRun(sb *strings.Builder, run Run) {
	sb.WriteString(`<w:r>`)
	if run.Underline || run.Bold || run.Italic {
		sb.WriteString(`<w:rPr>`)
		if run.Bold {
			sb.WriteString(`<w:b/>`)
		}
		if run.Italic {
			sb.WriteString(`<w:i/>`)
		}
		if run.Underline {
			sb.WriteString(`<w:u w:val="single"/>`)
		}
		sb.WriteString(`</w:rPr>`)
	}
	// Tabs and soft breaks were decoded on read and must round-trip back
	// to their dedicated elements.
	for _, segment := range splitKeepingSeparators(run.Text) {
		switch segment {
		case "\t":
			sb.WriteString(`<w:tab/>`)
		case "\n":
			sb.WriteString(`<w:br/>`)
		default:
			sb.WriteString(`<w:t xml:space="preserve">`)
			_ = xml.EscapeText(sb, []byte(segment))
			sb.WriteString(`</w:t>`)
		}
	}
	sb.WriteString(`</w:r>`)
}

// splitKeepingSeparators splits run text into plain segments and single-char
// "\t"/"\n" separator segments, preserving order.
func splitKeepingSeparators(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\t' || text[i] == '\n' {
			if i > start {
				out = append(out, text[start:i])
			}
			out = append(out, string(text[i]))
			start = i + 1
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

func writeTable(sb *strings.Builder, t *Table) {
	sb.WriteString(`<w:tbl>`)
	for _, row := range t.Rows {
		sb.WriteString(`<w:tr>`)
		for _, cell := range row.Cells {
			sb.WriteString(`<w:tc>`)
			for _, el := range cell.elements {
				writeElement(sb, el)
			}
			sb.WriteString(`</w:tc>`)
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl>`)
}
