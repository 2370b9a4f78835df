package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// documentXMLPath is the zip entry holding the document body.
const documentXMLPath = "word/document.xml"

// ReadError represents a failure to open or parse a .docx file.
type ReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("docx read error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("docx read error for %s: %s", e.Path, e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// Read opens a .docx file and parses its body into a Document.
// A structurally invalid package or body is a fatal error; there is no
// partial result.
func Read(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ReadError{Path: path, Message: "failed to open package", Cause: err}
	}
	defer func() { _ = zr.Close() }()

	for _, f := range zr.File {
		if f.Name != documentXMLPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, &ReadError{Path: path, Message: "failed to open document body", Cause: err}
		}
		defer func() { _ = rc.Close() }()

		doc, err := Parse(rc)
		if err != nil {
			return nil, &ReadError{Path: path, Message: "failed to parse document body", Cause: err}
		}
		return doc, nil
	}

	return nil, &ReadError{Path: path, Message: "package has no " + documentXMLPath}
}

// Parse decodes a WordprocessingML body from r into a Document.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "p":
			p, err := parseParagraph(dec)
			if err != nil {
				return nil, err
			}
			doc.elements = append(doc.elements, p)
		case "tbl":
			t, err := parseTable(dec)
			if err != nil {
				return nil, err
			}
			doc.elements = append(doc.elements, t)
		}
	}

	return doc, nil
}

// parseParagraph consumes tokens up to the paragraph's end element.
func parseParagraph(dec *xml.Decoder) (*Paragraph, error) {
	p := &Paragraph{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "r" {
				run, err := parseRun(dec)
				if err != nil {
					return nil, err
				}
				p.Runs = append(p.Runs, *run)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				return p, nil
			}
		}
	}
}

// parseRun decodes one w:r element, folding tabs and soft breaks into the text.
func parseRun(dec *xml.Decoder) (*Run, error) {
	run := &Run{}
	var text strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "u":
				run.Underline = propEnabled(t)
			case "b":
				run.Bold = propEnabled(t)
			case "i":
				run.Italic = propEnabled(t)
			case "t":
				inText = true
			case "tab":
				text.WriteByte('\t')
			case "br":
				text.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "r":
				run.Text = text.String()
				return run, nil
			}
		}
	}
}

func parseTable(dec *xml.Decoder) (*Table, error) {
	table := &Table{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "tr" {
				row, err := parseRow(dec)
				if err != nil {
					return nil, err
				}
				table.Rows = append(table.Rows, row)
			}
		case xml.EndElement:
			if t.Name.Local == "tbl" {
				return table, nil
			}
		}
	}
}

func parseRow(dec *xml.Decoder) (*Row, error) {
	row := &Row{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "tc" {
				cell, err := parseCell(dec)
				if err != nil {
					return nil, err
				}
				row.Cells = append(row.Cells, cell)
			}
		case xml.EndElement:
			if t.Name.Local == "tr" {
				return row, nil
			}
		}
	}
}

// parseCell keeps paragraphs and nested tables in encounter order.
func parseCell(dec *xml.Decoder) (*Cell, error) {
	cell := &Cell{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				p, err := parseParagraph(dec)
				if err != nil {
					return nil, err
				}
				cell.elements = append(cell.elements, p)
			case "tbl":
				nested, err := parseTable(dec)
				if err != nil {
					return nil, err
				}
				cell.elements = append(cell.elements, nested)
			}
		case xml.EndElement:
			if t.Name.Local == "tc" {
				return cell, nil
			}
		}
	}
}

// propEnabled interprets a run property element like <w:b/> or <w:u w:val="single"/>.
// A property is enabled unless its val attribute explicitly disables it.
func propEnabled(se xml.StartElement) bool {
	for _, attr := range se.Attr {
		if attr.Name.Local != "val" {
			continue
		}
		switch strings.ToLower(attr.Value) {
		case "false", "0", "none":
			return false
		}
	}
	return true
}
