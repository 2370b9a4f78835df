// Package docx reads and writes the subset of WordprocessingML the blank
// detector needs: paragraphs with formatted runs, and tables of cells of
// paragraphs, nested to arbitrary depth.
package docx

import "strings"

// Run is a contiguous span of identically formatted paragraph text.
// Tabs and soft line breaks are decoded into the text as '\t' and '\n'.
type Run struct {
	Text      string
	Underline bool
	Bold      bool
	Italic    bool
}

// Paragraph is an ordered list of runs.
type Paragraph struct {
	Runs []Run
}

// Text returns the concatenated run text.
func (p *Paragraph) Text() string {
	if len(p.Runs) == 1 {
		return p.Runs[0].Text
	}
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// SetText collapses the paragraph to a single run carrying the given text.
// The first existing run's formatting is kept so a filled value inherits the
// style of the text it replaces.
func (p *Paragraph) SetText(text string) {
	run := Run{Text: text}
	if len(p.Runs) > 0 {
		run.Underline = p.Runs[0].Underline
		run.Bold = p.Runs[0].Bold
		run.Italic = p.Runs[0].Italic
	}
	p.Runs = []Run{run}
}

// Underlined reports whether any run in the paragraph carries underline styling.
func (p *Paragraph) Underlined() bool {
	for _, r := range p.Runs {
		if r.Underline {
			return true
		}
	}
	return false
}

// Cell holds a table cell's content in encounter order. A cell contains
// paragraphs and may contain nested tables.
type Cell struct {
	elements []any // *Paragraph | *Table
}

// Content returns the cell's paragraphs and nested tables interleaved in
// encounter order. Elements are *Paragraph or *Table.
func (c *Cell) Content() []any {
	return append([]any(nil), c.elements...)
}

// Paragraphs returns the cell's paragraphs in document order.
func (c *Cell) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, el := range c.elements {
		if p, ok := el.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the cell's nested tables in document order.
func (c *Cell) Tables() []*Table {
	var out []*Table
	for _, el := range c.elements {
		if t, ok := el.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// AddParagraph appends a paragraph to the cell and returns it.
func (c *Cell) AddParagraph() *Paragraph {
	p := &Paragraph{}
	c.elements = append(c.elements, p)
	return p
}

// AddTable appends a nested table of the given dimensions to the cell and
// returns it. Every cell starts with one empty paragraph.
func (c *Cell) AddTable(rows, cols int) *Table {
	t := newTable(rows, cols)
	c.elements = append(c.elements, t)
	return t
}

// Row is an ordered list of cells.
type Row struct {
	Cells []*Cell
}

// Table is an ordered grid of rows.
type Table struct {
	Rows []*Row
}

// Document is the parsed body of a .docx file: top-level paragraphs and
// tables in encounter order.
type Document struct {
	elements []any // *Paragraph | *Table
}

// Body returns the document's top-level paragraphs and tables interleaved in
// encounter order. Elements are *Paragraph or *Table.
func (d *Document) Body() []any {
	return append([]any(nil), d.elements...)
}

// Paragraphs returns the document's top-level paragraphs in document order.
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, el := range d.elements {
		if p, ok := el.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the document's top-level tables in document order.
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, el := range d.elements {
		if t, ok := el.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// AddParagraph appends a top-level paragraph and returns it.
func (d *Document) AddParagraph(text string) *Paragraph {
	p := &Paragraph{}
	if text != "" {
		p.Runs = []Run{{Text: text}}
	}
	d.elements = append(d.elements, p)
	return p
}

// AddTable appends a top-level table of the given dimensions and returns it.
// Every cell starts with one empty paragraph, mirroring how word processors
// create tables.
func (d *Document) AddTable(rows, cols int) *Table {
	t := newTable(rows, cols)
	d.elements = append(d.elements, t)
	return t
}

func newTable(rows, cols int) *Table {
	t := &Table{}
	for i := 0; i < rows; i++ {
		row := &Row{}
		for j := 0; j < cols; j++ {
			cell := &Cell{}
			cell.AddParagraph()
			row.Cells = append(row.Cells, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
