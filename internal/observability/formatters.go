// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxFieldsToShow is the default number of fields to display per document
	maxFieldsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDetection outputs a human-readable summary of a document's detected
// fields.
func (p *Printer) PrintDetection(filename string, fields []types.Field, summary types.Summary) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Document:  %s\n", filename))
	sb.WriteString(fmt.Sprintf("Detected:  %d (%d bracketed, %d signature lines)\n",
		summary.Total, summary.Bracketed, summary.SignatureLines))

	if len(fields) > 0 {
		sb.WriteString("\nFields:\n")
		count := min(len(fields), maxFieldsToShow)
		for i := 0; i < count; i++ {
			f := &fields[i]
			sb.WriteString(fmt.Sprintf("  • L%-4d %s", f.Line, f.Key()))
			if f.LabelGuess != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", f.LabelGuess))
			}
			sb.WriteString("\n")
		}
		if len(fields) > maxFieldsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(fields)-maxFieldsToShow))
		}
	}

	p.printBox("DETECTED FIELDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMarkers outputs which fields were aligned into the HTML preview.
func (p *Printer) PrintMarkers(markers []types.Marker, total int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Aligned:  %d of %d fields\n", len(markers), total))
	count := min(len(markers), maxFieldsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", markers[i].FieldID))
	}
	if len(markers) > maxFieldsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(markers)-maxFieldsToShow))
	}
	p.printBox("HTML ALIGNMENT", strings.TrimSuffix(sb.String(), "\n"))
}
