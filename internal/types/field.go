// Package types provides type definitions for structured data used throughout the document fill system.
package types

import "sort"

// FieldType distinguishes the two detectable blank shapes.
type FieldType string

// Field type constants for the two supported blank shapes
const (
	// FieldBracketed is a token blank like [Company] or $[Amount]
	FieldBracketed FieldType = "bracketed"
	// FieldSignatureLine is a colon-terminated label followed by tab padding, like "By: \t\t"
	FieldSignatureLine FieldType = "signature_line"
)

// SignatureMetadata holds quality signals recorded for signature-line fields.
// It is informational only; detection correctness never depends on it.
type SignatureMetadata struct {
	Tabs       int  `json:"tabs"`
	Spaces     int  `json:"spaces"`
	Underlined bool `json:"underlined"`
}

// Field is one detected fillable blank in a document.
// Start/End are half-open byte offsets into the flattened full text;
// Line is 1-based and derived from Start.
type Field struct {
	ID    string    `json:"id"`
	Type  FieldType `json:"type"`
	Start int       `json:"start"`
	End   int       `json:"end"`
	Line  int       `json:"line"`

	// Value is the exact matched token text (bracketed fields only).
	Value string `json:"value,omitempty"`
	// Label is the trimmed text before the triggering colon (signature-line fields only).
	Label string `json:"label,omitempty"`
	// Metadata is present for signature-line fields only.
	Metadata *SignatureMetadata `json:"metadata,omitempty"`

	// Context is a whitespace-normalized window of full text around the field,
	// computed once at resolution time.
	Context string `json:"context"`
	// LabelGuess is a best-effort short description, empty when no heuristic matched.
	LabelGuess string `json:"label_guess"`

	// Hint fields are attached by the guidance generator and stay empty when
	// guidance is unavailable.
	Hint      string `json:"hint"`
	HintLong  string `json:"hint_long"`
	DemoValue string `json:"demo_value"`

	// Input is the user-supplied fill value, attached by the caller before export.
	Input string `json:"input,omitempty"`
}

// Key returns the literal text a field is matched by in the source document:
// the token itself for bracketed fields, "Label:" for signature lines.
func (f *Field) Key() string {
	if f.Type == FieldBracketed {
		return f.Value
	}
	return f.Label + ":"
}

// SortByStart stable-sorts fields by ascending start offset (detection order).
func SortByStart(fields []Field) {
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Start < fields[j].Start
	})
}

// SortByLine stable-sorts fields by ascending line number (presentation order).
// Ties keep their prior relative order.
func SortByLine(fields []Field) {
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Line < fields[j].Line
	})
}

// Summary counts detected fields by type.
type Summary struct {
	Total          int `json:"total"`
	Bracketed      int `json:"bracketed"`
	SignatureLines int `json:"signature_lines"`
}

// Summarize builds a Summary from a field list.
func Summarize(fields []Field) Summary {
	s := Summary{Total: len(fields)}
	for i := range fields {
		switch fields[i].Type {
		case FieldBracketed:
			s.Bracketed++
		case FieldSignatureLine:
			s.SignatureLines++
		}
	}
	return s
}
