package types

import (
	"github.com/go-playground/validator/v10"
)

// FieldInput is one caller-supplied fill record in an export request.
// Fields without a non-empty Input are left untouched by the injector.
type FieldInput struct {
	ID    string    `json:"id" validate:"required"`
	Type  FieldType `json:"type" validate:"required,oneof=bracketed signature_line"`
	Value string    `json:"value,omitempty"`
	Label string    `json:"label,omitempty"`
	Input string    `json:"input,omitempty"`
}

// ExportRequest is the request body for POST /api/export.
type ExportRequest struct {
	Filename string       `json:"filename" validate:"required"`
	Fields   []FieldInput `json:"fields" validate:"dive"`
	AlsoPDF  bool         `json:"also_pdf"`
}

// ExportResponse is the response for POST /api/export.
// FilledPDFURL is null when PDF conversion failed or was not requested.
type ExportResponse struct {
	FilledDocxURL string  `json:"filled_docx_url"`
	FilledPDFURL  *string `json:"filled_pdf_url,omitempty"`
}

// Marker is one inert marker span found in aligned HTML, in document order.
type Marker struct {
	FieldID string `json:"field_id"`
	Index   int    `json:"index"`
}

// UploadResponse is the response for POST /api/upload.
type UploadResponse struct {
	Success        bool     `json:"success"`
	Filename       string   `json:"filename"`
	Placeholders   []Field  `json:"placeholders"`
	Summary        Summary  `json:"summary"`
	MarkedHTML     string   `json:"marked_html,omitempty"`
	Markers        []Marker `json:"markers,omitempty"`
	AIHintsEnabled bool     `json:"ai_hints_enabled"`
}

// Field converts a FieldInput to a Field carrying only what the injector needs.
func (fi *FieldInput) Field() Field {
	return Field{
		ID:    fi.ID,
		Type:  fi.Type,
		Value: fi.Value,
		Label: fi.Label,
		Input: fi.Input,
	}
}

// Validate validates the ExportRequest using the validator.
func (r *ExportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
