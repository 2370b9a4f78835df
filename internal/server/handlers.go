package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/DiwakaruniKoushik/DocuSign/internal/align"
	"github.com/DiwakaruniKoushik/DocuSign/internal/detect"
	"github.com/DiwakaruniKoushik/DocuSign/internal/docx"
	"github.com/DiwakaruniKoushik/DocuSign/internal/fill"
	"github.com/DiwakaruniKoushik/DocuSign/internal/hints"
	"github.com/DiwakaruniKoushik/DocuSign/internal/render"
	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

// maxUploadBytes bounds one multipart upload.
const maxUploadBytes = 32 << 20

// handleUpload accepts a .docx upload, detects its fillable fields, attaches
// best-effort guidance, and returns the field list together with a pre-marked
// HTML preview. Hint and alignment failures degrade the response; only a
// malformed document fails it.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file is required")
		return
	}
	defer func() { _ = file.Close() }()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".docx") {
		s.errorResponse(w, http.StatusBadRequest, "Only .docx files supported")
		return
	}

	stored := storedName(header.Filename)
	docxPath := filepath.Join(s.uploadDir, stored)
	if err := saveUpload(file, docxPath); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload: "+err.Error())
		return
	}

	doc, err := docx.Read(docxPath)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to parse document: "+err.Error())
		return
	}

	result := detect.Placeholders(doc)
	fields := result.Fields
	// Present in document order rather than detection order
	types.SortByLine(fields)

	guidance := s.hints.ForDocument(r.Context(), stored, fields)
	hints.Attach(fields, guidance)

	markedHTML := align.MarkHTML(render.HTML(doc), fields)
	markers, err := align.ExtractMarkers(markedHTML)
	if err != nil {
		log.Printf("[upload] marker extraction failed: %v", err)
		markers = nil
	}

	s.jsonResponse(w, http.StatusOK, types.UploadResponse{
		Success:        true,
		Filename:       stored,
		Placeholders:   fields,
		Summary:        result.Summary,
		MarkedHTML:     markedHTML,
		Markers:        markers,
		AIHintsEnabled: len(guidance) > 0,
	})
}

// handleExport fills the stored document with the caller's values. The fill
// step failing is an error; PDF conversion failing only nulls the PDF URL.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req types.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	src := filepath.Join(s.uploadDir, safeName(req.Filename))
	if _, err := os.Stat(src); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Source document not found")
		return
	}

	fields := make([]types.Field, 0, len(req.Fields))
	for i := range req.Fields {
		fields = append(fields, req.Fields[i].Field())
	}

	stem := strings.TrimSuffix(filepath.Base(src), ".docx")
	filledName := stem + ".filled.docx"
	dst := filepath.Join(s.outputDir, filledName)
	if err := fill.File(src, dst, fields); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fill document: "+err.Error())
		return
	}

	resp := types.ExportResponse{FilledDocxURL: "/api/file/" + filledName}

	if req.AlsoPDF {
		pdfName := stem + ".filled.pdf"
		pdfPath := filepath.Join(s.outputDir, pdfName)
		if err := s.convertPDF(r, dst, pdfPath); err != nil {
			log.Printf("[export] PDF conversion failed: %v", err)
		} else {
			url := "/api/file/" + pdfName
			resp.FilledPDFURL = &url
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// convertPDF renders the filled document and prints it through the browser.
func (s *Server) convertPDF(r *http.Request, docxPath, pdfPath string) error {
	doc, err := docx.Read(docxPath)
	if err != nil {
		return err
	}
	return render.FilePDF(r.Context(), render.HTML(doc), pdfPath)
}

// handleFile serves a stored artifact, output directory first, then uploads.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	name := safeName(r.PathValue("name"))
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "File name is required")
		return
	}

	path := filepath.Join(s.outputDir, name)
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(s.uploadDir, name)
	}
	if _, err := os.Stat(path); err != nil {
		s.errorResponse(w, http.StatusNotFound, "File not found")
		return
	}

	http.ServeFile(w, r, path)
}

// safeName strips any path components from a caller-supplied file name.
func safeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "/", "_")
	return filepath.Base(name)
}

// storedName derives a collision-free name for an upload: the safe stem plus
// a short random suffix.
func storedName(original string) string {
	safe := safeName(original)
	stem := strings.TrimSuffix(safe, filepath.Ext(safe))
	return stem + "-" + uuid.New().String()[:8] + ".docx"
}

func saveUpload(src io.Reader, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	_, err = io.Copy(out, src)
	return err
}
