package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/cv-builder/internal/render"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/validation"
)

// handleDownloadCV handles GET /cvs/{id}/download, rendering the stored CV
// to PDF with its persisted template and settings.
func (s *Server) handleDownloadCV(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.fetchCV(w, r)
	if !ok {
		return
	}

	cv := rec.CV
	tree := render.Render(&cv, cv.SelectedTemplate, cv.TemplateSettings.Options())

	pdf, err := s.assembler.Assemble(r.Context(), tree)
	if err != nil {
		log.Printf("Error rendering cv %s: %v", rec.ID, err)
		writeError(w, HTTPStatus(err), "failed to render pdf")
		return
	}

	disposition := "attachment"
	if r.URL.Query().Get("disposition") == "inline" {
		disposition = "inline"
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, pdfFilename(cv.FullName)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing pdf for cv %s: %v", rec.ID, err)
	}
}

// previewRequest optionally overrides the persisted template selection for a
// single render.
type previewRequest struct {
	Template string                  `json:"template"`
	Settings *types.TemplateSettings `json:"settings"`
}

// handlePreviewCV handles POST /cvs/{id}/preview. It renders the CV to the
// standalone HTML page that the PDF printer would consume, applying any
// template or settings overrides from the body without persisting them.
func (s *Server) handlePreviewCV(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.fetchCV(w, r)
	if !ok {
		return
	}

	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cv := rec.CV
	templateID := cv.SelectedTemplate
	if req.Template != "" {
		templateID = req.Template
	}
	settings := cv.TemplateSettings
	if req.Settings != nil {
		settings = *req.Settings
		validation.NormalizeSettings(&settings)
	}

	tree := render.Render(&cv, templateID, settings.Options())

	html, err := s.assembler.AssembleHTML(r.Context(), tree)
	if err != nil {
		log.Printf("Error previewing cv %s: %v", rec.ID, err)
		writeError(w, HTTPStatus(err), "failed to render preview")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, html); err != nil {
		log.Printf("Error writing preview for cv %s: %v", rec.ID, err)
	}
}

// pdfFilename derives the download filename from the candidate name, with
// whitespace collapsed to hyphens and header-hostile characters removed.
func pdfFilename(fullName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '/', ';', '\r', '\n':
			return -1
		}
		return r
	}, fullName)

	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "CV.pdf"
	}
	return "CV-" + strings.Join(parts, "-") + ".pdf"
}
