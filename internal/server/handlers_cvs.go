package server

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/cv-builder/internal/db"
	"github.com/jonathan/cv-builder/internal/render"
	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/validation"
)

// maxIntakeBody caps the intake payload size.
const maxIntakeBody = 1 << 20

// handleCreateCV handles the public intake endpoint: POST /cvs.
func (s *Server) handleCreateCV(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxIntakeBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	cv, err := decodeCV(payload)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	// Server-controlled fields are never taken from the client
	cv.ID = ""
	cv.Status = ""
	cv.Viewed = false

	rec, err := s.db.CreateCV(r.Context(), cv)
	if err != nil {
		log.Printf("Error creating cv: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to store cv")
		return
	}

	s.notifyIntake(cv)

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":     rec.ID,
		"status": rec.Status,
	})
}

// decodeCV validates an incoming CV payload against the JSON schema and the
// field rules, then sanitizes the user-controlled template settings.
func decodeCV(payload []byte) (*types.CV, error) {
	if err := schemas.ValidateCVDocument(payload); err != nil {
		return nil, err
	}

	var cv types.CV
	if err := json.Unmarshal(payload, &cv); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON document"}
	}

	if err := validation.ValidateCV(&cv); err != nil {
		return nil, err
	}

	validation.NormalizeSettings(&cv.TemplateSettings)
	ensureEntryIDs(&cv)
	return &cv, nil
}

// ensureEntryIDs assigns IDs to list entries that arrived without one.
func ensureEntryIDs(cv *types.CV) {
	for i := range cv.Experience {
		if cv.Experience[i].ID == "" {
			cv.Experience[i].ID = uuid.NewString()
		}
	}
	for i := range cv.Education {
		if cv.Education[i].ID == "" {
			cv.Education[i].ID = uuid.NewString()
		}
	}
	for i := range cv.Languages {
		if cv.Languages[i].ID == "" {
			cv.Languages[i].ID = uuid.NewString()
		}
	}
	for i := range cv.Projects {
		if cv.Projects[i].ID == "" {
			cv.Projects[i].ID = uuid.NewString()
		}
	}
	for i := range cv.Certifications {
		if cv.Certifications[i].ID == "" {
			cv.Certifications[i].ID = uuid.NewString()
		}
	}
}

// notifyIntake emails the configured admin address in the background.
// Notification failure never fails the intake.
func (s *Server) notifyIntake(cv *types.CV) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		to, err := s.db.GetSetting(ctx, db.SettingNotificationEmail)
		if err != nil {
			log.Printf("Error reading notification address: %v", err)
			return
		}
		if err := s.notifier.NotifyNewCV(ctx, to, cv); err != nil {
			log.Printf("Error notifying new cv: %v", err)
		}
	}()
}

// handleListCVs handles GET /cvs with optional status, viewed, search and
// limit query parameters.
func (s *Server) handleListCVs(w http.ResponseWriter, r *http.Request) {
	filters := db.CVFilters{
		Status: types.CVStatus(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("search"),
	}

	if v := r.URL.Query().Get("viewed"); v != "" {
		viewed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "viewed must be true or false")
			return
		}
		filters.Viewed = &viewed
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > 500 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		filters.Limit = limit
	}

	cvs, err := s.db.ListCVs(r.Context(), filters)
	if err != nil {
		log.Printf("Error listing cvs: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list cvs")
		return
	}
	if cvs == nil {
		cvs = []db.CVSummary{}
	}
	writeJSON(w, http.StatusOK, cvs)
}

// handleGetCV handles GET /cvs/{id}. Fetching a CV marks it as viewed.
func (s *Server) handleGetCV(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.fetchCV(w, r)
	if !ok {
		return
	}

	if !rec.Viewed {
		if err := s.db.MarkCVViewed(r.Context(), rec.ID); err != nil {
			log.Printf("Error marking cv %s viewed: %v", rec.ID, err)
		} else {
			rec.Viewed = true
			rec.CV.Viewed = true
		}
	}

	writeJSON(w, http.StatusOK, rec.CV)
}

// handleUpdateCV handles PUT /cvs/{id}, replacing the stored document.
func (s *Server) handleUpdateCV(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.fetchCV(w, r)
	if !ok {
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxIntakeBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	cv, err := decodeCV(payload)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	// Review state is managed through its own endpoints
	cv.Status = rec.Status
	cv.Viewed = rec.Viewed

	if err := s.db.UpdateCV(r.Context(), rec.ID, cv); err != nil {
		log.Printf("Error updating cv %s: %v", rec.ID, err)
		writeError(w, http.StatusInternalServerError, "failed to update cv")
		return
	}
	writeJSON(w, http.StatusOK, cv)
}

// handleDeleteCV handles DELETE /cvs/{id}.
func (s *Server) handleDeleteCV(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.fetchCV(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteCV(r.Context(), rec.ID); err != nil {
		log.Printf("Error deleting cv %s: %v", rec.ID, err)
		writeError(w, http.StatusInternalServerError, "failed to delete cv")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateCVStatus handles PATCH /cvs/{id}/status.
func (s *Server) handleUpdateCVStatus(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.fetchCV(w, r)
	if !ok {
		return
	}

	var req struct {
		Status types.CVStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Status {
	case types.StatusPending, types.StatusReviewed, types.StatusCompleted:
	default:
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}

	if err := s.db.UpdateCVStatus(r.Context(), rec.ID, req.Status); err != nil {
		log.Printf("Error updating cv %s status: %v", rec.ID, err)
		writeError(w, http.StatusInternalServerError, "failed to update status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": rec.ID, "status": req.Status})
}

// handleUpdateCVTemplate handles PATCH /cvs/{id}/template, storing the
// template selection and visual settings without touching the document body.
func (s *Server) handleUpdateCVTemplate(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.fetchCV(w, r)
	if !ok {
		return
	}

	var req struct {
		Template string                 `json:"template"`
		Settings types.TemplateSettings `json:"settings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	templateID := render.Canonical(req.Template)
	validation.NormalizeSettings(&req.Settings)

	if err := s.db.UpdateCVTemplate(r.Context(), rec.ID, templateID, req.Settings); err != nil {
		log.Printf("Error updating cv %s template: %v", rec.ID, err)
		writeError(w, http.StatusInternalServerError, "failed to update template")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": rec.ID, "template": templateID})
}

// fetchCV parses the {id} path value and loads the record, writing the
// error response itself when either step fails.
func (s *Server) fetchCV(w http.ResponseWriter, r *http.Request) (*db.CVRecord, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cv id")
		return nil, false
	}

	rec, err := s.db.GetCV(r.Context(), id)
	if err != nil {
		log.Printf("Error fetching cv %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to fetch cv")
		return nil, false
	}
	if rec == nil {
		notFound := &ErrCVNotFound{ID: id}
		writeError(w, HTTPStatus(notFound), notFound.Error())
		return nil, false
	}
	return rec, true
}
