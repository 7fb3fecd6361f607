package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/cv-builder/internal/types"
)

// handleImproveText handles POST /ai/improve-text, rewriting a piece of CV
// prose with the configured model.
func (s *Server) handleImproveText(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		err := &ErrAIDisabled{}
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	improved, err := s.assistant.ImproveText(r.Context(), req.Text)
	if err != nil {
		log.Printf("Error improving text: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to improve text")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": improved})
}

// handleGenerateProfile handles POST /ai/generate-profile, drafting a summary
// paragraph from the CV document in the request body.
func (s *Server) handleGenerateProfile(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		err := &ErrAIDisabled{}
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	var cv types.CV
	if err := json.NewDecoder(r.Body).Decode(&cv); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := s.assistant.GenerateSummary(r.Context(), &cv)
	if err != nil {
		log.Printf("Error generating profile: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to generate profile")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}
