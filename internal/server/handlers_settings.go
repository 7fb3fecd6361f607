package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/cv-builder/internal/db"
	"github.com/jonathan/cv-builder/internal/render"
)

// settableKeys are the settings the admin UI may write.
var settableKeys = map[string]bool{
	db.SettingNotificationEmail: true,
	db.SettingDefaultTemplate:   true,
}

// handleGetSettings handles GET /settings.
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.db.ListSettings(r.Context())
	if err != nil {
		log.Printf("Error listing settings: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	if settings == nil {
		settings = map[string]string{}
	}
	writeJSON(w, http.StatusOK, settings)
}

// handleUpdateSettings handles PUT /settings. The body is a flat key/value
// object; unknown keys are rejected rather than silently stored.
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	for key, value := range req {
		if !settableKeys[key] {
			writeError(w, http.StatusBadRequest, "unknown setting: "+key)
			return
		}
		if key == db.SettingDefaultTemplate && value != "" && render.Canonical(value) != value {
			writeError(w, http.StatusBadRequest, "unknown template: "+value)
			return
		}
	}

	for key, value := range req {
		if err := s.db.SetSetting(r.Context(), key, value); err != nil {
			log.Printf("Error storing setting %s: %v", key, err)
			writeError(w, http.StatusInternalServerError, "failed to store settings")
			return
		}
	}

	settings, err := s.db.ListSettings(r.Context())
	if err != nil {
		log.Printf("Error listing settings: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
