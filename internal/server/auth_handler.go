package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/cv-builder/internal/server/middleware"
	"github.com/jonathan/cv-builder/internal/types"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	adminService *AdminService
	jwtService   *JWTService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(adminService *AdminService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		adminService: adminService,
		jwtService:   jwtService,
	}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	admin, err := h.adminService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(admin.ID)
	if err != nil {
		log.Printf("Error generating token for %s: %v", admin.Email, err)
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, types.LoginResponse{
		Admin: &types.AdminUser{
			ID:        admin.ID,
			Email:     admin.Email,
			CreatedAt: admin.CreatedAt,
		},
		Token: token,
	})
}

// UpdatePassword handles POST /auth/password. Requires authentication.
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	adminID, err := middleware.GetAdminID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "new password must be at least 8 characters")
		return
	}

	if err := h.adminService.UpdatePassword(r.Context(), adminID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// writeError writes an error JSON response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
