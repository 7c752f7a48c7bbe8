package httpx

import (
	"net/http"

	"github.com/internmatch/internmatch-api/internal/service"
)

// SavedHandlers provides HTTP handlers for the student's saved-internships tab.
type SavedHandlers struct {
	Svc *service.SavedService
}

// Toggle handles saving or unsaving an internship.
// POST /api/internships/{id}/save (student).
func (h *SavedHandlers) Toggle(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	internshipID := r.PathValue("id")

	saved, err := h.Svc.Toggle(r.Context(), session.UserID, internshipID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"saved": saved})
}

// List handles the student's saved internships.
// GET /api/saved (student).
func (h *SavedHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	cards, err := h.Svc.List(r.Context(), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"internships": cards})
}
