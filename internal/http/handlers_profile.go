package httpx

import (
	"net/http"

	"github.com/internmatch/internmatch-api/internal/domain/model"
	"github.com/internmatch/internmatch-api/internal/service"
)

// ProfileHandlers provides HTTP handlers for the caller's own profile.
type ProfileHandlers struct {
	Svc *service.AccountService
}

// Get handles fetching the caller's profile.
// GET /api/profile.
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	user, err := h.Svc.GetProfile(r.Context(), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// Update handles editing the caller's profile fields. Role is not among them.
// PATCH /api/profile.
func (h *ProfileHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req model.UpdateProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.UpdateProfile(r.Context(), session.UserID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}
