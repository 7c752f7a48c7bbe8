package httpx

import (
	"net/http"

	"github.com/internmatch/internmatch-api/internal/domain/model"
	"github.com/internmatch/internmatch-api/internal/service"
)

// ApplicationHandlers provides HTTP handlers for the application workflow.
type ApplicationHandlers struct {
	Svc *service.ApplicationService
}

// Submit handles a student applying to an internship.
// POST /api/internships/{id}/applications (student).
func (h *ApplicationHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	internshipID := r.PathValue("id")

	// An empty body is a bare application without answers or cover letter.
	var req *model.SubmitApplicationRequest
	if !DecodeJSONOptional(w, r, &req) {
		return
	}

	app, err := h.Svc.Submit(r.Context(), session.UserID, internshipID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, app)
}

// ListMine handles the student's own applications.
// GET /api/applications (student).
func (h *ApplicationHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	apps, err := h.Svc.ListForStudent(r.Context(), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

// ListForInternship handles the recruiter's applicant review list.
// GET /api/internships/{id}/applications (owning recruiter).
func (h *ApplicationHandlers) ListForInternship(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	internshipID := r.PathValue("id")

	apps, err := h.Svc.ListForInternship(r.Context(), session.UserID, internshipID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

// UpdateStatus handles the recruiter's decision on an application.
// PATCH /api/applications/{id} (owning recruiter).
func (h *ApplicationHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	applicationID := r.PathValue("id")

	var req model.UpdateApplicationStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	app, err := h.Svc.UpdateStatus(r.Context(), session.UserID, applicationID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, app)
}
