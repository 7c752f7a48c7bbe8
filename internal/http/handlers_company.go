package httpx

import (
	"net/http"

	"github.com/internmatch/internmatch-api/internal/domain/model"
	"github.com/internmatch/internmatch-api/internal/service"
)

// CompanyHandlers provides HTTP handlers for the recruiter's company profile.
type CompanyHandlers struct {
	Svc *service.CompanyService
}

// Get handles fetching the caller's own company profile.
// GET /api/company (recruiter).
func (h *CompanyHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	company, err := h.Svc.GetMine(r.Context(), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, company)
}

// Create handles creating the caller's company profile.
// POST /api/company (recruiter).
func (h *CompanyHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req *model.CreateCompanyRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	company, err := h.Svc.Create(r.Context(), session.UserID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, company)
}

// Update handles editing the caller's company profile fields.
// PATCH /api/company (recruiter).
func (h *CompanyHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req model.UpdateCompanyRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	company, err := h.Svc.Update(r.Context(), session.UserID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, company)
}
