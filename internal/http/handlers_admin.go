package httpx

import (
	"net/http"

	"github.com/internmatch/internmatch-api/internal/service"
)

// AdminHandlers provides HTTP handlers for the moderation queue and dashboard.
type AdminHandlers struct {
	Moderation *service.ModerationService
	StatsSvc   *service.StatsService
}

// Pending handles the review queue: pending internships plus unapproved
// companies.
// GET /api/admin/pending (admin).
func (h *AdminHandlers) Pending(w http.ResponseWriter, r *http.Request) {
	queue, err := h.Moderation.ListPending(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, queue)
}

type decideInternshipRequest struct {
	Action string `json:"action"`
}

// DecideInternship handles a one-way moderation decision.
// PATCH /api/admin/internships/{id} (admin).
func (h *AdminHandlers) DecideInternship(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req decideInternshipRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	internship, err := h.Moderation.DecideInternship(r.Context(), id, service.ModerationAction(req.Action))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, internship)
}

type companyApprovalRequest struct {
	Approved *bool `json:"approved"`
}

// SetCompanyApproval handles the reversible company approval flag.
// PATCH /api/admin/companies/{id} (admin).
func (h *AdminHandlers) SetCompanyApproval(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req companyApprovalRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Approved == nil {
		writeQueryError(w, "approved is required")
		return
	}

	company, err := h.Moderation.SetCompanyApproval(r.Context(), id, *req.Approved)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, company)
}

// Stats handles the admin dashboard counters.
// GET /api/admin/stats (admin).
func (h *AdminHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsSvc.AdminStats(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, stats)
}
