package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/internmatch/internmatch-api/internal/domain/model"
	"github.com/internmatch/internmatch-api/internal/service"
)

// InternshipHandlers provides HTTP handlers for the posting and browsing surface.
type InternshipHandlers struct {
	Svc *service.InternshipService
}

// List handles the public listing endpoint.
// GET /api/internships?q=&location=&stipend_min=&stipend_max=&wfh=&duration=&skill=&category=&sort=&page=.
func (h *InternshipHandlers) List(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseListingOptions(w, r)
	if !ok {
		return
	}

	cards, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"internships": cards,
		"page":        opts.Page,
		"page_size":   model.ListingPageSize,
	})
}

// Get handles the public detail endpoint. The viewer session, when present,
// widens visibility to the owning recruiter and admins.
// GET /api/internships/{id}.
func (h *InternshipHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	viewer := GetSessionFromContext(r.Context())

	card, err := h.Svc.Get(r.Context(), id, viewer)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, card)
}

// Create handles posting a new internship for the caller's company.
// POST /api/internships (recruiter).
func (h *InternshipHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req *model.CreateInternshipRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	internship, err := h.Svc.Create(r.Context(), session.UserID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, internship)
}

// ListMine handles the recruiter's own postings in every status.
// GET /api/recruiter/internships (recruiter).
func (h *InternshipHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	internships, err := h.Svc.ListMine(r.Context(), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"internships": internships})
}

// Recommended handles skill-matched suggestions for the signed-in student.
// GET /api/internships/recommended (student).
func (h *InternshipHandlers) Recommended(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	cards, err := h.Svc.Recommended(r.Context(), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"internships": cards})
}

// parseListingOptions maps query params onto InternshipsListOptions. A false
// return means an error response was already written.
func parseListingOptions(w http.ResponseWriter, r *http.Request) (model.InternshipsListOptions, bool) {
	q := r.URL.Query()
	opts := model.InternshipsListOptions{Page: parseIntQuery(r, "page", 1)}

	if v := strings.TrimSpace(q.Get("q")); v != "" {
		opts.Q = &v
	}
	if v := strings.TrimSpace(q.Get("location")); v != "" {
		opts.Location = &v
	}
	if v := strings.TrimSpace(q.Get("duration")); v != "" {
		opts.Duration = &v
	}
	if v := strings.TrimSpace(q.Get("skill")); v != "" {
		opts.Skill = &v
	}
	if v := strings.TrimSpace(q.Get("category")); v != "" {
		opts.Category = &v
	}
	if v := q.Get("stipend_min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeQueryError(w, "stipend_min must be an integer")
			return opts, false
		}
		opts.StipendMin = &n
	}
	if v := q.Get("stipend_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeQueryError(w, "stipend_max must be an integer")
			return opts, false
		}
		opts.StipendMax = &n
	}
	if v := q.Get("wfh"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeQueryError(w, "wfh must be a boolean")
			return opts, false
		}
		opts.WFHOnly = b
	}

	sort, ok := model.ParseInternshipSort(q.Get("sort"))
	if !ok {
		writeQueryError(w, "sort must be newest or stipend_high")
		return opts, false
	}
	opts.Sort = sort

	return opts, true
}

func writeQueryError(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusBadRequest, map[string]string{
		"error":   "validation",
		"message": msg,
	})
}
