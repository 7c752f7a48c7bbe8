//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxTitleLen = 255

	// ListingPageSize is the fixed page size for the public listing surface.
	ListingPageSize = 10
)

// InternshipStatus tracks an internship through moderation.
type InternshipStatus string

const (
	InternshipStatusPending  InternshipStatus = "pending"
	InternshipStatusApproved InternshipStatus = "approved"
	InternshipStatusRejected InternshipStatus = "rejected"
)

// Valid reports whether the internship status is supported.
func (s InternshipStatus) Valid() bool {
	switch s {
	case InternshipStatusPending, InternshipStatusApproved, InternshipStatusRejected:
		return true
	default:
		return false
	}
}

// InternshipSort selects the listing sort order.
type InternshipSort string

const (
	InternshipSortNewest      InternshipSort = "newest"
	InternshipSortStipendHigh InternshipSort = "stipend_high"
)

// ParseInternshipSort normalizes a sort string, defaulting to newest.
func ParseInternshipSort(value string) (InternshipSort, bool) {
	sort := InternshipSort(strings.ToLower(strings.TrimSpace(value)))
	switch sort {
	case "":
		return InternshipSortNewest, true
	case InternshipSortNewest, InternshipSortStipendHigh:
		return sort, true
	default:
		return "", false
	}
}

// Internship is a posted internship position.
type Internship struct {
	ID               string           `json:"id"                         db:"id"`
	CompanyID        string           `json:"company_id"                 db:"company_id"`
	Title            string           `json:"title"                      db:"title"`
	Category         *string          `json:"category,omitempty"         db:"category"`
	Description      string           `json:"description"                db:"description"`
	Responsibilities *string          `json:"responsibilities,omitempty" db:"responsibilities"`
	StipendMin       int              `json:"stipend_min"                db:"stipend_min"`
	StipendMax       int              `json:"stipend_max"                db:"stipend_max"`
	Location         *string          `json:"location,omitempty"         db:"location"`
	IsWFH            bool             `json:"is_wfh"                     db:"is_wfh"`
	Duration         *string          `json:"duration,omitempty"         db:"duration"`
	Openings         int              `json:"openings"                   db:"openings"`
	Perks            *string          `json:"perks,omitempty"            db:"perks"`
	SkillsRequired   []string         `json:"skills_required"            db:"skills_required"`
	Questions        json.RawMessage  `json:"questions,omitempty"        db:"questions"`
	Status           InternshipStatus `json:"status"                     db:"status"`
	StartDate        *time.Time       `json:"start_date,omitempty"       db:"start_date"`
	ApplyBy          *time.Time       `json:"apply_by,omitempty"         db:"apply_by"`
	CreatedAt        time.Time        `json:"created_at"                 db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"                 db:"updated_at"`
}

// InternshipCard is a listing row joined with the owning company's display
// fields. It is what the public browse, saved, and recommended surfaces
// return.
type InternshipCard struct {
	Internship
	CompanyName string  `json:"company_name"       db:"company_name"`
	LogoURL     *string `json:"logo_url,omitempty" db:"logo_url"`
}

// InternshipsListOptions controls the public listing query.
// Notes:
// - Q matches title or description via ILIKE substring.
// - Location matches via ILIKE substring; Duration and Category match exactly.
// - StipendMin/StipendMax bound the posting's stipend range from below/above.
// - Skill filters rows whose skills_required contains the given skill.
// - Page is 1-based; the page size is fixed at ListingPageSize.
type InternshipsListOptions struct {
	Q          *string
	Location   *string
	StipendMin *int
	StipendMax *int
	WFHOnly    bool
	Duration   *string
	Skill      *string
	Category   *string
	Sort       InternshipSort
	Page       int
}

// CreateInternshipRequest represents parameters to create an Internship.
// New postings always enter moderation as pending.
type CreateInternshipRequest struct {
	Title            string          `json:"title"`
	Category         *string         `json:"category,omitempty"`
	Description      string          `json:"description"`
	Responsibilities *string         `json:"responsibilities,omitempty"`
	StipendMin       int             `json:"stipend_min"`
	StipendMax       int             `json:"stipend_max"`
	Location         *string         `json:"location,omitempty"`
	IsWFH            bool            `json:"is_wfh"`
	Duration         *string         `json:"duration,omitempty"`
	Openings         int             `json:"openings"`
	Perks            *string         `json:"perks,omitempty"`
	SkillsRequired   []string        `json:"skills_required,omitempty"`
	Questions        json.RawMessage `json:"questions,omitempty"`
	StartDate        *time.Time      `json:"start_date,omitempty"`
	ApplyBy          *time.Time      `json:"apply_by,omitempty"`
}

// Validate validates CreateInternshipRequest.
func (r *CreateInternshipRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	r.Title = title
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required and cannot be empty")
	}
	if r.StipendMin < 0 {
		return errors.New("stipend_min must be >= 0")
	}
	if r.StipendMax < r.StipendMin {
		return errors.New("stipend_max must be >= stipend_min")
	}
	if r.Openings < 1 {
		return errors.New("openings must be >= 1")
	}
	if len(r.SkillsRequired) > maxSkills {
		return errors.New("too many skills_required")
	}
	for _, s := range r.SkillsRequired {
		if strings.TrimSpace(s) == "" {
			return errors.New("skills_required cannot contain empty entries")
		}
	}
	if r.StartDate != nil && r.ApplyBy != nil && r.ApplyBy.After(*r.StartDate) {
		return errors.New("apply_by must not be after start_date")
	}
	return nil
}

// Validate validates InternshipsListOptions, normalizing page and sort.
func (o *InternshipsListOptions) Validate() error {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Sort == "" {
		o.Sort = InternshipSortNewest
	}
	switch o.Sort {
	case InternshipSortNewest, InternshipSortStipendHigh:
	default:
		return errors.New("invalid sort")
	}
	if o.StipendMin != nil && *o.StipendMin < 0 {
		return errors.New("stipend_min must be >= 0")
	}
	if o.StipendMax != nil && *o.StipendMax < 0 {
		return errors.New("stipend_max must be >= 0")
	}
	return nil
}
