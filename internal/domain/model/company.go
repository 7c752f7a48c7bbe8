//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Company is a recruiter's company profile. One per recruiter, enforced by a
// unique constraint on recruiter_id.
type Company struct {
	ID          string    `json:"id"                     db:"id"`
	RecruiterID string    `json:"recruiter_id"           db:"recruiter_id"`
	CompanyName string    `json:"company_name"           db:"company_name"`
	Description *string   `json:"description,omitempty"  db:"description"`
	Website     *string   `json:"website,omitempty"      db:"website"`
	LogoURL     *string   `json:"logo_url,omitempty"     db:"logo_url"`
	Location    *string   `json:"location,omitempty"     db:"location"`
	Industry    *string   `json:"industry,omitempty"     db:"industry"`
	CompanySize *string   `json:"company_size,omitempty" db:"company_size"`
	Approved    bool      `json:"approved"               db:"approved"`
	CreatedAt   time.Time `json:"created_at"             db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"             db:"updated_at"`
}

// CreateCompanyRequest represents parameters to create a Company.
// Approved is absent: new companies always start unapproved.
type CreateCompanyRequest struct {
	CompanyName string  `json:"company_name"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
	Location    *string `json:"location,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	CompanySize *string `json:"company_size,omitempty"`
}

// UpdateCompanyRequest represents parameters to update a Company's own
// profile fields. The approved flag is admin-only and not settable here.
type UpdateCompanyRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
	Location    *string `json:"location,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	CompanySize *string `json:"company_size,omitempty"`
}

// Validate validates CreateCompanyRequest.
func (r *CreateCompanyRequest) Validate() error {
	name := strings.TrimSpace(r.CompanyName)
	if name == "" {
		return errors.New("company_name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return errors.New("company_name cannot exceed 255 characters")
	}
	r.CompanyName = name
	return nil
}

// HasUpdates reports whether any field is set in UpdateCompanyRequest.
func (r *UpdateCompanyRequest) HasUpdates() bool {
	return r.CompanyName != nil || r.Description != nil || r.Website != nil ||
		r.LogoURL != nil || r.Location != nil || r.Industry != nil || r.CompanySize != nil
}

// Validate validates UpdateCompanyRequest, ensuring at least one field is set.
func (r *UpdateCompanyRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.CompanyName != nil {
		n := strings.TrimSpace(*r.CompanyName)
		if n == "" {
			return errors.New("company_name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxNameLen {
			return errors.New("company_name cannot exceed 255 characters")
		}
		*r.CompanyName = n
	}
	return nil
}
