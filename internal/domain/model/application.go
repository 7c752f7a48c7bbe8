//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"encoding/json"
	"errors"
	"time"
)

const maxCoverLetterLen = 5000

// ApplicationStatus tracks an application through the recruiter's review.
type ApplicationStatus string

const (
	ApplicationStatusApplied  ApplicationStatus = "applied"
	ApplicationStatusSelected ApplicationStatus = "selected"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether the application status is supported.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusSelected, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// Application is a student's submission against an internship. At most one
// per (internship, student), enforced by a unique constraint.
type Application struct {
	ID           string            `json:"id"                     db:"id"`
	InternshipID string            `json:"internship_id"          db:"internship_id"`
	UserID       string            `json:"user_id"                db:"user_id"`
	Answers      json.RawMessage   `json:"answers,omitempty"      db:"answers"`
	CoverLetter  *string           `json:"cover_letter,omitempty" db:"cover_letter"`
	Status       ApplicationStatus `json:"status"                 db:"status"`
	AppliedAt    time.Time         `json:"applied_at"             db:"applied_at"`
	UpdatedAt    time.Time         `json:"updated_at"             db:"updated_at"`
}

// ApplicationWithInternship is an application row joined with the internship
// and company display fields, for the student's "my applications" view.
type ApplicationWithInternship struct {
	Application
	InternshipTitle string  `json:"internship_title"   db:"internship_title"`
	CompanyName     string  `json:"company_name"       db:"company_name"`
	LogoURL         *string `json:"logo_url,omitempty" db:"logo_url"`
}

// ApplicationWithApplicant is an application row joined with the applicant's
// profile fields, for the recruiter's review view.
type ApplicationWithApplicant struct {
	Application
	ApplicantName   string   `json:"applicant_name"       db:"applicant_name"`
	ApplicantEmail  string   `json:"applicant_email"      db:"applicant_email"`
	ApplicantSkills []string `json:"applicant_skills"     db:"applicant_skills"`
	ResumeURL       *string  `json:"resume_url,omitempty" db:"resume_url"`
}

// SubmitApplicationRequest represents a student's submission parameters.
type SubmitApplicationRequest struct {
	Answers     json.RawMessage `json:"answers,omitempty"`
	CoverLetter *string         `json:"cover_letter,omitempty"`
}

// Validate validates SubmitApplicationRequest.
func (r *SubmitApplicationRequest) Validate() error {
	if r.CoverLetter != nil && len(*r.CoverLetter) > maxCoverLetterLen {
		return errors.New("cover_letter cannot exceed 5000 characters")
	}
	if len(r.Answers) > 0 && !json.Valid(r.Answers) {
		return errors.New("answers must be valid JSON")
	}
	return nil
}

// UpdateApplicationStatusRequest represents a recruiter's status decision.
type UpdateApplicationStatusRequest struct {
	Status ApplicationStatus `json:"status"`
}

// Validate validates UpdateApplicationStatusRequest. Only the two terminal
// decisions are accepted; reverting to applied is not.
func (r *UpdateApplicationStatusRequest) Validate() error {
	switch r.Status {
	case ApplicationStatusSelected, ApplicationStatusRejected:
		return nil
	default:
		return errors.New("status must be selected or rejected")
	}
}
