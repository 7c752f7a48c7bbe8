//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/internmatch/internmatch-api/internal/domain/auth"
)

const (
	maxNameLen  = 255
	maxEmailLen = 255
	maxBioLen   = 2000
	maxSkills   = 50
)

// User is a persisted account profile. The ID is the identity provider's
// stable subject identifier, not a locally generated value.
type User struct {
	ID        string     `json:"id"                   db:"id"`
	Email     string     `json:"email"                db:"email"`
	FullName  string     `json:"full_name"            db:"full_name"`
	Role      auth.Role  `json:"role"                 db:"role"`
	Phone     *string    `json:"phone,omitempty"      db:"phone"`
	Bio       *string    `json:"bio,omitempty"        db:"bio"`
	Skills    []string   `json:"skills"               db:"skills"`
	ResumeURL *string    `json:"resume_url,omitempty" db:"resume_url"`
	CreatedAt time.Time  `json:"created_at"           db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"           db:"updated_at"`
}

// UpdateProfileRequest represents the self-service profile fields a user may
// change. Role is deliberately absent; no update path touches it.
type UpdateProfileRequest struct {
	FullName  *string  `json:"full_name,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	ResumeURL *string  `json:"resume_url,omitempty"`
}

// HasUpdates reports whether any field is set in UpdateProfileRequest.
func (r *UpdateProfileRequest) HasUpdates() bool {
	return r.FullName != nil || r.Phone != nil || r.Bio != nil || r.Skills != nil || r.ResumeURL != nil
}

// Validate validates UpdateProfileRequest, ensuring at least one field is set
// and values are sane.
func (r *UpdateProfileRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.FullName != nil {
		n := strings.TrimSpace(*r.FullName)
		if n == "" {
			return errors.New("full_name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxNameLen {
			return errors.New("full_name cannot exceed 255 characters")
		}
	}
	if r.Bio != nil && utf8.RuneCountInString(*r.Bio) > maxBioLen {
		return errors.New("bio cannot exceed 2000 characters")
	}
	if len(r.Skills) > maxSkills {
		return errors.New("too many skills")
	}
	for _, s := range r.Skills {
		if strings.TrimSpace(s) == "" {
			return errors.New("skills cannot contain empty entries")
		}
	}
	return nil
}
