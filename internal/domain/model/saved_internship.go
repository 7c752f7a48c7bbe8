//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// SavedInternship is a student's bookmark on an internship.
type SavedInternship struct {
	UserID       string    `json:"user_id"       db:"user_id"`
	InternshipID string    `json:"internship_id" db:"internship_id"`
	SavedAt      time.Time `json:"saved_at"      db:"saved_at"`
}
