//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "github.com/internmatch/internmatch-api/internal/domain/auth"

// AdminStats is an aggregate snapshot for the admin dashboard.
type AdminStats struct {
	PendingInternships  int64              `json:"pending_internships"`
	ApprovedInternships int64              `json:"approved_internships"`
	RejectedInternships int64              `json:"rejected_internships"`
	UnapprovedCompanies int64              `json:"unapproved_companies"`
	UsersByRole         map[auth.Role]int64 `json:"users_by_role"`
}
