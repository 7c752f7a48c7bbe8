package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// User repository sentinels.
	ErrUserNotFound = errors.New("user not found")

	// Company repository sentinels.
	ErrCompanyNotFound = errors.New("company not found")
	ErrCompanyExists   = errors.New("recruiter already has a company")

	// Internship repository sentinels.
	ErrInternshipNotFound = errors.New("internship not found")
	// ErrInternshipNotPending is returned when a moderation decision targets an
	// internship that has already left the pending state.
	ErrInternshipNotPending = errors.New("internship is not pending")

	// Application repository sentinels.
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this internship")
	// ErrApplicationDecided is returned when a status update targets an
	// application that already carries a terminal decision.
	ErrApplicationDecided = errors.New("application has already been decided")

	// Notification repository sentinels.
	ErrNotificationNotFound = errors.New("notification not found")
)
