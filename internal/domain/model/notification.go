//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// NotificationType is the display category of a notification.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
)

// Notification is an in-app message delivered to a single user.
type Notification struct {
	ID        string           `json:"id"         db:"id"`
	UserID    string           `json:"user_id"    db:"user_id"`
	Title     string           `json:"title"      db:"title"`
	Message   string           `json:"message"    db:"message"`
	Type      NotificationType `json:"type"       db:"type"`
	Read      bool             `json:"read"       db:"read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// NotificationsListOptions controls paging for a user's notifications.
// Results are always newest first.
type NotificationsListOptions struct {
	Limit  int
	Offset int
}
