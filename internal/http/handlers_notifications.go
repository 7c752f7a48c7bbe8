package httpx

import (
	"net/http"

	"github.com/internmatch/internmatch-api/internal/domain/model"
	"github.com/internmatch/internmatch-api/internal/service"
)

const (
	defaultNotificationsLimit = 50
	maxNotificationsLimit     = 200
)

// NotificationHandlers provides HTTP handlers for the in-app notification feed.
type NotificationHandlers struct {
	Svc *service.NotificationService
}

// List handles the caller's notification feed, newest first.
// GET /api/notifications?limit=&offset=.
func (h *NotificationHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	limit, offset := ParseLimitOffset(r, defaultNotificationsLimit, maxNotificationsLimit)

	notifications, err := h.Svc.List(r.Context(), session.UserID, model.NotificationsListOptions{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	unread, err := h.Svc.UnreadCount(r.Context(), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkRead handles flipping the read flag on the caller's own notification.
// PATCH /api/notifications/{id}/read.
func (h *NotificationHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	id := r.PathValue("id")

	notification, err := h.Svc.MarkRead(r.Context(), session.UserID, id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, notification)
}
