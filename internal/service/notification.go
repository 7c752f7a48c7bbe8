package service

import (
	"context"
	"errors"

	"github.com/internmatch/internmatch-api/internal/core"
	"github.com/internmatch/internmatch-api/internal/data"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
)

// NotificationServiceOptions groups dependencies for NotificationService.
type NotificationServiceOptions struct {
	Notifications core.NotificationRepository
}

// NotificationService serves a user's in-app notification feed.
type NotificationService struct {
	notifications core.NotificationRepository
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(opts NotificationServiceOptions) *NotificationService {
	return &NotificationService{notifications: opts.Notifications}
}

// List retrieves the caller's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string, opts model.NotificationsListOptions) ([]*model.Notification, error) {
	return s.notifications.ListForUser(ctx, userID, opts)
}

// UnreadCount returns the caller's unread notification count.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notifications.CountUnread(ctx, userID)
}

// MarkRead flips the read flag on the caller's own notification.
func (s *NotificationService) MarkRead(ctx context.Context, userID, id string) (*model.Notification, error) {
	notification, err := s.notifications.MarkRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, data.ErrNotificationNotFound) {
			return nil, apperrors.NotFound("Notification not found.")
		}
		return nil, err
	}
	return notification, nil
}
