package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/internmatch/internmatch-api/internal/data/pgxutil"
	"github.com/internmatch/internmatch-api/internal/domain/model"
)

const defaultNotificationLimit = 50

// NotificationRepo provides database operations for in-app notifications.
type NotificationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewNotificationRepo creates a new NotificationRepo with real time provider.
func NewNotificationRepo(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewNotificationRepoWithTimeProvider creates a new NotificationRepo with a custom time provider (useful for tests).
func NewNotificationRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *NotificationRepo {
	return &NotificationRepo{DB: db, timeProvider: tp}
}

// Create inserts an unread notification for the given user.
func (r *NotificationRepo) Create(ctx context.Context, userID, title, message string, typ model.NotificationType) (*model.Notification, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("title is required")
	}
	switch typ {
	case model.NotificationTypeInfo, model.NotificationTypeSuccess, model.NotificationTypeWarning:
	default:
		return nil, errors.New("invalid notification type")
	}

	var out model.Notification
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO notifications (user_id, title, message, type, read, created_at)
			VALUES ($1, $2, $3, $4, false, $5)
			RETURNING `+notificationColumns,
			userID, title, message, typ, r.timeProvider.Now().UTC())
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Notification])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return &out, nil
}

// ListForUser retrieves a user's notifications, newest first.
func (r *NotificationRepo) ListForUser(ctx context.Context, userID string, opts model.NotificationsListOptions) ([]*model.Notification, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultNotificationLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	var rowsOut []model.Notification
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+notificationColumns+`
			FROM notifications
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3`, userID, opts.Limit, opts.Offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Notification])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	res := make([]*model.Notification, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// CountUnread returns the number of unread notifications for the user.
func (r *NotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = false`,
			userID).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return n, nil
}

// MarkRead marks a notification as read. The user predicate keeps one user
// from touching another's notifications.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID string) (*model.Notification, error) {
	var out model.Notification
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE notifications SET read = true
			WHERE id = $1 AND user_id = $2
			RETURNING `+notificationColumns, id, userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Notification])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return &out, nil
}

const notificationColumns = `id, user_id, title, message, type, read, created_at`
