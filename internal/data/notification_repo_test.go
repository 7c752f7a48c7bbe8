package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	"github.com/internmatch/internmatch-api/internal/testutil"
)

func TestNotificationRepo_CreateAndList(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewNotificationRepo(db)
		user := createTestUser(t, db, auth.RoleStudent)

		n, err := repo.Create(ctx, user.ID, "Application Update", "You were selected.", model.NotificationTypeSuccess)
		require.NoError(t, err)
		require.NotEmpty(t, n.ID)
		assert.False(t, n.Read)

		_, err = repo.Create(ctx, user.ID, "Heads up", "Deadline soon.", model.NotificationTypeWarning)
		require.NoError(t, err)

		list, err := repo.ListForUser(ctx, user.ID, model.NotificationsListOptions{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		// newest first
		assert.Equal(t, "Heads up", list[0].Title)

		unread, err := repo.CountUnread(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), unread)
	})
}

func TestNotificationRepo_Create_Validation(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewNotificationRepo(db)
		ctx := context.Background()

		_, err := repo.Create(ctx, "", "t", "m", model.NotificationTypeInfo)
		require.Error(t, err)

		_, err = repo.Create(ctx, "user", " ", "m", model.NotificationTypeInfo)
		require.Error(t, err)

		_, err = repo.Create(ctx, "user", "t", "m", model.NotificationType("shout"))
		require.Error(t, err)
	})
}

func TestNotificationRepo_ListPaging(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewNotificationRepo(db)
		user := createTestUser(t, db, auth.RoleStudent)

		for i := 0; i < 5; i++ {
			_, err := repo.Create(ctx, user.ID, "n", "m", model.NotificationTypeInfo)
			require.NoError(t, err)
		}

		page, err := repo.ListForUser(ctx, user.ID, model.NotificationsListOptions{Limit: 2, Offset: 0})
		require.NoError(t, err)
		assert.Len(t, page, 2)

		rest, err := repo.ListForUser(ctx, user.ID, model.NotificationsListOptions{Limit: 10, Offset: 4})
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})
}

func TestNotificationRepo_MarkRead(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewNotificationRepo(db)
		user := createTestUser(t, db, auth.RoleStudent)
		other := createTestUser(t, db, auth.RoleStudent)

		n, err := repo.Create(ctx, user.ID, "t", "m", model.NotificationTypeInfo)
		require.NoError(t, err)

		read, err := repo.MarkRead(ctx, n.ID, user.ID)
		require.NoError(t, err)
		assert.True(t, read.Read)

		unread, err := repo.CountUnread(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), unread)

		// another user cannot touch it
		_, err = repo.MarkRead(ctx, n.ID, other.ID)
		require.ErrorIs(t, err, ErrNotificationNotFound)

		_, err = repo.MarkRead(ctx, uuid.NewString(), user.ID)
		require.ErrorIs(t, err, ErrNotificationNotFound)
	})
}
