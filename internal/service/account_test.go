package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
	"github.com/internmatch/internmatch-api/internal/mocks"
)

// newAccountService creates a mock user repository and service for testing.
func newAccountService(t *testing.T) (*mocks.MockUserRepository, *AccountService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewAccountService(AccountServiceOptions{Users: userRepo})

	return userRepo, service
}

func TestAccountService_EnsureUser_Persisted(t *testing.T) {
	t.Parallel()
	userRepo, service := newAccountService(t)

	ctx := context.Background()
	identity := domainauth.Identity{
		UserID:   "user-1",
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
	}
	stored := &model.User{
		ID:        "user-1",
		Email:     "ada@example.com",
		FullName:  "Ada Lovelace",
		Role:      domainauth.RoleStudent,
		Skills:    []string{},
		CreatedAt: time.Now(),
	}

	userRepo.EXPECT().
		Upsert(ctx, "user-1", "ada@example.com", "Ada Lovelace", domainauth.RoleStudent).
		Return(stored, nil).
		Times(1)

	ensured := service.EnsureUser(ctx, identity, domainauth.RoleStudent)

	assert.True(t, ensured.Persisted)
	assert.Equal(t, stored, ensured.User)
}

func TestAccountService_EnsureUser_StoreFailureFallsBack(t *testing.T) {
	t.Parallel()
	userRepo, service := newAccountService(t)

	ctx := context.Background()
	identity := domainauth.Identity{
		UserID:   "user-2",
		Email:    "grace@example.com",
		FullName: "Grace Hopper",
	}

	userRepo.EXPECT().
		Upsert(ctx, "user-2", "grace@example.com", "Grace Hopper", domainauth.RoleRecruiter).
		Return(nil, errors.New("connection refused")).
		Times(1)

	ensured := service.EnsureUser(ctx, identity, domainauth.RoleRecruiter)

	assert.False(t, ensured.Persisted)
	require.NotNil(t, ensured.User)
	assert.Equal(t, "user-2", ensured.User.ID)
	assert.Equal(t, "grace@example.com", ensured.User.Email)
	assert.Equal(t, domainauth.RoleRecruiter, ensured.User.Role)
}

func TestAccountService_GetProfile(t *testing.T) {
	t.Parallel()
	userRepo, service := newAccountService(t)

	ctx := context.Background()
	stored := &model.User{ID: "user-1", Email: "ada@example.com", Role: domainauth.RoleStudent}

	userRepo.EXPECT().
		GetByID(ctx, "user-1").
		Return(stored, nil).
		Times(1)

	user, err := service.GetProfile(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAccountService_UpdateProfile_Success(t *testing.T) {
	t.Parallel()
	userRepo, service := newAccountService(t)

	ctx := context.Background()
	req := model.UpdateProfileRequest{
		Bio:    stringPtr("Backend developer."),
		Skills: []string{"go", "postgres"},
	}
	updated := &model.User{
		ID:     "user-1",
		Bio:    stringPtr("Backend developer."),
		Skills: []string{"go", "postgres"},
	}

	userRepo.EXPECT().
		UpdateProfile(ctx, "user-1", req).
		Return(updated, nil).
		Times(1)

	user, err := service.UpdateProfile(ctx, "user-1", req)

	require.NoError(t, err)
	assert.Equal(t, updated, user)
}

func TestAccountService_UpdateProfile_EmptyRequest(t *testing.T) {
	t.Parallel()
	_, service := newAccountService(t)

	_, err := service.UpdateProfile(context.Background(), "user-1", model.UpdateProfileRequest{})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
