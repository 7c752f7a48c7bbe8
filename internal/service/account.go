package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/internmatch/internmatch-api/internal/core"
	"github.com/internmatch/internmatch-api/internal/data"
	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
)

// AccountServiceOptions groups dependencies for AccountService.
type AccountServiceOptions struct {
	Users  core.UserRepository
	Logger *slog.Logger
}

// AccountService resolves identities to persisted user profiles.
type AccountService struct {
	users  core.UserRepository
	logger *slog.Logger
}

// NewAccountService constructs a new AccountService.
func NewAccountService(opts AccountServiceOptions) *AccountService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{users: opts.Users, logger: logger}
}

// EnsuredUser is the profile resolved for an authenticated identity.
// Persisted is false when the store was unreachable and the profile is an
// in-memory fallback built from the identity; the login still proceeds.
type EnsuredUser struct {
	User      *model.User
	Persisted bool
}

// EnsureUser upserts the identity into the users table. Existing rows keep
// their profile and role untouched, so the role argument only applies to
// first-time accounts. A store failure degrades to an unpersisted profile
// rather than failing the login.
func (s *AccountService) EnsureUser(ctx context.Context, identity domainauth.Identity, role domainauth.Role) EnsuredUser {
	user, err := s.users.Upsert(ctx, identity.UserID, identity.Email, identity.FullName, role)
	if err != nil {
		s.logger.Warn("user upsert failed, continuing with unpersisted profile",
			"user_id", identity.UserID, "error", err)
		return EnsuredUser{
			User: &model.User{
				ID:       identity.UserID,
				Email:    identity.Email,
				FullName: identity.FullName,
				Role:     role,
				Skills:   []string{},
			},
			Persisted: false,
		}
	}
	return EnsuredUser{User: user, Persisted: true}
}

// GetProfile retrieves the caller's persisted profile.
func (s *AccountService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.NotFound("Profile not found.")
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile updates the caller's own profile fields. Role is not among
// them; nothing in this path can change it.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	user, err := s.users.UpdateProfile(ctx, userID, req)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.NotFound("Profile not found.")
		}
		return nil, err
	}
	return user, nil
}
