package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
	"github.com/internmatch/internmatch-api/internal/mocks"
	mockauth "github.com/internmatch/internmatch-api/internal/mocks/auth"
	"github.com/internmatch/internmatch-api/internal/ports"
)

type authFixture struct {
	provider *mockauth.MockIdentityProvider
	sessions *mockauth.MemorySessionStore
	users    *mocks.MockUserRepository
	service  *AuthService
}

// newAuthService wires a fake IdP and an in-memory session store around the
// service under test.
func newAuthService(t *testing.T) authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	provider := mockauth.NewMockIdentityProvider()
	sessions := mockauth.NewMemorySessionStore()
	users := mocks.NewMockUserRepository(ctrl)
	accounts := NewAccountService(AccountServiceOptions{Users: users})

	service := NewAuthService(AuthServiceOptions{
		Provider: provider,
		Sessions: sessions,
		Accounts: accounts,
	})

	return authFixture{provider: provider, sessions: sessions, users: users, service: service}
}

func storedUser(id, email string, role domainauth.Role) *model.User {
	return &model.User{
		ID:       id,
		Email:    email,
		FullName: "Mock User",
		Role:     role,
		Skills:   []string{},
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)

	ctx := context.Background()
	f.users.EXPECT().
		Upsert(ctx, "ada@example.com", "ada@example.com", "Ada Lovelace", domainauth.RoleRecruiter).
		Return(storedUser("ada@example.com", "ada@example.com", domainauth.RoleRecruiter), nil).
		Times(1)

	result, err := f.service.Signup(ctx, SignupInput{
		Email:    "Ada@Example.com",
		Password: "hunter2!",
		FullName: "Ada Lovelace",
		Role:     domainauth.RoleRecruiter,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Session.ID)
	assert.Equal(t, domainauth.RoleRecruiter, result.Session.Role)
	assert.Equal(t, "ada@example.com", result.Session.Email)
	assert.NotEmpty(t, result.Session.Token)
	assert.True(t, result.Session.ExpiresAt.After(time.Now()))
	assert.Equal(t, 1, f.sessions.Len())
}

func TestAuthService_Signup_InvalidInput(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)

	ctx := context.Background()
	cases := []struct {
		name  string
		input SignupInput
		field string
	}{
		{
			name:  "bad email",
			input: SignupInput{Email: "not-an-email", Password: "pw", Role: domainauth.RoleStudent},
			field: "email",
		},
		{
			name:  "empty password",
			input: SignupInput{Email: "a@example.com", Role: domainauth.RoleStudent},
			field: "password",
		},
		{
			name:  "admin not self-assignable",
			input: SignupInput{Email: "a@example.com", Password: "pw", Role: domainauth.RoleAdmin},
			field: "role",
		},
		{
			name:  "unknown role",
			input: SignupInput{Email: "a@example.com", Password: "pw", Role: "superuser"},
			field: "role",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.Signup(ctx, tc.input)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tc.field, apperrors.GetField(err))
		})
	}
	assert.Equal(t, 0, f.sessions.Len())
}

func TestAuthService_Signup_AccountExists(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)

	ctx := context.Background()
	f.provider.SignUpFunc = func(_ context.Context, _, _, _ string) (domainauth.Identity, error) {
		return domainauth.Identity{}, ports.ErrAccountExists
	}

	_, err := f.service.Signup(ctx, SignupInput{
		Email:    "taken@example.com",
		Password: "pw",
		Role:     domainauth.RoleStudent,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestAuthService_Login_StoredRoleWins(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)

	ctx := context.Background()
	// Login always passes student as the first-time default; the stored
	// profile's recruiter role must come back on the session.
	f.users.EXPECT().
		Upsert(ctx, "rec@example.com", "rec@example.com", "Mock User", domainauth.RoleStudent).
		Return(storedUser("rec@example.com", "rec@example.com", domainauth.RoleRecruiter), nil).
		Times(1)

	result, err := f.service.Login(ctx, "  Rec@Example.com ", "pw")

	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleRecruiter, result.Session.Role)
	assert.Equal(t, "rec@example.com", result.Session.UserID)
	assert.True(t, result.User.Persisted)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)

	f.provider.SignInFunc = func(_ context.Context, _, _ string) (domainauth.Identity, error) {
		return domainauth.Identity{}, ports.ErrInvalidCredentials
	}

	_, err := f.service.Login(context.Background(), "a@example.com", "wrong")

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, 0, f.sessions.Len())
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)

	_, err := f.service.Login(context.Background(), "", "pw")
	assert.True(t, apperrors.IsValidation(err))

	_, err = f.service.Login(context.Background(), "a@example.com", "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_GetSession(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)

	ctx := context.Background()
	f.users.EXPECT().
		Upsert(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(storedUser("s@example.com", "s@example.com", domainauth.RoleStudent), nil).
		Times(1)

	result, err := f.service.Login(ctx, "s@example.com", "pw")
	require.NoError(t, err)

	session, err := f.service.GetSession(ctx, result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Session.UserID, session.UserID)

	_, err = f.service.GetSession(ctx, "")
	assert.True(t, apperrors.IsUnauthorized(err))

	_, err = f.service.GetSession(ctx, "no-such-session")
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()
	f := newAuthService(t)

	ctx := context.Background()
	f.users.EXPECT().
		Upsert(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(storedUser("s@example.com", "s@example.com", domainauth.RoleStudent), nil).
		Times(1)

	result, err := f.service.Login(ctx, "s@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, 1, f.sessions.Len())

	require.NoError(t, f.service.Logout(ctx, result.Session.ID))
	assert.Equal(t, 0, f.sessions.Len())

	// Absent sessions log out cleanly.
	require.NoError(t, f.service.Logout(ctx, ""))
}
