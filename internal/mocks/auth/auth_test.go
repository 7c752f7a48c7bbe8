package auth

import (
	"context"
	"testing"

	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockIdentityProvider_SignIn_Defaults(t *testing.T) {
	provider := NewMockIdentityProvider()
	ctx := context.Background()

	identity, err := provider.SignIn(ctx, "Alex@Example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", identity.UserID)
	assert.Equal(t, "alex@example.com", identity.Email)
	assert.Equal(t, "Mock User", identity.FullName)
	assert.Equal(t, "mock-token-1", identity.Token)

	// second sign-in mints a fresh token for the same account
	identity2, err := provider.SignIn(ctx, "alex@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, identity2.UserID)
	assert.Equal(t, "mock-token-2", identity2.Token)
}

func TestMockIdentityProvider_SignIn_EmptyCredentials(t *testing.T) {
	provider := NewMockIdentityProvider()

	_, err := provider.SignIn(context.Background(), "", "pw")
	require.Error(t, err)

	_, err = provider.SignIn(context.Background(), "a@b.com", "")
	require.Error(t, err)
}

func TestMockIdentityProvider_SignUp(t *testing.T) {
	provider := NewMockIdentityProvider()
	ctx := context.Background()

	identity, err := provider.SignUp(ctx, "new@example.com", "pw", "New Person")
	require.NoError(t, err)
	assert.Equal(t, "New Person", identity.FullName)

	_, err = provider.SignUp(ctx, "New@Example.com", "pw", "Again")
	require.ErrorIs(t, err, ErrAccountExists)
}

func TestMockIdentityProvider_CustomFuncs(t *testing.T) {
	provider := &MockIdentityProvider{
		SignInFunc: func(_ context.Context, _, _ string) (domainauth.Identity, error) {
			return domainauth.Identity{UserID: "custom"}, nil
		},
	}

	identity, err := provider.SignIn(context.Background(), "x", "y")
	require.NoError(t, err)
	assert.Equal(t, "custom", identity.UserID)
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.Session{ID: "s1", UserID: "u1", Role: domainauth.RoleStudent}
	require.NoError(t, store.Save(ctx, sess))
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	_, err = store.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, sess))
	require.Error(t, store.Save(ctx, domainauth.Session{}))
}
