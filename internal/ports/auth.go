package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
)

// Sentinel errors shared by identity provider implementations so callers can
// branch without depending on a concrete adapter.
var (
	// ErrInvalidCredentials is returned by SignIn when the email/password
	// pair is rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountExists is returned by SignUp when the email is already
	// registered.
	ErrAccountExists = errors.New("account already exists")
)

// IdentityProvider authenticates credentials against an IdP and registers
// new accounts. The returned Identity carries the provider token opaquely;
// nothing downstream inspects it.
type IdentityProvider interface {
	// SignIn exchanges email/password credentials for an authenticated identity.
	SignIn(ctx context.Context, email, password string) (domainauth.Identity, error)

	// SignUp registers a new account and returns its authenticated identity.
	SignUp(ctx context.Context, email, password, fullName string) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
