package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityProvider = (*MockIdentityProvider)(nil)
	_ ports.SessionStore     = (*MemorySessionStore)(nil)
)

// MockIdentityProvider simulates an IdP for tests with deterministic
// identities keyed by email.
type MockIdentityProvider struct {
	SignInFunc func(ctx context.Context, email, password string) (domainauth.Identity, error)
	SignUpFunc func(ctx context.Context, email, password, fullName string) (domainauth.Identity, error)

	// Deterministic values for predictable testing
	DefaultName string
	TokenPrefix string

	registered map[string]string
	signIns    int
}

// NewMockIdentityProvider creates a MockIdentityProvider with sensible defaults.
func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{
		DefaultName: "Mock User",
		TokenPrefix: "mock-token",
		registered:  make(map[string]string),
	}
}

// SignIn returns a deterministic identity for the email. The user ID is the
// lowercased email so repeated sign-ins map to the same account.
func (m *MockIdentityProvider) SignIn(ctx context.Context, email, password string) (domainauth.Identity, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	if email == "" || password == "" {
		return domainauth.Identity{}, errors.New("invalid credentials")
	}

	m.signIns++
	fullName := m.DefaultName
	if m.registered != nil {
		if name, ok := m.registered[strings.ToLower(email)]; ok {
			fullName = name
		}
	}
	return domainauth.Identity{
		UserID:    strings.ToLower(email),
		Email:     strings.ToLower(email),
		FullName:  fullName,
		Token:     fmt.Sprintf("%s-%d", m.TokenPrefix, m.signIns),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

// SignUp records the account name and returns a signed-in identity.
func (m *MockIdentityProvider) SignUp(ctx context.Context, email, password, fullName string) (domainauth.Identity, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, email, password, fullName)
	}
	if email == "" || password == "" {
		return domainauth.Identity{}, errors.New("email and password are required")
	}
	if m.registered == nil {
		m.registered = make(map[string]string)
	}
	key := strings.ToLower(email)
	if _, exists := m.registered[key]; exists {
		return domainauth.Identity{}, ErrAccountExists
	}
	m.registered[key] = fullName
	return m.SignIn(ctx, email, password)
}

// ErrAccountExists aliases the shared ports sentinel.
var ErrAccountExists = ports.ErrAccountExists

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	delete(m.sessions, id)
	return nil
}

// Len reports the number of stored sessions.
func (m *MemorySessionStore) Len() int { return len(m.sessions) }

// ErrNotFound is returned by mocks when an entity is not present.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

var ErrNotFound error = notFoundError{}
