package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/internmatch/internmatch-api/internal/errors"

	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/ports"
)

const defaultSessionTTL = 7 * 24 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider   ports.IdentityProvider
	Sessions   ports.SessionStore
	Accounts   *AccountService
	SessionTTL time.Duration
	Logger     *slog.Logger
}

// AuthService orchestrates credential flows: IdP sign-in/sign-up, user
// resolution, and server-side session persistence.
type AuthService struct {
	provider ports.IdentityProvider
	sessions ports.SessionStore
	accounts *AccountService
	ttl      time.Duration
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		provider: opts.Provider,
		sessions: opts.Sessions,
		accounts: opts.Accounts,
		ttl:      ttl,
		logger:   logger,
	}
}

// AuthResult contains the session and resolved profile after a successful
// credential flow.
type AuthResult struct {
	Session domainauth.Session
	User    EnsuredUser
}

// SignupInput groups parameters for Signup.
type SignupInput struct {
	Email    string
	Password string
	FullName string
	Role     domainauth.Role
}

// Signup registers a new account with the chosen role and establishes a
// session. Only student and recruiter are self-assignable; admin accounts are
// provisioned out of band.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.ValidationField("email", "a valid email address is required")
	}
	if input.Password == "" {
		return nil, apperrors.ValidationField("password", "password is required")
	}
	switch input.Role {
	case domainauth.RoleStudent, domainauth.RoleRecruiter:
	default:
		return nil, apperrors.ValidationField("role", "role must be student or recruiter")
	}

	identity, err := s.provider.SignUp(ctx, email, input.Password, strings.TrimSpace(input.FullName))
	if err != nil {
		if errors.Is(err, ports.ErrAccountExists) {
			return nil, apperrors.Conflict("An account with this email already exists.")
		}
		return nil, fmt.Errorf("provider sign up: %w", err)
	}

	return s.establish(ctx, identity, input.Role)
}

// Login authenticates credentials and establishes a session. The session role
// comes from the stored profile; a first-time login without a profile row
// defaults to student.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, apperrors.ValidationField("email", "email is required")
	}
	if password == "" {
		return nil, apperrors.ValidationField("password", "password is required")
	}

	identity, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, ports.ErrInvalidCredentials) {
			return nil, apperrors.Unauthorized("Invalid email or password.")
		}
		return nil, fmt.Errorf("provider sign in: %w", err)
	}

	return s.establish(ctx, identity, domainauth.RoleStudent)
}

// establish resolves the profile and persists a fresh session. The session
// carries the IdP token server-side; the client only ever sees the session id.
func (s *AuthService) establish(ctx context.Context, identity domainauth.Identity, role domainauth.Role) (*AuthResult, error) {
	ensured := s.accounts.EnsureUser(ctx, identity, role)

	session := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    ensured.User.ID,
		Token:     identity.Token,
		Email:     ensured.User.Email,
		FullName:  ensured.User.FullName,
		Role:      ensured.User.Role,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &AuthResult{Session: session, User: ensured}, nil
}

// GetSession retrieves a live session by ID. Missing or expired sessions map
// to unauthorized.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, apperrors.Unauthorized("Not signed in.")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "Session expired or not found.")
	}
	return &session, nil
}

// Logout removes a session. Logging out an absent session is a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
