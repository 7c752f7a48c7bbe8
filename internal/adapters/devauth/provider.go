package devauth

// Package devauth provides an in-memory IdentityProvider for local development.
// Accounts registered through SignUp live only for the process lifetime.

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/ports"
)

// ErrInvalidCredentials aliases the shared ports sentinel.
var ErrInvalidCredentials = ports.ErrInvalidCredentials

// ErrAccountExists aliases the shared ports sentinel.
var ErrAccountExists = ports.ErrAccountExists

// Config seeds the provider with one initial account.
type Config struct {
	Email         string
	Password      string
	Name          string
	TokenDuration time.Duration // default 8h when zero
}

type account struct {
	id           string
	passwordHash [32]byte
	fullName     string
}

// Provider implements ports.IdentityProvider with an in-memory credential map.
type Provider struct {
	mu            sync.Mutex
	accounts      map[string]*account // keyed by lowercased email
	tokenDuration time.Duration
}

// NewProvider constructs a dev auth provider, seeding the configured account
// when one is given.
func NewProvider(cfg Config) (*Provider, error) {
	dur := cfg.TokenDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	p := &Provider{
		accounts:      make(map[string]*account),
		tokenDuration: dur,
	}
	if cfg.Email != "" {
		if cfg.Password == "" {
			return nil, errors.New("dev auth: seed account requires a password")
		}
		p.accounts[strings.ToLower(cfg.Email)] = &account{
			id:           "dev-" + uuid.NewString(),
			passwordHash: sha256.Sum256([]byte(cfg.Password)),
			fullName:     cfg.Name,
		}
	}
	return p, nil
}

// SignIn checks the credential map and returns a freshly minted identity.
func (p *Provider) SignIn(_ context.Context, email, password string) (domainauth.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	acct, ok := p.accounts[strings.ToLower(email)]
	if !ok {
		return domainauth.Identity{}, ErrInvalidCredentials
	}
	hash := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(hash[:], acct.passwordHash[:]) != 1 {
		return domainauth.Identity{}, ErrInvalidCredentials
	}
	return p.identityFor(email, acct), nil
}

// SignUp registers a new in-memory account and signs it in.
func (p *Provider) SignUp(_ context.Context, email, password, fullName string) (domainauth.Identity, error) {
	if strings.TrimSpace(email) == "" {
		return domainauth.Identity{}, errors.New("dev auth: email is required")
	}
	if password == "" {
		return domainauth.Identity{}, errors.New("dev auth: password is required")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := p.accounts[key]; ok {
		return domainauth.Identity{}, ErrAccountExists
	}
	acct := &account{
		id:           "dev-" + uuid.NewString(),
		passwordHash: sha256.Sum256([]byte(password)),
		fullName:     fullName,
	}
	p.accounts[key] = acct
	return p.identityFor(email, acct), nil
}

func (p *Provider) identityFor(email string, acct *account) domainauth.Identity {
	return domainauth.Identity{
		UserID:    acct.id,
		Email:     strings.ToLower(email),
		FullName:  acct.fullName,
		Token:     "dev-token-" + uuid.NewString(),
		ExpiresAt: time.Now().Add(p.tokenDuration),
	}
}
