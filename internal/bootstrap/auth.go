package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/internmatch/internmatch-api/config"
	"github.com/internmatch/internmatch-api/internal/adapters/devauth"
	"github.com/internmatch/internmatch-api/internal/adapters/idp"
	redisadapter "github.com/internmatch/internmatch-api/internal/adapters/redis"
	"github.com/internmatch/internmatch-api/internal/ports"
	"github.com/internmatch/internmatch-api/internal/service"
)

// AuthDeps groups dependencies for auth service construction.
type AuthDeps struct {
	Auth        config.AuthConfig
	IsDev       bool
	RedisClient redis.UniversalClient
	Accounts    *service.AccountService
	Logger      *slog.Logger
}

// BuildAuthService creates the auth service for the configured auth mode.
// Sessions always live in Redis so every instance sees the same session set.
func BuildAuthService(deps AuthDeps) (*service.AuthService, error) {
	if deps.RedisClient == nil {
		return nil, errors.New("auth service requires a redis client")
	}
	if deps.Accounts == nil {
		return nil, errors.New("auth service requires the account service")
	}

	provider, err := buildIdentityProvider(deps)
	if err != nil {
		return nil, err
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider:   provider,
		Sessions:   redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, "session:"),
		Accounts:   deps.Accounts,
		SessionTTL: deps.Auth.SessionTTL,
		Logger:     deps.Logger,
	}), nil
}

//nolint:ireturn // the caller only cares about the ports.IdentityProvider contract.
func buildIdentityProvider(deps AuthDeps) (ports.IdentityProvider, error) {
	switch deps.Auth.Mode {
	case config.AuthModeMock:
		if !deps.IsDev {
			return nil, errors.New("AUTH_MODE=mock is only allowed in development mode")
		}
		provider, err := devauth.NewProvider(devauth.Config{
			Email:    deps.Auth.DevAuth.Email,
			Password: deps.Auth.DevAuth.Password,
			Name:     deps.Auth.DevAuth.Name,
		})
		if err != nil {
			return nil, fmt.Errorf("create dev auth provider: %w", err)
		}
		if deps.Logger != nil {
			deps.Logger.Warn("using in-memory dev authentication", "seed_email", deps.Auth.DevAuth.Email)
		}
		return provider, nil

	case config.AuthModeOAuth:
		oauth := deps.Auth.OAuth
		provider, err := idp.NewProvider(idp.ProviderConfig{
			ClientID:        oauth.ClientID,
			ClientSecret:    oauth.ClientSecret,
			Scope:           oauth.Scope,
			IssuerURL:       oauth.IssuerURL,
			TokenURL:        oauth.TokenURL,
			RegistrationURL: oauth.RegistrationURL,
		})
		if err != nil {
			return nil, fmt.Errorf("create oidc provider: %w", err)
		}
		return provider, nil

	default:
		return nil, fmt.Errorf("unknown auth mode %q", deps.Auth.Mode)
	}
}
