package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses the configured OAuth/OIDC identity provider.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses in-memory dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC identity provider configuration.
// The provider must support the resource-owner password grant for
// email/password sign-in and expose a registration endpoint for sign-up.
type OAuthConfig struct {
	ClientID        string `env:"CLIENT_ID"     envDefault:"internmatch"`
	ClientSecret    string `env:"CLIENT_SECRET" envDefault:"internmatch"`
	Scope           string `env:"SCOPE"         envDefault:"openid profile email"`
	IssuerURL       string `env:"ISSUER_URL"`
	TokenURL        string `env:"TOKEN_URL"`
	RegistrationURL string `env:"REGISTRATION_URL"`
}

// DevAuthConfig controls in-memory dev authentication.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	Email    string `env:"EMAIL"    envDefault:"dev@internmatch.local"`
	Password string `env:"PASSWORD" envDefault:"devpass"`
	Name     string `env:"NAME"     envDefault:"Dev User"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which identity provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// SessionTTL is how long a server-side session remains valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 168 * time.Hour
	}
}
