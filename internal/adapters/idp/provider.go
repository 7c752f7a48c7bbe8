package idp

// Package idp authenticates email/password credentials against an OIDC
// provider using the resource-owner password grant, and registers new
// accounts through the provider's registration endpoint.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/ports"
)

// Provider implements ports.IdentityProvider against an OIDC/OAuth2 IdP.
type Provider struct {
	config          *oauth2.Config
	registrationURL string
	httpClient      *http.Client

	verifier *gooidc.IDTokenVerifier
}

// ProviderConfig holds configuration for the identity provider adapter.
// IssuerURL enables discovery and ID-token verification; TokenURL may be set
// explicitly for providers without a discovery document.
type ProviderConfig struct {
	ClientID        string
	ClientSecret    string
	Scope           string
	IssuerURL       string
	TokenURL        string
	RegistrationURL string
	HTTPClient      *http.Client // Optional, defaults to a 30s-timeout client
}

// NewProvider creates a new identity provider adapter.
func NewProvider(config ProviderConfig) (*Provider, error) {
	if config.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if config.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if config.IssuerURL == "" && config.TokenURL == "" {
		return nil, errors.New("issuer URL or token URL is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	p := &Provider{
		registrationURL: config.RegistrationURL,
		httpClient:      httpClient,
	}

	endpoint := oauth2.Endpoint{TokenURL: config.TokenURL}
	if config.IssuerURL != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		issuer := strings.TrimSuffix(config.IssuerURL, "/")
		op, err := gooidc.NewProvider(ctx, issuer)
		if err != nil {
			return nil, fmt.Errorf("oidc new provider: %w", err)
		}
		p.verifier = op.Verifier(&gooidc.Config{ClientID: config.ClientID})
		endpoint = op.Endpoint()
		if config.TokenURL != "" {
			endpoint.TokenURL = config.TokenURL
		}
	}

	p.config = &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Scopes:       strings.Fields(config.Scope),
		Endpoint:     endpoint,
	}

	return p, nil
}

// SignIn exchanges credentials for tokens via the password grant and maps the
// provider claims into a domain identity.
func (p *Provider) SignIn(ctx context.Context, email, password string) (domainauth.Identity, error) {
	if email == "" {
		return domainauth.Identity{}, errors.New("email is required")
	}
	if password == "" {
		return domainauth.Identity{}, errors.New("password is required")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	token, err := p.config.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) &&
			(retrieveErr.Response.StatusCode == http.StatusBadRequest ||
				retrieveErr.Response.StatusCode == http.StatusUnauthorized) {
			return domainauth.Identity{}, ports.ErrInvalidCredentials
		}
		return domainauth.Identity{}, fmt.Errorf("password grant: %w", err)
	}

	return p.identityFromToken(ctx, token, email)
}

// SignUp registers a new account at the provider's registration endpoint and
// then signs it in to obtain tokens.
func (p *Provider) SignUp(ctx context.Context, email, password, fullName string) (domainauth.Identity, error) {
	if p.registrationURL == "" {
		return domainauth.Identity{}, errors.New("registration endpoint not configured")
	}
	if email == "" {
		return domainauth.Identity{}, errors.New("email is required")
	}
	if password == "" {
		return domainauth.Identity{}, errors.New("password is required")
	}

	body, err := json.Marshal(map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
	})
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("marshal registration: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.registrationURL, bytes.NewReader(body))
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("build registration request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(p.config.ClientID, p.config.ClientSecret)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("registration request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return domainauth.Identity{}, ErrAccountExists
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domainauth.Identity{}, fmt.Errorf("registration failed: status %d: %s", resp.StatusCode, snippet)
	}

	id, err := p.SignIn(ctx, email, password)
	if err != nil {
		return domainauth.Identity{}, err
	}
	if fullName != "" {
		id.FullName = fullName
	}
	return id, nil
}

// ErrAccountExists aliases the shared ports sentinel so callers can branch
// without importing this package.
var ErrAccountExists = ports.ErrAccountExists

// identityFromToken builds an Identity from a token response, preferring
// verified ID-token claims when a verifier is available.
func (p *Provider) identityFromToken(ctx context.Context, tok *oauth2.Token, email string) (domainauth.Identity, error) {
	id := domainauth.Identity{
		Email: email,
		Token: tok.AccessToken,
	}
	id.ExpiresAt = time.Now().Add(time.Hour)
	if !tok.Expiry.IsZero() {
		id.ExpiresAt = tok.Expiry
	}

	rawID, ok := tok.Extra("id_token").(string)
	if p.verifier != nil && ok && rawID != "" {
		idTok, err := p.verifier.Verify(ctx, rawID)
		if err != nil {
			return domainauth.Identity{}, fmt.Errorf("verify id_token: %w", err)
		}
		var claims idTokenClaims
		if claimsErr := idTok.Claims(&claims); claimsErr != nil {
			return domainauth.Identity{}, fmt.Errorf("parse id_token claims: %w", claimsErr)
		}
		id.UserID = claims.Sub
		id.FullName = claims.Name
		if claims.Email != "" {
			id.Email = claims.Email
		}
	}

	if id.UserID == "" {
		// No verifiable subject claim; fall back to the email as the stable id.
		id.UserID = strings.ToLower(email)
	}

	return id, nil
}

type idTokenClaims struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
