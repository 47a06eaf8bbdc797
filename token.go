package voicenotes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/voicenotes/client-go/internal/api"
)

// defaultTokenTimeout bounds token issuance requests. The issuer uses its
// own transport with no retry policy: a delegated token request is cheap
// to reissue and the frontend is usually waiting on it.
const defaultTokenTimeout = 15 * time.Second

// defaultTokenScope is granted when no scopes are requested.
const defaultTokenScope = "voicenotes:read"

// TokenIssuer requests short-lived delegated JWTs for frontend identities.
// It is independent of Client and carries its own transport configuration.
type TokenIssuer struct {
	apiClient *api.Client
}

// tokenIssuerConfig holds configuration for the token issuer.
type tokenIssuerConfig struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// TokenIssuerOption configures the token issuer.
type TokenIssuerOption func(*tokenIssuerConfig)

// WithIssuerBaseURL overrides the base URL resolved from the credential prefix.
func WithIssuerBaseURL(url string) TokenIssuerOption {
	return func(c *tokenIssuerConfig) {
		c.baseURL = url
	}
}

// WithIssuerTimeout sets the issuance request timeout.
func WithIssuerTimeout(timeout time.Duration) TokenIssuerOption {
	return func(c *tokenIssuerConfig) {
		c.timeout = timeout
	}
}

// WithIssuerHTTPClient sets a custom HTTP client.
func WithIssuerHTTPClient(client *http.Client) TokenIssuerOption {
	return func(c *tokenIssuerConfig) {
		c.httpClient = client
	}
}

// NewTokenIssuer creates a token issuer from an API key and secret. The
// key prefix selects the environment, same as New.
func NewTokenIssuer(apiKey, apiSecret string, opts ...TokenIssuerOption) (*TokenIssuer, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if apiSecret == "" {
		return nil, ErrMissingAPISecret
	}

	cfg := &tokenIssuerConfig{
		baseURL: resolveBaseURL(apiKey),
		timeout: defaultTokenTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		APISecret:  apiSecret,
		HTTPClient: httpClient,
		Retry:      &api.RetryConfig{MaxRetries: 0},
	})
	if err != nil {
		return nil, err
	}

	return &TokenIssuer{apiClient: apiClient}, nil
}

// generateConfig holds per-request token parameters.
type generateConfig struct {
	expiresIn int
	scopes    []string
}

// GenerateOption configures a token request.
type GenerateOption func(*generateConfig)

// WithTokenTTL requests a specific token lifetime. The server may cap it.
func WithTokenTTL(ttl time.Duration) GenerateOption {
	return func(c *generateConfig) {
		c.expiresIn = int(ttl.Seconds())
	}
}

// WithTokenScopes requests specific capability scopes.
// Default: voicenotes:read.
func WithTokenScopes(scopes ...string) GenerateOption {
	return func(c *generateConfig) {
		c.scopes = scopes
	}
}

// Token is an issued delegated JWT.
type Token struct {
	// JWT is the signed token to hand to the frontend.
	JWT string
	// TokenType is the authorization scheme, normally "Bearer".
	TokenType string
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int
}

// Generate issues a delegated token for the given identity.
func (ti *TokenIssuer) Generate(ctx context.Context, identity string, opts ...GenerateOption) (*Token, error) {
	if identity == "" {
		return nil, &Error{
			Kind:    KindValidation,
			Message: "identity is required",
		}
	}

	cfg := &generateConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	scopes := cfg.scopes
	if len(scopes) == 0 {
		scopes = []string{defaultTokenScope}
	}

	dto, err := ti.apiClient.GenerateToken(ctx, api.GenerateTokenRequest{
		Identity:  identity,
		ExpiresIn: cfg.expiresIn,
		Scopes:    scopes,
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return &Token{
		JWT:       dto.JWTToken,
		TokenType: dto.TokenType,
		ExpiresIn: dto.ExpiresIn,
	}, nil
}

// Claims parses the token's claims without verifying the signature. The
// signing key lives server-side; this is for inspection only, never for
// trust decisions.
func (t *Token) Claims() (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(t.JWT, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}

// ExpiresAt returns the token's expiry from its exp claim.
func (t *Token) ExpiresAt() (time.Time, error) {
	claims, err := t.Claims()
	if err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token has no expiry claim")
	}
	return exp.Time, nil
}
