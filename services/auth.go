package services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"comment_monitor/config"
)

// NewAuthenticator builds the authenticator selected by auth.mode.
func NewAuthenticator(cfg *config.Config) (Authenticator, error) {
	switch strings.ToLower(cfg.Auth.Mode) {
	case "", "static":
		return NewStaticAuthenticator(cfg.Auth.StaticTokens), nil
	case "remote":
		if cfg.Auth.UserURL == "" {
			return nil, fmt.Errorf("auth.user_url is required in remote mode")
		}
		client := &http.Client{Timeout: time.Duration(cfg.Auth.TimeoutSec) * time.Second}
		return NewRemoteAuthenticator(cfg.Auth.UserURL, cfg.Auth.APIKey, client), nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
}

// StaticAuthenticator maps fixed bearer tokens to owner ids.
type StaticAuthenticator struct {
	tokens map[string]string
}

func NewStaticAuthenticator(tokens map[string]string) *StaticAuthenticator {
	copied := make(map[string]string, len(tokens))
	for k, v := range tokens {
		copied[k] = v
	}
	return &StaticAuthenticator{tokens: copied}
}

func (a *StaticAuthenticator) Authenticate(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	for known, owner := range a.tokens {
		if subtle.ConstantTimeCompare([]byte(known), []byte(token)) == 1 && owner != "" {
			return owner, nil
		}
	}
	return "", ErrUnauthorized
}

// RemoteAuthenticator asks an identity provider who owns the token by
// calling its user endpoint with the caller's bearer token.
type RemoteAuthenticator struct {
	userURL string
	apiKey  string
	client  *http.Client
}

func NewRemoteAuthenticator(userURL, apiKey string, client *http.Client) *RemoteAuthenticator {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &RemoteAuthenticator{userURL: userURL, apiKey: apiKey, client: client}
}

func (a *RemoteAuthenticator) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.userURL, nil)
	if err != nil {
		return "", fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if a.apiKey != "" {
		req.Header.Set("apikey", a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("identity provider: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", fmt.Errorf("identity provider: unexpected status %d", resp.StatusCode)
	}

	var user struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&user); err != nil {
		return "", fmt.Errorf("identity provider: decode user: %w", err)
	}
	if strings.TrimSpace(user.ID) == "" {
		return "", ErrUnauthorized
	}
	return user.ID, nil
}
