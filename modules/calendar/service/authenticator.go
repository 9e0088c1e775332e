package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"timeslotfinder/core/logger"
)

// graphScopes are the delegated permissions needed for free/busy lookups
var graphScopes = []string{"Calendars.Read", "Calendars.Read.Shared", "offline_access"}

// GraphAuthenticator acquires Graph access tokens via the OAuth2 device
// code flow and caches the token on disk, so interactive sign-in happens
// once per refresh-token lifetime.
type GraphAuthenticator struct {
	config    *oauth2.Config
	cacheFile string

	mu    sync.Mutex
	token *oauth2.Token
}

func NewGraphAuthenticator(clientID, tenantID, cacheFile string) *GraphAuthenticator {
	if cacheFile == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cacheFile = filepath.Join(home, ".timeslotfinder_token_cache.json")
		} else {
			cacheFile = ".timeslotfinder_token_cache.json"
		}
	}

	return &GraphAuthenticator{
		config: &oauth2.Config{
			ClientID: clientID,
			Endpoint: microsoft.AzureADEndpoint(tenantID),
			Scopes:   graphScopes,
		},
		cacheFile: cacheFile,
	}
}

// AccessToken returns a valid access token, refreshing or running the
// device code flow as needed.
func (a *GraphAuthenticator) AccessToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token == nil {
		a.token = a.loadCache()
	}

	if a.token != nil {
		// TokenSource refreshes silently when the access token expired
		// but a refresh token is present.
		refreshed, err := a.config.TokenSource(ctx, a.token).Token()
		if err == nil {
			if refreshed.AccessToken != a.token.AccessToken {
				a.token = refreshed
				a.saveCache(refreshed)
			}
			return refreshed.AccessToken, nil
		}
		logger.Warn("GraphAuthenticator:RefreshFailed", "error", err)
	}

	token, err := a.deviceCodeFlow(ctx)
	if err != nil {
		return "", err
	}

	a.token = token
	a.saveCache(token)
	return token.AccessToken, nil
}

// ClearCache drops the cached token, forcing a fresh sign-in
func (a *GraphAuthenticator) ClearCache() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.token = nil
	if err := os.Remove(a.cacheFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// deviceCodeFlow walks the user through the device code sign-in
func (a *GraphAuthenticator) deviceCodeFlow(ctx context.Context) (*oauth2.Token, error) {
	deviceAuth, err := a.config.DeviceAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("request device code: %w", err)
	}

	// The verification instructions must reach the operator, not a log
	// collector, so they go to stdout as well.
	fmt.Printf("\nTo sign in, visit %s and enter the code %s\n\n",
		deviceAuth.VerificationURI, deviceAuth.UserCode)
	logger.Info("GraphAuthenticator:DeviceCodeIssued",
		"verification_uri", deviceAuth.VerificationURI,
		"expires_in", time.Until(deviceAuth.Expiry).Round(time.Second),
	)

	token, err := a.config.DeviceAccessToken(ctx, deviceAuth)
	if err != nil {
		return nil, fmt.Errorf("device code exchange: %w", err)
	}
	return token, nil
}

func (a *GraphAuthenticator) loadCache() *oauth2.Token {
	raw, err := os.ReadFile(a.cacheFile)
	if err != nil {
		return nil
	}

	var token oauth2.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		logger.Warn("GraphAuthenticator:InvalidTokenCache", "file", a.cacheFile, "error", err)
		return nil
	}
	return &token
}

func (a *GraphAuthenticator) saveCache(token *oauth2.Token) {
	raw, err := json.Marshal(token)
	if err != nil {
		return
	}
	// Owner-only: the file holds a refresh token.
	if err := os.WriteFile(a.cacheFile, raw, 0o600); err != nil {
		logger.Warn("GraphAuthenticator:SaveTokenCacheFailed", "file", a.cacheFile, "error", err)
	}
}
