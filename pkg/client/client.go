// Package client is a Go client for the MamaCare API. It keeps the
// issued session token and a mirror of the last-known profile in a
// local cache so the dashboard can render without a round trip.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nigelkyalo/mamacare-backend/internal/dto"
	"github.com/nigelkyalo/mamacare-backend/internal/models"
	"github.com/nigelkyalo/mamacare-backend/internal/pregnancy"
)

var (
	ErrNoSession    = errors.New("not logged in")
	ErrUnauthorized = errors.New("session is invalid or expired")
	ErrNoProfile    = errors.New("no pregnancy profile found")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *Cache
}

func New(baseURL string, cache *Cache) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      cache,
	}
}

// SignUp creates an account and persists the issued session locally.
func (c *Client) SignUp(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.post(ctx, "/api/auth/signup", "", req, &resp); err != nil {
		return nil, err
	}
	if err := c.cache.Save(&Session{Token: resp.Token, User: resp.User}); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &resp, nil
}

// Login authenticates and persists the issued session locally.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := c.post(ctx, "/api/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	if err := c.cache.Save(&Session{Token: resp.Token, User: resp.User}); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &resp, nil
}

// Logout wipes the local session. Tokens are not revocable server-side;
// forgetting the credential is the whole operation.
func (c *Client) Logout() error {
	return c.cache.Clear()
}

// Session returns the locally stored session, or ErrNoSession.
func (c *Client) Session() (*Session, error) {
	s, err := c.cache.Load()
	if err != nil {
		return nil, err
	}
	if s == nil || s.Token == "" {
		return nil, ErrNoSession
	}
	return s, nil
}

// Profile returns the pregnancy profile. With refresh false the local
// mirror is served when present; the server copy stays authoritative
// and a refresh overwrites the mirror.
func (c *Client) Profile(ctx context.Context, refresh bool) (*models.PregnancyProfile, error) {
	session, err := c.Session()
	if err != nil {
		return nil, err
	}

	if !refresh && session.Profile != nil {
		return session.Profile, nil
	}

	var resp dto.ProfileResponse
	if err := c.get(ctx, "/api/pregnancy-profile", session.Token, &resp); err != nil {
		return nil, err
	}

	session.Profile = resp.Data
	if err := c.cache.Save(session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return resp.Data, nil
}

// SaveProfile submits the full profile shape and updates the mirror.
func (c *Client) SaveProfile(ctx context.Context, req dto.ProfileRequest) (*models.PregnancyProfile, error) {
	session, err := c.Session()
	if err != nil {
		return nil, err
	}

	var resp dto.ProfileResponse
	if err := c.post(ctx, "/api/pregnancy-profile", session.Token, req, &resp); err != nil {
		return nil, err
	}

	session.Profile = resp.Data
	if err := c.cache.Save(session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return resp.Data, nil
}

// Progress derives gestational progress from the mirrored profile
// without a round trip.
func (c *Client) Progress(now time.Time) (pregnancy.Progress, error) {
	session, err := c.Session()
	if err != nil {
		return pregnancy.Progress{}, err
	}
	if session.Profile == nil {
		return pregnancy.Progress{}, ErrNoProfile
	}
	return pregnancy.FromProfile(now, session.Profile)
}

func (c *Client) get(ctx context.Context, path, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, token, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, token, out)
}

func (c *Client) do(req *http.Request, token string, out interface{}) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNoProfile
	case resp.StatusCode >= 400:
		var apiErr dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
