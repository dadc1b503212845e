package authprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// shared HTTP client for auth service calls
var defaultHTTPClient = &http.Client{
	Timeout: 10 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// creates a client for the hosted auth service
func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		anonKey:    anonKey,
		httpClient: defaultHTTPClient,
	}
}

// overrides the HTTP client, used by tests
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// registers new credentials with the provider and returns the initial session
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return c.postSession(ctx, "/auth/v1/signup", credentialsRequest{Email: email, Password: password}, "")
}

// exchanges email/password for a session
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	return c.postSession(ctx, "/auth/v1/token?grant_type=password", credentialsRequest{Email: email, Password: password}, "")
}

// exchanges a refresh token for a fresh session
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	return c.postSession(ctx, "/auth/v1/token?grant_type=refresh_token", refreshRequest{RefreshToken: refreshToken}, "")
}

// revokes the session behind the given access token
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := c.newRequest(ctx, "/auth/v1/logout", nil, accessToken)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth provider request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body cleanup

	if resp.StatusCode >= 300 {
		return decodeProviderError(resp)
	}

	return nil
}

func (c *Client) postSession(ctx context.Context, path string, body any, accessToken string) (*Session, error) {
	req, err := c.newRequest(ctx, path, body, accessToken)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth provider request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body cleanup

	if resp.StatusCode >= 300 {
		return nil, decodeProviderError(resp)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode auth provider response: %w", err)
	}

	// some provider versions omit expires_at and send only expires_in
	if session.ExpiresAt == 0 && session.ExpiresIn > 0 {
		session.ExpiresAt = time.Now().Unix() + int64(session.ExpiresIn)
	}

	return &session, nil
}

func (c *Client) newRequest(ctx context.Context, path string, body any, accessToken string) (*http.Request, error) {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)

	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}

	return req, nil
}

func decodeProviderError(resp *http.Response) error {
	provErr := &ProviderError{StatusCode: resp.StatusCode}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		_ = json.Unmarshal(payload, provErr) // fall back to status-only error on bad bodies
	}

	return provErr
}
