package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"codeberg.org/taskboard/server/internal/authprovider"
	"codeberg.org/taskboard/server/taskboard/users"
)

// creates an identity context talking to the given provider and API
func New(provider Provider, apiURL string) *Context {
	return &Context{
		provider:    provider,
		apiURL:      apiURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		subscribers: make(map[int]func(Event)),
	}
}

// overrides the HTTP client used for API calls, used by tests
func (c *Context) WithHTTPClient(hc *http.Client) *Context {
	c.httpClient = hc
	return c
}

// registers a callback for identity-change events and returns an
// unsubscribe function. Callbacks run after state is fully applied,
// outside the context's lock.
func (c *Context) Subscribe(fn func(Event)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subscribers, id)
	}
}

// returns the current user, or nil when signed out
func (c *Context) CurrentUser() *users.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.user
}

// returns the current access token, or empty when signed out
func (c *Context) AccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return ""
	}

	return c.session.AccessToken
}

// reports whether an auth operation is in flight
func (c *Context) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loading
}

// SignUp registers new credentials with the provider and creates the
// matching application user record. If the record creation fails, the
// fresh session is signed back out so no provider identity is left
// stranded without an application profile.
func (c *Context) SignUp(ctx context.Context, email, password string) error {
	c.setLoading(true)
	defer c.setLoading(false)

	session, err := c.provider.SignUp(ctx, email, password)
	if err != nil {
		return fmt.Errorf("provider sign-up failed: %w", err)
	}

	user, err := c.createUserRecord(ctx, session.AccessToken, session.User.ID, session.User.Email)
	if err != nil {
		// roll back: a provider identity with no application profile
		// would strand the account
		if signOutErr := c.provider.SignOut(ctx, session.AccessToken); signOutErr != nil {
			err = fmt.Errorf("%w (rollback sign-out also failed: %v)", err, signOutErr)
		}

		return fmt.Errorf("failed to create user record: %w", err)
	}

	c.applySession(session, user)
	c.emit(EventSessionEstablished)
	c.emit(EventSignedIn)

	return nil
}

// SignIn exchanges credentials for a session and loads the profile.
// The profile fetch happens only after both identity and credential
// are held, so subscribers observe a consistent state.
func (c *Context) SignIn(ctx context.Context, email, password string) error {
	c.setLoading(true)
	defer c.setLoading(false)

	session, err := c.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return fmt.Errorf("provider sign-in failed: %w", err)
	}

	user, err := c.fetchProfile(ctx, session.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	c.applySession(session, user)
	c.emit(EventSignedIn)

	return nil
}

// SignOut revokes the session with the provider and clears held state.
// Local state is cleared even when the provider call fails.
func (c *Context) SignOut(ctx context.Context) error {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()

	if session == nil {
		return ErrNoSession
	}

	err := c.provider.SignOut(ctx, session.AccessToken)

	c.mu.Lock()
	c.session = nil
	c.user = nil
	c.mu.Unlock()

	c.emit(EventSessionCleared)

	return err
}

// Refresh exchanges the held refresh token for a fresh session
func (c *Context) Refresh(ctx context.Context) error {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()

	if session == nil {
		return ErrNoSession
	}

	refreshed, err := c.provider.RefreshSession(ctx, session.RefreshToken)
	if err != nil {
		return fmt.Errorf("session refresh failed: %w", err)
	}

	c.mu.Lock()
	c.session = refreshed
	c.mu.Unlock()

	c.emit(EventSessionEstablished)

	return nil
}

// UpdateName changes the signed-in user's display name
func (c *Context) UpdateName(ctx context.Context, name string) error {
	token := c.AccessToken()
	if token == "" {
		return ErrNoSession
	}

	var updated users.User

	err := c.doJSON(ctx, http.MethodPut, "/api/profile", token, map[string]string{"name": name}, &updated)
	if err != nil {
		return fmt.Errorf("failed to update name: %w", err)
	}

	c.mu.Lock()
	c.user = &updated
	c.mu.Unlock()

	return nil
}

// applies a new session and user atomically
func (c *Context) applySession(session *authprovider.Session, user *users.User) {
	c.mu.Lock()
	c.session = session
	c.user = user
	c.mu.Unlock()
}

func (c *Context) setLoading(loading bool) {
	c.mu.Lock()
	c.loading = loading
	c.mu.Unlock()
}

// delivers an event to a snapshot of subscribers, outside the lock
func (c *Context) emit(event Event) {
	c.mu.Lock()
	callbacks := make([]func(Event), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		callbacks = append(callbacks, fn)
	}
	c.mu.Unlock()

	for _, fn := range callbacks {
		fn(event)
	}
}

// completes sign-up by creating the application user record keyed by
// the provider subject id
func (c *Context) createUserRecord(ctx context.Context, token, id, email string) (*users.User, error) {
	var user users.User

	err := c.doJSON(ctx, http.MethodPost, "/api/users", token, map[string]string{"id": id, "email": email}, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Context) fetchProfile(ctx context.Context, token string) (*users.User, error) {
	var user users.User

	err := c.doJSON(ctx, http.MethodGet, "/api/profile", token, nil, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// issues an authenticated JSON API request and decodes the response
func (c *Context) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body cleanup

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<14)) //nolint:errcheck // best-effort error body
		return fmt.Errorf("api request failed: status %d: %s", resp.StatusCode, string(payload))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode api response: %w", err)
	}

	return nil
}
