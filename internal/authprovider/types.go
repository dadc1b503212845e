package authprovider

import (
	"fmt"
	"net/http"
	"time"
)

// Client talks to the hosted auth service. The service owns password
// storage and token issuance; this process only forwards credentials
// and holds the resulting session transiently.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// represents an issued credential pair with its expiry
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// the provider's own user record; its ID is the token subject
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// reports whether the session expires within the given window
func (s *Session) ExpiresWithin(window time.Duration) bool {
	return time.Now().Add(window).Unix() >= s.ExpiresAt
}

// error body returned by the auth service on non-2xx responses
type ProviderError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error_code,omitempty"`
	Message    string `json:"msg,omitempty"`
	// some endpoints use these field names instead
	ErrorField  string `json:"error,omitempty"`
	Description string `json:"error_description,omitempty"`
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Description
	}

	if msg == "" {
		msg = e.ErrorField
	}

	if msg == "" {
		msg = "auth provider request failed"
	}

	return fmt.Sprintf("auth provider: %s (status %d)", msg, e.StatusCode)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
