package authprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, "test-anon-key").WithHTTPClient(server.Client())

	return client, server
}

func TestSignInWithPassword_Success(t *testing.T) {
	var gotPath, gotAPIKey, gotAuth string
	var gotBody credentialsRequest

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(Session{ //nolint:errcheck // test response
			AccessToken:  "access-123",
			TokenType:    "bearer",
			ExpiresIn:    3600,
			ExpiresAt:    time.Now().Add(time.Hour).Unix(),
			RefreshToken: "refresh-123",
			User:         User{ID: "user-1", Email: "a@b.com"},
		})
	})
	defer server.Close()

	session, err := client.SignInWithPassword(context.Background(), "a@b.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "/auth/v1/token?grant_type=password", gotPath)
	assert.Equal(t, "test-anon-key", gotAPIKey)
	assert.Equal(t, "Bearer test-anon-key", gotAuth)
	assert.Equal(t, credentialsRequest{Email: "a@b.com", Password: "hunter2"}, gotBody)
	assert.Equal(t, "access-123", session.AccessToken)
	assert.Equal(t, "user-1", session.User.ID)
}

func TestSignInWithPassword_ExpiresAtFallback(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		// expires_at omitted, only expires_in sent
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck // test response
			"access_token":  "access-123",
			"expires_in":    3600,
			"refresh_token": "refresh-123",
		})
	})
	defer server.Close()

	before := time.Now().Unix()
	session, err := client.SignInWithPassword(context.Background(), "a@b.com", "hunter2")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, session.ExpiresAt, before+3600)
	assert.LessOrEqual(t, session.ExpiresAt, time.Now().Unix()+3600)
}

func TestSignInWithPassword_InvalidCredentials(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck // test response
			"error":             "invalid_grant",
			"error_description": "Invalid login credentials",
		})
	})
	defer server.Close()

	_, err := client.SignInWithPassword(context.Background(), "a@b.com", "wrong")

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusBadRequest, provErr.StatusCode)
	assert.Contains(t, provErr.Error(), "Invalid login credentials")
}

func TestSignUp_Path(t *testing.T) {
	var gotPath string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(Session{AccessToken: "t", ExpiresAt: time.Now().Add(time.Hour).Unix()}) //nolint:errcheck // test response
	})
	defer server.Close()

	_, err := client.SignUp(context.Background(), "a@b.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "/auth/v1/signup", gotPath)
}

func TestRefreshSession_SendsRefreshToken(t *testing.T) {
	var gotQuery string
	var gotBody refreshRequest

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(Session{AccessToken: "fresh", ExpiresAt: time.Now().Add(time.Hour).Unix()}) //nolint:errcheck // test response
	})
	defer server.Close()

	session, err := client.RefreshSession(context.Background(), "refresh-123")

	require.NoError(t, err)
	assert.Equal(t, "grant_type=refresh_token", gotQuery)
	assert.Equal(t, "refresh-123", gotBody.RefreshToken)
	assert.Equal(t, "fresh", session.AccessToken)
}

func TestSignOut_SendsAccessToken(t *testing.T) {
	var gotAuth string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	err := client.SignOut(context.Background(), "access-123")

	require.NoError(t, err)
	assert.Equal(t, "Bearer access-123", gotAuth)
}

func TestSignOut_ProviderError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"msg": "invalid token"}) //nolint:errcheck // test response
	})
	defer server.Close()

	err := client.SignOut(context.Background(), "expired")

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusUnauthorized, provErr.StatusCode)
}

func TestSession_ExpiresWithin(t *testing.T) {
	soon := &Session{ExpiresAt: time.Now().Add(30 * time.Second).Unix()}
	assert.True(t, soon.ExpiresWithin(60*time.Second))

	later := &Session{ExpiresAt: time.Now().Add(time.Hour).Unix()}
	assert.False(t, later.ExpiresWithin(60*time.Second))
}

func TestProviderError_MessagePrecedence(t *testing.T) {
	withMsg := &ProviderError{StatusCode: 400, Message: "primary", Description: "secondary"}
	assert.Contains(t, withMsg.Error(), "primary")

	withDesc := &ProviderError{StatusCode: 400, Description: "secondary"}
	assert.Contains(t, withDesc.Error(), "secondary")

	empty := &ProviderError{StatusCode: 500}
	assert.Contains(t, empty.Error(), "auth provider request failed")
}
