package client

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"codeberg.org/taskboard/server/internal/authprovider"
	"codeberg.org/taskboard/server/taskboard/users"
)

// the auth provider operations the identity context needs.
// Consumers should depend on this interface rather than the concrete
// provider client to enable testing with fakes.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*authprovider.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*authprovider.Session, error)
	RefreshSession(ctx context.Context, refreshToken string) (*authprovider.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// compile-time check that the real provider client satisfies Provider
var _ Provider = (*authprovider.Client)(nil)

// identity-change events delivered to subscribers
type Event int

const (
	// a session is now held (sign-up, refresh)
	EventSessionEstablished Event = iota
	// the session was cleared (sign-out)
	EventSessionCleared
	// the user completed an interactive sign-in; consumers typically
	// navigate to the authenticated landing page on this event
	EventSignedIn
)

var (
	ErrNoSession = errors.New("no active session")
)

// Context mirrors the server-established session on the client side:
// it holds the current identity and credential, exposes a loading flag,
// and notifies subscribers of identity-changing events.
type Context struct {
	provider   Provider
	apiURL     string
	httpClient *http.Client

	mu          sync.Mutex
	user        *users.User
	session     *authprovider.Session
	loading     bool
	subscribers map[int]func(Event)
	nextSubID   int
}
