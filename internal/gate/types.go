package gate

import (
	"context"
	"time"

	"codeberg.org/taskboard/server/internal/authprovider"
)

// the subset of the auth provider client the gate needs
type SessionRefresher interface {
	RefreshSession(ctx context.Context, refreshToken string) (*authprovider.Session, error)
}

// configures the edge gate middleware
type Config struct {
	// route prefixes requiring a valid session; first match wins
	ProtectedRoutes []string
	// route prefixes only reachable without a session (sign-in, sign-up)
	AuthRoutes []string
	// where unauthenticated browsers are sent, with redirectedFrom set
	SignInPath string
	// where authenticated browsers are sent away from auth-only routes
	LandingPath string
	// sessions expiring within this window are refreshed before the
	// redirect decision is made
	RefreshWindow time.Duration
}

// returns the gate configuration matching the application's routes
func DefaultConfig() Config {
	return Config{
		ProtectedRoutes: []string{"/dashboard", "/account"},
		AuthRoutes:      []string{"/auth/signin", "/auth/signup"},
		SignInPath:      "/auth/signin",
		LandingPath:     "/dashboard",
		RefreshWindow:   60 * time.Second,
	}
}

// route protection classes; every route is exactly one of these
type routeClass int

const (
	routePublic routeClass = iota
	routeProtected
	routeAuthOnly
)

// session cookie name and value keys
const (
	SessionCookieName = "sb-session"

	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyExpiresAt    = "expires_at"
)
