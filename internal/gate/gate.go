package gate

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"codeberg.org/taskboard/server/internal/authprovider"
	"codeberg.org/taskboard/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// paths the gate never inspects: static assets, image optimization
// assets, favicon, and raw image files
var skipPrefixes = []string{
	"/_next/static",
	"/_next/image",
	"/favicon.ico",
	"/public",
}

var skipExtensions = []string{
	".svg", ".png", ".jpg", ".jpeg", ".gif", ".webp",
}

// Middleware runs ahead of page rendering: it refreshes a near-expiry
// session, then allows or redirects based on the route's protection
// class. Any internal failure degrades to allow-and-continue; the API
// handlers re-verify authorization independently, so a missed redirect
// never grants data access.
func Middleware(store sessions.Store, refresher SessionRefresher, cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if skipPath(path) {
			c.Next()
			return
		}

		session, err := readSession(store, c.Request)
		if err != nil {
			// internal failure: degrade to allow-and-continue rather
			// than fail the request; the API handlers re-verify
			logger.Warn("edge gate: failed to read session cookie, continuing unredirected",
				"path", path, "error", err.Error())
			c.Next()
			return
		}

		// refresh must complete before the redirect decision: the
		// decision depends on the refreshed session's validity
		if session != nil && session.nearExpiry(cfg.RefreshWindow) {
			refreshed, err := refresher.RefreshSession(c.Request.Context(), session.RefreshToken)

			var provErr *authprovider.ProviderError

			switch {
			case err == nil:
				if err := writeSession(store, c.Writer, c.Request, refreshed); err != nil {
					logger.Warn("edge gate: failed to rewrite session cookie", "path", path, "error", err.Error())
				}

				session = &storedSession{
					AccessToken:  refreshed.AccessToken,
					RefreshToken: refreshed.RefreshToken,
					ExpiresAt:    refreshed.ExpiresAt,
				}
			case errors.As(err, &provErr):
				// the provider rejected the refresh token: the session
				// is genuinely gone, fall through to the decision table
				logger.Warn("edge gate: session refresh rejected", "path", path, "status", provErr.StatusCode)
				session = nil
			default:
				// transport-level failure: degrade to allow-and-continue,
				// availability of navigation outranks a missed redirect
				logger.Warn("edge gate: session refresh failed, continuing unredirected",
					"path", path, "error", err.Error())
				c.Next()
				return
			}
		}

		hasSession := session != nil && session.valid()

		switch classify(path, cfg) {
		case routeProtected:
			if !hasSession {
				redirectToSignIn(c, cfg, path)
				return
			}
		case routeAuthOnly:
			if hasSession {
				c.Redirect(http.StatusFound, cfg.LandingPath)
				c.Abort()
				return
			}
		case routePublic:
			// always allowed
		}

		c.Next()
	}
}

// sends the browser to sign-in, preserving the original path as the
// return target
func redirectToSignIn(c *gin.Context, cfg Config, from string) {
	target := cfg.SignInPath + "?redirectedFrom=" + url.QueryEscape(from)
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// assigns the route to exactly one protection class by static prefix
// match; first match wins, unmatched routes are public
func classify(path string, cfg Config) routeClass {
	for _, prefix := range cfg.ProtectedRoutes {
		if strings.HasPrefix(path, prefix) {
			return routeProtected
		}
	}

	for _, prefix := range cfg.AuthRoutes {
		if strings.HasPrefix(path, prefix) {
			return routeAuthOnly
		}
	}

	return routePublic
}

func skipPath(path string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	for _, ext := range skipExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	return false
}
