package gate

import (
	"net/http"
	"time"

	"codeberg.org/taskboard/server/internal/authprovider"
	"github.com/gorilla/sessions"
)

// the session artifact stored in the browser cookie
type storedSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64 // unix seconds
}

// reports whether the session can authorize a request right now
func (s *storedSession) valid() bool {
	return s.AccessToken != "" && time.Now().Unix() < s.ExpiresAt
}

// reports whether the session should be refreshed before deciding
func (s *storedSession) nearExpiry(window time.Duration) bool {
	return s.RefreshToken != "" && time.Now().Add(window).Unix() >= s.ExpiresAt
}

// creates the cookie store used for the session artifact
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int((30 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return store
}

// reads the stored session out of the request cookie; a missing or
// undecodable cookie yields nil
func readSession(store sessions.Store, r *http.Request) (*storedSession, error) {
	session, err := store.Get(r, SessionCookieName)
	if err != nil {
		return nil, err
	}

	if session.IsNew {
		return nil, nil
	}

	access, _ := session.Values[keyAccessToken].(string)
	refresh, _ := session.Values[keyRefreshToken].(string)
	expiresAt, _ := session.Values[keyExpiresAt].(int64)

	if access == "" && refresh == "" {
		return nil, nil
	}

	return &storedSession{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	}, nil
}

// writes a refreshed provider session back into the response cookie
func writeSession(store sessions.Store, w http.ResponseWriter, r *http.Request, s *authprovider.Session) error {
	session, err := store.Get(r, SessionCookieName)
	if err != nil {
		// a stale cookie that fails to decode is replaced outright
		session, _ = store.New(r, SessionCookieName) //nolint:errcheck // New only errors on decode, which we are replacing
	}

	session.Values[keyAccessToken] = s.AccessToken
	session.Values[keyRefreshToken] = s.RefreshToken
	session.Values[keyExpiresAt] = s.ExpiresAt

	return session.Save(r, w)
}
