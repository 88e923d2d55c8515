// internal/session/session.go
//
// Browser session manager for the admin console.
//
// Context
// -------
// The gateway owns authentication; this package only ties a browser to a
// gateway session.  Sign-in stores the gateway session under a random
// opaque token, sets that token in an HttpOnly cookie, and sign-out (or a
// gateway-side session push to nil) invalidates it.  Tokens are held in
// process memory — a restart signs every admin out, which is acceptable
// for a single-admin console.
//
// Notes
// -----
// • The cookie carries only the random token, never the email or the
//   gateway access token.
// • Oxford commas, two spaces after periods.

package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bimpartner/launchpad/internal/gateway"
)

const (
	cookieName = "launchpad_session"
	ttl        = 14 * 24 * time.Hour
)

// Manager maps cookie tokens to gateway sessions.  Safe for concurrent use.
type Manager struct {
	mu     sync.RWMutex
	tokens map[string]*gateway.Session
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{tokens: make(map[string]*gateway.Session)}
}

// Source is the slice of the gateway's auth surface the manager needs.
type Source interface {
	OnSessionChange(fn func(*gateway.Session)) (cancel func())
}

// Attach subscribes the manager to src's session pushes: a push to nil
// (sign-out, token expiry) drops every browser token so guards re-evaluate
// on the next request.  Returns the subscription's cancel func.
func (m *Manager) Attach(src Source) (cancel func()) {
	return src.OnSessionChange(func(s *gateway.Session) {
		if s != nil {
			return
		}
		m.mu.Lock()
		m.tokens = make(map[string]*gateway.Session)
		m.mu.Unlock()
	})
}

// Login binds sess to a fresh token and sets the session cookie.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, sess *gateway.Session) {
	token := uuid.NewString()

	m.mu.Lock()
	m.tokens[token] = sess
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
	})
}

// Logout forgets the request's token and clears the cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(cookieName); err == nil {
		m.mu.Lock()
		delete(m.tokens, c.Value)
		m.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Current returns the gateway session bound to the request's cookie.
//
// ok == false when the cookie is missing, expired, or invalidated.
func (m *Manager) Current(r *http.Request) (sess *gateway.Session, ok bool) {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	m.mu.RLock()
	sess, ok = m.tokens[c.Value]
	m.mu.RUnlock()
	return sess, ok
}
