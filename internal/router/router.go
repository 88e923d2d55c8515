// internal/router/router.go
//
// View model and authentication guard for the three-screen site.
//
// Context
// -------
// The site has exactly three screens — Home, Login, and Admin — addressed
// by path.  The guard enforces the two navigation rules: Admin requires a
// session, and a signed-in admin visiting Login is bounced to Admin.
// Unknown paths fall back to Home instead of a 404 so stale links keep
// landing somewhere useful.
//
// Notes
// -----
// • Guard is pure; the web layer turns a redirected view into an HTTP 303.
// • Oxford commas, two spaces after periods.

package router

import (
	"strings"
	"sync"
)

// View is one of the three screens.
type View string

const (
	ViewHome  View = "home"
	ViewLogin View = "login"
	ViewAdmin View = "admin"
)

// Path returns the canonical request path for v.
func (v View) Path() string {
	switch v {
	case ViewLogin:
		return "/login"
	case ViewAdmin:
		return "/admin"
	}
	return "/"
}

// FromPath maps a request path to a view.  Legacy fragment spellings
// ("#/admin") are accepted so bookmarks from the previous site resolve.
// Anything unrecognized is Home.
func FromPath(p string) View {
	p = strings.TrimPrefix(strings.TrimSpace(p), "#")
	p = strings.TrimSuffix(p, "/")
	switch p {
	case "/login":
		return ViewLogin
	case "/admin":
		return ViewAdmin
	}
	return ViewHome
}

// Guard applies the navigation rules and returns the view actually shown
// plus whether the caller must redirect to it.
func Guard(requested View, authenticated bool) (View, bool) {
	switch {
	case requested == ViewAdmin && !authenticated:
		return ViewLogin, true
	case requested == ViewLogin && authenticated:
		return ViewAdmin, true
	}
	return requested, false
}

//
// Router
//

// Router tracks the view most recently shown and notifies subscribers when
// it changes.  Safe for concurrent use.  Set is idempotent: re-showing the
// current view never fires the listeners.
type Router struct {
	mu      sync.Mutex
	current View
	subs    map[int]func(View)
	nextSub int
}

// NewRouter seeds the router from an initial path (or legacy fragment).
func NewRouter(path string) *Router {
	return &Router{
		current: FromPath(path),
		subs:    make(map[int]func(View)),
	}
}

// Current returns the view last shown.
func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Set records the view for path and notifies subscribers on change only.
func (r *Router) Set(path string) {
	v := FromPath(path)

	r.mu.Lock()
	if r.current == v {
		r.mu.Unlock()
		return
	}
	r.current = v
	listeners := make([]func(View), 0, len(r.subs))
	for _, fn := range r.subs {
		listeners = append(listeners, fn)
	}
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(v)
	}
}

// Subscribe registers fn for view changes and returns a cancel function.
func (r *Router) Subscribe(fn func(View)) (cancel func()) {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}
