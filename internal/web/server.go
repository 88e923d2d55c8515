// internal/web/server.go
//
// HTTP surface of the launcher site.
//
// Context
// -------
// Three screens: the public tile grid with the newsletter card, the admin
// sign-in page, and the admin console.  Handlers read the synchronizer
// mirrors, push every mutation through the gateway, and re-render
// server-side; there is no client-side state beyond the session and locale
// cookies.
//
// Workflow
// --------
//	GET  /                         tile grid + newsletter card
//	POST /subscribe                newsletter signup
//	GET  /locale/{code}            switch display language
//	GET  /login, POST /login       admin sign-in
//	POST /logout                   admin sign-out
//	GET  /admin                    console (programs + subscribers)
//	POST /admin/programs           add program
//	GET  /admin/programs/{id}/edit edit form
//	POST /admin/programs/{id}/edit park update for confirmation
//	POST /admin/programs/{id}/delete    park delete for confirmation
//	POST /admin/subscribers/{id}/delete park delete for confirmation
//	POST /admin/confirm            commit the parked action
//	POST /admin/cancel             discard the parked action
//
// Notes
// -----
// • Flash state travels in the msg query parameter as a translation key;
//   raw gateway error text travels in err.
// • Oxford commas, two spaces after periods.

package web

import (
	"net/http"
	"net/url"

	"github.com/bimpartner/launchpad/internal/confirm"
	"github.com/bimpartner/launchpad/internal/gateway"
	"github.com/bimpartner/launchpad/internal/head"
	"github.com/bimpartner/launchpad/internal/i18n"
	"github.com/bimpartner/launchpad/internal/program"
	"github.com/bimpartner/launchpad/internal/requestinfo"
	"github.com/bimpartner/launchpad/internal/router"
	"github.com/bimpartner/launchpad/internal/session"
	"github.com/bimpartner/launchpad/internal/subscriber"
	"github.com/bimpartner/launchpad/internal/view"
)

// Server bundles the application services behind the HTTP handlers.
type Server struct {
	gw          gateway.Gateway
	programs    *program.Synchronizer
	subscribers *subscriber.Synchronizer
	sessions    *session.Manager
	confirms    *confirm.Broker
	locales     *i18n.Resolver
	views       *view.Engine
}

// New wires the handler set.
func New(
	gw gateway.Gateway,
	programs *program.Synchronizer,
	subscribers *subscriber.Synchronizer,
	sessions *session.Manager,
	confirms *confirm.Broker,
	locales *i18n.Resolver,
	views *view.Engine,
) *Server {
	return &Server{
		gw:          gw,
		programs:    programs,
		subscribers: subscribers,
		sessions:    sessions,
		confirms:    confirms,
		locales:     locales,
		views:       views,
	}
}

/*──────────────────────────── locale plumbing ──────────────────────────────*/

// locale resolves the display language for one request: the locale cookie
// when valid, then the browser's Accept-Language primary tag, then the
// site default held by the resolver.
func (s *Server) locale(r *http.Request) i18n.Locale {
	if c, err := r.Cookie(i18n.StorageKey); err == nil {
		if l, ok := i18n.Parse(c.Value); ok {
			return l
		}
	}
	if ri := requestinfo.FromContext(r.Context()); ri != nil {
		if l, ok := i18n.Parse(ri.PrimaryLang); ok {
			return l
		}
	}
	return s.locales.Current()
}

/*──────────────────────────── page scaffolding ─────────────────────────────*/

// page is the payload every template receives.  View-specific fields hang
// off the embedded map so templates stay flat.
type page struct {
	Locale  i18n.Locale
	View    router.View
	Head    *head.Builder
	Session *gateway.Session
	Req     *requestinfo.RequestInfo
	Msg     string // pre-translated flash text
	Err     string // raw error text, already user-safe
	Data    map[string]any
}

func (s *Server) newPage(r *http.Request, v router.View, titleKey string) *page {
	loc := s.locale(r)
	hb := head.New()
	hb.SetTitle(i18n.Translate(loc, titleKey, nil))
	hb.Meta(`<meta charset="utf-8">`)
	hb.Meta(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	hb.Meta(`<meta name="description" content="` + i18n.Translate(loc, "homeDescription", nil) + `">`)

	sess, _ := s.sessions.Current(r)

	p := &page{
		Locale:  loc,
		View:    v,
		Head:    hb,
		Session: sess,
		Req:     requestinfo.FromContext(r.Context()),
		Data:    map[string]any{},
	}
	if key := r.URL.Query().Get("msg"); key != "" {
		p.Msg = i18n.Translate(loc, key, nil)
	}
	if raw := r.URL.Query().Get("err"); raw != "" {
		p.Err = raw
	}
	return p
}

// redirect sends a 303 so a refresh never replays the POST.
func redirect(w http.ResponseWriter, r *http.Request, path string, params url.Values) {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func flash(key string) url.Values { return url.Values{"msg": {key}} }

func rawErr(text string) url.Values { return url.Values{"err": {text}} }

/*──────────────────────────── auth guard ───────────────────────────────────*/

// guard applies the navigation rules.  Returns false after writing the
// redirect when the requested view is not the one to show.
func (s *Server) guard(w http.ResponseWriter, r *http.Request, requested router.View) bool {
	_, authed := s.sessions.Current(r)
	shown, redir := router.Guard(requested, authed)
	if redir {
		redirect(w, r, shown.Path(), nil)
		return false
	}
	return true
}
