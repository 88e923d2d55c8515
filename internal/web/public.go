// internal/web/public.go
//
// Handlers for the anonymous surface: the tile grid, newsletter signup,
// and the locale switch.

package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bimpartner/launchpad/internal/form"
	"github.com/bimpartner/launchpad/internal/gateway"
	"github.com/bimpartner/launchpad/internal/i18n"
	"github.com/bimpartner/launchpad/internal/message"
	"github.com/bimpartner/launchpad/internal/router"
	"github.com/bimpartner/launchpad/internal/subscriber"
)

// handleHome refreshes the program mirror and renders the grid.  A gateway
// failure renders the page with the error banner instead of a 500; the
// newsletter card stays usable either way.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	p := s.newPage(r, router.ViewHome, "chooseApp")

	if err := s.programs.Load(r.Context()); err != nil {
		p.Data["LoadError"] = i18n.Translate(p.Locale, "errorLoadingApps",
			map[string]any{"message": gateway.Message(err)})
	}
	p.Data["Programs"] = s.programs.Programs()

	if err := s.views.Render(w, p.Locale, "home", p); err != nil {
		zap.S().Errorw("render home", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// handleSubscribe captures a newsletter email and bounces back to the grid
// with the outcome key.  A fresh signup also queues the welcome email.
func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	clean, err := form.HandleSubmit("signup", r)
	if err != nil {
		key := "invalidEmail"
		if fields := form.FieldErrors(err); len(fields) > 0 {
			key = fields[0].Key
		}
		redirect(w, r, "/", flash(key))
		return
	}

	email, _ := clean["email"].(string)
	res, serr := s.subscribers.Signup(r.Context(), email)
	if serr != nil {
		zap.S().Warnw("signup failed", "result", res, "error", serr)
	}
	if res == subscriber.ResultSuccess {
		_ = message.EnqueueEmail(r.Context(), message.Email{
			To:      []string{email},
			Subject: i18n.Translate(s.locale(r), "newsletterHeader", nil),
			Text:    i18n.Translate(s.locale(r), "signupSuccess", nil),
		})
	}
	redirect(w, r, "/", flash(string(res)))
}

// handleLocale sets the locale cookie and returns to the referring page.
// Unknown codes fall back to the default rather than erroring.
func (s *Server) handleLocale(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18n.Parse(chi.URLParam(r, "code"))

	http.SetCookie(w, &http.Cookie{
		Name:     i18n.StorageKey,
		Value:    string(loc),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
	})

	back := r.Referer()
	if back == "" {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
