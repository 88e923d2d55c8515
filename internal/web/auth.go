// internal/web/auth.go
//
// Sign-in and sign-out handlers.  Credential verification belongs to the
// gateway; this layer only translates HTTP into gateway calls and binds
// the browser cookie on success.

package web

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/bimpartner/launchpad/internal/form"
	"github.com/bimpartner/launchpad/internal/gateway"
	"github.com/bimpartner/launchpad/internal/i18n"
	"github.com/bimpartner/launchpad/internal/router"
)

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, router.ViewLogin) {
		return
	}
	p := s.newPage(r, router.ViewLogin, "loginTitle")
	if err := s.views.Render(w, p.Locale, "login", p); err != nil {
		zap.S().Errorw("render login", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, router.ViewLogin) {
		return
	}

	clean, err := form.HandleSubmit("login", r)
	if err != nil {
		key := "unexpectedError"
		if fields := form.FieldErrors(err); len(fields) > 0 {
			key = fields[0].Key
		}
		redirect(w, r, "/login", flash(key))
		return
	}

	email, _ := clean["email"].(string)
	password, _ := clean["password"].(string)

	sess, err := s.gw.SignIn(r.Context(), email, password)
	if err != nil {
		zap.S().Infow("sign-in rejected", "email", email)
		redirect(w, r, "/login", rawErr(gateway.Message(err)))
		return
	}

	s.sessions.Login(w, r, sess)
	redirect(w, r, "/admin", nil)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.gw.SignOut(r.Context()); err != nil {
		// Gateway-side revocation failed; the browser still signs out.
		zap.S().Warnw("gateway sign-out failed", "error", err)
	}
	s.sessions.Logout(w, r)
	redirect(w, r, "/", nil)
}

// localized is a convenience for handlers that need a one-off translation.
func (s *Server) localized(r *http.Request, key string, repl map[string]any) string {
	return i18n.Translate(s.locale(r), key, repl)
}
