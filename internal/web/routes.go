// internal/web/routes.go
//
// Route table.  The chi router binds each path to its handler; middleware
// (request enrichment, security headers, HTTPS redirect) is layered in
// cmd/web so tests can mount the bare table.

package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the complete handler table.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	// Public surface.
	r.Get("/", s.handleHome)
	r.Post("/subscribe", s.handleSubscribe)
	r.Get("/locale/{code}", s.handleLocale)
	r.Get("/debug", s.handleDebug)

	// Authentication.
	r.Get("/login", s.handleLoginForm)
	r.Post("/login", s.handleLogin)
	r.Post("/logout", s.handleLogout)

	// Admin console.
	r.Route("/admin", func(r chi.Router) {
		r.Get("/", s.handleAdmin)
		r.Post("/programs", s.handleProgramCreate)
		r.Get("/programs/{id}/edit", s.handleProgramEditForm)
		r.Post("/programs/{id}/edit", s.handleProgramEditRequest)
		r.Post("/programs/{id}/delete", s.handleProgramDeleteRequest)
		r.Post("/subscribers/{id}/delete", s.handleSubscriberDeleteRequest)
		r.Post("/confirm", s.handleConfirm)
		r.Post("/cancel", s.handleCancel)
	})

	// Legacy fragment bookmarks ("/#/admin") resolve client-side; anything
	// else unknown lands on the grid.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	return r
}
