// internal/web/admin.go
//
// Admin console handlers: program CRUD, subscriber pruning, and the
// confirmation round-trip.
//
// Every destructive or overwriting action is parked in the confirmation
// broker first; the console renders the prompt from Broker.Pending and the
// confirm/cancel endpoints resolve it.  Mutations that the broker commits
// go through the synchronizers, never straight to the gateway.

package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bimpartner/launchpad/internal/confirm"
	"github.com/bimpartner/launchpad/internal/form"
	"github.com/bimpartner/launchpad/internal/gateway"
	"github.com/bimpartner/launchpad/internal/i18n"
	"github.com/bimpartner/launchpad/internal/program"
	"github.com/bimpartner/launchpad/internal/router"
)

/*──────────────────────────── console ──────────────────────────────────────*/

// handleAdmin refreshes both mirrors concurrently and renders the console.
// A failed refresh surfaces as a banner; the console still renders so the
// admin can retry.
func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, router.ViewAdmin) {
		return
	}
	p := s.newPage(r, router.ViewAdmin, "adminPanelHeader")

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error { return s.programs.Load(ctx) })
	g.Go(func() error { return s.subscribers.Load(ctx) })
	if err := g.Wait(); err != nil {
		p.Err = gateway.Message(err)
	}

	p.Data["Programs"] = s.programs.Programs()
	p.Data["Subscribers"] = s.subscribers.Subscribers()

	if a, ok := s.confirms.Pending(); ok {
		p.Data["Pending"] = a
		p.Data["PendingPrompt"] = i18n.Translate(p.Locale, a.MessageKey,
			map[string]any{"name": a.Label})
	}

	if err := s.views.Render(w, p.Locale, "admin", p); err != nil {
		zap.S().Errorw("render admin", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

/*──────────────────────────── program CRUD ─────────────────────────────────*/

// programFromForm maps the sanitized "program" form values onto the model.
func programFromForm(clean map[string]any) program.Program {
	str := func(k string) string { v, _ := clean[k].(string); return v }
	checked, _ := clean["is_new"].(bool)
	return program.Program{
		Name: program.LocalizedText{
			PL: str("name_pl"), EN: str("name_en"), ES: str("name_es"),
		},
		Description: program.LocalizedText{
			PL: str("description_pl"), EN: str("description_en"), ES: str("description_es"),
		},
		URL:   str("url"),
		Icon:  str("icon"),
		IsNew: checked,
	}
}

func (s *Server) handleProgramCreate(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, router.ViewAdmin) {
		return
	}

	clean, err := form.HandleSubmit("program", r)
	if err != nil {
		redirect(w, r, "/admin", flash("fillAllFields"))
		return
	}

	if _, err := s.programs.Create(r.Context(), programFromForm(clean)); err != nil {
		redirect(w, r, "/admin", rawErr(s.localized(r, "errorAdding",
			map[string]any{"message": gateway.Message(err)})))
		return
	}
	redirect(w, r, "/admin", nil)
}

func (s *Server) handleProgramEditForm(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, router.ViewAdmin) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		redirect(w, r, "/admin", nil)
		return
	}
	target, ok := s.programs.Get(id)
	if !ok {
		redirect(w, r, "/admin", flash("errorOccurred"))
		return
	}

	p := s.newPage(r, router.ViewAdmin, "editAppTitle")
	p.Data["Programs"] = s.programs.Programs()
	p.Data["Subscribers"] = s.subscribers.Subscribers()
	p.Data["Edit"] = target

	if err := s.views.Render(w, p.Locale, "admin", p); err != nil {
		zap.S().Errorw("render admin edit", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// handleProgramEditRequest validates the edited fields and parks the
// update; nothing hits the gateway until the admin confirms.
func (s *Server) handleProgramEditRequest(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, router.ViewAdmin) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		redirect(w, r, "/admin", nil)
		return
	}

	clean, err := form.HandleSubmit("program", r)
	if err != nil {
		redirect(w, r, "/admin", flash("fillAllFields"))
		return
	}
	edited := programFromForm(clean)
	edited.ID = id

	s.park(w, r, confirm.PendingAction{
		Kind:       confirm.KindUpdateProgram,
		Intent:     confirm.IntentPrimary,
		MessageKey: "saveConfirmationMessage",
		Label:      edited.Name.Get(s.locale(r)),
		ID:         id,
		Payload:    edited,
	})
}

func (s *Server) handleProgramDeleteRequest(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, router.ViewAdmin) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		redirect(w, r, "/admin", nil)
		return
	}
	target, ok := s.programs.Get(id)
	if !ok {
		redirect(w, r, "/admin", flash("errorOccurred"))
		return
	}

	s.park(w, r, confirm.PendingAction{
		Kind:       confirm.KindDeleteProgram,
		Intent:     confirm.IntentDanger,
		MessageKey: "deleteConfirmationMessageApp",
		Label:      target.Name.Get(s.locale(r)),
		ID:         id,
	})
}

/*──────────────────────────── subscribers ──────────────────────────────────*/

func (s *Server) handleSubscriberDeleteRequest(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, router.ViewAdmin) {
		return
	}
	id, err := pathID(r)
	if err != nil {
		redirect(w, r, "/admin", nil)
		return
	}

	label := ""
	for _, sub := range s.subscribers.Subscribers() {
		if sub.ID == id {
			label = sub.Email
			break
		}
	}
	if label == "" {
		redirect(w, r, "/admin", flash("errorOccurred"))
		return
	}

	s.park(w, r, confirm.PendingAction{
		Kind:       confirm.KindDeleteSubscriber,
		Intent:     confirm.IntentDanger,
		MessageKey: "deleteConfirmationMessageSubscriber",
		Label:      label,
		ID:         id,
	})
}

/*──────────────────────────── confirmation ─────────────────────────────────*/

// park places a in the broker.  A busy broker means another prompt is
// already on screen; the admin resolves that one first.
func (s *Server) park(w http.ResponseWriter, r *http.Request, a confirm.PendingAction) {
	if _, err := s.confirms.Request(a); err != nil {
		redirect(w, r, "/admin", flash("processing"))
		return
	}
	redirect(w, r, "/admin", nil)
}

func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, router.ViewAdmin) {
		return
	}
	if err := r.ParseForm(); err != nil {
		redirect(w, r, "/admin", nil)
		return
	}

	err := s.confirms.Confirm(r.Context(), r.PostForm.Get("token"), s.commit)
	switch {
	case err == nil:
		redirect(w, r, "/admin", nil)
	case errors.Is(err, confirm.ErrNoPendingAction),
		errors.Is(err, confirm.ErrTokenMismatch):
		redirect(w, r, "/admin", flash("errorOccurred"))
	default:
		redirect(w, r, "/admin", rawErr(gateway.Message(err)))
	}
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r, router.ViewAdmin) {
		return
	}
	if err := r.ParseForm(); err == nil {
		_ = s.confirms.Cancel(r.PostForm.Get("token"))
	}
	redirect(w, r, "/admin", nil)
}

// commit executes a confirmed action through the owning synchronizer.
func (s *Server) commit(ctx context.Context, a confirm.PendingAction) error {
	switch a.Kind {
	case confirm.KindDeleteProgram:
		return s.programs.Delete(ctx, a.ID)
	case confirm.KindDeleteSubscriber:
		return s.subscribers.Delete(ctx, a.ID)
	case confirm.KindUpdateProgram:
		edited, ok := a.Payload.(program.Program)
		if !ok {
			return errors.New("web: update action without edit snapshot")
		}
		_, err := s.programs.Update(ctx, edited)
		return err
	}
	return errors.New("web: unknown action kind " + a.Kind)
}

/*──────────────────────────── helpers ──────────────────────────────────────*/

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
