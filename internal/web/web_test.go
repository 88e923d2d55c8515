// internal/web/web_test.go
//
// Handler tests over the real route table: guard redirects, the signup
// round trip, sign-in, and the admin confirmation flow.  The gateway is a
// func-field fake so each test scripts exactly the calls it expects; views
// and form definitions come from the repository tree.

package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bimpartner/launchpad/internal/confirm"
	"github.com/bimpartner/launchpad/internal/form"
	"github.com/bimpartner/launchpad/internal/gateway"
	"github.com/bimpartner/launchpad/internal/i18n"
	"github.com/bimpartner/launchpad/internal/program"
	"github.com/bimpartner/launchpad/internal/session"
	"github.com/bimpartner/launchpad/internal/subscriber"
	"github.com/bimpartner/launchpad/internal/view"
)

/*──────────────────────────── fake gateway ─────────────────────────────────*/

type fakeGateway struct {
	selectFn func(ctx context.Context, collection, orderBy string, descending bool) ([]json.RawMessage, error)
	insertFn func(ctx context.Context, collection string, record any) (json.RawMessage, error)
	updateFn func(ctx context.Context, collection string, id int64, record any) (json.RawMessage, error)
	deleteFn func(ctx context.Context, collection string, id int64) error
	signInFn func(ctx context.Context, email, password string) (*gateway.Session, error)
}

func (f *fakeGateway) Select(ctx context.Context, collection, orderBy string, descending bool) ([]json.RawMessage, error) {
	if f.selectFn == nil {
		return nil, nil
	}
	return f.selectFn(ctx, collection, orderBy, descending)
}

func (f *fakeGateway) Insert(ctx context.Context, collection string, record any) (json.RawMessage, error) {
	if f.insertFn == nil {
		return nil, nil
	}
	return f.insertFn(ctx, collection, record)
}

func (f *fakeGateway) Update(ctx context.Context, collection string, id int64, record any) (json.RawMessage, error) {
	if f.updateFn == nil {
		return nil, nil
	}
	return f.updateFn(ctx, collection, id, record)
}

func (f *fakeGateway) Delete(ctx context.Context, collection string, id int64) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, collection, id)
}

func (f *fakeGateway) Session(ctx context.Context) (*gateway.Session, error) { return nil, nil }

func (f *fakeGateway) OnSessionChange(fn func(*gateway.Session)) (cancel func()) {
	return func() {}
}

func (f *fakeGateway) SignIn(ctx context.Context, email, password string) (*gateway.Session, error) {
	if f.signInFn == nil {
		return nil, &gateway.Error{Message: "invalid credentials"}
	}
	return f.signInFn(ctx, email, password)
}

func (f *fakeGateway) SignOut(ctx context.Context) error { return nil }

/*──────────────────────────── harness ──────────────────────────────────────*/

var formsOnce sync.Once

func newServer(t *testing.T, gw gateway.Gateway) (*Server, http.Handler) {
	t.Helper()
	formsOnce.Do(func() {
		if err := form.RegisterForms("../../conf/forms"); err != nil {
			t.Fatalf("register forms: %v", err)
		}
	})
	s := New(
		gw,
		program.NewSynchronizer(gw),
		subscriber.NewSynchronizer(gw),
		session.NewManager(),
		confirm.NewBroker(),
		i18n.NewResolver(&i18n.MemStore{}, ""),
		view.NewEngine("../../templates", true),
	)
	return s, s.Routes()
}

// posted builds form values that pass the CSRF and timing gates.
func posted(t *testing.T, kv map[string]string) url.Values {
	t.Helper()
	tok, err := form.GenerateToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	v := url.Values{}
	v.Set("csrf_token", tok)
	v.Set("render_ts", strconv.FormatInt(time.Now().Add(-5*time.Second).UnixMicro(), 10))
	for k, val := range kv {
		v.Set(k, val)
	}
	return v
}

func doPost(h http.Handler, path string, vals url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doGet(h http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// adminCookie signs a fake session into the manager and returns its cookie.
func adminCookie(t *testing.T, s *Server) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s.sessions.Login(rec, req, &gateway.Session{Email: "admin@example.com"})
	for _, c := range rec.Result().Cookies() {
		if c.Name == "launchpad_session" {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func wantRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Fatalf("Location = %q, want %q", got, location)
	}
}

const programRow = `{"id":1,"name":{"pl":"Mapy","en":"Maps","es":"Mapas"},` +
	`"description":{"pl":"Opis","en":"Desc","es":"Descripción"},` +
	`"url":"https://maps.example.com","icon":"globe","is_new":true,` +
	`"created_at":"2025-01-02T03:04:05Z"}`

/*──────────────────────────── public surface ───────────────────────────────*/

func TestHomeListsPrograms(t *testing.T) {
	gw := &fakeGateway{
		selectFn: func(_ context.Context, collection, _ string, _ bool) ([]json.RawMessage, error) {
			if collection != gateway.CollectionPrograms {
				t.Fatalf("collection = %q", collection)
			}
			return []json.RawMessage{json.RawMessage(programRow)}, nil
		},
	}
	_, h := newServer(t, gw)

	rec := doGet(h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Maps") {
		t.Error("body missing English program name")
	}
	if !strings.Contains(body, "https://maps.example.com") {
		t.Error("body missing program URL")
	}
	if !strings.Contains(body, "NEW") {
		t.Error("body missing new badge")
	}
}

func TestHomeShowsLoadFailureBanner(t *testing.T) {
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			return nil, &gateway.Error{Message: "service down"}
		},
	}
	_, h := newServer(t, gw)

	rec := doGet(h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "service down") {
		t.Error("body missing load failure banner")
	}
}

func TestSubscribe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gw := &fakeGateway{
			insertFn: func(_ context.Context, collection string, record any) (json.RawMessage, error) {
				if collection != gateway.CollectionSubscribers {
					t.Fatalf("collection = %q", collection)
				}
				return json.RawMessage(`{"id":7,"email":"new@example.com","created_at":"2025-06-01T00:00:00Z"}`), nil
			},
		}
		_, h := newServer(t, gw)

		rec := doPost(h, "/subscribe", posted(t, map[string]string{"email": "new@example.com"}))
		wantRedirect(t, rec, "/?msg="+string(subscriber.ResultSuccess))
	})

	t.Run("conflict", func(t *testing.T) {
		gw := &fakeGateway{
			insertFn: func(context.Context, string, any) (json.RawMessage, error) {
				return nil, &gateway.Error{Code: gateway.CodeUniqueViolation, Message: "duplicate"}
			},
		}
		_, h := newServer(t, gw)

		rec := doPost(h, "/subscribe", posted(t, map[string]string{"email": "dup@example.com"}))
		wantRedirect(t, rec, "/?msg="+string(subscriber.ResultConflict))
	})

	t.Run("invalid email never reaches the gateway", func(t *testing.T) {
		gw := &fakeGateway{
			insertFn: func(context.Context, string, any) (json.RawMessage, error) {
				t.Fatal("insert called for invalid email")
				return nil, nil
			},
		}
		_, h := newServer(t, gw)

		rec := doPost(h, "/subscribe", posted(t, map[string]string{"email": "not-an-address"}))
		wantRedirect(t, rec, "/?msg=invalidEmail")
	})
}

func TestLocaleSwitchSetsCookie(t *testing.T) {
	_, h := newServer(t, &fakeGateway{})

	rec := doGet(h, "/locale/es")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == i18n.StorageKey && c.Value == "es" {
			found = true
		}
	}
	if !found {
		t.Error("locale cookie not set")
	}
}

/*──────────────────────────── auth ─────────────────────────────────────────*/

func TestGuardRedirects(t *testing.T) {
	s, h := newServer(t, &fakeGateway{})

	t.Run("anonymous admin request lands on login", func(t *testing.T) {
		wantRedirect(t, doGet(h, "/admin"), "/login")
	})

	t.Run("authenticated login request lands on admin", func(t *testing.T) {
		wantRedirect(t, doGet(h, "/login", adminCookie(t, s)), "/admin")
	})
}

func TestLoginInstallsSession(t *testing.T) {
	gw := &fakeGateway{
		signInFn: func(_ context.Context, email, password string) (*gateway.Session, error) {
			if email != "admin@example.com" || password != "hunter22" {
				return nil, &gateway.Error{Message: "invalid credentials"}
			}
			return &gateway.Session{Email: email, AccessToken: "tok"}, nil
		},
	}
	_, h := newServer(t, gw)

	rec := doPost(h, "/login", posted(t, map[string]string{
		"email":    "admin@example.com",
		"password": "hunter22",
	}))
	wantRedirect(t, rec, "/admin")

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "launchpad_session" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("no session cookie after sign-in")
	}
}

func TestLoginRejectionShowsGatewayMessage(t *testing.T) {
	_, h := newServer(t, &fakeGateway{}) // default SignIn rejects

	rec := doPost(h, "/login", posted(t, map[string]string{
		"email":    "admin@example.com",
		"password": "wrong-password",
	}))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil || loc.Path != "/login" {
		t.Fatalf("Location = %q, want /login with error", rec.Header().Get("Location"))
	}
	if got := loc.Query().Get("err"); got != "invalid credentials" {
		t.Errorf("err = %q, want gateway message", got)
	}
}

/*──────────────────────────── admin console ────────────────────────────────*/

func TestProgramCreateValidationFlash(t *testing.T) {
	gw := &fakeGateway{
		insertFn: func(context.Context, string, any) (json.RawMessage, error) {
			t.Fatal("insert called for incomplete form")
			return nil, nil
		},
	}
	s, h := newServer(t, gw)

	// Only one name: the other required fields are missing.
	rec := doPost(h, "/admin/programs",
		posted(t, map[string]string{"name_pl": "Mapy"}), adminCookie(t, s))
	wantRedirect(t, rec, "/admin?msg=fillAllFields")
}

func TestDeleteProgramConfirmRoundTrip(t *testing.T) {
	deleted := make(chan int64, 1)
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			return []json.RawMessage{json.RawMessage(programRow)}, nil
		},
		deleteFn: func(_ context.Context, collection string, id int64) error {
			if collection != gateway.CollectionPrograms {
				t.Errorf("collection = %q", collection)
			}
			deleted <- id
			return nil
		},
	}
	s, h := newServer(t, gw)
	cookie := adminCookie(t, s)

	if err := s.programs.Load(context.Background()); err != nil {
		t.Fatalf("seed mirror: %v", err)
	}

	wantRedirect(t, doPost(h, "/admin/programs/1/delete", url.Values{}, cookie), "/admin")

	a, ok := s.confirms.Pending()
	if !ok {
		t.Fatal("no pending action after delete request")
	}
	if a.Kind != confirm.KindDeleteProgram || a.ID != 1 {
		t.Fatalf("pending = %+v", a)
	}
	if a.Label != "Maps" {
		t.Errorf("label = %q, want localized program name", a.Label)
	}

	wantRedirect(t, doPost(h, "/admin/confirm",
		url.Values{"token": {a.Token}}, cookie), "/admin")

	select {
	case id := <-deleted:
		if id != 1 {
			t.Errorf("deleted id = %d, want 1", id)
		}
	default:
		t.Fatal("gateway delete never called")
	}
	if _, ok := s.confirms.Pending(); ok {
		t.Error("action still pending after confirm")
	}
}

func TestCancelDiscardsPendingAction(t *testing.T) {
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			return []json.RawMessage{json.RawMessage(programRow)}, nil
		},
		deleteFn: func(context.Context, string, int64) error {
			t.Fatal("delete called after cancel")
			return nil
		},
	}
	s, h := newServer(t, gw)
	cookie := adminCookie(t, s)

	if err := s.programs.Load(context.Background()); err != nil {
		t.Fatalf("seed mirror: %v", err)
	}

	doPost(h, "/admin/programs/1/delete", url.Values{}, cookie)
	a, ok := s.confirms.Pending()
	if !ok {
		t.Fatal("no pending action")
	}

	wantRedirect(t, doPost(h, "/admin/cancel",
		url.Values{"token": {a.Token}}, cookie), "/admin")
	if _, ok := s.confirms.Pending(); ok {
		t.Error("action still pending after cancel")
	}
}

func TestSecondRequestWhileBusyFlashesProcessing(t *testing.T) {
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			return []json.RawMessage{json.RawMessage(programRow)}, nil
		},
	}
	s, h := newServer(t, gw)
	cookie := adminCookie(t, s)

	if err := s.programs.Load(context.Background()); err != nil {
		t.Fatalf("seed mirror: %v", err)
	}

	wantRedirect(t, doPost(h, "/admin/programs/1/delete", url.Values{}, cookie), "/admin")
	wantRedirect(t, doPost(h, "/admin/programs/1/delete", url.Values{}, cookie),
		"/admin?msg=processing")
}

func TestUnknownPathRedirectsHome(t *testing.T) {
	_, h := newServer(t, &fakeGateway{})
	wantRedirect(t, doGet(h, "/no-such-page"), "/")
}
