// internal/program/sync_test.go
//
// Unit-tests for the program synchronizer and both record schemas.
//
// Run: go test ./internal/program -v

package program

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bimpartner/launchpad/internal/gateway"
)

// fakeGateway routes each contract method to a swappable func field.
type fakeGateway struct {
	selectFn func(ctx context.Context, collection, orderBy string, descending bool) ([]json.RawMessage, error)
	insertFn func(ctx context.Context, collection string, record any) (json.RawMessage, error)
	updateFn func(ctx context.Context, collection string, id int64, record any) (json.RawMessage, error)
	deleteFn func(ctx context.Context, collection string, id int64) error
}

func (f *fakeGateway) Select(ctx context.Context, c, o string, d bool) ([]json.RawMessage, error) {
	return f.selectFn(ctx, c, o, d)
}
func (f *fakeGateway) Insert(ctx context.Context, c string, r any) (json.RawMessage, error) {
	return f.insertFn(ctx, c, r)
}
func (f *fakeGateway) Update(ctx context.Context, c string, id int64, r any) (json.RawMessage, error) {
	return f.updateFn(ctx, c, id, r)
}
func (f *fakeGateway) Delete(ctx context.Context, c string, id int64) error {
	return f.deleteFn(ctx, c, id)
}
func (f *fakeGateway) Session(context.Context) (*gateway.Session, error)  { return nil, nil }
func (f *fakeGateway) OnSessionChange(func(*gateway.Session)) func()      { return func() {} }
func (f *fakeGateway) SignIn(context.Context, string, string) (*gateway.Session, error) {
	return nil, nil
}
func (f *fakeGateway) SignOut(context.Context) error { return nil }

func sample(id int64) Program {
	return Program{
		ID:          id,
		Name:        LocalizedText{PL: "Nazwa", EN: "Name", ES: "Nombre"},
		Description: LocalizedText{PL: "Opis", EN: "Desc", ES: "Desc"},
		URL:         fmt.Sprintf("https://example.com/%d", id),
		Icon:        "cloud",
		CreatedAt:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func rawOf(t *testing.T, p Program) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

/*──────────────────────────── schema ───────────────────────────────────────*/

func TestLocalizedText_LegacyStringFansOut(t *testing.T) {
	var p Program
	raw := `{"id":1,"name":"Old Name","description":{"pl":"a","en":"b","es":"c"},"url":"https://x","icon":"cloud","is_new":true,"created_at":"2025-06-01T00:00:00Z"}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name.PL != "Old Name" || p.Name.EN != "Old Name" || p.Name.ES != "Old Name" {
		t.Fatalf("legacy string not fanned out: %+v", p.Name)
	}
	if p.Description.EN != "b" {
		t.Fatalf("localized object mangled: %+v", p.Description)
	}

	// Re-encoding always emits the object form.
	out, err := json.Marshal(p.Name)
	if err != nil {
		t.Fatal(err)
	}
	var obj map[string]string
	if err := json.Unmarshal(out, &obj); err != nil {
		t.Fatalf("name did not re-encode as object: %s", out)
	}
}

func TestLocalizedText_GetFallsBackToEnglish(t *testing.T) {
	text := LocalizedText{EN: "only english"}
	if got := text.Get("pl"); got != "only english" {
		t.Fatalf("Get(pl) = %q", got)
	}
	full := LocalizedText{PL: "po polsku", EN: "in english", ES: "en español"}
	if got := full.Get("es"); got != "en español" {
		t.Fatalf("Get(es) = %q", got)
	}
}

/*──────────────────────────── load ─────────────────────────────────────────*/

func TestLoad_ReplacesMirror(t *testing.T) {
	gw := &fakeGateway{
		selectFn: func(_ context.Context, collection, orderBy string, descending bool) ([]json.RawMessage, error) {
			if collection != gateway.CollectionPrograms || orderBy != gateway.OrderCreatedAt || !descending {
				t.Errorf("unexpected select: %s %s desc=%v", collection, orderBy, descending)
			}
			return []json.RawMessage{rawOf(t, sample(2)), rawOf(t, sample(1))}, nil
		},
	}
	s := NewSynchronizer(gw)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := s.Programs()
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("mirror = %+v", got)
	}
}

func TestLoad_FailureEmptiesMirror(t *testing.T) {
	ok := true
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			if ok {
				return []json.RawMessage{rawOf(t, sample(1))}, nil
			}
			return nil, errors.New("gateway down")
		},
	}
	s := NewSynchronizer(gw)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(s.Programs()) != 1 {
		t.Fatal("seed load failed")
	}

	ok = false
	if err := s.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if got := s.Programs(); len(got) != 0 {
		t.Fatalf("mirror not emptied on failure: %+v", got)
	}
}

/*──────────────────────────── create ───────────────────────────────────────*/

func TestCreate_MissingLocaleFieldNeverReachesGateway(t *testing.T) {
	called := false
	gw := &fakeGateway{
		insertFn: func(context.Context, string, any) (json.RawMessage, error) {
			called = true
			return nil, nil
		},
	}
	s := NewSynchronizer(gw)

	p := sample(0)
	p.Name.ES = "" // one locale blank is enough to reject
	if _, err := s.Create(context.Background(), p); err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Fatal("gateway invoked despite validation failure")
	}
}

func TestCreate_PrependsCanonicalRow(t *testing.T) {
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			return []json.RawMessage{rawOf(t, sample(1))}, nil
		},
		insertFn: func(_ context.Context, _ string, record any) (json.RawMessage, error) {
			// The gateway assigns id and created_at.
			b, _ := json.Marshal(record)
			var p Program
			json.Unmarshal(b, &p)
			p.ID = 9
			p.CreatedAt = time.Now().UTC()
			return rawOf(t, p), nil
		},
	}
	s := NewSynchronizer(gw)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	created, err := s.Create(context.Background(), sample(0))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 9 {
		t.Fatalf("canonical id not adopted: %+v", created)
	}
	got := s.Programs()
	if len(got) != 2 || got[0].ID != 9 || got[1].ID != 1 {
		t.Fatalf("new record not at index 0: %+v", got)
	}
}

/*──────────────────────────── update ───────────────────────────────────────*/

func TestUpdate_SwapsInPlace(t *testing.T) {
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			return []json.RawMessage{rawOf(t, sample(2)), rawOf(t, sample(1))}, nil
		},
		updateFn: func(_ context.Context, _ string, id int64, record any) (json.RawMessage, error) {
			b, _ := json.Marshal(record)
			var p Program
			json.Unmarshal(b, &p)
			p.ID = id
			return rawOf(t, p), nil
		},
	}
	s := NewSynchronizer(gw)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	p := sample(1)
	p.URL = "https://changed.example.com"
	if _, err := s.Update(context.Background(), p); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got := s.Programs()
	if got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("order disturbed: %+v", got)
	}
	if got[1].URL != "https://changed.example.com" {
		t.Fatalf("update not applied: %+v", got[1])
	}
}

func TestUpdate_AmbiguousReplyForcesReload(t *testing.T) {
	selects := 0
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			selects++
			return []json.RawMessage{rawOf(t, sample(1))}, nil
		},
		updateFn: func(context.Context, string, int64, any) (json.RawMessage, error) {
			return nil, nil // accepted, no row echoed
		},
	}
	s := NewSynchronizer(gw)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	got, err := s.Update(context.Background(), sample(1))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if selects != 2 {
		t.Fatalf("selects = %d, want reload after ambiguous reply", selects)
	}
	if got.ID != 1 {
		t.Fatalf("resynchronized record not returned: %+v", got)
	}
}

/*──────────────────────────── delete ───────────────────────────────────────*/

func TestDelete_RemovesExactlyOne(t *testing.T) {
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			return []json.RawMessage{rawOf(t, sample(3)), rawOf(t, sample(2)), rawOf(t, sample(1))}, nil
		},
		deleteFn: func(_ context.Context, _ string, id int64) error {
			if id != 2 {
				t.Errorf("delete id = %d, want 2", id)
			}
			return nil
		},
	}
	s := NewSynchronizer(gw)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(context.Background(), 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got := s.Programs()
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("relative order disturbed: %+v", got)
	}
}

func TestDelete_GatewayFailureLeavesMirror(t *testing.T) {
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			return []json.RawMessage{rawOf(t, sample(1))}, nil
		},
		deleteFn: func(context.Context, string, int64) error {
			return errors.New("gateway down")
		},
	}
	s := NewSynchronizer(gw)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(context.Background(), 1); err == nil {
		t.Fatal("expected delete error")
	}
	if len(s.Programs()) != 1 {
		t.Fatal("mirror mutated despite gateway failure")
	}
}
