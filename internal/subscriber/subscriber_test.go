// internal/subscriber/subscriber_test.go
//
// Unit-tests for the subscriber synchronizer and the sign-up result
// classification.
//
// Run: go test ./internal/subscriber -v

package subscriber

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/bimpartner/launchpad/internal/gateway"
)

type fakeGateway struct {
	selectFn func(ctx context.Context, collection, orderBy string, descending bool) ([]json.RawMessage, error)
	insertFn func(ctx context.Context, collection string, record any) (json.RawMessage, error)
	deleteFn func(ctx context.Context, collection string, id int64) error
}

func (f *fakeGateway) Select(ctx context.Context, c, o string, d bool) ([]json.RawMessage, error) {
	return f.selectFn(ctx, c, o, d)
}
func (f *fakeGateway) Insert(ctx context.Context, c string, r any) (json.RawMessage, error) {
	return f.insertFn(ctx, c, r)
}
func (f *fakeGateway) Update(context.Context, string, int64, any) (json.RawMessage, error) {
	return nil, errors.New("not updatable")
}
func (f *fakeGateway) Delete(ctx context.Context, c string, id int64) error {
	return f.deleteFn(ctx, c, id)
}
func (f *fakeGateway) Session(context.Context) (*gateway.Session, error) { return nil, nil }
func (f *fakeGateway) OnSessionChange(func(*gateway.Session)) func()     { return func() {} }
func (f *fakeGateway) SignIn(context.Context, string, string) (*gateway.Session, error) {
	return nil, nil
}
func (f *fakeGateway) SignOut(context.Context) error { return nil }

func row(t *testing.T, id int64, email string) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(Subscriber{ID: id, Email: email, CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSignup_InvalidEmailNeverReachesGateway(t *testing.T) {
	called := false
	gw := &fakeGateway{
		insertFn: func(context.Context, string, any) (json.RawMessage, error) {
			called = true
			return nil, nil
		},
	}
	s := NewSynchronizer(gw)

	for _, email := range []string{"", "   ", "not-an-email", "a@"} {
		res, err := s.Signup(context.Background(), email)
		if res != ResultInvalid || err != nil {
			t.Errorf("Signup(%q) = %v, %v", email, res, err)
		}
	}
	if called {
		t.Fatal("gateway invoked for invalid input")
	}
}

func TestSignup_SuccessPrepends(t *testing.T) {
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			return []json.RawMessage{row(t, 1, "old@example.com")}, nil
		},
		insertFn: func(_ context.Context, collection string, record any) (json.RawMessage, error) {
			if collection != gateway.CollectionSubscribers {
				t.Errorf("collection = %q", collection)
			}
			return row(t, 2, "new@example.com"), nil
		},
	}
	s := NewSynchronizer(gw)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	res, err := s.Signup(context.Background(), "  new@example.com ")
	if res != ResultSuccess || err != nil {
		t.Fatalf("Signup = %v, %v", res, err)
	}
	got := s.Subscribers()
	if len(got) != 2 || got[0].Email != "new@example.com" {
		t.Fatalf("mirror = %+v", got)
	}
}

func TestSignup_DuplicateClassifiesAsConflict(t *testing.T) {
	gw := &fakeGateway{
		insertFn: func(context.Context, string, any) (json.RawMessage, error) {
			return nil, &gateway.Error{Code: gateway.CodeUniqueViolation, Message: "duplicate"}
		},
	}
	s := NewSynchronizer(gw)

	res, err := s.Signup(context.Background(), "dup@example.com")
	if res != ResultConflict {
		t.Fatalf("res = %v, want conflict", res)
	}
	if !gateway.IsConflict(err) {
		t.Fatalf("underlying error lost: %v", err)
	}
	if s.Count() != 0 {
		t.Fatal("mirror mutated on conflict")
	}
}

func TestSignup_GatewayFailure(t *testing.T) {
	gw := &fakeGateway{
		insertFn: func(context.Context, string, any) (json.RawMessage, error) {
			return nil, errors.New("gateway down")
		},
	}
	s := NewSynchronizer(gw)

	res, err := s.Signup(context.Background(), "a@example.com")
	if res != ResultFailure || err == nil {
		t.Fatalf("Signup = %v, %v", res, err)
	}
}

func TestDelete_RemovesMatchingRecord(t *testing.T) {
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			return []json.RawMessage{row(t, 3, "c@x.com"), row(t, 2, "b@x.com"), row(t, 1, "a@x.com")}, nil
		},
		deleteFn: func(_ context.Context, _ string, id int64) error {
			if id != 2 {
				t.Errorf("delete id = %d", id)
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
	got := s.Subscribers()
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("mirror = %+v", got)
	}
}

func TestLoad_FailureEmptiesMirror(t *testing.T) {
	ok := true
	gw := &fakeGateway{
		selectFn: func(context.Context, string, string, bool) ([]json.RawMessage, error) {
			if ok {
				return []json.RawMessage{row(t, 1, "a@x.com")}, nil
			}
			return nil, errors.New("gateway down")
		},
	}
	s := NewSynchronizer(gw)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	ok = false
	if err := s.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if s.Count() != 0 {
		t.Fatal("mirror not emptied")
	}
}
