// internal/router/router_test.go
//
// Run: go test ./internal/router -v

package router

import "testing"

func TestFromPath(t *testing.T) {
	cases := []struct {
		in   string
		want View
	}{
		{"/", ViewHome},
		{"", ViewHome},
		{"/login", ViewLogin},
		{"/admin", ViewAdmin},
		{"/admin/", ViewAdmin},
		{"#/login", ViewLogin},
		{"#/admin", ViewAdmin},
		{"#/", ViewHome},
		{"/no-such-screen", ViewHome},
		{"  /login", ViewLogin},
	}
	for _, c := range cases {
		if got := FromPath(c.in); got != c.want {
			t.Errorf("FromPath(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestGuard(t *testing.T) {
	cases := []struct {
		requested View
		authed    bool
		want      View
		redirect  bool
	}{
		{ViewHome, false, ViewHome, false},
		{ViewHome, true, ViewHome, false},
		{ViewLogin, false, ViewLogin, false},
		{ViewLogin, true, ViewAdmin, true},
		{ViewAdmin, false, ViewLogin, true},
		{ViewAdmin, true, ViewAdmin, false},
	}
	for _, c := range cases {
		got, redirect := Guard(c.requested, c.authed)
		if got != c.want || redirect != c.redirect {
			t.Errorf("Guard(%v, %v) = %v, %v; want %v, %v",
				c.requested, c.authed, got, redirect, c.want, c.redirect)
		}
	}
}

func TestViewPath_RoundTrips(t *testing.T) {
	for _, v := range []View{ViewHome, ViewLogin, ViewAdmin} {
		if got := FromPath(v.Path()); got != v {
			t.Errorf("FromPath(%q) = %v, want %v", v.Path(), got, v)
		}
	}
}

func TestRouter_NotifiesOnChangeOnly(t *testing.T) {
	r := NewRouter("#/admin")
	if r.Current() != ViewAdmin {
		t.Fatalf("initial view = %v, want admin", r.Current())
	}

	var fired []View
	cancel := r.Subscribe(func(v View) { fired = append(fired, v) })

	r.Set("/admin") // same view, no notification
	r.Set("/login")
	r.Set("/login") // unchanged again
	r.Set("/")

	if len(fired) != 2 || fired[0] != ViewLogin || fired[1] != ViewHome {
		t.Fatalf("notifications = %v, want [login home]", fired)
	}

	cancel()
	r.Set("/admin")
	if len(fired) != 2 {
		t.Error("listener fired after cancel")
	}
}
