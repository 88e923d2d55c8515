// internal/requestinfo/requestinfo_test.go
//
// Run: go test ./internal/requestinfo -v

package requestinfo

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPrimaryLang(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"pl", "pl"},
		{"es-MX,es;q=0.9,en;q=0.8", "es-mx"},
		{"en-US;q=0.7", "en-us"},
		{" pl , en ", "pl"},
	}
	for _, c := range cases {
		if got := primaryLang(c.in); got != c.want {
			t.Errorf("primaryLang(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestClientIP_ForwardedForWins(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := clientIP(r); got.String() != "203.0.113.7" {
		t.Fatalf("clientIP = %v", got)
	}
}

func TestEnrich_AttachesInfo(t *testing.T) {
	var got *RequestInfo
	h := Enrich(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/admin?tab=apps", nil)
	r.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36")
	r.Header.Set("Accept-Language", "pl,en;q=0.8")
	h.ServeHTTP(httptest.NewRecorder(), r)

	if got == nil {
		t.Fatal("RequestInfo not attached")
	}
	if got.PrimaryLang != "pl" {
		t.Errorf("PrimaryLang = %q", got.PrimaryLang)
	}
	if got.UA.Device != "Desktop" {
		t.Errorf("Device = %q", got.UA.Device)
	}
	if got.URL.Query().Get("tab") != "apps" {
		t.Errorf("URL not preserved: %v", got.URL)
	}
}

func TestInitGeo_EmptyPathDisables(t *testing.T) {
	if err := InitGeo(""); err != nil {
		t.Fatalf("InitGeo(\"\") = %v", err)
	}
	g := lookupGeo(nil)
	if g.CountryISO != "" {
		t.Fatalf("geo = %+v", g)
	}
}
