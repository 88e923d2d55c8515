// internal/web/debug.go
//
// Diagnostics endpoint that echoes what the enrichment middleware derived
// for the calling request: resolved locale, parsed user agent, geo tags,
// and the active session flag.  Handy when tuning Accept-Language handling
// or the GeoIP database; it exposes only the caller's own request data.

package web

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/bimpartner/launchpad/internal/requestinfo"
)

func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	_, authed := s.sessions.Current(r)

	out := map[string]any{
		"locale": s.locale(r),
		"ip":     clientIP(r),
		"ua":     r.UserAgent(),
		"authed": authed,
	}
	if ri := requestinfo.FromContext(r.Context()); ri != nil {
		out["ua_parsed"] = ri.UA
		out["geo"] = ri.Geo
		out["lang"] = ri.PrimaryLang
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

// clientIP grabs the remote address without port.
func clientIP(r *http.Request) string {
	h, _, _ := net.SplitHostPort(r.RemoteAddr)
	return h
}
