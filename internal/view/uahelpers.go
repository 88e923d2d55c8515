// internal/view/uahelpers.go
//
// User-Agent-related template helpers.  Keyed off the *RequestInfo the
// enrichment middleware stores, so templates can branch on device class or
// skip interactive chrome for crawlers.
package view

import (
	"html/template"

	"github.com/bimpartner/launchpad/internal/requestinfo"
)

// uaFuncMap returns helpers keyed off *requestinfo.RequestInfo.  A nil
// receiver (middleware not run, e.g. in unit tests) yields zero values.
func uaFuncMap() template.FuncMap {
	return template.FuncMap{
		"browser": func(ri *requestinfo.RequestInfo) string {
			if ri == nil {
				return ""
			}
			return ri.UA.Browser
		},
		"device": func(ri *requestinfo.RequestInfo) string {
			if ri == nil {
				return ""
			}
			return ri.UA.Device
		},
		"isBot": func(ri *requestinfo.RequestInfo) bool {
			return ri != nil && ri.UA.IsBot
		},
	}
}
