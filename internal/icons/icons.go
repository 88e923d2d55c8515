// internal/icons/icons.go
//
// Built-in tile icon catalog.
//
// Context
// -------
// A program's icon field is either the identifier of a built-in icon or raw
// SVG markup pasted by an admin.  Raw markup renders unescaped, so it is
// trusted input: only authenticated admins can write the field, and the
// public site never accepts icon data.  Unknown identifiers fall back to a
// generic square so a typo degrades instead of breaking the grid.
//
// Notes
// -----
// • The catalog is closed on purpose; new built-ins are a code change.
// • Oxford commas, two spaces after periods.

package icons

import (
	"html/template"
	"sort"
	"strings"
)

// DefaultName backs unknown identifiers.
const DefaultName = "grid"

// catalog maps identifier to inline SVG.  24×24 viewBox, stroke follows
// the surrounding text color.
var catalog = map[string]template.HTML{
	"grid":     `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><rect x="3" y="3" width="7" height="7" rx="1"/><rect x="14" y="3" width="7" height="7" rx="1"/><rect x="3" y="14" width="7" height="7" rx="1"/><rect x="14" y="14" width="7" height="7" rx="1"/></svg>`,
	"chart":    `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M3 3v18h18"/><path d="M7 15l4-6 3 3 5-7"/></svg>`,
	"cloud":    `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M17.5 19a4.5 4.5 0 0 0 .4-9A7 7 0 0 0 4 11.5 4 4 0 0 0 6 19z"/></svg>`,
	"calendar": `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><rect x="3" y="5" width="18" height="16" rx="2"/><path d="M8 3v4M16 3v4M3 11h18"/></svg>`,
	"mail":     `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><rect x="3" y="5" width="18" height="14" rx="2"/><path d="m3 7 9 6 9-6"/></svg>`,
	"folder":   `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M3 7a2 2 0 0 1 2-2h4l2 3h8a2 2 0 0 1 2 2v9a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"/></svg>`,
	"settings": `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><circle cx="12" cy="12" r="3"/><path d="M19.4 15a1.7 1.7 0 0 0 .3 1.9l.1.1a2 2 0 1 1-2.8 2.8l-.1-.1a1.7 1.7 0 0 0-1.9-.3 1.7 1.7 0 0 0-1 1.5V21a2 2 0 1 1-4 0v-.1a1.7 1.7 0 0 0-1-1.6 1.7 1.7 0 0 0-1.9.3l-.1.1a2 2 0 1 1-2.8-2.8l.1-.1a1.7 1.7 0 0 0 .3-1.9 1.7 1.7 0 0 0-1.5-1H3a2 2 0 1 1 0-4h.1a1.7 1.7 0 0 0 1.6-1 1.7 1.7 0 0 0-.3-1.9l-.1-.1a2 2 0 1 1 2.8-2.8l.1.1a1.7 1.7 0 0 0 1.9.3h.1a1.7 1.7 0 0 0 1-1.5V3a2 2 0 1 1 4 0v.1a1.7 1.7 0 0 0 1 1.5h.1a1.7 1.7 0 0 0 1.9-.3l.1-.1a2 2 0 1 1 2.8 2.8l-.1.1a1.7 1.7 0 0 0-.3 1.9v.1a1.7 1.7 0 0 0 1.5 1H21a2 2 0 1 1 0 4h-.1a1.7 1.7 0 0 0-1.5 1z"/></svg>`,
	"users":    `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M17 21v-2a4 4 0 0 0-4-4H7a4 4 0 0 0-4 4v2"/><circle cx="10" cy="7" r="4"/><path d="M23 21v-2a4 4 0 0 0-3-3.9M16 3.1a4 4 0 0 1 0 7.8"/></svg>`,
	"globe":    `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><circle cx="12" cy="12" r="9"/><path d="M3 12h18M12 3a14 14 0 0 1 0 18 14 14 0 0 1 0-18"/></svg>`,
	"rocket":   `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M4.5 16.5 3 21l4.5-1.5M15 9a1.5 1.5 0 1 0 0-3 1.5 1.5 0 0 0 0 3zM6 15l3 3c5-2 9-5.5 11-10.5A12 12 0 0 0 21 3a12 12 0 0 0-4.5 1C11.5 6 8 10 6 15z"/></svg>`,
}

// Render resolves value to safe markup.  Raw "<svg" input from the admin is
// passed through verbatim; identifiers hit the catalog; anything else gets
// the default icon.
func Render(value string) template.HTML {
	v := strings.TrimSpace(value)
	if strings.HasPrefix(v, "<svg") {
		return template.HTML(v)
	}
	if svg, ok := catalog[v]; ok {
		return svg
	}
	return catalog[DefaultName]
}

// Names lists the built-in identifiers, sorted, for the admin form picker.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// IsBuiltin reports whether value names a catalog entry.
func IsBuiltin(value string) bool {
	_, ok := catalog[strings.TrimSpace(value)]
	return ok
}
