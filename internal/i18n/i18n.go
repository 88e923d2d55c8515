// internal/i18n/i18n.go
//
// Translation lookup with placeholder substitution.
//
// Context
// -------
// Views ask for display strings by key.  Lookup order is: active locale
// table → English table → the key itself.  Returning the key (instead of an
// empty string) keeps a missing entry visible in the rendered page, which is
// the failure mode we want during development; the lookup never panics.
//
// Replacements substitute `{{name}}` placeholders with stringified values.
// Substitution is literal, with no escaping.  The output only ever lands in
// non-script display text, so caller-supplied strings are safe to insert
// verbatim.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package i18n

import (
	"fmt"
	"strings"
)

// Translate returns the display string for key under locale.  Unsupported
// locales behave like the English default.  See package comment for the
// fallback chain.
func Translate(locale Locale, key string, replacements map[string]any) string {
	table, ok := translations[locale]
	if !ok {
		table = translations[DefaultLocale]
	}

	s, ok := table[key]
	if !ok {
		s, ok = translations[DefaultLocale][key]
	}
	if !ok {
		return key
	}

	for name, val := range replacements {
		s = strings.ReplaceAll(s, "{{"+name+"}}", stringify(val))
	}
	return s
}

// HasKey reports whether key exists in every locale table.  Used by tests to
// keep the tables complete.
func HasKey(key string) bool {
	for _, l := range Supported() {
		if _, ok := translations[l][key]; !ok {
			return false
		}
	}
	return true
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
