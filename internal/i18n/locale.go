// internal/i18n/locale.go
//
// Supported display locales.
//
// Context
// -------
// Launchpad ships three display languages: Polish, English, and Spanish.
// The set is closed; anything else normalizes to the English default.  The
// Locale type is a plain string so it can travel through templates, cookies,
// and JSON without conversion helpers.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package i18n

import "strings"

// Locale identifies one supported display language.
type Locale string

const (
	LocalePL Locale = "pl"
	LocaleEN Locale = "en"
	LocaleES Locale = "es"

	// DefaultLocale is the fallback when no persisted choice or browser
	// hint matches a supported locale.
	DefaultLocale = LocaleEN
)

// StorageKey is the fixed key under which the locale choice persists.
const StorageKey = "locale"

// Supported returns the closed locale set in display order.
func Supported() []Locale {
	return []Locale{LocalePL, LocaleEN, LocaleES}
}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	switch l {
	case LocalePL, LocaleEN, LocaleES:
		return true
	}
	return false
}

// Parse normalizes a raw tag ("pl", "PL", "pl-PL", "es-419") to a supported
// Locale.  ok is false when the primary subtag is not supported.
func Parse(raw string) (Locale, bool) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexByte(tag, '-'); i != -1 {
		tag = tag[:i]
	}
	l := Locale(tag)
	if l.Valid() {
		return l, true
	}
	return DefaultLocale, false
}
