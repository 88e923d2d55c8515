// internal/program/model.go
//
// Program record and its two schema generations.
//
// Context
// -------
// A Program is one launcher tile: localized name and description, the
// external link, an icon, and the "new" badge flag.  The data store holds
// two incompatible shapes for name and description — early rows persisted a
// plain string, current rows persist a {pl, en, es} object.  The localized
// object is authoritative for new data; LocalizedText reads both shapes and
// always writes the object form, fanning a legacy string out to every
// locale so old rows keep rendering.
//
// Notes
// -----
// • The icon field is either a built-in identifier or admin-authored SVG
//   markup; see internal/icons for the trust boundary.
// • Oxford commas, two spaces after periods.

package program

import (
	"encoding/json"
	"time"

	"github.com/bimpartner/launchpad/internal/i18n"
)

//
// LocalizedText
//

// LocalizedText is a per-locale string for the closed {pl, en, es} set.
type LocalizedText struct {
	PL string `json:"pl" validate:"required"`
	EN string `json:"en" validate:"required"`
	ES string `json:"es" validate:"required"`
}

// UnmarshalJSON accepts both schema generations: the localized object and
// the legacy plain string, which fills every locale.
func (t *LocalizedText) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		t.PL, t.EN, t.ES = s, s, s
		return nil
	}

	type plain LocalizedText // drop methods to avoid recursion
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*t = LocalizedText(p)
	return nil
}

// Get returns the string for locale, falling back to English.
func (t LocalizedText) Get(l i18n.Locale) string {
	switch l {
	case i18n.LocalePL:
		if t.PL != "" {
			return t.PL
		}
	case i18n.LocaleES:
		if t.ES != "" {
			return t.ES
		}
	}
	return t.EN
}

//
// Program
//

// Program is one listed application.  ID and CreatedAt are assigned by the
// gateway at creation and never sent back on writes.
type Program struct {
	ID          int64         `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	URL         string        `json:"url" validate:"required"`
	Icon        string        `json:"icon" validate:"required"`
	IsNew       bool          `json:"is_new"`
	CreatedAt   time.Time     `json:"created_at"`
}

// mutable is the wire shape of a write: the full record minus the
// gateway-owned id and created_at.  There is no partial patch.
type mutable struct {
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	URL         string        `json:"url"`
	Icon        string        `json:"icon"`
	IsNew       bool          `json:"is_new"`
}

func mutableOf(p Program) mutable {
	return mutable{
		Name:        p.Name,
		Description: p.Description,
		URL:         p.URL,
		Icon:        p.Icon,
		IsNew:       p.IsNew,
	}
}
