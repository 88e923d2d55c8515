// internal/i18n/i18n_test.go
//
// Unit-tests for translation lookup and locale resolution.
//
// Run: go test ./internal/i18n -v

package i18n

import "testing"

func TestTranslate_AllLocalesComplete(t *testing.T) {
	keys := translations[LocaleEN]
	for key := range keys {
		for _, l := range Supported() {
			got := Translate(l, key, nil)
			if got == "" {
				t.Errorf("Translate(%s, %q) returned empty string", l, key)
			}
			if got == key {
				t.Errorf("Translate(%s, %q) fell through to the key", l, key)
			}
		}
	}
}

func TestTranslate_DistinctWhereContentDiffers(t *testing.T) {
	// A sanity probe on a key whose content differs per locale.
	pl := Translate(LocalePL, "chooseApp", nil)
	en := Translate(LocaleEN, "chooseApp", nil)
	es := Translate(LocaleES, "chooseApp", nil)
	if pl == en || en == es || pl == es {
		t.Fatalf("expected distinct translations, got pl=%q en=%q es=%q", pl, en, es)
	}
}

func TestTranslate_Replacements(t *testing.T) {
	got := Translate(LocaleEN, "loggedInAs", map[string]any{"email": "a@b.com"})
	want := "Logged in as a@b.com"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = Translate(LocalePL, "subscribersList", map[string]any{"count": 7})
	if got != "Subskrybenci (7)" {
		t.Fatalf("numeric replacement failed: %q", got)
	}
}

func TestTranslate_MissingKeyReturnsKey(t *testing.T) {
	if got := Translate(LocaleEN, "definitelyNotAKey", nil); got != "definitelyNotAKey" {
		t.Fatalf("got %q, want the key back", got)
	}
}

func TestTranslate_FallbackToEnglish(t *testing.T) {
	// Unsupported locale behaves like the default table.
	if got := Translate(Locale("de"), "chooseApp", nil); got != translations[LocaleEN]["chooseApp"] {
		t.Fatalf("unsupported locale did not fall back to English: %q", got)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		raw  string
		want Locale
		ok   bool
	}{
		{"pl", LocalePL, true},
		{"PL", LocalePL, true},
		{"pl-PL", LocalePL, true},
		{"es-419", LocaleES, true},
		{"en-US", LocaleEN, true},
		{"de", DefaultLocale, false},
		{"", DefaultLocale, false},
	}
	for _, c := range cases {
		got, ok := Parse(c.raw)
		if got != c.want || ok != c.ok {
			t.Errorf("Parse(%q) = (%s, %v), want (%s, %v)", c.raw, got, ok, c.want, c.ok)
		}
	}
}

func TestResolver_InitialResolutionOrder(t *testing.T) {
	// Persisted choice wins over browser language.
	store := &MemStore{}
	if err := store.Save("es"); err != nil {
		t.Fatal(err)
	}
	r := NewResolver(store, "pl-PL")
	if r.Current() != LocaleES {
		t.Fatalf("persisted choice ignored: %s", r.Current())
	}

	// Browser language when nothing persisted.
	r = NewResolver(&MemStore{}, "pl-PL")
	if r.Current() != LocalePL {
		t.Fatalf("browser language ignored: %s", r.Current())
	}

	// Default otherwise.
	r = NewResolver(&MemStore{}, "de-DE")
	if r.Current() != DefaultLocale {
		t.Fatalf("default not applied: %s", r.Current())
	}
}

func TestResolver_PersistsAcrossReinit(t *testing.T) {
	store := &MemStore{}
	r := NewResolver(store, "")
	r.Set(LocalePL)

	// Simulated reload: a fresh resolver over the same store.
	r2 := NewResolver(store, "en")
	if r2.Current() != LocalePL {
		t.Fatalf("locale did not survive reinit: %s", r2.Current())
	}
}

func TestResolver_FileStorePersists(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	r := NewResolver(store, "")
	r.Set(LocaleES)

	store2, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	r2 := NewResolver(store2, "pl")
	if r2.Current() != LocaleES {
		t.Fatalf("file-backed locale did not survive reinit: %s", r2.Current())
	}
}

func TestResolver_Notify(t *testing.T) {
	r := NewResolver(&MemStore{}, "")

	var got []Locale
	cancel := r.Subscribe(func(l Locale) { got = append(got, l) })

	r.Set(LocalePL)
	r.Set(LocalePL) // no-op, same locale
	r.Set(LocaleES)
	cancel()
	r.Set(LocaleEN) // after cancel, not observed

	if len(got) != 2 || got[0] != LocalePL || got[1] != LocaleES {
		t.Fatalf("unexpected notifications: %v", got)
	}
}
