// internal/i18n/resolver.go
//
// Process-wide locale state with subscribe/notify semantics.
//
// Context
// -------
// The active locale is global mutable state.  Instead of ambient package
// variables we keep it in an explicit Resolver with a defined lifecycle:
// construct once at boot, hand it to consumers, and let them subscribe to
// changes.  Set persists the choice immediately through a Store so the
// selection survives a restart.
//
// Resolution order at construction: persisted prior choice → browser-
// reported language (when it matches a supported locale) → DefaultLocale.
//
// Notes
// -----
// • Listeners run synchronously on the caller's goroutine; keep them cheap.
// • Oxford commas, two spaces after periods.

package i18n

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

//
// Store contract
//

// Store persists the locale choice under the fixed StorageKey.  Load returns
// an empty string when nothing was saved yet.
type Store interface {
	Load() (string, error)
	Save(value string) error
}

//
// Resolver
//

// Resolver owns the current locale.  Safe for concurrent use.
type Resolver struct {
	store Store

	mu      sync.RWMutex
	current Locale
	subs    map[int]func(Locale)
	nextSub int
}

// NewResolver builds a Resolver seeded from the store, falling back to the
// browser-reported language and finally to DefaultLocale.
func NewResolver(store Store, browserLang string) *Resolver {
	r := &Resolver{
		store:   store,
		current: DefaultLocale,
		subs:    make(map[int]func(Locale)),
	}

	if saved, err := store.Load(); err == nil && saved != "" {
		if l := Locale(saved); l.Valid() {
			r.current = l
			return r
		}
	} else if err != nil {
		zap.S().Warnw("locale store load failed", "err", err)
	}

	if l, ok := Parse(browserLang); ok {
		r.current = l
	}
	return r
}

// Current returns the active locale.
func (r *Resolver) Current() Locale {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Set activates l, persists it immediately, and notifies every subscriber.
// Invalid locales are ignored.
func (r *Resolver) Set(l Locale) {
	if !l.Valid() {
		return
	}

	r.mu.Lock()
	if r.current == l {
		r.mu.Unlock()
		return
	}
	r.current = l
	listeners := make([]func(Locale), 0, len(r.subs))
	for _, fn := range r.subs {
		listeners = append(listeners, fn)
	}
	r.mu.Unlock()

	if err := r.store.Save(string(l)); err != nil {
		zap.S().Warnw("locale store save failed", "locale", l, "err", err)
	}
	for _, fn := range listeners {
		fn(l)
	}
}

// Subscribe registers fn for locale changes and returns a cancel function.
func (r *Resolver) Subscribe(fn func(Locale)) (cancel func()) {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// Translate is a convenience wrapper bound to the resolver's current locale.
func (r *Resolver) Translate(key string, replacements map[string]any) string {
	return Translate(r.Current(), key, replacements)
}

//
// Stores
//

// FileStore persists the locale to <dir>/<StorageKey> as a bare value.
type FileStore struct{ dir string }

// NewFileStore creates dir when missing.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path() string { return filepath.Join(s.dir, StorageKey) }

func (s *FileStore) Load() (string, error) {
	b, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileStore) Save(value string) error {
	return os.WriteFile(s.path(), []byte(value+"\n"), 0o644)
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu  sync.Mutex
	val string
}

func (s *MemStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.val, nil
}

func (s *MemStore) Save(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.val = value
	return nil
}
