// internal/view/render.go
//
// Central view engine: template lookup, locale-bound func-map injection,
// and an LRU of parsed *template.Template* sets.
//
// Public helpers
// --------------
//   - Render         – write rendered HTML to an http.ResponseWriter.
//   - RenderToString – return template.HTML (fragments, e-mails).
//
// All templates under <root>/templates are parsed as one set so
// sub-templates ({{ template "tile" . }}) work out-of-the-box.  Because the
// translate helper is bound into the func-map at parse time, the engine
// keeps one parsed set per locale; the LRU key is "<locale>::<name>".
//
// Style
// -----
// • Oxford commas, two spaces after periods.

package view

import (
	"bytes"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bimpartner/launchpad/internal/cache"
	"github.com/bimpartner/launchpad/internal/form"
	"github.com/bimpartner/launchpad/internal/i18n"
	"github.com/bimpartner/launchpad/internal/icons"
)

// Engine loads and executes templates for one site root.
type Engine struct {
	dir string // <root>/templates
	lru *cache.LRU
	dev bool // skip the cache so template edits show up without a restart
}

// NewEngine returns an engine rooted at dir.  dev disables template
// caching.
func NewEngine(dir string, dev bool) *Engine {
	return &Engine{dir: dir, lru: cache.New(64), dev: dev}
}

//
// public helpers
//

// Render executes the named template set for locale and streams it to w.
//
// We first load (or parse) the appropriate template set, then execute the
// concrete template determined by execName().  This allows both:
//
//   - A simple file "login.html" with no {{ define }} block.  In that case
//     execName runs "login.html" automatically.
//   - A file that wraps markup in {{ define "login" }} … {{ end }} and
//     relies on that root template name.
func (e *Engine) Render(w http.ResponseWriter, locale i18n.Locale, name string, data any) error {
	t, err := e.load(locale, name)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, execName(t, name), data)
}

// RenderToString executes and returns HTML.  It mirrors Render, but writes
// to a buffer instead of w.
func (e *Engine) RenderToString(locale i18n.Locale, name string, data any) (template.HTML, error) {
	t, err := e.load(locale, name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, execName(t, name), data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

//
// internal: load
//

// load finds and (if necessary) parses the template set for the given
// locale and base name.
func (e *Engine) load(locale i18n.Locale, name string) (*template.Template, error) {
	key := string(locale) + "::" + name

	if !e.dev {
		if v, ok := e.lru.Get(key); ok {
			return v.(*template.Template), nil
		}
	}

	base := filepath.Join(e.dir, name+".html")
	if _, err := os.Stat(base); err != nil {
		return nil, os.ErrNotExist
	}

	// Parse all *.html so layout and partials resolve.
	pattern := filepath.Join(e.dir, "*.html")
	t, err := template.New(name).Funcs(buildFuncMap(locale)).ParseGlob(pattern)
	if err != nil {
		return nil, err
	}

	if !e.dev {
		e.lru.Add(key, t)
	}
	return t, nil
}

//
// func-map builders
//

func buildFuncMap(locale i18n.Locale) template.FuncMap {
	fm := template.FuncMap{
		"t":          translateFunc(locale),
		"locale":     func() string { return string(locale) },
		"icon":       icons.Render,
		"dict":       dict,
		"formSecret": form.HiddenInputs,
		"datefmt":    datefmt,
	}
	for k, v := range uaFuncMap() { // UA helpers (browser/os parsing)
		fm[k] = v
	}
	return fm
}

//
// helpers
//

// execName picks the template name to execute.
//
// Priority:
//  1. If the set has "<name>.html" (file-based template), run that.
//  2. Otherwise, fall back to "<name>" (root template defined in code).
func execName(t *template.Template, name string) string {
	if tmpl := t.Lookup(name + ".html"); tmpl != nil {
		return name + ".html"
	}
	return name
}

// translateFunc resolves a key with optional "name value" replacement
// pairs: {{ t "loggedInAs" "email" .Email }}.
func translateFunc(locale i18n.Locale) func(string, ...any) string {
	return func(key string, kv ...any) string {
		if len(kv) == 0 {
			return i18n.Translate(locale, key, nil)
		}
		repl := make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			name, _ := kv[i].(string)
			repl[name] = kv[i+1]
		}
		return i18n.Translate(locale, key, repl)
	}
}

// dict builds a map in templates: {{ dict "k" 1 "k2" "v" }}.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		m[key] = kv[i+1]
	}
	return m
}

// datefmt renders timestamps in the compact form the subscriber table uses.
func datefmt(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Local().Format("2006-01-02 15:04")
}
