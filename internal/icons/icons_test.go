// internal/icons/icons_test.go
//
// Run: go test ./internal/icons -v

package icons

import (
	"sort"
	"strings"
	"testing"
)

func TestRender_Builtin(t *testing.T) {
	got := string(Render("chart"))
	if !strings.HasPrefix(got, "<svg") {
		t.Fatalf("Render(chart) = %q", got)
	}
}

func TestRender_UnknownFallsBack(t *testing.T) {
	if Render("no-such-icon") != Render(DefaultName) {
		t.Fatal("unknown identifier did not fall back")
	}
	if Render("") != Render(DefaultName) {
		t.Fatal("empty identifier did not fall back")
	}
}

func TestRender_RawMarkupPassesThrough(t *testing.T) {
	raw := `<svg viewBox="0 0 16 16"><circle cx="8" cy="8" r="8"/></svg>`
	if string(Render("  "+raw)) != raw {
		t.Fatal("raw markup mangled")
	}
}

func TestNames_SortedAndClosed(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Fatal("names not sorted")
	}
	for _, n := range names {
		if !IsBuiltin(n) {
			t.Errorf("IsBuiltin(%q) = false", n)
		}
	}
	if IsBuiltin("<svg>") {
		t.Fatal("raw markup classified as builtin")
	}
}
