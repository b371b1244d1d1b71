package prefs

import (
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "preferences.json")

	p := LoadFrom(path)
	p.SetFloat("window.width", 1280)
	p.SetInt("panel.active", 2)
	p.SetString("export.dir", "/tmp/plots")
	if err := p.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	q := LoadFrom(path)
	if got := q.Float("window.width", 0); got != 1280 {
		t.Fatalf("width = %g", got)
	}
	if got := q.Int("panel.active", 0); got != 2 {
		t.Fatalf("active panel = %d", got)
	}
	if got := q.String("export.dir"); got != "/tmp/plots" {
		t.Fatalf("export dir = %q", got)
	}
}

func TestMissingFileAndFallbacks(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))

	if got := p.Float("window.width", 1024); got != 1024 {
		t.Fatalf("float fallback = %g", got)
	}
	if got := p.Int("panel.active", 0); got != 0 {
		t.Fatalf("int fallback = %d", got)
	}
	if got := p.String("export.dir"); got != "" {
		t.Fatalf("string fallback = %q", got)
	}
}
