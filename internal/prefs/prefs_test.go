package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := Load("")
	if p != Defaults() {
		t.Fatalf("Load = %+v, want %+v", p, Defaults())
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "spacex-explorer")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Slate\"\nstart_view = \"rockets\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Slate")
	}
	if p.StartView != ViewRockets {
		t.Fatalf("StartView = %q, want %q", p.StartView, ViewRockets)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	p := Prefs{Theme: "Kanagawa", StartView: ViewCapsules}
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := Load(prefsFile)
	if loaded != p {
		t.Fatalf("Load after Save = %+v, want %+v", loaded, p)
	}
}

func TestLoad_NormalizesValues(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantTheme string
		wantView  string
	}{
		{"empty theme", "theme = \"\"\n", defaultTheme, defaultStartView},
		{"unknown view", "start_view = \"crew\"\n", defaultTheme, defaultStartView},
		{"view case", "start_view = \" Capsules \"\n", defaultTheme, ViewCapsules},
		{"invalid toml", "not valid toml {{{\n", defaultTheme, defaultStartView},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(prefsFile, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			p := Load(prefsFile)
			if p.Theme != tt.wantTheme {
				t.Fatalf("Theme = %q, want %q", p.Theme, tt.wantTheme)
			}
			if p.StartView != tt.wantView {
				t.Fatalf("StartView = %q, want %q", p.StartView, tt.wantView)
			}
		})
	}
}
