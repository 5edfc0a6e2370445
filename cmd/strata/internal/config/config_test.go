package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/dashboard/v2\n\ngo 1.24\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.ModulePath != "example.com/acme/dashboard/v2" {
		t.Errorf("module path = %q", r.ModulePath)
	}
	if r.Title != "dashboard" {
		t.Errorf("title = %q, want dashboard", r.Title)
	}
	if len(r.Sizes) != 1 || r.Sizes[0] != "640x480" {
		t.Errorf("sizes = %v", r.Sizes)
	}
	if r.OutDir != dir || r.Font != "basic" || r.Format != "png" || r.ThemePath != "" {
		t.Errorf("resolved = %+v", r)
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
scene:
  title: Demo
theme: themes/dark.yaml
render:
  sizes: [320x240, 800x600]
  out: shots
  font: GoRegular
  format: tiff
`)

	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.ModulePath != "" || r.Title != "Demo" {
		t.Errorf("module = %q, title = %q", r.ModulePath, r.Title)
	}
	if r.ThemePath != filepath.Join(dir, "themes", "dark.yaml") || r.OutDir != filepath.Join(dir, "shots") {
		t.Errorf("paths = %q, %q", r.ThemePath, r.OutDir)
	}
	if len(r.Sizes) != 2 || r.Font != "goregular" || r.Format != "tiff" {
		t.Errorf("resolved = %+v", r)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{"bad yaml", map[string]string{FileName: "scene: [\n"}, "failed to parse"},
		{"bad font", map[string]string{FileName: "render:\n  font: comic\n"}, "render.font"},
		{"bad format", map[string]string{FileName: "render:\n  format: gif\n"}, "render.format"},
		{"empty go.mod", map[string]string{"go.mod": "go 1.24\n"}, "module path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}
			_, err := Resolve(dir)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Resolve() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestDefaultTitle(t *testing.T) {
	tests := []struct {
		modPath, dir, want string
	}{
		{"github.com/go-strata/strata", "/src/x", "strata"},
		{"example.com/tool/v3", "/src/x", "tool"},
		{"", "/src/project", "project"},
	}
	for _, tt := range tests {
		if got := defaultTitle(tt.modPath, tt.dir); got != tt.want {
			t.Errorf("defaultTitle(%q, %q) = %q, want %q", tt.modPath, tt.dir, got, tt.want)
		}
	}
}
