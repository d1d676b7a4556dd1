package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// useTempConfig points WANPC_CONFIG at a file inside a temp dir and
// returns its path. The file does not exist until something saves.
func useTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("WANPC_CONFIG", path)
	return path
}

func TestLoadMissingFile(t *testing.T) {
	useTempConfig(t)

	root, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(root.Templates) != 0 {
		t.Errorf("Templates = %v, want empty", root.Templates)
	}
	if len(root.GlobalDefaults) != 0 {
		t.Errorf("GlobalDefaults = %v, want empty", root.GlobalDefaults)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := useTempConfig(t)
	if err := os.WriteFile(path, []byte("[templates\nnot toml at all"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Load() error = %v, want ErrCorrupt", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfig(t)

	root := NewRoot()
	root.Templates["python-pkg"] = Template{
		Path:        "/home/jane/templates/python",
		Description: "Python package layout",
		Defaults:    map[string]string{"author": "Jane"},
	}
	root.GlobalDefaults["license"] = "MIT"

	if err := Save(root); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tmpl, ok := got.Templates["python-pkg"]
	if !ok {
		t.Fatalf("template python-pkg missing after round trip: %v", got.Templates)
	}
	if tmpl.Path != "/home/jane/templates/python" {
		t.Errorf("Path = %q", tmpl.Path)
	}
	if tmpl.Description != "Python package layout" {
		t.Errorf("Description = %q", tmpl.Description)
	}
	if tmpl.Defaults["author"] != "Jane" {
		t.Errorf("Defaults = %v", tmpl.Defaults)
	}
	if got.GlobalDefaults["license"] != "MIT" {
		t.Errorf("GlobalDefaults = %v", got.GlobalDefaults)
	}
}

func TestSaveUsesSpecLayout(t *testing.T) {
	path := useTempConfig(t)

	root := NewRoot()
	if err := root.AddTemplate("python-pkg", "/t/python", ""); err != nil {
		t.Fatal(err)
	}
	root.SetGlobalDefault("license", "MIT")
	if err := Save(root); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "[templates.python-pkg]") {
		t.Errorf("serialized config missing [templates.python-pkg]:\n%s", text)
	}
	if !strings.Contains(text, "[global_defaults]") {
		t.Errorf("serialized config missing [global_defaults]:\n%s", text)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	path := useTempConfig(t)

	if err := Save(NewRoot()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != filepath.Base(path) {
			t.Errorf("unexpected file left behind: %s", e.Name())
		}
	}
}

func TestFilePathEnvOverride(t *testing.T) {
	t.Setenv("WANPC_CONFIG", "/tmp/custom/wanpc.toml")
	if got := FilePath(); got != "/tmp/custom/wanpc.toml" {
		t.Errorf("FilePath() = %q, want env override", got)
	}
}
