//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to the isolated per-test sandbox.
type testEnv struct {
	ConfigPath  string // WANPC_CONFIG — the config file under test
	TemplateDir string // a synthetic template directory
	OutputDir   string // where projects get generated
}

// setupTestEnv creates isolated temp directories and points WANPC_CONFIG
// at a sandboxed config file so no test touches the real home directory.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
		OutputDir:  t.TempDir(),
	}
	t.Setenv("WANPC_CONFIG", env.ConfigPath)

	env.TemplateDir = setupTemplate(t)
	return env
}

// setupTemplate lays out a small but realistic template: a variables
// manifest with a plain, a derived, and a choice variable, plus a payload
// whose top-level directory name is itself templated.
func setupTemplate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "template.json"), `{
  "project_name": "demo",
  "author": "",
  "license": ["MIT", "Apache-2.0"],
  "slug": "{{.project_name}}"
}`)
	writeFile(t, filepath.Join(dir, "{{.slug}}", "README.md.tmpl"),
		"# {{.project_name}}\n\nBy {{.author}}. Licensed under {{.license}}.\n")
	writeFile(t, filepath.Join(dir, "{{.slug}}", "src", "main.py"),
		"print('{{.project_name}}')\n")
	return dir
}

// writeFile creates a file at path with content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if path does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s: %v", path, err)
	}
}
