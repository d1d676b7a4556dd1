package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Template is one named scaffold entry: where the template lives on disk,
// an optional description, and its template-level default values.
type Template struct {
	Path        string            `toml:"path"`
	Description string            `toml:"description,omitempty"`
	Defaults    map[string]string `toml:"defaults,omitempty"`
}

// Root is the full persisted configuration document.
type Root struct {
	Templates      map[string]Template `toml:"templates"`
	GlobalDefaults map[string]string   `toml:"global_defaults"`
}

// NewRoot returns an empty configuration with all maps initialized.
func NewRoot() *Root {
	return &Root{
		Templates:      map[string]Template{},
		GlobalDefaults: map[string]string{},
	}
}

// normalize replaces nil maps so callers can index without guards and the
// serialized document always carries both top-level tables.
func (r *Root) normalize() {
	if r.Templates == nil {
		r.Templates = map[string]Template{}
	}
	if r.GlobalDefaults == nil {
		r.GlobalDefaults = map[string]string{}
	}
}

// Load reads the config file into memory. A missing file is not an error:
// it yields an empty Root, matching first-use before anything was saved.
// A file that exists but does not parse wraps ErrCorrupt.
func Load() (*Root, error) {
	path := FilePath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewRoot(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var root Root
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, path, err)
	}
	root.normalize()
	return &root, nil
}

// Save writes the full configuration document back to disk. The write is
// all-or-nothing: the document is rendered to a temp file in the target
// directory and renamed over the old file. Failures wrap ErrWrite.
func Save(root *Root) error {
	root.normalize()

	if err := EnsureDir(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	path := FilePath()
	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", ErrWrite, err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(root); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: encoding %s: %v", ErrWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing temp file: %v", ErrWrite, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: replacing %s: %v", ErrWrite, path, err)
	}
	return nil
}
