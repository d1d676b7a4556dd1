package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ManifestFileName is the variables manifest every template directory must
// carry at its root.
const ManifestFileName = "template.json"

// Reserved manifest keys. Underscore-prefixed keys are never prompted and
// never appear in generated output.
const minVersionKey = "_min_version"

// Variable is one declared template variable.
type Variable struct {
	Name    string
	Default string   // engine-native default; for choice variables this is Choices[0]
	Choices []string // non-empty for choice variables
}

// Reserved reports whether the variable is an underscore-prefixed
// engine directive rather than a user-facing variable.
func (v Variable) Reserved() bool { return strings.HasPrefix(v.Name, "_") }

// Derived reports whether the default is itself a template expression,
// computed from other variables rather than prompted.
func (v Variable) Derived() bool { return strings.Contains(v.Default, "{{") }

// Manifest is a parsed template.json. Variables keep their declaration
// order so prompting follows the template author's ordering.
type Manifest struct {
	Variables  []Variable
	MinVersion string // from _min_version, may be empty
}

// LoadManifest reads, validates, and parses the variables manifest of the
// template rooted at templatePath.
func LoadManifest(templatePath string) (*Manifest, error) {
	path := filepath.Join(templatePath, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := ValidateManifest(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		var parts []string
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			parts = append(parts, msg)
		}
		return nil, fmt.Errorf("invalid manifest %s: %s", path, strings.Join(parts, "; "))
	}

	return parseManifest(data)
}

// parseManifest decodes the flat JSON object token by token so variable
// declaration order survives (a plain map would lose it).
func parseManifest(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parsing manifest: top-level value must be an object")
	}

	m := &Manifest{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}
		name := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parsing manifest value for %q: %w", name, err)
		}

		v := Variable{Name: name}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			v.Default = s
		} else {
			var list []string
			if err := json.Unmarshal(raw, &list); err != nil || len(list) == 0 {
				return nil, fmt.Errorf("variable %q: value must be a string or a non-empty string list", name)
			}
			v.Choices = list
			v.Default = list[0]
		}

		if name == minVersionKey {
			m.MinVersion = v.Default
		}
		m.Variables = append(m.Variables, v)
	}

	return m, nil
}

// Defaults returns the engine-native defaults: one entry per non-reserved
// variable. Derived values are included verbatim; RenderDerived turns them
// into concrete strings once all overlays are applied.
func (m *Manifest) Defaults() map[string]string {
	defaults := make(map[string]string, len(m.Variables))
	for _, v := range m.Variables {
		if v.Reserved() {
			continue
		}
		defaults[v.Name] = v.Default
	}
	return defaults
}

// PromptVariables returns the variables a user should be asked about:
// non-reserved, non-derived, in declaration order.
func (m *Manifest) PromptVariables() []Variable {
	var out []Variable
	for _, v := range m.Variables {
		if v.Reserved() || v.Derived() {
			continue
		}
		out = append(out, v)
	}
	return out
}

// RenderDerived renders, in declaration order, every variable whose current
// value still contains a template expression. Earlier variables are visible
// to later ones.
func (m *Manifest) RenderDerived(vars map[string]string) error {
	for _, v := range m.Variables {
		if v.Reserved() {
			continue
		}
		value, ok := vars[v.Name]
		if !ok || !strings.Contains(value, "{{") {
			continue
		}
		rendered, err := renderString(v.Name, value, vars)
		if err != nil {
			return fmt.Errorf("rendering derived variable %q: %w", v.Name, err)
		}
		vars[v.Name] = rendered
	}
	return nil
}

// CheckVersion enforces the manifest's _min_version gate against the
// running build. Dev builds and unparseable build versions never block.
func (m *Manifest) CheckVersion(current string) error {
	if m.MinVersion == "" {
		return nil
	}
	cur, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return nil
	}
	min, err := semver.NewVersion(strings.TrimPrefix(m.MinVersion, "v"))
	if err != nil {
		return fmt.Errorf("template declares invalid %s %q: %w", minVersionKey, m.MinVersion, err)
	}
	if cur.LessThan(min) {
		return fmt.Errorf("template requires version %s or newer (running %s)", m.MinVersion, current)
	}
	return nil
}
