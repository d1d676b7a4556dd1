package config

import "fmt"

// Resolve computes the effective variable mapping for a template. Layers
// overlay in strictly increasing precedence: engineDefaults (the template's
// own declared defaults), then global defaults, then the named template's
// defaults. The input map is never mutated.
func Resolve(root *Root, name string, engineDefaults map[string]string) (map[string]string, error) {
	root.normalize()
	t, ok := root.Templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	merged := make(map[string]string, len(engineDefaults)+len(root.GlobalDefaults)+len(t.Defaults))
	for k, v := range engineDefaults {
		merged[k] = v
	}
	for k, v := range root.GlobalDefaults {
		merged[k] = v
	}
	for k, v := range t.Defaults {
		merged[k] = v
	}
	return merged, nil
}

// Merged returns the config-only merge for a template: global defaults
// overlaid by template defaults, without any engine-native values.
func Merged(root *Root, name string) (map[string]string, error) {
	return Resolve(root, name, nil)
}
