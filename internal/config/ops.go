package config

import "fmt"

// The mutators below operate on the in-memory Root only. Each CLI command
// pairs exactly one of them with a Load before and a Save after.

// AddTemplate registers a new template under a unique name.
func (r *Root) AddTemplate(name, path, description string) error {
	r.normalize()
	if _, ok := r.Templates[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTemplate, name)
	}
	r.Templates[name] = Template{
		Path:        path,
		Description: description,
		Defaults:    map[string]string{},
	}
	return nil
}

// RemoveTemplate deletes a template and all its defaults.
func (r *Root) RemoveTemplate(name string) error {
	r.normalize()
	if _, ok := r.Templates[name]; !ok {
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	delete(r.Templates, name)
	return nil
}

// SetDescription replaces the description of an existing template.
func (r *Root) SetDescription(name, description string) error {
	r.normalize()
	t, ok := r.Templates[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	t.Description = description
	r.Templates[name] = t
	return nil
}

// SetDefault sets a template-level default value.
func (r *Root) SetDefault(name, key, value string) error {
	r.normalize()
	t, ok := r.Templates[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	if t.Defaults == nil {
		t.Defaults = map[string]string{}
	}
	t.Defaults[key] = value
	r.Templates[name] = t
	return nil
}

// RemoveDefault deletes a template-level default value.
func (r *Root) RemoveDefault(name, key string) error {
	r.normalize()
	t, ok := r.Templates[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	if _, ok := t.Defaults[key]; !ok {
		return fmt.Errorf("%w: %q in template %q", ErrDefaultNotFound, key, name)
	}
	delete(t.Defaults, key)
	return nil
}

// SetGlobalDefault sets a default value that applies to every template.
func (r *Root) SetGlobalDefault(key, value string) {
	r.normalize()
	r.GlobalDefaults[key] = value
}

// RemoveGlobalDefault deletes a global default value.
func (r *Root) RemoveGlobalDefault(key string) error {
	r.normalize()
	if _, ok := r.GlobalDefaults[key]; !ok {
		return fmt.Errorf("%w: global default %q", ErrDefaultNotFound, key)
	}
	delete(r.GlobalDefaults, key)
	return nil
}
