package config

import "errors"

// Sentinel errors for the named failure modes of the config store.
// Callers match with errors.Is; messages carry the specific detail.
var (
	// ErrCorrupt indicates the config file exists but cannot be parsed.
	ErrCorrupt = errors.New("config file is corrupt")

	// ErrWrite indicates the config file could not be persisted.
	ErrWrite = errors.New("config file could not be written")

	// ErrDuplicateTemplate indicates an add for a name that already exists.
	ErrDuplicateTemplate = errors.New("template already exists")

	// ErrTemplateNotFound indicates an operation on an unknown template.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrDefaultNotFound indicates a removal of an absent default key.
	ErrDefaultNotFound = errors.New("default not found")
)
