// Package config manages the wanpc configuration stored at
// ~/.wanpc/config.toml: the set of named templates with their paths,
// descriptions, and per-template defaults, plus one global defaults table.
// The file is the sole persisted state. Every command performs one full
// Load, mutates the in-memory Root, and writes the whole document back
// with Save; nothing is cached across invocations.
package config
