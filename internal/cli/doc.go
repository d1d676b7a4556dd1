// Package cli defines the Cobra command tree for wanpc. Each file in this
// package registers one top-level command (list, create, config, version)
// with the root command. Command implementations delegate to internal
// packages for business logic and only handle flag parsing, interactive
// argument gathering, and output formatting.
package cli
