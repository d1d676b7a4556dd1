// Package logger provides leveled, colorized console output. Levels map to
// fatih/color printers: Info is green, Warn is magenta, Error is red, and
// Debug is cyan when enabled via Init and a no-op otherwise.
package logger

import (
	"github.com/fatih/color"
)

var (
	// Info logs informational messages in green.
	Info = color.New(color.FgGreen).PrintfFunc()

	// Warn logs warnings in bright magenta.
	Warn = color.New(color.FgHiMagenta).PrintfFunc()

	// Error logs errors in red.
	Error = color.New(color.FgRed).PrintfFunc()

	// Debug logs debug messages in cyan when verbose output is enabled.
	// Assigned by Init; a no-op until then.
	Debug = func(format string, a ...any) {}
)

// Init enables or disables debug output. Called once from the root
// command before any subcommand runs.
func Init(verbose bool) {
	if verbose {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
