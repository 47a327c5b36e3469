// Package styles provides shared lipgloss styles for the listing and the
// interactive picker.
//
// Styles are derived from the active Theme. When output is not a terminal
// every style renders plain text so piped output stays free of escape codes.
package styles

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ShouldColorize reports whether styled output should be written to f.
// Honors NO_COLOR (https://no-color.org).
func ShouldColorize(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
