// Package console answers questions about the terminal gocat writes to.
package console

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the width of the output cannot be determined.
const DefaultWidth = 80

type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the terminal behind w, or DefaultWidth.
func Width(w io.Writer) int {
	f, ok := w.(fder)
	if !ok {
		return DefaultWidth
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return width
	}
	return DefaultWidth
}

var _ fder = (*os.File)(nil)
