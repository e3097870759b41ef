//go:build windows

package console

import (
	"io"

	"golang.org/x/sys/windows"
)

// EnableANSI enables ANSI escape sequence processing on the console behind w.
// It returns false when w is not a console or the mode cannot be changed.
func EnableANSI(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	handle := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	const enableVirtualTerminalProcessing = 0x0004

	return windows.SetConsoleMode(handle, mode|enableVirtualTerminalProcessing) == nil
}
