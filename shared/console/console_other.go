//go:build !windows

package console

import "io"

// EnableANSI is a no-op on non-Windows; ANSI escape sequences are supported by default.
func EnableANSI(io.Writer) bool {
	return true
}
