package output

import "bufio"

// Format represents how each line is rendered.
type Format string

const (
	FormatPlain    Format = "plain"
	FormatNumbered Format = "numbered"
)

type service struct {
	format  Format
	w       *bufio.Writer
	scratch []byte
}

// Service defines the interface for writing emitted lines.
type Service interface {
	// WriteLine writes line followed by a newline; n is the 1-based index of
	// the line within its source and is only rendered in FormatNumbered.
	WriteLine(n int, line []byte) error
	// Flush writes any buffered data to the underlying writer.
	Flush() error
}
