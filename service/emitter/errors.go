package emitter

import (
	"errors"
	"fmt"
)

// StdinName is the path reported for standard input.
const StdinName = "<stdin>"

var (
	// ErrInvalidUTF8 is wrapped by a SourceReadError for a line that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
	// ErrIsDirectory is wrapped by a SourceOpenError when a path names a directory.
	ErrIsDirectory = errors.New("is a directory")
)

// SourceOpenError reports a source that could not be opened for reading.
type SourceOpenError struct {
	Path string
	Err  error
}

func (e *SourceOpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *SourceOpenError) Unwrap() error { return e.Err }

// SourceReadError reports a failure while reading an open source. Line is the
// 1-based index of the line that could not be read.
type SourceReadError struct {
	Path string
	Line int
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("read %s: line %d: %v", e.Path, e.Line, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }
