// Package output provides a service for writing emitted lines to the console.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

const bufferSize = 32 * 1024

// NewService creates a new output service writing to w.
func NewService(w io.Writer, numbered bool) Service {
	f := FormatPlain
	if numbered {
		f = FormatNumbered
	}

	return &service{
		format:  f,
		w:       bufio.NewWriterSize(w, bufferSize),
		scratch: make([]byte, 0, 24),
	}
}

func (s *service) WriteLine(n int, line []byte) error {
	if s.format == FormatNumbered {
		s.scratch = strconv.AppendInt(s.scratch[:0], int64(n), 10)
		s.scratch = append(s.scratch, ' ')
		if _, err := s.w.Write(s.scratch); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if _, err := s.w.Write(line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (s *service) Flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
