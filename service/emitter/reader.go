package emitter

import (
	"bufio"
	"io"
)

const readBufferSize = 64 * 1024

// lineReader splits a stream on '\n' with no limit on line length. The slice
// returned by next is only valid until the following call.
type lineReader struct {
	b   *bufio.Reader
	buf []byte
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{
		b:   bufio.NewReaderSize(r, readBufferSize),
		buf: make([]byte, 0, 128),
	}
}

// next returns the next line without its terminator. A final chunk with no
// trailing newline is still a line; io.EOF is returned only once the stream
// has nothing left.
func (r *lineReader) next() ([]byte, error) {
	r.buf = r.buf[:0]
	for {
		frag, err := r.b.ReadSlice('\n')
		r.buf = append(r.buf, frag...)
		switch err {
		case nil:
			return trimNewline(r.buf), nil
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			if len(r.buf) == 0 {
				return nil, io.EOF
			}
			return r.buf, nil
		default:
			return nil, err
		}
	}
}

// trimNewline drops a trailing "\n" or "\r\n".
func trimNewline(b []byte) []byte {
	b = b[:len(b)-1]
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	return b
}
