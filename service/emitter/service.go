// Package emitter reads input sources line by line and writes them out.
package emitter

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/thirukguru/gocat/model"
	"github.com/thirukguru/gocat/service/output"
	"github.com/thirukguru/gocat/shared/logger"
)

// NewService creates an emitter reading standard input from stdin and
// writing to stdout. A nil logger discards diagnostics.
func NewService(stdin io.Reader, stdout io.Writer, log *slog.Logger) Service {
	if log == nil {
		log = logger.Discard()
	}
	return &service{
		stdin:  stdin,
		stdout: stdout,
		log:    log,
	}
}

func (s *service) Emit(opts model.Options) error {
	out := output.NewService(s.stdout, opts.ShowLineNumbers)

	var err error
	if opts.ReadsStdin() {
		err = s.emitSource(out, StdinName, s.stdin)
	} else {
		for _, path := range opts.FilePaths {
			if err = s.emitFile(out, path); err != nil {
				break
			}
		}
	}

	// Lines emitted before a failure are kept.
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	return err
}

func (s *service) emitFile(out output.Service, path string) error {
	f, err := openSource(path)
	if err != nil {
		s.log.Debug("source open failed", "path", path, "error", err)
		return err
	}
	defer f.Close()

	return s.emitSource(out, path, f)
}

func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceOpenError{Path: path, Err: unwrapPathError(err)}
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &SourceOpenError{Path: path, Err: unwrapPathError(err)}
	}
	if fi.IsDir() {
		f.Close()
		return nil, &SourceOpenError{Path: path, Err: ErrIsDirectory}
	}
	return f, nil
}

// unwrapPathError strips the op and path that SourceOpenError already reports.
func unwrapPathError(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

func (s *service) emitSource(out output.Service, path string, r io.Reader) error {
	s.log.Debug("source opened", "path", path)

	lr := newLineReader(r)
	n := 0
	for {
		line, err := lr.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &SourceReadError{Path: path, Line: n + 1, Err: unwrapPathError(err)}
		}
		n++
		if !utf8.Valid(line) {
			return &SourceReadError{Path: path, Line: n, Err: ErrInvalidUTF8}
		}
		if err := out.WriteLine(n, line); err != nil {
			return err
		}
		// The next read may block on a live producer.
		if lr.b.Buffered() == 0 {
			if err := out.Flush(); err != nil {
				return err
			}
		}
	}

	s.log.Debug("source drained", "path", path, "lines", n)
	return nil
}
