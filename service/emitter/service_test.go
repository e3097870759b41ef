package emitter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/gocat/model"
	"github.com/thirukguru/gocat/shared/logger"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func emit(t *testing.T, stdin io.Reader, opts model.Options) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := NewService(stdin, &out, nil).Emit(opts)
	return out.String(), err
}

func TestEmitStdin(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		numbered bool
		want     string
	}{
		{name: "plain", in: "a\nb\n", want: "a\nb\n"},
		{name: "numbered", in: "a\nb\n", numbered: true, want: "1 a\n2 b\n"},
		{name: "empty plain", in: "", want: ""},
		{name: "empty numbered", in: "", numbered: true, want: ""},
		{name: "unterminated tail gains newline", in: "a\nb", want: "a\nb\n"},
		{name: "crlf normalized", in: "a\r\nb\r\n", numbered: true, want: "1 a\n2 b\n"},
		{name: "blank lines numbered", in: "\n\n", numbered: true, want: "1 \n2 \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := emit(t, strings.NewReader(tt.in), model.Options{ShowLineNumbers: tt.numbered})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmitFilesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	contents := []string{"first\nfile\n", "", "héllo wörld\n\ttabbed\n", "last\n"}
	var paths []string
	for i, c := range contents {
		paths = append(paths, writeFile(t, dir, string(rune('a'+i))+".txt", c))
	}

	got, err := emit(t, strings.NewReader("stdin is ignored\n"), model.Options{FilePaths: paths})
	require.NoError(t, err)
	assert.Equal(t, strings.Join(contents, ""), got)
}

func TestEmitNumberingResetsPerSource(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "x\ny\nz\n")
	b := writeFile(t, dir, "b.txt", "x\ny\nz\n")

	got, err := emit(t, nil, model.Options{ShowLineNumbers: true, FilePaths: []string{a, b}})
	require.NoError(t, err)
	assert.Equal(t, "1 x\n2 y\n3 z\n1 x\n2 y\n3 z\n", got)
}

func TestEmitSameFileTwice(t *testing.T) {
	a := writeFile(t, t.TempDir(), "a.txt", "one\ntwo\n")

	got, err := emit(t, nil, model.Options{ShowLineNumbers: true, FilePaths: []string{a, a}})
	require.NoError(t, err)
	assert.Equal(t, "1 one\n2 two\n1 one\n2 two\n", got)
}

func TestEmitEmptyFile(t *testing.T) {
	empty := writeFile(t, t.TempDir(), "empty.txt", "")

	for _, numbered := range []bool{false, true} {
		got, err := emit(t, nil, model.Options{ShowLineNumbers: numbered, FilePaths: []string{empty}})
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestEmitMissingFileStopsProcessing(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "before\n")
	missing := filepath.Join(dir, "missing.txt")
	c := writeFile(t, dir, "c.txt", "after\n")

	got, err := emit(t, nil, model.Options{FilePaths: []string{a, missing, c}})
	require.Error(t, err)

	var openErr *SourceOpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, missing, openErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "open "+missing+": no such file or directory", err.Error())
	assert.Equal(t, "before\n", got, "earlier sources are kept, later ones never read")
}

func TestEmitMissingFirstFileWritesNothing(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.txt", "never\n")

	got, err := emit(t, nil, model.Options{FilePaths: []string{filepath.Join(dir, "nope"), b}})
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, got)
}

func TestEmitDirectoryIsOpenError(t *testing.T) {
	dir := t.TempDir()

	_, err := emit(t, nil, model.Options{FilePaths: []string{dir}})

	var openErr *SourceOpenError
	require.True(t, errors.As(err, &openErr))
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestEmitDashIsLiteralPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "-", "from the file named dash\n")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	got, err := emit(t, strings.NewReader("from stdin\n"), model.Options{FilePaths: []string{"-"}})
	require.NoError(t, err)
	assert.Equal(t, "from the file named dash\n", got)
}

func TestEmitInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.txt", "good\nstill good\nbad \xff\xfe\nunreached\n")
	next := writeFile(t, dir, "next.txt", "never\n")

	got, err := emit(t, nil, model.Options{ShowLineNumbers: true, FilePaths: []string{bad, next}})

	var readErr *SourceReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, bad, readErr.Path)
	assert.Equal(t, 3, readErr.Line)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Equal(t, "1 good\n2 still good\n", got)
}

func TestEmitStdinReadError(t *testing.T) {
	stdin := io.MultiReader(strings.NewReader("a\nb\n"), iotest.ErrReader(io.ErrClosedPipe))

	got, err := emit(t, stdin, model.Options{})

	var readErr *SourceReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, StdinName, readErr.Path)
	assert.Equal(t, 3, readErr.Line)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Equal(t, "read <stdin>: line 3: io: read/write on closed pipe", err.Error())
	assert.Equal(t, "a\nb\n", got)
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestEmitDoesNotCloseStdin(t *testing.T) {
	stdin := &closeTracker{Reader: strings.NewReader("x\n")}

	_, err := emit(t, stdin, model.Options{})
	require.NoError(t, err)
	assert.False(t, stdin.closed)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestEmitWriteError(t *testing.T) {
	err := NewService(strings.NewReader("a\n"), failingWriter{}, nil).Emit(model.Options{})
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Contains(t, err.Error(), "write output")
}

func TestEmitLogsSources(t *testing.T) {
	a := writeFile(t, t.TempDir(), "a.txt", "1\n2\n")
	var logs, out bytes.Buffer

	svc := NewService(nil, &out, logger.New("debug", &logs))
	require.NoError(t, svc.Emit(model.Options{FilePaths: []string{a}}))

	assert.Contains(t, logs.String(), "source opened")
	assert.Contains(t, logs.String(), "lines=2")
	assert.NotContains(t, out.String(), "source", "diagnostics never reach the data output")
}

func TestEmitStreamsLinesFromLiveStdin(t *testing.T) {
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	done := make(chan error, 1)
	go func() {
		err := NewService(inR, outW, nil).Emit(model.Options{ShowLineNumbers: true})
		outW.CloseWithError(err)
		done <- err
	}()

	lines := make(chan string)
	go func() {
		br := bufio.NewReader(outR)
		for {
			line, err := br.ReadString('\n')
			if err != nil {
				close(lines)
				return
			}
			lines <- line
		}
	}()

	next := func() string {
		t.Helper()
		select {
		case line := <-lines:
			return line
		case <-time.After(5 * time.Second):
			t.Fatal("line was not written while the producer stayed open")
			return ""
		}
	}

	_, err := inW.Write([]byte("first\n"))
	require.NoError(t, err)
	assert.Equal(t, "1 first\n", next())

	_, err = inW.Write([]byte("second\nthird\n"))
	require.NoError(t, err)
	assert.Equal(t, "2 second\n", next())
	assert.Equal(t, "3 third\n", next())

	require.NoError(t, inW.Close())
	require.NoError(t, <-done)
	_, open := <-lines
	assert.False(t, open)
}
